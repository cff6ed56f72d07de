// Package bootstrap builds the object graph shared by the HTTP server and
// the operations CLI.
package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/docker/go-units"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"acredge/internal/adapter/api/handler"
	"acredge/internal/adapter/repository"
	"acredge/internal/domain/entity"
	domainrepo "acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/internal/infrastructure/cache"
	"acredge/internal/infrastructure/firebase"
	"acredge/internal/infrastructure/mail"
	"acredge/internal/infrastructure/search"
	"acredge/internal/infrastructure/storage"
	"acredge/internal/usecase"
	"acredge/pkg/config"
	"acredge/pkg/logger"
)

// App holds every use case plus the resources that must be closed on exit.
type App struct {
	Config *config.Config

	AdminGate *usecase.AuthGate
	UserGate  *usecase.AuthGate

	Entities   map[string]*usecase.EntityUseCase
	Property   *usecase.PropertyUseCase
	Profile    *usecase.ProfileUseCase
	Dashboard  *usecase.DashboardUseCase
	Search     *usecase.SearchUseCase
	AdminAuth  *usecase.AdminAuthUseCase
	UserAuth   *usecase.UserAuthUseCase
	MediaAudit *usecase.MediaAuditUseCase

	closers []func() error
}

// stores are the repositories and blob store of one backend.
type stores struct {
	docs     func(collection, resource string) domainrepo.DocumentRepository
	property func() domainrepo.PropertyRepository
	profiles domainrepo.UserProfileRepository
	tokens   domainrepo.TokenRepository
	otps     domainrepo.OTPRepository
	blobs    service.BlobStore
}

// New connects to the configured backends. needPhoneAuth is false for
// tools that never verify sign-ins.
func New(ctx context.Context, cfg *config.Config, needPhoneAuth bool) (*App, error) {
	app := &App{Config: cfg}

	rules, err := MediaRules(cfg)
	if err != nil {
		return nil, err
	}

	var admin, user stores
	if cfg.UsesMemoryStore() {
		logger.Warn("Using in-memory stores; data is lost on exit")
		admin, user = memoryStores("admin-bucket"), memoryStores("user-bucket")
	} else {
		if admin, err = app.firestoreStores(ctx, cfg.Admin); err != nil {
			app.Close()
			return nil, err
		}
		if user, err = app.firestoreStores(ctx, cfg.User); err != nil {
			app.Close()
			return nil, err
		}
	}

	index, err := app.searchIndex(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	adminUploads := service.NewUploadOrchestrator(admin.blobs)
	userUploads := service.NewUploadOrchestrator(user.blobs)

	developers := admin.docs(repository.DevelopersCollection, "Developer")
	projects := admin.docs(repository.ProjectsCollection, "Project")
	towers := admin.docs(repository.TowersCollection, "Tower")
	series := admin.docs(repository.SeriesCollection, "Series")
	amenities := admin.docs(repository.AmenitiesCollection, "Amenity")
	properties := user.property()

	app.Entities = map[string]*usecase.EntityUseCase{
		"developers": usecase.NewEntityUseCase(usecase.DeveloperKind(rules[service.KindDeveloper]), developers, adminUploads, cfg.InspectPDF),
		"projects":   usecase.NewEntityUseCase(usecase.ProjectKind(rules[service.KindProject]), projects, adminUploads, cfg.InspectPDF),
		"towers":     usecase.NewEntityUseCase(usecase.TowerKind(), towers, adminUploads, cfg.InspectPDF),
		"series":     usecase.NewEntityUseCase(usecase.SeriesKind(rules[service.KindSeries]), series, adminUploads, cfg.InspectPDF),
		"amenities":  usecase.NewEntityUseCase(usecase.AmenityKind(rules[service.KindAmenity], amenities), amenities, adminUploads, cfg.InspectPDF),
	}
	app.Property = usecase.NewPropertyUseCase(rules[service.KindProperty], properties, index, userUploads, cfg.InspectPDF)
	app.Profile = usecase.NewProfileUseCase(user.profiles, rules[service.KindProfile], userUploads)
	app.Dashboard = usecase.NewDashboardUseCase(
		app.Entities["developers"],
		app.Entities["projects"],
		app.Entities["series"],
		app.Entities["towers"],
		user.profiles,
		app.Property,
	)
	app.Search = usecase.NewSearchUseCase(index)

	app.MediaAudit = usecase.NewMediaAuditUseCase(
		usecase.MediaOwner{Kind: service.KindDeveloper, Rules: rules[service.KindDeveloper], Repo: developers, Store: admin.blobs},
		usecase.MediaOwner{Kind: service.KindProject, Rules: rules[service.KindProject], Repo: projects, Store: admin.blobs},
		usecase.MediaOwner{Kind: service.KindSeries, Rules: rules[service.KindSeries], Repo: series, Store: admin.blobs},
		usecase.MediaOwner{Kind: service.KindAmenity, Rules: rules[service.KindAmenity], Repo: amenities, Store: admin.blobs},
		usecase.MediaOwner{Kind: service.KindProperty, Rules: rules[service.KindProperty], Repo: properties, Store: user.blobs},
	)

	issuer := usecase.NewTokenIssuer(cfg.JWTSecret)
	app.AdminGate = usecase.NewAuthGate(entity.RoleAdmin, issuer, admin.tokens, cache.NewTokenCache(cfg.TokenCacheTTL))
	app.UserGate = usecase.NewAuthGate(entity.RoleUser, issuer, user.tokens, cache.NewTokenCache(cfg.TokenCacheTTL))

	app.AdminAuth = usecase.NewAdminAuthUseCase(admin.otps, mailer(cfg), app.AdminGate, cfg.AdminEmailDomain)

	if needPhoneAuth {
		verifier, err := app.phoneVerifier(ctx, cfg)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.UserAuth = usecase.NewUserAuthUseCase(verifier, user.profiles, app.UserGate)
	}

	return app, nil
}

// UseCases returns what the HTTP handlers are built from.
func (a *App) UseCases() handler.UseCases {
	return handler.UseCases{
		AdminAuth:    a.AdminAuth,
		UserAuth:     a.UserAuth,
		Entities:     a.Entities,
		Property:     a.Property,
		Profile:      a.Profile,
		Dashboard:    a.Dashboard,
		Search:       a.Search,
		CookieSecure: a.Config.CookieSecure,
	}
}

// Close releases clients in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("Failed to close client: %v", err)
		}
	}
	a.closers = nil
}

func (a *App) firestoreStores(ctx context.Context, b config.Backend) (stores, error) {
	opts, err := clientOptions(b)
	if err != nil {
		return stores{}, err
	}

	client, err := firestore.NewClient(ctx, b.ProjectID, opts...)
	if err != nil {
		return stores{}, fmt.Errorf("failed to create %s Firestore client: %v", b.Name, err)
	}
	a.closers = append(a.closers, client.Close)

	blobs, err := storage.NewGCSBlobStore(ctx, b.StorageBucket, opts...)
	if err != nil {
		return stores{}, fmt.Errorf("failed to initialize %s Cloud Storage: %v", b.Name, err)
	}
	a.closers = append(a.closers, blobs.Close)

	logger.Info("Connected %s backend (project %s, bucket %s)", b.Name, b.ProjectID, b.StorageBucket)

	return stores{
		docs: func(collection, resource string) domainrepo.DocumentRepository {
			return repository.NewFirestoreDocumentRepository(client, collection, resource)
		},
		property: func() domainrepo.PropertyRepository {
			return repository.NewFirestorePropertyRepository(client)
		},
		profiles: repository.NewFirestoreUserProfileRepository(client),
		tokens:   repository.NewFirestoreTokenRepository(client),
		otps:     repository.NewFirestoreOTPRepository(client),
		blobs:    blobs,
	}, nil
}

func memoryStores(bucket string) stores {
	return stores{
		docs: func(collection, resource string) domainrepo.DocumentRepository {
			return repository.NewMemoryDocumentRepository(resource)
		},
		property: func() domainrepo.PropertyRepository {
			return repository.NewMemoryPropertyRepository()
		},
		profiles: repository.NewMemoryUserProfileRepository(),
		tokens:   repository.NewMemoryTokenRepository(),
		otps:     repository.NewMemoryOTPRepository(),
		blobs:    storage.NewMemoryBlobStore(bucket),
	}
}

func (a *App) searchIndex(ctx context.Context, cfg *config.Config) (service.SearchIndex, error) {
	if !cfg.Algolia.Enabled() {
		logger.Warn("Search index not configured; searches return no results")
		return search.NoopIndex{}, nil
	}

	algolia := search.NewAlgoliaIndex(cfg.Algolia.AppID, cfg.Algolia.AdminKey, cfg.Algolia.IndexName)
	if err := algolia.Configure(ctx); err != nil {
		logger.Warn("Failed to configure search index: %v", err)
	}

	if cfg.Redis.Addr == "" {
		return algolia, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
	}
	a.closers = append(a.closers, rdb.Close)

	logger.Info("Search responses cached in redis for %s", cfg.Redis.SearchCacheTTL)
	return search.NewCachedIndex(algolia, rdb, cfg.Redis.SearchCacheTTL), nil
}

func (a *App) phoneVerifier(ctx context.Context, cfg *config.Config) (service.PhoneTokenVerifier, error) {
	switch cfg.PhoneAuthVerifier {
	case "jwks":
		verifier, err := firebase.NewJWKSTokenVerifier(cfg.User.ProjectID)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			verifier.Close()
			return nil
		})
		return verifier, nil
	case "firebase":
		opts, err := clientOptions(cfg.User)
		if err != nil {
			return nil, err
		}
		firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.User.ProjectID}, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Firebase: %v", err)
		}
		authClient, err := firebaseApp.Auth(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Firebase Auth: %v", err)
		}
		return firebase.NewAdminTokenVerifier(authClient), nil
	default:
		return nil, fmt.Errorf("unknown PHONE_AUTH_VERIFIER %q", cfg.PhoneAuthVerifier)
	}
}

func mailer(cfg *config.Config) service.Mailer {
	if cfg.SMTP.Username == "" && cfg.IsDevelopment() {
		logger.Warn("SMTP not configured; OTP mails are written to the log")
		return mail.LogMailer{}
	}
	return mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
}

func clientOptions(b config.Backend) ([]option.ClientOption, error) {
	raw, err := b.ServiceAccountJSON()
	if err != nil {
		return nil, fmt.Errorf("%s credentials: %v", b.Name, err)
	}
	if raw != nil {
		return []option.ClientOption{option.WithCredentialsJSON(raw)}, nil
	}
	if b.CredentialsPath != "" {
		return []option.ClientOption{option.WithCredentialsFile(b.CredentialsPath)}, nil
	}
	return nil, nil
}

// MediaRules returns the default upload rules with the configured
// overrides applied.
func MediaRules(cfg *config.Config) (map[string]service.MediaRules, error) {
	rules := service.DefaultMediaRules()

	for kind, fields := range cfg.Uploads {
		kindRules, ok := rules[kind]
		if !ok {
			return nil, fmt.Errorf("uploads: unknown entity kind %q", kind)
		}
		for field, limit := range fields {
			if _, ok := kindRules[field]; !ok {
				return nil, fmt.Errorf("uploads.%s: unknown media field %q", kind, field)
			}

			var maxSize int64
			if limit.MaxSize != "" {
				size, err := units.RAMInBytes(limit.MaxSize)
				if err != nil {
					return nil, fmt.Errorf("uploads.%s.%s: %v", kind, field, err)
				}
				maxSize = size
			}
			kindRules = kindRules.WithLimit(field, maxSize, limit.MaxCount)
		}
		rules[kind] = kindRules
	}

	return rules, nil
}
