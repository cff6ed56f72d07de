package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	ServerPort    string
	Environment   string
	JWTSecret     string
	TokenCacheTTL time.Duration
	CookieSecure  bool
	// StoreBackend is "firestore" or "memory" (local development only).
	StoreBackend string

	Admin Backend
	User  Backend

	AdminEmailDomain  string
	PhoneAuthVerifier string
	InspectPDF        bool

	SMTP    SMTPConfig
	Algolia AlgoliaConfig
	Redis   RedisConfig

	// Uploads overrides media limits, keyed by entity kind then field name.
	Uploads map[string]map[string]UploadLimit
}

// Backend is one Firebase project identity: its Firestore database and storage bucket.
type Backend struct {
	Name            string
	ProjectID       string
	StorageBucket   string
	CredentialsJSON string
	CredentialsPath string
	ClientEmail     string
	PrivateKey      string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type AlgoliaConfig struct {
	AppID     string
	AdminKey  string
	IndexName string
}

func (a AlgoliaConfig) Enabled() bool {
	return a.AppID != "" && a.AdminKey != ""
}

type RedisConfig struct {
	Addr           string
	Password       string
	SearchCacheTTL time.Duration
}

type UploadLimit struct {
	MaxSize  string `toml:"max_size"`
	MaxCount int    `toml:"max_count"`
}

type fileOverlay struct {
	Uploads map[string]map[string]UploadLimit `toml:"uploads"`
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", getEnv("PORT", "8080")),
		Environment:   getEnv("ENVIRONMENT", "development"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenCacheTTL: getEnvAsDuration("TOKEN_CACHE_TTL", 5*time.Minute),
		CookieSecure:  getEnvAsBool("COOKIE_SECURE", true),
		StoreBackend:  getEnv("STORE_BACKEND", "firestore"),
		Admin:         loadBackend("admin", "ADMIN_FIREBASE_"),
		User:          loadBackend("user", "FIREBASE_"),

		AdminEmailDomain:  getEnv("ADMIN_EMAIL_DOMAIN", "acredge.in"),
		PhoneAuthVerifier: getEnv("PHONE_AUTH_VERIFIER", "firebase"),
		InspectPDF:        getEnvAsBool("UPLOAD_INSPECT_PDF", true),

		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_APP_PASSWORD", ""),
			From:     getEnv("EMAIL_FROM", getEnv("EMAIL_USER", "")),
		},
		Algolia: AlgoliaConfig{
			AppID:     getEnv("ALGOLIA_APP_ID", ""),
			AdminKey:  getEnv("ALGOLIA_ADMIN_KEY", ""),
			IndexName: getEnv("ALGOLIA_INDEX", "properties"),
		},
		Redis: RedisConfig{
			Addr:           getEnv("REDIS_ADDR", ""),
			Password:       getEnv("REDIS_PASSWORD", ""),
			SearchCacheTTL: getEnvAsDuration("SEARCH_CACHE_TTL", time.Minute),
		},
	}

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overlay fileOverlay
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	c.Uploads = overlay.Uploads
	return nil
}

// Validate reports configuration the server cannot start without.
func (c *Config) Validate() error {
	var problems []string

	backends := []Backend{c.Admin, c.User}
	switch c.StoreBackend {
	case "firestore":
	case "memory":
		if !c.IsDevelopment() {
			problems = append(problems, "STORE_BACKEND=memory is only allowed in development")
		}
		backends = nil
	default:
		problems = append(problems, fmt.Sprintf("unknown STORE_BACKEND %q", c.StoreBackend))
	}

	for _, b := range backends {
		if b.ProjectID == "" {
			problems = append(problems, b.Name+" project id is required")
		}
		if b.StorageBucket == "" {
			problems = append(problems, b.Name+" storage bucket is required")
		}
		if !b.HasCredentials() {
			problems = append(problems, b.Name+" credentials are required")
		}
	}

	if c.JWTSecret == "" && !c.IsDevelopment() {
		problems = append(problems, "JWT_SECRET is required")
	}

	for kind, fields := range c.Uploads {
		for field, limit := range fields {
			if limit.MaxSize == "" {
				continue
			}
			if _, err := units.RAMInBytes(limit.MaxSize); err != nil {
				problems = append(problems, fmt.Sprintf("uploads.%s.%s: invalid max_size %q", kind, field, limit.MaxSize))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) UsesMemoryStore() bool {
	return c.StoreBackend == "memory"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (b Backend) HasCredentials() bool {
	return b.CredentialsJSON != "" || b.CredentialsPath != "" || (b.ClientEmail != "" && b.PrivateKey != "")
}

// ServiceAccountJSON returns inline credentials, assembling them from the
// client email and private key when no JSON document was given.
func (b Backend) ServiceAccountJSON() ([]byte, error) {
	if b.CredentialsJSON != "" {
		return []byte(b.CredentialsJSON), nil
	}
	if b.ClientEmail == "" || b.PrivateKey == "" {
		return nil, nil
	}

	return json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   b.ProjectID,
		"client_email": b.ClientEmail,
		"private_key":  strings.ReplaceAll(b.PrivateKey, `\n`, "\n"),
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}

func loadBackend(name, prefix string) Backend {
	return Backend{
		Name:            name,
		ProjectID:       getEnv(prefix+"PROJECT_ID", ""),
		StorageBucket:   getEnv(prefix+"STORAGE_BUCKET", ""),
		CredentialsJSON: getEnv(prefix+"SERVICE_ACCOUNT_JSON", ""),
		CredentialsPath: getEnv(prefix+"SERVICE_ACCOUNT_PATH", ""),
		ClientEmail:     getEnv(prefix+"CLIENT_EMAIL", ""),
		PrivateKey:      getEnv(prefix+"PRIVATE_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
