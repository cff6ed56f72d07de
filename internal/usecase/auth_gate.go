package usecase

import (
	"context"
	"time"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

// Session is an issued login.
type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Identity  entity.Identity `json:"user"`
}

func (s *Session) MaxAge(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}

// AuthGate authenticates session tokens of one role. A token is accepted
// when its signature is valid and it is the identity's current persisted
// token; the cache short-circuits the store lookup for exact matches.
type AuthGate struct {
	role   string
	issuer *TokenIssuer
	tokens repository.TokenRepository
	cache  service.TokenCache
	now    func() time.Time
}

func NewAuthGate(role string, issuer *TokenIssuer, tokens repository.TokenRepository, cache service.TokenCache) *AuthGate {
	return &AuthGate{
		role:   role,
		issuer: issuer,
		tokens: tokens,
		cache:  cache,
		now:    time.Now,
	}
}

func (g *AuthGate) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errors.Unauthorized("No token provided", nil)
	}

	identity, err := g.issuer.Parse(token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	if identity.Role != g.role {
		return nil, errors.Forbidden("Token is not valid for this application", nil)
	}

	if cached, ok := g.cache.Get(identity.Subject); ok && cached == token {
		return identity, nil
	}

	stored, err := g.tokens.Get(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Session has ended", err)
		}
		return nil, errors.Dependency("Failed to verify session", err)
	}
	if stored.Token != token || stored.Expired(g.now()) {
		return nil, errors.Unauthorized("Session has ended", nil)
	}

	g.cache.Set(identity.Subject, token)
	return identity, nil
}

// Open issues a token for subject, persists it as the current one and
// primes the cache.
func (g *AuthGate) Open(ctx context.Context, subject string, ttl time.Duration) (*Session, error) {
	identity := entity.Identity{Subject: subject, Role: g.role}

	token, expiresAt, err := g.issuer.Issue(identity, ttl)
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}

	if err := g.tokens.Save(ctx, &entity.Token{Identity: subject, Token: token, ExpiresAt: expiresAt}); err != nil {
		return nil, errors.Dependency("Failed to store session", err)
	}
	g.cache.Set(subject, token)

	return &Session{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// Close revokes the current token of subject. The cache entry is evicted
// before the store is touched so the token stops working immediately.
func (g *AuthGate) Close(ctx context.Context, subject string) error {
	g.cache.Evict(subject)
	if err := g.tokens.Delete(ctx, subject); err != nil {
		return errors.Dependency("Failed to end session", err)
	}
	logger.Info("Session of %s closed", subject)
	return nil
}

// Role verifies only the signature and role of a token, without consulting
// the session store. Used for cross-application read access.
func (g *AuthGate) Role(token, role string) (*entity.Identity, error) {
	identity, err := g.issuer.Parse(token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	if identity.Role != role {
		return nil, errors.Forbidden("Insufficient role", nil)
	}
	return identity, nil
}
