package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"acredge/internal/domain/entity"
)

// SessionClaims is the payload of a session token. Admin tokens carry Email,
// user tokens carry PhoneNumber; Subject always holds the identity.
type SessionClaims struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (i *TokenIssuer) Issue(identity entity.Identity, ttl time.Duration) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(ttl)

	claims := SessionClaims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if identity.Role == entity.RoleAdmin {
		claims.Email = identity.Subject
	} else {
		claims.PhoneNumber = identity.Subject
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and expiry and returns the bound identity.
func (i *TokenIssuer) Parse(token string) (*entity.Identity, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.Email
	}
	if subject == "" {
		subject = claims.PhoneNumber
	}
	if subject == "" {
		return nil, fmt.Errorf("session token has no subject")
	}

	return &entity.Identity{Subject: subject, Role: claims.Role}, nil
}
