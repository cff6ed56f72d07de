package firebase

import (
	"context"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"

	"acredge/internal/domain/service"
	"acredge/pkg/logger"
)

const securetokenJWKS = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// JWKSTokenVerifier verifies phone sign-in ID tokens against Google's
// published signing keys, without service account credentials.
type JWKSTokenVerifier struct {
	jwks      *keyfunc.JWKS
	projectID string
}

func NewJWKSTokenVerifier(projectID string) (*JWKSTokenVerifier, error) {
	jwks, err := keyfunc.Get(securetokenJWKS, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Warn("Failed to refresh securetoken JWKS: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load securetoken JWKS: %v", err)
	}

	return &JWKSTokenVerifier{jwks: jwks, projectID: projectID}, nil
}

type phoneClaims struct {
	PhoneNumber string `json:"phone_number"`
	jwt.RegisteredClaims
}

func (v *JWKSTokenVerifier) VerifyPhoneToken(ctx context.Context, idToken string) (string, error) {
	var claims phoneClaims
	token, err := jwt.ParseWithClaims(idToken, &claims, v.jwks.Keyfunc)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if !claims.VerifyAudience(v.projectID, true) {
		return "", fmt.Errorf("token audience mismatch")
	}
	if !claims.VerifyIssuer("https://securetoken.google.com/"+v.projectID, true) {
		return "", fmt.Errorf("token issuer mismatch")
	}
	if claims.PhoneNumber == "" {
		return "", fmt.Errorf("token carries no phone number")
	}
	return claims.PhoneNumber, nil
}

func (v *JWKSTokenVerifier) Close() {
	v.jwks.EndBackground()
}

var _ service.PhoneTokenVerifier = (*JWKSTokenVerifier)(nil)
