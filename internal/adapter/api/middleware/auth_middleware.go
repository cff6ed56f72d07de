package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"acredge/internal/usecase"
	"acredge/pkg/errors"
	"acredge/pkg/response"
)

// UserKey is the echo context key holding the authenticated *entity.Identity.
const UserKey = "user"

const TokenCookie = "token"

type AuthMiddleware struct {
	gate *usecase.AuthGate
}

func NewAuthMiddleware(gate *usecase.AuthGate) *AuthMiddleware {
	return &AuthMiddleware{
		gate: gate,
	}
}

// Authenticate requires a live session of the gate's role.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.gate.Authenticate(c.Request().Context(), TokenFromRequest(c))
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(UserKey, identity)
		return next(c)
	}
}

// RequireRole accepts any correctly signed token of role without checking
// the session store. It serves read-only routes shared across applications.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return response.Error(c, errors.Unauthorized("No token provided", nil))
			}

			identity, err := m.gate.Role(token, role)
			if err != nil {
				return response.Error(c, err)
			}

			c.Set(UserKey, identity)
			return next(c)
		}
	}
}

// TokenFromRequest reads the session cookie, falling back to the
// Authorization header with or without the Bearer prefix.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
