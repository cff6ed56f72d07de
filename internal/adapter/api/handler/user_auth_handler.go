package handler

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/usecase"
	"acredge/pkg/errors"
	"acredge/pkg/response"
)

type UserAuthHandler struct {
	authUseCase  *usecase.UserAuthUseCase
	cookieSecure bool
}

func NewUserAuthHandler(authUseCase *usecase.UserAuthUseCase, cookieSecure bool) *UserAuthHandler {
	return &UserAuthHandler{
		authUseCase:  authUseCase,
		cookieSecure: cookieSecure,
	}
}

type verifyFirebaseTokenRequest struct {
	IDToken      string `json:"idToken" validate:"required"`
	RememberMe   bool   `json:"rememberMe"`
	SameWhatsapp bool   `json:"sameWhatsapp"`
}

func (h *UserAuthHandler) VerifyFirebaseToken(c echo.Context) error {
	var req verifyFirebaseTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.authUseCase.Login(c.Request().Context(), usecase.PhoneLoginInput{
		IDToken:      req.IDToken,
		RememberMe:   req.RememberMe,
		SameWhatsapp: req.SameWhatsapp,
	})
	if err != nil {
		return response.Error(c, err)
	}

	setSessionCookie(c, session, h.cookieSecure)
	return response.Success(c, map[string]interface{}{
		"message": "Login successful",
		"token":   session.Token,
		"user":    session.Identity,
	})
}

func (h *UserAuthHandler) CheckAuth(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Authenticated",
		"user":    user,
	})
}

func (h *UserAuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.Logout(c.Request().Context(), user.Subject); err != nil {
		return response.Error(c, err)
	}

	clearSessionCookie(c, h.cookieSecure)
	return response.Success(c, map[string]string{
		"message": "Logged out successfully",
	})
}
