package handler

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/usecase"
	"acredge/pkg/errors"
	"acredge/pkg/response"
)

type AdminAuthHandler struct {
	authUseCase  *usecase.AdminAuthUseCase
	cookieSecure bool
}

func NewAdminAuthHandler(authUseCase *usecase.AdminAuthUseCase, cookieSecure bool) *AdminAuthHandler {
	return &AdminAuthHandler{
		authUseCase:  authUseCase,
		cookieSecure: cookieSecure,
	}
}

type verifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email      string `json:"email" validate:"required,email"`
	OTP        string `json:"otp" validate:"required,len=6,numeric"`
	RememberMe bool   `json:"rememberMe"`
}

func (h *AdminAuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.RequestOTP(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "OTP sent to your email",
	})
}

func (h *AdminAuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.authUseCase.VerifyOTP(c.Request().Context(), req.Email, req.OTP, req.RememberMe)
	if err != nil {
		return response.Error(c, err)
	}

	setSessionCookie(c, session, h.cookieSecure)
	return response.Success(c, map[string]interface{}{
		"message": "Login successful",
		"user":    session.Identity,
	})
}

func (h *AdminAuthHandler) CheckAuth(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Authenticated",
		"user":    user,
	})
}

func (h *AdminAuthHandler) Logout(c echo.Context) error {
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
