package handler

import (
	"io"

	"github.com/labstack/echo/v4"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/service"
	"acredge/internal/usecase"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
	"acredge/pkg/response"
)

const profileImageField = "profileImage"

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

type updateProfileRequest struct {
	Email                *string `json:"email"`
	FirstName            *string `json:"firstName"`
	LastName             *string `json:"lastName"`
	Address              *string `json:"address"`
	AboutMe              *string `json:"aboutMe"`
	SameNumberOnWhatsapp *bool   `json:"sameNumberOnWhatsapp"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.Get(c.Request().Context(), user.Subject)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	profile, err := h.profileUseCase.Update(c.Request().Context(), user.Subject, entity.ProfileUpdate{
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Address:              req.Address,
		AboutMe:              req.AboutMe,
		SameNumberOnWhatsapp: req.SameNumberOnWhatsapp,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) UploadImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	fh, err := c.FormFile(profileImageField)
	if err != nil {
		logger.Debug("profile image missing from form: %v", err)
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}

	profile, err := h.profileUseCase.UploadImage(c.Request().Context(), user.Subject, service.IncomingFile{
		Field:    profileImageField,
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":      "Profile image uploaded successfully",
		"profileImage": profile.ProfileImage,
	})
}

func (h *ProfileHandler) DeleteImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.profileUseCase.DeleteImage(c.Request().Context(), user.Subject); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile image deleted successfully",
	})
}
