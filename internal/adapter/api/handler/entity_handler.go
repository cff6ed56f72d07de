package handler

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/usecase"
	"acredge/pkg/response"
)

// EntityHandler serves the admin catalogue kinds (developers, projects,
// towers, series, amenities) over one use case each.
type EntityHandler struct {
	useCase *usecase.EntityUseCase
}

func NewEntityHandler(useCase *usecase.EntityUseCase) *EntityHandler {
	return &EntityHandler{
		useCase: useCase,
	}
}

func (h *EntityHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	in, err := readInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	record, err := h.useCase.Create(c.Request().Context(), user.Subject, in)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, record)
}

func (h *EntityHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	in, err := readInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	record, err := h.useCase.Update(c.Request().Context(), c.Param("id"), user.Subject, in)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, record)
}

func (h *EntityHandler) Get(c echo.Context) error {
	record, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, record)
}

func (h *EntityHandler) List(c echo.Context) error {
	records, err := h.useCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, records)
}
