package handler

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/usecase"
	"acredge/pkg/response"
	"acredge/pkg/utils"
)

type PropertyHandler struct {
	*EntityHandler
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		EntityHandler:   NewEntityHandler(propertyUseCase.EntityUseCase),
		propertyUseCase: propertyUseCase,
	}
}

// Update goes through the owner check before the shared update path.
func (h *PropertyHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	in, err := readInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.Update(c.Request().Context(), c.Param("id"), user.Subject, in)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

// List serves the public feed. Without page or limit it returns every
// listing; with either it returns one page.
func (h *PropertyHandler) List(c echo.Context) error {
	if c.QueryParam("page") == "" && c.QueryParam("limit") == "" {
		return h.EntityHandler.List(c)
	}

	records, err := h.propertyUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	p := utils.GetPaginationParams(c)
	start, end := p.Window(len(records))
	return response.Paginated(c, records[start:end], int64(len(records)), p.Page, p.PageSize)
}

func (h *PropertyHandler) ListMine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	properties, err := h.propertyUseCase.ListByOwner(c.Request().Context(), user.Subject)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	archived, err := h.propertyUseCase.Delete(c.Request().Context(), c.Param("id"), user.Subject)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":    "Property deleted successfully",
		"originalId": archived.OriginalID,
		"deletedOn":  archived.DeletedOn,
	})
}
