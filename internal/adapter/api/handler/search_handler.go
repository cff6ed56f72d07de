package handler

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/domain/service"
	"acredge/internal/usecase"
	"acredge/pkg/errors"
	"acredge/pkg/response"
)

type SearchHandler struct {
	searchUseCase   *usecase.SearchUseCase
	propertyUseCase *usecase.PropertyUseCase
}

func NewSearchHandler(searchUseCase *usecase.SearchUseCase, propertyUseCase *usecase.PropertyUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase:   searchUseCase,
		propertyUseCase: propertyUseCase,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	var req service.SearchQuery
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	return response.Success(c, h.searchUseCase.Search(c.Request().Context(), req))
}

func (h *SearchHandler) Sync(c echo.Context) error {
	count, err := h.propertyUseCase.Reindex(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Properties synced to search index",
		"count":   count,
	})
}
