package handler

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/usecase"
	"acredge/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// KindStats serves the status counts of one catalogue kind.
func (h *DashboardHandler) KindStats(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		counts, err := h.dashboardUseCase.KindStats(c.Request().Context(), kind)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, counts)
	}
}

func (h *DashboardHandler) AllStats(c echo.Context) error {
	stats, err := h.dashboardUseCase.AdminStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}

func (h *DashboardHandler) UserStats(c echo.Context) error {
	total, err := h.dashboardUseCase.TotalUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"totalUsers": total})
}

func (h *DashboardHandler) PropertyStats(c echo.Context) error {
	total, err := h.dashboardUseCase.TotalProperties(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"totalProperties": total})
}
