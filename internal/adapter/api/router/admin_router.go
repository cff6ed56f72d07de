package router

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/adapter/api/handler"
	"acredge/internal/adapter/api/middleware"
	"acredge/internal/domain/entity"
	"acredge/internal/infrastructure/ratelimit"
)

var catalogueKinds = []string{"developers", "projects", "towers", "series", "amenities"}

func SetupAdminAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAdminAuthHandler()

	limited := middleware.RateLimit(limiter)
	e.POST("/api/admin/auth/verify-email", authHandler.VerifyEmail, limited)
	e.POST("/api/admin/auth/verify-otp", authHandler.VerifyOTP, limited)

	protected := e.Group("/api/admin/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/check-auth", authHandler.CheckAuth)
}

// SetupCatalogueRouter registers the admin CRUD routes of every catalogue
// kind. The amenity list is also readable by signed-in users of the
// listing application.
func SetupCatalogueRouter(e *echo.Echo, adminMiddleware, userMiddleware *middleware.AuthMiddleware) {
	for _, kind := range catalogueKinds {
		h := handler.GetEntityHandler(kind)
		group := e.Group("/api/admin/" + kind)

		if kind == "amenities" {
			group.GET("/all/public", h.List, userMiddleware.RequireRole(entity.RoleUser))
			group.POST("/create", h.Create, adminMiddleware.Authenticate)
			group.GET("/all", h.List, adminMiddleware.Authenticate)
		}

		group.POST("", h.Create, adminMiddleware.Authenticate)
		group.GET("", h.List, adminMiddleware.Authenticate)
		group.GET("/:id", h.Get, adminMiddleware.Authenticate)
		group.PUT("/:id", h.Update, adminMiddleware.Authenticate)
	}
}

func SetupAdminDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	dashboard := e.Group("/api/admin/dashboard")
	dashboard.Use(authMiddleware.Authenticate)

	for _, kind := range []string{"developers", "projects", "series", "towers"} {
		dashboard.GET("/"+kind+"/stats", dashboardHandler.KindStats(kind))
	}
	dashboard.GET("/stats", dashboardHandler.AllStats)
}
