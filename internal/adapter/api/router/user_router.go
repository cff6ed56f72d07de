package router

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/adapter/api/handler"
	"acredge/internal/adapter/api/middleware"
	"acredge/internal/infrastructure/ratelimit"
)

func SetupUserAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetUserAuthHandler()

	e.POST("/api/user/auth/verify-firebase-token", authHandler.VerifyFirebaseToken, middleware.RateLimit(limiter))

	protected := e.Group("/api/user/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/check-auth", authHandler.CheckAuth)
}

func SetupPropertyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	properties := e.Group("/api/user/properties")

	// public listing feed
	properties.GET("", propertyHandler.List)

	properties.POST("", propertyHandler.Create, authMiddleware.Authenticate)
	properties.GET("/my-properties", propertyHandler.ListMine, authMiddleware.Authenticate)
	properties.GET("/:id", propertyHandler.Get, authMiddleware.Authenticate)
	properties.PUT("/:id", propertyHandler.Update, authMiddleware.Authenticate)
	properties.DELETE("/:id", propertyHandler.Delete, authMiddleware.Authenticate)
}

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	user := e.Group("/api/user")
	user.Use(authMiddleware.Authenticate)

	user.GET("/profile", profileHandler.GetProfile)
	user.PUT("/profile", profileHandler.UpdateProfile)
	user.POST("/profile-image/upload", profileHandler.UploadImage)
	user.DELETE("/profile-image/delete", profileHandler.DeleteImage)
}

func SetupUserDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	dashboard := e.Group("/api/user/dashboard")
	dashboard.Use(authMiddleware.Authenticate)

	dashboard.GET("/user/stats", dashboardHandler.UserStats)
	dashboard.GET("/properties/stats", dashboardHandler.PropertyStats)
}

func SetupSearchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	searchHandler := handler.GetSearchHandler()

	e.POST("/api/user/search", searchHandler.Search)
	e.POST("/api/user/search/sync", searchHandler.Sync, authMiddleware.Authenticate)
}
