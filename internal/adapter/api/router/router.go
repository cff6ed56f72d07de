package router

import (
	"github.com/labstack/echo/v4"

	"acredge/internal/adapter/api/middleware"
	"acredge/internal/infrastructure/ratelimit"
)

// Middlewares carries the per-application auth middleware and the limiter
// used on sign-in endpoints.
type Middlewares struct {
	Admin       *middleware.AuthMiddleware
	User        *middleware.AuthMiddleware
	AuthLimiter *ratelimit.RateLimiter
}

func Setup(e *echo.Echo, mw Middlewares) {
	SetupAdminAuthRouter(e, mw.Admin, mw.AuthLimiter)
	SetupCatalogueRouter(e, mw.Admin, mw.User)
	SetupAdminDashboardRouter(e, mw.Admin)
	SetupUserAuthRouter(e, mw.User, mw.AuthLimiter)
	SetupPropertyRouter(e, mw.User)
	SetupProfileRouter(e, mw.User)
	SetupUserDashboardRouter(e, mw.User)
	SetupSearchRouter(e, mw.User)
	SetupHealthRouter(e)
}
