package handler

import (
	"acredge/internal/usecase"
)

var (
	adminAuthHandler *AdminAuthHandler
	userAuthHandler  *UserAuthHandler
	entityHandlers   map[string]*EntityHandler
	propertyHandler  *PropertyHandler
	profileHandler   *ProfileHandler
	dashboardHandler *DashboardHandler
	searchHandler    *SearchHandler
	healthHandler    *HealthHandler
)

// UseCases bundles what the handlers are built from.
type UseCases struct {
	AdminAuth *usecase.AdminAuthUseCase
	UserAuth  *usecase.UserAuthUseCase
	// Entities is keyed by route segment: developers, projects, towers,
	// series, amenities.
	Entities     map[string]*usecase.EntityUseCase
	Property     *usecase.PropertyUseCase
	Profile      *usecase.ProfileUseCase
	Dashboard    *usecase.DashboardUseCase
	Search       *usecase.SearchUseCase
	CookieSecure bool
}

func Setup(uc UseCases) {
	adminAuthHandler = NewAdminAuthHandler(uc.AdminAuth, uc.CookieSecure)
	userAuthHandler = NewUserAuthHandler(uc.UserAuth, uc.CookieSecure)

	entityHandlers = make(map[string]*EntityHandler, len(uc.Entities))
	for name, entityUseCase := range uc.Entities {
		entityHandlers[name] = NewEntityHandler(entityUseCase)
	}

	propertyHandler = NewPropertyHandler(uc.Property)
	profileHandler = NewProfileHandler(uc.Profile)
	dashboardHandler = NewDashboardHandler(uc.Dashboard)
	searchHandler = NewSearchHandler(uc.Search, uc.Property)
	healthHandler = NewHealthHandler()
}

func GetAdminAuthHandler() *AdminAuthHandler {
	return adminAuthHandler
}

func GetUserAuthHandler() *UserAuthHandler {
	return userAuthHandler
}

func GetEntityHandler(name string) *EntityHandler {
	return entityHandlers[name]
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

func GetSearchHandler() *SearchHandler {
	return searchHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
