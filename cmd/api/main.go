package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"acredge/internal/adapter/api"
	"acredge/internal/adapter/api/handler"
	apimiddleware "acredge/internal/adapter/api/middleware"
	"acredge/internal/adapter/api/router"
	"acredge/internal/bootstrap"
	"acredge/internal/infrastructure/ratelimit"
	"acredge/pkg/config"
	"acredge/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.Environment)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("%v", err)
	}

	ctx := context.Background()

	app, err := bootstrap.New(ctx, cfg, true)
	if err != nil {
		logger.Fatal("Failed to initialize: %v", err)
	}
	defer app.Close()

	handler.Setup(app.UseCases())

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return true, nil
		},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.Validator = api.NewValidator()

	authLimiter := ratelimit.NewRateLimiter(5, time.Minute, 5)
	stop := make(chan struct{})
	authLimiter.StartCleanupRoutine(stop)
	defer close(stop)

	router.Setup(e, router.Middlewares{
		Admin:       apimiddleware.NewAuthMiddleware(app.AdminGate),
		User:        apimiddleware.NewAuthMiddleware(app.UserGate),
		AuthLimiter: authLimiter,
	})

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}
