// Package main provides the entry point for the staffing HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewmatch/staffing/internal/config"
	"github.com/crewmatch/staffing/internal/database"
	"github.com/crewmatch/staffing/internal/database/migrate"
	"github.com/crewmatch/staffing/internal/health"
	"github.com/crewmatch/staffing/internal/middleware"
	"github.com/crewmatch/staffing/internal/notification"
	offerRouter "github.com/crewmatch/staffing/internal/offer/router"
	statisticsRouter "github.com/crewmatch/staffing/internal/statistics/router"
	teamrequestRouter "github.com/crewmatch/staffing/internal/teamrequest/router"
	"github.com/crewmatch/staffing/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Logger(appLogger))

	notifier := notification.NewZapNotifier(appLogger)

	teamrequestRouter.RegisterRoutes(r, db, appLogger)
	offerRouter.RegisterRoutes(r, db, appLogger, notifier)
	statisticsRouter.RegisterRoutes(r, db, appLogger)

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Infow("starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLogger.Fatalw("server stopped", "error", err)
	}
}
