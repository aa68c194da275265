// Package server assembles the HTTP API: repositories, services, handlers and middleware
package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/baristadrill/backend/docs"
	"github.com/baristadrill/backend/internal/config"
	"github.com/baristadrill/backend/internal/handlers"
	"github.com/baristadrill/backend/internal/middleware"
	"github.com/baristadrill/backend/internal/repositories"
	"github.com/baristadrill/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// APIPrefix is the path every API route is mounted under
const APIPrefix = "/api/v1"

// NewRouter builds the application router on top of an open, migrated database
func NewRouter(cfg *config.Config, db *sql.DB, logger *zap.Logger) chi.Router {
	tx := repositories.NewTransactor(db)

	// Initialize repositories
	catalogRepo := repositories.NewCatalogRepository(db, logger)
	sessionRepo := repositories.NewSessionRepository(db, logger)
	attemptRepo := repositories.NewAttemptRepository(db, logger)
	progressRepo := repositories.NewProgressRepository(db, logger)
	weakItemRepo := repositories.NewWeakItemRepository(db, logger)

	// Initialize services
	progressService := services.NewProgressService(progressRepo, tx, logger)
	weakItemService := services.NewWeakItemService(weakItemRepo, tx, logger)
	practiceService := services.NewPracticeService(
		catalogRepo,
		sessionRepo,
		attemptRepo,
		progressService,
		weakItemService,
		tx,
		services.NewRandomSource(cfg.Practice.RandomSeed),
		logger,
	)

	// Initialize handlers
	practiceHandler := handlers.NewPracticeHandler(practiceService, logger)
	weakItemHandler := handlers.NewWeakItemHandler(weakItemService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Scope router to /api/v1
	r.Route(APIPrefix, func(r chi.Router) {
		practiceHandler.RegisterRoutes(r)
		weakItemHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
	})

	return r
}

// NewHTTPServer wraps the router in an *http.Server listening on the configured port
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
