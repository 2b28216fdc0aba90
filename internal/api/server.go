// Package api provides the HTTP API server and handlers for the Reseña
// book review service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/resenia/resenia-server/internal/ratelimit"
	"github.com/resenia/resenia-server/internal/store"
)

// apiVersion is reported in the OpenAPI document.
const apiVersion = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *store.Store
	services        *Services
	router          *chi.Mux
	api             huma.API
	logger          *slog.Logger
	authRateLimiter *ratelimit.KeyedRateLimiter
}

// Options configures the API server.
type Options struct {
	Name string

	// Per-IP limits applied to the auth endpoints.
	AuthRateRPS   float64
	AuthRateBurst int
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, opts Options, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(authMiddleware(services.Auth))

	name := opts.Name
	if name == "" {
		name = "Reseña API"
	}
	if opts.AuthRateRPS <= 0 {
		opts.AuthRateRPS = 1
	}
	if opts.AuthRateBurst <= 0 {
		opts.AuthRateBurst = 5
	}
	humaConfig := huma.DefaultConfig(name, apiVersion)
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}

	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:           st,
		services:        services,
		router:          router,
		api:             api,
		logger:          logger,
		authRateLimiter: ratelimit.New(opts.AuthRateRPS, opts.AuthRateBurst),
	}

	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerUserRoutes()
	s.registerBookRoutes()
	s.registerReviewRoutes()
	s.registerRecommendationRoutes()
	s.registerQuizRoutes()
	s.registerSearchRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
