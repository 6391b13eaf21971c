// Package api provides the HTTP API server and handlers for the Gava
// Wrapped application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eac85/gava-wrapped/internal/ratelimit"
	"github.com/eac85/gava-wrapped/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store         store.Store
	services      *Services
	router        *chi.Mux
	api           huma.API
	logger        *slog.Logger
	reportLimiter *ratelimit.KeyedRateLimiter
}

// Options tunes the server surface.
type Options struct {
	// CORSAllowedOrigins lists origins allowed to call the API.
	// Empty means same-origin only.
	CORSAllowedOrigins []string
	// ReportRPS limits wrapped-report computation per client.
	ReportRPS float64
	// ReportBurst is the per-client burst for report requests.
	ReportBurst int
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st store.Store, services *Services, logger *slog.Logger, opts Options) *Server {
	if opts.ReportRPS <= 0 {
		opts.ReportRPS = 1
	}
	if opts.ReportBurst <= 0 {
		opts.ReportBurst = 5
	}

	reportLimiter := ratelimit.New(opts.ReportRPS, opts.ReportBurst)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	if len(opts.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	router.Use(rateLimitMiddleware(reportLimiter, logger))

	humaConfig := huma.DefaultConfig("Gava Wrapped API", "1.0.0")
	RegisterErrorHandler()

	s := &Server{
		store:         st,
		services:      services,
		router:        router,
		api:           humachi.New(router, humaConfig),
		logger:        logger,
		reportLimiter: reportLimiter,
	}

	s.registerHealthRoutes()
	s.registerProfileRoutes()
	s.registerWrappedRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-held resources.
func (s *Server) Close() {
	s.reportLimiter.Stop()
}
