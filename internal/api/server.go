package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	temporalclient "go.temporal.io/sdk/client"

	"github.com/juzbuild/juzbuild/internal/api/handler"
	mw "github.com/juzbuild/juzbuild/internal/api/middleware"
	"github.com/juzbuild/juzbuild/internal/config"
	"github.com/juzbuild/juzbuild/internal/core"
)

type Server struct {
	router         chi.Router
	logger         zerolog.Logger
	services       *core.Services
	corePool       *pgxpool.Pool
	temporalClient temporalclient.Client
	cfg            *config.Config
}

func NewServer(logger zerolog.Logger, coreDB *pgxpool.Pool, temporalClient temporalclient.Client, cfg *config.Config, services *core.Services) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		logger:         logger,
		services:       services,
		corePool:       coreDB,
		temporalClient: temporalClient,
		cfg:            cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.Handler())

	// Health check endpoints
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	// Public endpoints: pre-launch signup, contact form, theme catalog.
	waitlist := handler.NewWaitlist(s.services.Waitlist)
	theme := handler.NewTheme(s.services.Theme)
	s.router.Post("/waitlist", waitlist.Join)
	s.router.Post("/contact", waitlist.Contact)
	s.router.Get("/themes", theme.List)
	s.router.Get("/themes/{id}", theme.Get)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Auth(s.corePool))

		// Dashboard
		dashboard := handler.NewDashboard(s.services.Dashboard)
		r.Get("/dashboard/stats", dashboard.Stats)

		// Sites
		site := handler.NewSite(s.services.Site)
		r.Get("/sites", site.List)
		r.Post("/sites", site.Create)
		r.Get("/sites/{id}", site.Get)
		r.Delete("/sites/{id}", site.Delete)

		// Leads
		lead := handler.NewLead(s.services.Lead)
		r.Get("/leads", lead.List)
		r.Post("/leads", lead.Create)
		r.Get("/leads/{id}", lead.Get)
		r.Put("/leads/{id}/status", lead.UpdateStatus)
		r.Delete("/leads/{id}", lead.Delete)

		// Testimonials
		testimonial := handler.NewTestimonial(s.services.Testimonial)
		r.Get("/testimonials", testimonial.List)
		r.Post("/testimonials", testimonial.Create)
		r.Get("/testimonials/{id}", testimonial.Get)
		r.Put("/testimonials/{id}/approve", testimonial.Approve)
		r.Delete("/testimonials/{id}", testimonial.Delete)

		// API keys
		apiKey := handler.NewAPIKey(s.services.APIKey)
		r.Get("/api-keys", apiKey.List)
		r.Post("/api-keys", apiKey.Create)
		r.Get("/api-keys/{id}", apiKey.Get)
		r.Delete("/api-keys/{id}", apiKey.Revoke)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.corePool.Ping(ctx); err != nil {
		checks["core_db"] = err.Error()
		healthy = false
	} else {
		checks["core_db"] = "ok"
	}

	if _, err := s.temporalClient.CheckHealth(ctx, &temporalclient.CheckHealthRequest{}); err != nil {
		checks["temporal"] = err.Error()
		healthy = false
	} else {
		checks["temporal"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
