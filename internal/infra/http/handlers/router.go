package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salestrack-dev/salestrack/internal/infra/http/middleware"
)

type RouterConfig struct {
	Auth       *AuthHandler
	Leads      *LeadHandler
	Deals      *DealHandler
	Activities *ActivityHandler
	Users      *UserHandler
	Health     *HealthHandler

	// Authenticator wraps every /api route except /api/auth.
	Authenticator func(http.Handler) http.Handler
	// RateLimit wraps all /api routes; nil disables it (tests).
	RateLimit func(http.Handler) http.Handler

	AllowedOrigin string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Handle)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimit != nil {
			api.Use(cfg.RateLimit)
		}

		api.Post("/auth/register", cfg.Auth.Register)
		api.Post("/auth/login", cfg.Auth.Login)

		api.Group(func(private chi.Router) {
			private.Use(cfg.Authenticator)

			private.Route("/leads", func(leads chi.Router) {
				leads.Get("/stats", cfg.Leads.Stats)
				leads.Get("/", cfg.Leads.List)
				leads.Post("/", cfg.Leads.Create)
				leads.Get("/{id}", cfg.Leads.Get)
				leads.Put("/{id}", cfg.Leads.Update)
				leads.Delete("/{id}", cfg.Leads.Delete)
			})

			private.Route("/deals", func(deals chi.Router) {
				deals.Get("/pipeline", cfg.Deals.Pipeline)
				deals.Get("/", cfg.Deals.List)
				deals.Post("/", cfg.Deals.Create)
				deals.Get("/{id}", cfg.Deals.Get)
				deals.Put("/{id}", cfg.Deals.Update)
				deals.Delete("/{id}", cfg.Deals.Delete)
			})

			private.Route("/activities", func(activities chi.Router) {
				activities.Get("/", cfg.Activities.List)
				activities.Post("/", cfg.Activities.Create)
				activities.Get("/{id}", cfg.Activities.Get)
				activities.Put("/{id}", cfg.Activities.Update)
				activities.Delete("/{id}", cfg.Activities.Delete)
			})

			private.Route("/users", func(users chi.Router) {
				users.Use(middleware.AdminOnly)
				users.Get("/", cfg.Users.List)
				users.Get("/{id}", cfg.Users.Get)
				users.Put("/{id}", cfg.Users.Update)
				users.Delete("/{id}", cfg.Users.Delete)
			})
		})
	})

	return r
}
