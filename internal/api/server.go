package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/assumptions", h.Assumptions)

		r.Post("/projection", h.Projection)
		r.Post("/range", h.Range)
		r.Post("/trajectory", h.Trajectory)
		r.Post("/scenarios", h.Scenarios)
		r.Post("/monte-carlo", h.MonteCarlo)
		r.Post("/life-event", h.LifeEvent)
		r.Post("/resilience", h.Resilience)

		r.Route("/withdrawal", func(r chi.Router) {
			r.Post("/", h.Withdrawal)
			r.Post("/compare", h.CompareWithdrawal)
		})

		r.Route("/breakeven", func(r chi.Router) {
			r.Post("/savings", h.BreakevenSavings)
			r.Post("/spending", h.BreakevenSpending)
		})
	})

	return r
}
