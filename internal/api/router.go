// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fridgeworks/smartfridge/internal/middleware"
)

// NewRouter builds the HTTP routing tree: global middleware, the
// versioned API surface under /api/v1, and the operational endpoints
// at the root.
func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Prometheus)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if !h.config.Security.RateLimitDisabled {
		r.Use(httprate.LimitByIP(
			h.config.Security.RateLimitReqs,
			h.config.Security.RateLimitWindow,
		))
	}

	// Operational endpoints stay unversioned.
	r.Get("/health", h.Health)
	r.Get("/health/live", h.Liveness)
	r.Get("/health/ready", h.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", h.CreateUser)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/profile", h.GetProfile)
			r.Put("/profile", h.UpdateProfile)
			r.Put("/appliances", h.UpdateAppliances)

			r.Get("/ingredients", h.ListIngredients)
			r.Post("/ingredients", h.AddIngredient)
			r.Delete("/ingredients/{ingredientID}", h.RemoveIngredient)

			r.Get("/favorites", h.ListFavorites)
			r.Post("/favorites", h.AddFavorite)
			r.Delete("/favorites/{recipeID}", h.RemoveFavorite)

			r.Get("/suggestions", h.GetSuggestions)
		})

		r.Post("/recipes/search", h.SearchRecipes)
		r.Get("/recipes/{recipeID}", h.GetRecipe)

		r.Get("/analytics/system", h.GetSystemAnalytics)
		r.Get("/analytics/users/{userID}", h.GetUserAnalytics)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed for this route", nil)
	})

	return r
}
