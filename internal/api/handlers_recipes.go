// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fridgeworks/smartfridge/internal/engine"
	"github.com/fridgeworks/smartfridge/internal/eventbus"
	"github.com/fridgeworks/smartfridge/internal/logging"
	"github.com/fridgeworks/smartfridge/internal/metrics"
	"github.com/fridgeworks/smartfridge/internal/models"
	"github.com/fridgeworks/smartfridge/internal/store"
	"github.com/fridgeworks/smartfridge/internal/validation"
)

// SearchRequest is the payload for POST /recipes/search. Ingredients
// is free-form text: comma or newline separated, any casing. Empty or
// missing ingredients are not an error; they normalize to zero tokens
// and the search returns zero results. UserID is optional; anonymous
// searches are served but not tracked.
type SearchRequest struct {
	UserID      string            `json:"user_id"`
	Ingredients string            `json:"ingredients"`
	Filters     models.FilterSpec `json:"filters"`
}

// SearchRecipes handles POST /recipes/search.
func (h *Handler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondAPIError(w, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	start := time.Now()
	tokens := engine.Normalize(req.Ingredients)
	results := engine.Search(tokens, h.catalog.Recipes(), req.Filters)
	elapsed := time.Since(start)

	metrics.RecordSearch(len(results), elapsed)

	if req.UserID != "" {
		h.bus.Publish(r.Context(), eventbus.RecipeSearchPerformed{
			UserID:      req.UserID,
			Ingredients: tokens,
			ResultCount: len(results),
		})
	}

	logging.Ctx(r.Context()).Debug().
		Int("tokens", len(tokens)).
		Int("results", len(results)).
		Dur("duration", elapsed).
		Msg("Recipe search completed")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"count":   len(results),
			"results": results,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: elapsed.Milliseconds(),
		},
	})
}

// GetRecipe handles GET /recipes/{recipeID}.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeID")

	recipe, ok := h.catalog.Get(recipeID)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Recipe not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, recipe)
}

// GetSuggestions handles GET /users/{userID}/suggestions. The user's
// pantry is the token source; query parameters max_time, skill_level,
// and max_suggestions tune the result.
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load user", err)
		return
	}

	items, err := h.store.ListPantry(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to list pantry", err)
		return
	}

	tokens := make([]string, 0, len(items))
	for _, item := range items {
		tokens = append(tokens, item.Name)
	}

	spec := models.FilterSpec{
		MaxTime:    getIntParam(r, "max_time", 0),
		SkillLevel: strings.TrimSpace(r.URL.Query().Get("skill_level")),
	}
	if spec.MaxTime < 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "max_time must not be negative", nil)
		return
	}
	limit := getIntParam(r, "max_suggestions", engine.DefaultSuggestionLimit)

	suggestions := engine.Suggest(tokens, h.catalog.Recipes(), spec, limit)

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"count":       len(suggestions),
		"suggestions": suggestions,
	})
}
