// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fridgeworks/smartfridge/internal/eventbus"
	"github.com/fridgeworks/smartfridge/internal/models"
	"github.com/fridgeworks/smartfridge/internal/store"
	"github.com/fridgeworks/smartfridge/internal/validation"
)

// AddFavoriteRequest is the payload for POST /users/{userID}/favorites.
type AddFavoriteRequest struct {
	RecipeID string `json:"recipe_id" validate:"required"`
}

// ListFavorites handles GET /users/{userID}/favorites.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load user", err)
		return
	}

	favorites, err := h.store.ListFavorites(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to list favorites", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"count":     len(favorites),
		"favorites": favorites,
	})
}

// AddFavorite handles POST /users/{userID}/favorites. The recipe must
// exist in the catalog; its name is denormalized onto the favorite so
// listings render without a catalog join.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req AddFavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondAPIError(w, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	recipe, ok := h.catalog.Get(req.RecipeID)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Recipe not found", nil)
		return
	}

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load user", err)
		return
	}

	favorite := &models.Favorite{
		UserID:     userID,
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.store.AddFavorite(r.Context(), favorite); err != nil {
		if errors.Is(err, store.ErrDuplicateFavorite) {
			respondError(w, http.StatusConflict, "CONFLICT", "Recipe already favorited", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to add favorite", err)
		return
	}

	h.bus.Publish(r.Context(), eventbus.RecipeFavorited{
		UserID:     userID,
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
	})

	respondSuccess(w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /users/{userID}/favorites/{recipeID}.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	recipeID := chi.URLParam(r, "recipeID")

	if err := h.store.RemoveFavorite(r.Context(), userID, recipeID); err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Favorite not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to remove favorite", err)
		return
	}

	h.bus.Publish(r.Context(), eventbus.RecipeUnfavorited{
		UserID:   userID,
		RecipeID: recipeID,
	})

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"deleted": recipeID,
	})
}
