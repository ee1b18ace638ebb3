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
	"github.com/google/uuid"

	"github.com/fridgeworks/smartfridge/internal/eventbus"
	"github.com/fridgeworks/smartfridge/internal/models"
	"github.com/fridgeworks/smartfridge/internal/store"
	"github.com/fridgeworks/smartfridge/internal/validation"
)

// AddIngredientRequest is the payload for POST /users/{userID}/ingredients.
type AddIngredientRequest struct {
	Name    string     `json:"name" validate:"required,min=1,max=128"`
	Amount  float64    `json:"amount" validate:"min=0"`
	ExpDate *time.Time `json:"exp_date"`
}

// ListIngredients handles GET /users/{userID}/ingredients.
func (h *Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
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

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"count":       len(items),
		"ingredients": items,
	})
}

// AddIngredient handles POST /users/{userID}/ingredients. Ingredient
// names are stored normalized (trimmed, lowercase) so pantry contents
// feed the matcher without a second normalization pass.
func (h *Handler) AddIngredient(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req AddIngredientRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondAPIError(w, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Ingredient name must not be blank", nil)
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

	item := &models.PantryItem{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    name,
		Amount:  req.Amount,
		ExpDate: req.ExpDate,
		AddedAt: time.Now().UTC(),
	}

	if err := h.store.AddPantryItem(r.Context(), item); err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to add ingredient", err)
		return
	}

	h.bus.Publish(r.Context(), eventbus.IngredientAdded{
		UserID:         userID,
		IngredientID:   item.ID,
		IngredientName: item.Name,
	})

	respondSuccess(w, http.StatusCreated, item)
}

// RemoveIngredient handles DELETE /users/{userID}/ingredients/{ingredientID}.
func (h *Handler) RemoveIngredient(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	ingredientID := chi.URLParam(r, "ingredientID")

	if err := h.store.RemovePantryItem(r.Context(), userID, ingredientID); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Pantry item not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to remove ingredient", err)
		return
	}

	h.bus.Publish(r.Context(), eventbus.IngredientRemoved{
		UserID:       userID,
		IngredientID: ingredientID,
	})

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"deleted": ingredientID,
	})
}
