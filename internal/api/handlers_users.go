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
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fridgeworks/smartfridge/internal/eventbus"
	"github.com/fridgeworks/smartfridge/internal/logging"
	"github.com/fridgeworks/smartfridge/internal/models"
	"github.com/fridgeworks/smartfridge/internal/store"
	"github.com/fridgeworks/smartfridge/internal/validation"
)

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Username            string   `json:"username" validate:"required,min=3,max=64"`
	Password            string   `json:"password" validate:"required,min=8,max=128"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondAPIError(w, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process password", err)
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:                  uuid.NewString(),
		Username:            req.Username,
		PasswordHash:        hash,
		DietaryRestrictions: req.DietaryRestrictions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			respondError(w, http.StatusConflict, "CONFLICT", "Username already exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to create user", err)
		return
	}

	h.bus.Publish(r.Context(), eventbus.UserCreated{
		UserID:   user.ID,
		Username: user.Username,
	})

	logging.Ctx(r.Context()).Info().
		Str("user_id", user.ID).
		Str("username", sanitizeLogValue(user.Username)).
		Msg("User created")

	respondSuccess(w, http.StatusCreated, user)
}

// GetProfile handles GET /users/{userID}/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load user", err)
		return
	}

	respondSuccess(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /users/{userID}/profile. Only the fields
// present in the body are changed; omitted fields stay as they were.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var update models.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}
	if len(update.Fields()) == 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "No updatable fields in request body", nil)
		return
	}

	user, err := h.store.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to update profile", err)
		return
	}

	h.bus.Publish(r.Context(), eventbus.UserProfileUpdated{
		UserID:        userID,
		UpdatedFields: update.Fields(),
	})

	respondSuccess(w, http.StatusOK, user)
}

// UpdateAppliancesRequest is the payload for PUT /users/{userID}/appliances.
type UpdateAppliancesRequest struct {
	Appliances []string `json:"appliances" validate:"required"`
}

// UpdateAppliances handles PUT /users/{userID}/appliances, replacing
// the user's appliance list wholesale.
func (h *Handler) UpdateAppliances(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdateAppliancesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondAPIError(w, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	user, err := h.store.UpdateAppliances(r.Context(), userID, req.Appliances)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to update appliances", err)
		return
	}

	h.bus.Publish(r.Context(), eventbus.UserAppliancesUpdated{
		UserID:     userID,
		Appliances: user.Appliances,
	})

	respondSuccess(w, http.StatusOK, user)
}
