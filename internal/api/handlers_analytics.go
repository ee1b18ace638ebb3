// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetSystemAnalytics handles GET /analytics/system, returning the
// system-wide counters accumulated since process start.
func (h *Handler) GetSystemAnalytics(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, h.analytics.System())
}

// GetUserAnalytics handles GET /analytics/users/{userID}. A user with
// no recorded activity gets the zero aggregate, not a 404: analytics
// state is ephemeral, so absence proves nothing about the account.
func (h *Handler) GetUserAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	respondSuccess(w, http.StatusOK, h.analytics.User(userID))
}
