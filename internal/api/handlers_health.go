// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status        string `json:"status"`
	StoreBackend  string `json:"store_backend"`
	CatalogSize   int    `json:"catalog_size"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, HealthStatus{
		Status:        "healthy",
		StoreBackend:  string(h.backend),
		CatalogSize:   h.catalog.Len(),
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}

// Liveness handles GET /health/live. Process is up; nothing else is
// checked.
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready. Ready means the catalog loaded;
// an empty catalog serves no searches and should not receive traffic.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.catalog.Len() == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Recipe catalog is empty", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}
