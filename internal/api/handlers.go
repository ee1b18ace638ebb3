// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package api

import (
	"time"

	"github.com/fridgeworks/smartfridge/internal/analytics"
	"github.com/fridgeworks/smartfridge/internal/catalog"
	"github.com/fridgeworks/smartfridge/internal/config"
	"github.com/fridgeworks/smartfridge/internal/eventbus"
	"github.com/fridgeworks/smartfridge/internal/store"
)

// Handler contains the dependencies for all API handlers.
//
// Handler methods are split across files by resource:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_users.go: account and profile endpoints
//   - handlers_pantry.go: pantry ingredient endpoints
//   - handlers_recipes.go: search, recipe lookup, suggestions
//   - handlers_favorites.go: favorites endpoints
//   - handlers_analytics.go: analytics read endpoints
//   - handlers_health.go: health and readiness endpoints
type Handler struct {
	store     store.Store
	catalog   *catalog.Catalog
	bus       *eventbus.Bus
	analytics *analytics.Aggregator
	config    *config.Config
	backend   store.BackendType
	startTime time.Time
}

// NewHandler creates an API handler wired to its collaborators.
func NewHandler(
	st store.Store,
	cat *catalog.Catalog,
	bus *eventbus.Bus,
	agg *analytics.Aggregator,
	cfg *config.Config,
	backend store.BackendType,
) *Handler {
	return &Handler{
		store:     st,
		catalog:   cat,
		bus:       bus,
		analytics: agg,
		config:    cfg,
		backend:   backend,
		startTime: time.Now(),
	}
}
