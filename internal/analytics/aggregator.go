// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/fridgeworks/smartfridge/internal/eventbus"
)

// DefaultRecentSearchLimit bounds each user's recent-search history.
const DefaultRecentSearchLimit = 10

// SearchSummary is one entry in a user's recent-search history.
type SearchSummary struct {
	Timestamp   time.Time `json:"timestamp"`
	Ingredients []string  `json:"ingredients"`
	ResultCount int       `json:"result_count"`
}

// UserAnalytics is the per-user aggregate view.
type UserAnalytics struct {
	SearchCount    int             `json:"search_count"`
	RecentSearches []SearchSummary `json:"recent_searches"`
}

// SystemAnalytics is the system-wide counter view.
type SystemAnalytics struct {
	TotalSearches     int64 `json:"total_searches"`
	TotalUsersCreated int64 `json:"total_users_created"`
	TotalFavorites    int64 `json:"total_favorites"`
}

// userState is the mutable per-user record behind the mutex.
type userState struct {
	searchCount    int
	recentSearches []SearchSummary
}

// Aggregator owns the process-lifetime analytics state and mutates it
// exclusively through event bus deliveries. State is ephemeral by
// contract: it is destroyed on restart and is never a source of truth.
//
// Counter policy is deliberately minimal: only USER_CREATED,
// RECIPE_FAVORITED, and RECIPE_SEARCH_PERFORMED move counters. The
// remaining event types are observed by the audit observer and mutate
// nothing here.
type Aggregator struct {
	mu          sync.RWMutex
	users       map[string]*userState
	system      SystemAnalytics
	recentLimit int
}

// NewAggregator creates an empty aggregator. A recentLimit <= 0 falls
// back to DefaultRecentSearchLimit.
func NewAggregator(recentLimit int) *Aggregator {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentSearchLimit
	}
	return &Aggregator{
		users:       make(map[string]*userState),
		recentLimit: recentLimit,
	}
}

// Register subscribes the aggregator to the event types it aggregates.
func (a *Aggregator) Register(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.TypeUserCreated, a)
	bus.Subscribe(eventbus.TypeRecipeFavorited, a)
	bus.Subscribe(eventbus.TypeRecipeSearchPerformed, a)
}

// Name implements eventbus.Handler.
func (a *Aggregator) Name() string { return "analytics-aggregator" }

// Handle implements eventbus.Handler. It mutates exactly the fields the
// event's type owns; an unexpected payload type is ignored rather than
// treated as an error (analytics are best-effort and observational).
func (a *Aggregator) Handle(_ context.Context, event eventbus.Event) error {
	switch data := event.Data.(type) {
	case eventbus.UserCreated:
		a.mu.Lock()
		a.system.TotalUsersCreated++
		a.mu.Unlock()

	case eventbus.RecipeFavorited:
		a.mu.Lock()
		a.system.TotalFavorites++
		a.mu.Unlock()

	case eventbus.RecipeSearchPerformed:
		a.recordSearch(event.Timestamp, data)
	}
	return nil
}

// recordSearch updates the user's history and the system counter under
// one lock acquisition, preserving the bounded-history invariant.
func (a *Aggregator) recordSearch(timestamp time.Time, data eventbus.RecipeSearchPerformed) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, ok := a.users[data.UserID]
	if !ok {
		state = &userState{}
		a.users[data.UserID] = state
	}

	state.searchCount++
	state.recentSearches = append(state.recentSearches, SearchSummary{
		Timestamp:   timestamp,
		Ingredients: data.Ingredients,
		ResultCount: data.ResultCount,
	})
	// FIFO eviction: oldest entries leave first.
	if len(state.recentSearches) > a.recentLimit {
		state.recentSearches = state.recentSearches[len(state.recentSearches)-a.recentLimit:]
	}

	a.system.TotalSearches++
}

// System returns a snapshot of the system-wide counters.
func (a *Aggregator) System() SystemAnalytics {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.system
}

// User returns a snapshot of one user's analytics. Unknown users get a
// zero-valued default, never an error.
func (a *Aggregator) User(userID string) UserAnalytics {
	a.mu.RLock()
	defer a.mu.RUnlock()

	state, ok := a.users[userID]
	if !ok {
		return UserAnalytics{RecentSearches: []SearchSummary{}}
	}

	recent := make([]SearchSummary, len(state.recentSearches))
	copy(recent, state.recentSearches)
	return UserAnalytics{
		SearchCount:    state.searchCount,
		RecentSearches: recent,
	}
}
