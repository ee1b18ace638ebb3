// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package analytics

import (
	"context"

	"github.com/fridgeworks/smartfridge/internal/eventbus"
	"github.com/fridgeworks/smartfridge/internal/logging"
	"github.com/rs/zerolog"
)

// Observer is an event bus subscriber that writes every event to the
// structured log as an audit trail. It mutates nothing; event types
// with no counter policy are still visible through it.
type Observer struct {
	log zerolog.Logger
}

// NewObserver creates an Observer backed by the global logger.
func NewObserver() *Observer {
	return &Observer{log: logging.WithComponent("events")}
}

// Register subscribes the observer to every event type.
func (o *Observer) Register(bus *eventbus.Bus) {
	bus.SubscribeAll(o)
}

// Name implements eventbus.Handler.
func (o *Observer) Name() string { return "audit-observer" }

// Handle implements eventbus.Handler.
func (o *Observer) Handle(_ context.Context, event eventbus.Event) error {
	entry := o.log.Info().
		Str("event_type", string(event.Type)).
		Time("event_time", event.Timestamp)

	switch data := event.Data.(type) {
	case eventbus.UserCreated:
		entry = entry.Str("user_id", data.UserID).Str("username", data.Username)
	case eventbus.UserProfileUpdated:
		entry = entry.Str("user_id", data.UserID).Strs("updated_fields", data.UpdatedFields)
	case eventbus.IngredientAdded:
		entry = entry.Str("user_id", data.UserID).Str("ingredient", data.IngredientName)
	case eventbus.IngredientRemoved:
		entry = entry.Str("user_id", data.UserID).Str("ingredient_id", data.IngredientID)
	case eventbus.RecipeFavorited:
		entry = entry.Str("user_id", data.UserID).Str("recipe", data.RecipeName)
	case eventbus.RecipeUnfavorited:
		entry = entry.Str("user_id", data.UserID).Str("recipe_id", data.RecipeID)
	case eventbus.RecipeSearchPerformed:
		entry = entry.Str("user_id", data.UserID).Int("result_count", data.ResultCount)
	case eventbus.UserAppliancesUpdated:
		entry = entry.Str("user_id", data.UserID).Int("appliance_count", len(data.Appliances))
	}

	entry.Msg("Event observed")
	return nil
}
