// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package eventbus

import (
	"time"
)

// Type identifies one event kind. The set is closed: every mutating
// action in the system maps to exactly one of these.
type Type string

// All event types published by the command layer.
const (
	TypeUserCreated           Type = "USER_CREATED"
	TypeUserProfileUpdated    Type = "USER_PROFILE_UPDATED"
	TypeIngredientAdded       Type = "INGREDIENT_ADDED"
	TypeIngredientRemoved     Type = "INGREDIENT_REMOVED"
	TypeRecipeFavorited       Type = "RECIPE_FAVORITED"
	TypeRecipeUnfavorited     Type = "RECIPE_UNFAVORITED"
	TypeRecipeSearchPerformed Type = "RECIPE_SEARCH_PERFORMED"
	TypeUserAppliancesUpdated Type = "USER_APPLIANCES_UPDATED"
)

// Types lists every event type, in declaration order. Useful for
// subscribing an observer to the full stream.
func Types() []Type {
	return []Type{
		TypeUserCreated,
		TypeUserProfileUpdated,
		TypeIngredientAdded,
		TypeIngredientRemoved,
		TypeRecipeFavorited,
		TypeRecipeUnfavorited,
		TypeRecipeSearchPerformed,
		TypeUserAppliancesUpdated,
	}
}

// Payload is the tagged-variant interface implemented by every event
// payload. Each event type carries exactly one payload shape; handlers
// type-switch on the concrete type instead of digging through untyped
// maps.
type Payload interface {
	EventType() Type
}

// Event is an immutable notification of a completed action. Events are
// transient messages: stamped at publish time, delivered synchronously,
// never stored.
type Event struct {
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      Payload   `json:"data"`
}

// UserCreated is published after a new account is stored.
type UserCreated struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// EventType implements Payload.
func (UserCreated) EventType() Type { return TypeUserCreated }

// UserProfileUpdated is published after a profile mutation, carrying
// the names of the fields that changed.
type UserProfileUpdated struct {
	UserID        string   `json:"user_id"`
	UpdatedFields []string `json:"updated_fields"`
}

// EventType implements Payload.
func (UserProfileUpdated) EventType() Type { return TypeUserProfileUpdated }

// IngredientAdded is published after a pantry addition.
type IngredientAdded struct {
	UserID         string `json:"user_id"`
	IngredientID   string `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name"`
}

// EventType implements Payload.
func (IngredientAdded) EventType() Type { return TypeIngredientAdded }

// IngredientRemoved is published after a pantry removal.
type IngredientRemoved struct {
	UserID       string `json:"user_id"`
	IngredientID string `json:"ingredient_id"`
}

// EventType implements Payload.
func (IngredientRemoved) EventType() Type { return TypeIngredientRemoved }

// RecipeFavorited is published after a recipe is bookmarked.
type RecipeFavorited struct {
	UserID     string `json:"user_id"`
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
}

// EventType implements Payload.
func (RecipeFavorited) EventType() Type { return TypeRecipeFavorited }

// RecipeUnfavorited is published after a bookmark is removed.
type RecipeUnfavorited struct {
	UserID   string `json:"user_id"`
	RecipeID string `json:"recipe_id"`
}

// EventType implements Payload.
func (RecipeUnfavorited) EventType() Type { return TypeRecipeUnfavorited }

// RecipeSearchPerformed is published after a search completes for an
// identified user.
type RecipeSearchPerformed struct {
	UserID      string   `json:"user_id"`
	Ingredients []string `json:"ingredients"`
	ResultCount int      `json:"result_count"`
}

// EventType implements Payload.
func (RecipeSearchPerformed) EventType() Type { return TypeRecipeSearchPerformed }

// UserAppliancesUpdated is published after the appliance list changes.
type UserAppliancesUpdated struct {
	UserID     string   `json:"user_id"`
	Appliances []string `json:"appliances"`
}

// EventType implements Payload.
func (UserAppliancesUpdated) EventType() Type { return TypeUserAppliancesUpdated }
