// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package models

import "time"

// User is a registered account with its profile settings.
// PasswordHash is a bcrypt hash and is never serialized to clients;
// it survives only in the store's own encoding.
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	PasswordHash        []byte    `json:"-"`
	DietaryRestrictions []string  `json:"dietary_restrictions,omitempty"`
	Appliances          []string  `json:"appliances,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// PantryItem is one ingredient in a user's pantry inventory.
type PantryItem struct {
	ID      string     `json:"id"`
	UserID  string     `json:"user_id"`
	Name    string     `json:"name"` // normalized lowercase
	Amount  float64    `json:"amount"`
	ExpDate *time.Time `json:"exp_date,omitempty"`
	AddedAt time.Time  `json:"added_at"`
}

// Favorite records that a user bookmarked a recipe.
type Favorite struct {
	UserID     string    `json:"user_id"`
	RecipeID   string    `json:"recipe_id"`
	RecipeName string    `json:"recipe_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileUpdate carries the mutable profile fields for a partial
// update. Nil fields are left unchanged.
type ProfileUpdate struct {
	DietaryRestrictions *[]string `json:"dietary_restrictions,omitempty"`
	Appliances          *[]string `json:"appliances,omitempty"`
}

// Fields returns the names of the fields the update touches, in a
// fixed order. Used for event payloads and logging.
func (p ProfileUpdate) Fields() []string {
	var fields []string
	if p.DietaryRestrictions != nil {
		fields = append(fields, "dietary_restrictions")
	}
	if p.Appliances != nil {
		fields = append(fields, "appliances")
	}
	return fields
}
