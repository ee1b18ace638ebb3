// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package store provides durable and in-memory persistence for user
// profiles, pantry inventories, and favorites behind one narrow
// read/write contract.
//
// Two interchangeable implementations exist, selected once at startup
// by the Factory and never branched on per call:
//
//   - MemoryStore: maps behind an RWMutex; data lost on restart
//   - BadgerStore: BadgerDB-backed, persistent across restarts
//
// Recipe catalog data is deliberately not here; recipes are immutable
// inputs owned by the catalog package.
package store

import (
	"context"
	"errors"

	"github.com/fridgeworks/smartfridge/internal/models"
)

// Sentinel errors returned by all Store implementations.
var (
	// ErrUserNotFound indicates the user id or username does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername indicates the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrItemNotFound indicates the pantry item does not exist for the user.
	ErrItemNotFound = errors.New("pantry item not found")

	// ErrFavoriteNotFound indicates the favorite does not exist for the user.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrDuplicateFavorite indicates the recipe is already favorited.
	ErrDuplicateFavorite = errors.New("recipe already favorited")
)

// Store is the read/write contract for user-owned state. All methods
// are safe for concurrent use. Implementations return the sentinel
// errors above for expected conditions and wrapped backend errors for
// failures.
type Store interface {
	// CreateUser stores a new user. Fails with ErrDuplicateUsername if
	// the username is taken (case-insensitive).
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser returns the user by id, or ErrUserNotFound.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// GetUserByUsername returns the user by username (case-insensitive),
	// or ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateProfile applies the non-nil fields of the update and returns
	// the updated user.
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error)

	// UpdateAppliances replaces the user's appliance list.
	UpdateAppliances(ctx context.Context, id string, appliances []string) (*models.User, error)

	// AddPantryItem stores a new pantry item for item.UserID.
	AddPantryItem(ctx context.Context, item *models.PantryItem) error

	// ListPantry returns the user's pantry items, oldest first.
	ListPantry(ctx context.Context, userID string) ([]models.PantryItem, error)

	// RemovePantryItem deletes one pantry item, or ErrItemNotFound.
	RemovePantryItem(ctx context.Context, userID, itemID string) error

	// AddFavorite stores a favorite. Fails with ErrDuplicateFavorite if
	// the recipe is already favorited by the user.
	AddFavorite(ctx context.Context, favorite *models.Favorite) error

	// ListFavorites returns the user's favorites, oldest first.
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)

	// RemoveFavorite deletes one favorite, or ErrFavoriteNotFound.
	RemoveFavorite(ctx context.Context, userID, recipeID string) error

	// Close releases backend resources.
	Close() error
}
