// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package store

import (
	"context"

	"github.com/fridgeworks/smartfridge/internal/metrics"
	"github.com/fridgeworks/smartfridge/internal/models"
)

// InstrumentedStore decorates a Store with Prometheus operation
// counters. Expected-condition sentinels still count as errors here;
// the metric tracks outcomes, not faults.
type InstrumentedStore struct {
	next Store
}

// NewInstrumentedStore wraps the given store.
func NewInstrumentedStore(next Store) *InstrumentedStore {
	return &InstrumentedStore{next: next}
}

// CreateUser implements Store.
func (s *InstrumentedStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.next.CreateUser(ctx, user)
	metrics.RecordStoreOperation("create_user", err)
	return err
}

// GetUser implements Store.
func (s *InstrumentedStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.next.GetUser(ctx, id)
	metrics.RecordStoreOperation("get_user", err)
	return user, err
}

// GetUserByUsername implements Store.
func (s *InstrumentedStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.next.GetUserByUsername(ctx, username)
	metrics.RecordStoreOperation("get_user_by_username", err)
	return user, err
}

// UpdateProfile implements Store.
func (s *InstrumentedStore) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error) {
	user, err := s.next.UpdateProfile(ctx, id, update)
	metrics.RecordStoreOperation("update_profile", err)
	return user, err
}

// UpdateAppliances implements Store.
func (s *InstrumentedStore) UpdateAppliances(ctx context.Context, id string, appliances []string) (*models.User, error) {
	user, err := s.next.UpdateAppliances(ctx, id, appliances)
	metrics.RecordStoreOperation("update_appliances", err)
	return user, err
}

// AddPantryItem implements Store.
func (s *InstrumentedStore) AddPantryItem(ctx context.Context, item *models.PantryItem) error {
	err := s.next.AddPantryItem(ctx, item)
	metrics.RecordStoreOperation("add_pantry_item", err)
	return err
}

// ListPantry implements Store.
func (s *InstrumentedStore) ListPantry(ctx context.Context, userID string) ([]models.PantryItem, error) {
	items, err := s.next.ListPantry(ctx, userID)
	metrics.RecordStoreOperation("list_pantry", err)
	return items, err
}

// RemovePantryItem implements Store.
func (s *InstrumentedStore) RemovePantryItem(ctx context.Context, userID, itemID string) error {
	err := s.next.RemovePantryItem(ctx, userID, itemID)
	metrics.RecordStoreOperation("remove_pantry_item", err)
	return err
}

// AddFavorite implements Store.
func (s *InstrumentedStore) AddFavorite(ctx context.Context, favorite *models.Favorite) error {
	err := s.next.AddFavorite(ctx, favorite)
	metrics.RecordStoreOperation("add_favorite", err)
	return err
}

// ListFavorites implements Store.
func (s *InstrumentedStore) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	favorites, err := s.next.ListFavorites(ctx, userID)
	metrics.RecordStoreOperation("list_favorites", err)
	return favorites, err
}

// RemoveFavorite implements Store.
func (s *InstrumentedStore) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	err := s.next.RemoveFavorite(ctx, userID, recipeID)
	metrics.RecordStoreOperation("remove_favorite", err)
	return err
}

// Close implements Store.
func (s *InstrumentedStore) Close() error {
	return s.next.Close()
}
