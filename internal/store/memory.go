// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fridgeworks/smartfridge/internal/models"
)

// MemoryStore is the in-memory Store implementation. Data does not
// survive a restart; the HTTP health endpoint reports the backend so
// operators know which mode they are running.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[string]*models.User   // user id -> user
	usernames map[string]string         // lowercase username -> user id
	pantry    map[string][]models.PantryItem // user id -> items, insertion order
	favorites map[string][]models.Favorite   // user id -> favorites, insertion order
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]*models.User),
		usernames: make(map[string]string),
		pantry:    make(map[string][]models.PantryItem),
		favorites: make(map[string][]models.Favorite),
	}
}

// CreateUser implements Store.
func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Username)
	if _, exists := s.usernames[key]; exists {
		return ErrDuplicateUsername
	}

	stored := *user
	s.users[user.ID] = &stored
	s.usernames[key] = user.ID
	return nil
}

// GetUser implements Store.
func (s *MemoryStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyUser(id)
}

// GetUserByUsername implements Store.
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[strings.ToLower(username)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.copyUser(id)
}

// copyUser returns a copy of the stored user (must hold mu).
func (s *MemoryStore) copyUser(id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// UpdateProfile implements Store.
func (s *MemoryStore) UpdateProfile(_ context.Context, id string, update models.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	if update.DietaryRestrictions != nil {
		user.DietaryRestrictions = append([]string(nil), (*update.DietaryRestrictions)...)
	}
	if update.Appliances != nil {
		user.Appliances = append([]string(nil), (*update.Appliances)...)
	}
	user.UpdatedAt = time.Now().UTC()

	copied := *user
	return &copied, nil
}

// UpdateAppliances implements Store.
func (s *MemoryStore) UpdateAppliances(ctx context.Context, id string, appliances []string) (*models.User, error) {
	update := models.ProfileUpdate{Appliances: &appliances}
	return s.UpdateProfile(ctx, id, update)
}

// AddPantryItem implements Store.
func (s *MemoryStore) AddPantryItem(_ context.Context, item *models.PantryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[item.UserID]; !ok {
		return ErrUserNotFound
	}
	s.pantry[item.UserID] = append(s.pantry[item.UserID], *item)
	return nil
}

// ListPantry implements Store.
func (s *MemoryStore) ListPantry(_ context.Context, userID string) ([]models.PantryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.PantryItem, len(s.pantry[userID]))
	copy(items, s.pantry[userID])
	return items, nil
}

// RemovePantryItem implements Store.
func (s *MemoryStore) RemovePantryItem(_ context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.pantry[userID]
	for i, item := range items {
		if item.ID == itemID {
			s.pantry[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// AddFavorite implements Store.
func (s *MemoryStore) AddFavorite(_ context.Context, favorite *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[favorite.UserID]; !ok {
		return ErrUserNotFound
	}
	for _, existing := range s.favorites[favorite.UserID] {
		if existing.RecipeID == favorite.RecipeID {
			return ErrDuplicateFavorite
		}
	}
	s.favorites[favorite.UserID] = append(s.favorites[favorite.UserID], *favorite)
	return nil
}

// ListFavorites implements Store.
func (s *MemoryStore) ListFavorites(_ context.Context, userID string) ([]models.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]models.Favorite, len(s.favorites[userID]))
	copy(favorites, s.favorites[userID])
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.Before(favorites[j].CreatedAt)
	})
	return favorites, nil
}

// RemoveFavorite implements Store.
func (s *MemoryStore) RemoveFavorite(_ context.Context, userID, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := s.favorites[userID]
	for i, favorite := range favorites {
		if favorite.RecipeID == recipeID {
			s.favorites[userID] = append(favorites[:i], favorites[i+1:]...)
			return nil
		}
	}
	return ErrFavoriteNotFound
}

// Close implements Store. Nothing to release for the memory backend.
func (s *MemoryStore) Close() error { return nil }
