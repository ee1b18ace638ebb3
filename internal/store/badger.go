// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fridgeworks/smartfridge/internal/models"
	"github.com/goccy/go-json"
)

// Key prefixes for BadgerDB storage.
const (
	userKeyPrefix     = "user:"
	usernameKeyPrefix = "username:"
	pantryKeyPrefix   = "pantry:"
	favoriteKeyPrefix = "favorite:"
)

// BadgerStore is the persistent Store implementation backed by
// BadgerDB. Suitable for production use: data survives restarts.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStoreFromDB creates a BadgerStore from an existing DB
// connection. The caller (normally the Factory) owns the connection.
func NewBadgerStoreFromDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func userKey(id string) []byte {
	return []byte(userKeyPrefix + id)
}

func usernameKey(username string) []byte {
	return []byte(usernameKeyPrefix + strings.ToLower(username))
}

func pantryKey(userID, itemID string) []byte {
	return []byte(pantryKeyPrefix + userID + ":" + itemID)
}

func favoriteKey(userID, recipeID string) []byte {
	return []byte(favoriteKeyPrefix + userID + ":" + recipeID)
}

// CreateUser implements Store.
func (s *BadgerStore) CreateUser(_ context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		// Username uniqueness is checked inside the same transaction.
		key := usernameKey(user.Username)
		if _, err := txn.Get(key); err == nil {
			return ErrDuplicateUsername
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check username: %w", err)
		}

		if err := txn.Set(userKey(user.ID), data); err != nil {
			return fmt.Errorf("set user: %w", err)
		}
		if err := txn.Set(key, []byte(user.ID)); err != nil {
			return fmt.Errorf("set username mapping: %w", err)
		}
		return nil
	})
}

// GetUser implements Store.
func (s *BadgerStore) GetUser(_ context.Context, id string) (*models.User, error) {
	var user models.User

	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(id), &user, ErrUserNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername implements Store.
func (s *BadgerStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var id string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("get username mapping: %w", err)
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, id)
}

// UpdateProfile implements Store.
func (s *BadgerStore) UpdateProfile(_ context.Context, id string, update models.ProfileUpdate) (*models.User, error) {
	var user models.User

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, userKey(id), &user, ErrUserNotFound); err != nil {
			return err
		}

		if update.DietaryRestrictions != nil {
			user.DietaryRestrictions = append([]string(nil), (*update.DietaryRestrictions)...)
		}
		if update.Appliances != nil {
			user.Appliances = append([]string(nil), (*update.Appliances)...)
		}
		user.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(&user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		if err := txn.Set(userKey(id), data); err != nil {
			return fmt.Errorf("set user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAppliances implements Store.
func (s *BadgerStore) UpdateAppliances(ctx context.Context, id string, appliances []string) (*models.User, error) {
	return s.UpdateProfile(ctx, id, models.ProfileUpdate{Appliances: &appliances})
}

// AddPantryItem implements Store.
func (s *BadgerStore) AddPantryItem(_ context.Context, item *models.PantryItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal pantry item: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := requireKey(txn, userKey(item.UserID), ErrUserNotFound); err != nil {
			return err
		}
		if err := txn.Set(pantryKey(item.UserID, item.ID), data); err != nil {
			return fmt.Errorf("set pantry item: %w", err)
		}
		return nil
	})
}

// ListPantry implements Store.
func (s *BadgerStore) ListPantry(_ context.Context, userID string) ([]models.PantryItem, error) {
	var items []models.PantryItem

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(pantryKeyPrefix + userID + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var item models.PantryItem
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			}); err != nil {
				return fmt.Errorf("unmarshal pantry item: %w", err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Keys iterate in lexical order; present items oldest first.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
	return items, nil
}

// RemovePantryItem implements Store.
func (s *BadgerStore) RemovePantryItem(_ context.Context, userID, itemID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := pantryKey(userID, itemID)
		if err := requireKey(txn, key, ErrItemNotFound); err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete pantry item: %w", err)
		}
		return nil
	})
}

// AddFavorite implements Store.
func (s *BadgerStore) AddFavorite(_ context.Context, favorite *models.Favorite) error {
	data, err := json.Marshal(favorite)
	if err != nil {
		return fmt.Errorf("marshal favorite: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := requireKey(txn, userKey(favorite.UserID), ErrUserNotFound); err != nil {
			return err
		}

		key := favoriteKey(favorite.UserID, favorite.RecipeID)
		if _, err := txn.Get(key); err == nil {
			return ErrDuplicateFavorite
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check favorite: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set favorite: %w", err)
		}
		return nil
	})
}

// ListFavorites implements Store.
func (s *BadgerStore) ListFavorites(_ context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(favoriteKeyPrefix + userID + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var favorite models.Favorite
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &favorite)
			}); err != nil {
				return fmt.Errorf("unmarshal favorite: %w", err)
			}
			favorites = append(favorites, favorite)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.Before(favorites[j].CreatedAt)
	})
	return favorites, nil
}

// RemoveFavorite implements Store.
func (s *BadgerStore) RemoveFavorite(_ context.Context, userID, recipeID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := favoriteKey(userID, recipeID)
		if err := requireKey(txn, key, ErrFavoriteNotFound); err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}
		return nil
	})
}

// Close implements Store. The underlying DB is owned by the Factory;
// closing here is a no-op so Close is safe to call on either backend.
func (s *BadgerStore) Close() error { return nil }

// getJSON loads and unmarshals one value, mapping a missing key to the
// given sentinel.
func getJSON(txn *badger.Txn, key []byte, out interface{}, notFound error) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

// requireKey verifies a key exists, mapping a missing key to the given
// sentinel.
func requireKey(txn *badger.Txn, key []byte, notFound error) error {
	if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
		return notFound
	} else if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return nil
}
