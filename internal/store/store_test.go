// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/fridgeworks/smartfridge/internal/models"
)

// newBadgerTestStore opens a throwaway BadgerDB under t.TempDir.
func newBadgerTestStore(t *testing.T) Store {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close badger: %v", err)
		}
	})
	return NewBadgerStoreFromDB(db)
}

// testBackends runs the same conformance suite against every Store
// implementation. The interface contract is the unit under test, not
// any one backend.
func testBackends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore())
	})
	t.Run("badger", func(t *testing.T) {
		fn(t, newBadgerTestStore(t))
	})
}

func seedUser(t *testing.T, s Store, id, username string) *models.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &models.User{
		ID:        id,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserLifecycle(t *testing.T) {
	testBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		seedUser(t, s, "u-1", "Alice")

		got, err := s.GetUser(ctx, "u-1")
		if err != nil {
			t.Fatalf("GetUser: %v", err)
		}
		if got.Username != "Alice" {
			t.Errorf("Username = %q, want Alice", got.Username)
		}

		// Lookup by username is case-insensitive.
		got, err = s.GetUserByUsername(ctx, "ALICE")
		if err != nil {
			t.Fatalf("GetUserByUsername: %v", err)
		}
		if got.ID != "u-1" {
			t.Errorf("ID = %q, want u-1", got.ID)
		}

		if _, err := s.GetUser(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("GetUser(missing) = %v, want ErrUserNotFound", err)
		}
		if _, err := s.GetUserByUsername(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("GetUserByUsername(nobody) = %v, want ErrUserNotFound", err)
		}
	})
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	testBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		seedUser(t, s, "u-1", "alice")

		dup := &models.User{ID: "u-2", Username: "ALICE"}
		if err := s.CreateUser(ctx, dup); !errors.Is(err, ErrDuplicateUsername) {
			t.Errorf("CreateUser duplicate = %v, want ErrDuplicateUsername", err)
		}
	})
}

func TestUpdateProfilePartial(t *testing.T) {
	testBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		seedUser(t, s, "u-1", "alice")

		diets := []string{"vegan"}
		updated, err := s.UpdateProfile(ctx, "u-1", models.ProfileUpdate{DietaryRestrictions: &diets})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if len(updated.DietaryRestrictions) != 1 || updated.DietaryRestrictions[0] != "vegan" {
			t.Errorf("DietaryRestrictions = %v", updated.DietaryRestrictions)
		}

		// Second update touching only appliances leaves diets alone.
		appliances := []string{"oven", "blender"}
		updated, err = s.UpdateProfile(ctx, "u-1", models.ProfileUpdate{Appliances: &appliances})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if len(updated.DietaryRestrictions) != 1 {
			t.Errorf("untouched DietaryRestrictions = %v", updated.DietaryRestrictions)
		}
		if len(updated.Appliances) != 2 {
			t.Errorf("Appliances = %v", updated.Appliances)
		}

		if _, err := s.UpdateProfile(ctx, "missing", models.ProfileUpdate{Appliances: &appliances}); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("UpdateProfile(missing) = %v, want ErrUserNotFound", err)
		}
	})
}

func TestUpdateAppliances(t *testing.T) {
	testBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		seedUser(t, s, "u-1", "alice")

		updated, err := s.UpdateAppliances(ctx, "u-1", []string{"air fryer"})
		if err != nil {
			t.Fatalf("UpdateAppliances: %v", err)
		}
		if len(updated.Appliances) != 1 || updated.Appliances[0] != "air fryer" {
			t.Errorf("Appliances = %v", updated.Appliances)
		}

		// Wholesale replacement, not merge.
		updated, err = s.UpdateAppliances(ctx, "u-1", []string{"oven"})
		if err != nil {
			t.Fatalf("UpdateAppliances: %v", err)
		}
		if len(updated.Appliances) != 1 || updated.Appliances[0] != "oven" {
			t.Errorf("Appliances after replace = %v", updated.Appliances)
		}
	})
}

func TestPantryLifecycle(t *testing.T) {
	testBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		seedUser(t, s, "u-1", "alice")

		base := time.Now().UTC().Truncate(time.Millisecond)
		for i := 0; i < 3; i++ {
			item := &models.PantryItem{
				ID:      fmt.Sprintf("i-%d", i),
				UserID:  "u-1",
				Name:    fmt.Sprintf("item-%d", i),
				AddedAt: base.Add(time.Duration(i) * time.Second),
			}
			if err := s.AddPantryItem(ctx, item); err != nil {
				t.Fatalf("AddPantryItem: %v", err)
			}
		}

		items, err := s.ListPantry(ctx, "u-1")
		if err != nil {
			t.Fatalf("ListPantry: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("len(items) = %d, want 3", len(items))
		}
		// Oldest first.
		for i, item := range items {
			if want := fmt.Sprintf("i-%d", i); item.ID != want {
				t.Errorf("items[%d].ID = %q, want %q", i, item.ID, want)
			}
		}

		if err := s.RemovePantryItem(ctx, "u-1", "i-1"); err != nil {
			t.Fatalf("RemovePantryItem: %v", err)
		}
		items, _ = s.ListPantry(ctx, "u-1")
		if len(items) != 2 {
			t.Errorf("len(items) after removal = %d, want 2", len(items))
		}

		if err := s.RemovePantryItem(ctx, "u-1", "i-1"); !errors.Is(err, ErrItemNotFound) {
			t.Errorf("double removal = %v, want ErrItemNotFound", err)
		}
		if err := s.AddPantryItem(ctx, &models.PantryItem{ID: "x", UserID: "missing"}); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("AddPantryItem(missing user) = %v, want ErrUserNotFound", err)
		}
	})
}

func TestFavoriteLifecycle(t *testing.T) {
	testBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		seedUser(t, s, "u-1", "alice")

		fav := &models.Favorite{
			UserID:     "u-1",
			RecipeID:   "r-1",
			RecipeName: "Omelette",
			CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
		}
		if err := s.AddFavorite(ctx, fav); err != nil {
			t.Fatalf("AddFavorite: %v", err)
		}
		if err := s.AddFavorite(ctx, fav); !errors.Is(err, ErrDuplicateFavorite) {
			t.Errorf("duplicate AddFavorite = %v, want ErrDuplicateFavorite", err)
		}

		favorites, err := s.ListFavorites(ctx, "u-1")
		if err != nil {
			t.Fatalf("ListFavorites: %v", err)
		}
		if len(favorites) != 1 || favorites[0].RecipeName != "Omelette" {
			t.Errorf("favorites = %v", favorites)
		}

		if err := s.RemoveFavorite(ctx, "u-1", "r-1"); err != nil {
			t.Fatalf("RemoveFavorite: %v", err)
		}
		if err := s.RemoveFavorite(ctx, "u-1", "r-1"); !errors.Is(err, ErrFavoriteNotFound) {
			t.Errorf("double removal = %v, want ErrFavoriteNotFound", err)
		}
		if err := s.AddFavorite(ctx, &models.Favorite{UserID: "missing", RecipeID: "r-1"}); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("AddFavorite(missing user) = %v, want ErrUserNotFound", err)
		}
	})
}

func TestPerUserIsolation(t *testing.T) {
	testBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		seedUser(t, s, "u-1", "alice")
		seedUser(t, s, "u-2", "bob")

		_ = s.AddPantryItem(ctx, &models.PantryItem{ID: "i-1", UserID: "u-1", Name: "egg", AddedAt: time.Now().UTC()})

		items, err := s.ListPantry(ctx, "u-2")
		if err != nil {
			t.Fatalf("ListPantry: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("u-2 pantry = %v, want empty", items)
		}
	})
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	open := func() *badger.DB {
		opts := badger.DefaultOptions(dir)
		opts.Logger = nil
		db, err := badger.Open(opts)
		if err != nil {
			t.Fatalf("open badger: %v", err)
		}
		return db
	}

	db := open()
	s := NewBadgerStoreFromDB(db)
	seedUser(t, s, "u-1", "alice")
	if err := db.Close(); err != nil {
		t.Fatalf("close badger: %v", err)
	}

	db = open()
	defer db.Close()
	s = NewBadgerStoreFromDB(db)

	got, err := s.GetUser(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetUser after reopen: %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("Username = %q, want alice", got.Username)
	}
}

func TestFactoryBackendSelection(t *testing.T) {
	memFactory, err := NewFactory(BackendMemory, "")
	if err != nil {
		t.Fatalf("NewFactory(memory): %v", err)
	}
	defer memFactory.Close()
	if memFactory.Backend() != BackendMemory {
		t.Errorf("Backend() = %s, want memory", memFactory.Backend())
	}
	if memFactory.CreateStore() == nil {
		t.Error("CreateStore returned nil")
	}

	badgerFactory, err := NewFactory(BackendBadger, t.TempDir())
	if err != nil {
		t.Fatalf("NewFactory(badger): %v", err)
	}
	defer badgerFactory.Close()
	if badgerFactory.Backend() != BackendBadger {
		t.Errorf("Backend() = %s, want badger", badgerFactory.Backend())
	}

	if _, err := NewFactory("cassandra", ""); err == nil {
		t.Error("expected error for unknown backend")
	}
}
