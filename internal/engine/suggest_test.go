// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package engine

import (
	"reflect"
	"testing"

	"github.com/fridgeworks/smartfridge/internal/models"
)

func TestSuggestExcludesCompleteMatches(t *testing.T) {
	// r-2 is fully covered by the pantry, so there is nothing to buy.
	tokens := []string{"egg", "butter"}

	suggestions := Suggest(tokens, testCatalog(), models.FilterSpec{}, 10)

	for _, s := range suggestions {
		if s.RecipeID == "r-2" {
			t.Fatal("recipe with nothing missing must not be suggested")
		}
		if len(s.ToBuy) == 0 {
			t.Fatalf("suggestion %s has an empty shopping list", s.RecipeID)
		}
	}
}

func TestSuggestIncludesZeroPercentMatches(t *testing.T) {
	// Empty pantry: every recipe is a suggestion candidate.
	suggestions := Suggest(nil, testCatalog(), models.FilterSpec{}, 10)

	if len(suggestions) != 4 {
		t.Fatalf("expected all 4 recipes suggested for empty pantry, got %d", len(suggestions))
	}
	for _, s := range suggestions {
		if s.MatchPercentage != 0 {
			t.Errorf("suggestion %s percentage = %v, want 0", s.RecipeID, s.MatchPercentage)
		}
	}
}

func TestSuggestOrdering(t *testing.T) {
	// Pantry: egg only. r-2 and r-4 both 50% with 1 missing (tie broken
	// by catalog order), r-1 25%, r-3 0%.
	suggestions := Suggest([]string{"egg"}, testCatalog(), models.FilterSpec{}, 10)

	wantIDs := []string{"r-2", "r-4", "r-1", "r-3"}
	gotIDs := make([]string, len(suggestions))
	for i, s := range suggestions {
		gotIDs[i] = s.RecipeID
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("suggestion order = %v, want %v", gotIDs, wantIDs)
	}
}

func TestSuggestMissingCountTiebreak(t *testing.T) {
	catalog := []models.Recipe{
		{ID: "big", Name: "Big", Ingredients: []string{"a", "b", "x", "y"}},
		{ID: "small", Name: "Small", Ingredients: []string{"a", "b", "x", "y", "z", "w", "v", "u"}},
	}
	// Both score 50%; "big" misses 2, "small" misses 4.
	suggestions := Suggest([]string{"a", "b", "z", "w"}, catalog, models.FilterSpec{}, 10)

	if len(suggestions) != 2 || suggestions[0].RecipeID != "big" {
		t.Fatalf("expected fewer-missing recipe ranked first, got %v", suggestions)
	}
}

func TestSuggestLimit(t *testing.T) {
	suggestions := Suggest(nil, testCatalog(), models.FilterSpec{}, 2)
	if len(suggestions) != 2 {
		t.Errorf("expected limit of 2, got %d", len(suggestions))
	}

	// Non-positive limit falls back to the default.
	suggestions = Suggest(nil, testCatalog(), models.FilterSpec{}, 0)
	if len(suggestions) != 4 {
		t.Errorf("expected all 4 under default limit, got %d", len(suggestions))
	}
}

func TestSuggestRespectsFilters(t *testing.T) {
	suggestions := Suggest(nil, testCatalog(), models.FilterSpec{SkillLevel: "intermediate"}, 10)

	if len(suggestions) != 1 || suggestions[0].RecipeID != "r-3" {
		t.Fatalf("skill filter: got %v, want only r-3", suggestions)
	}
}

func TestSuggestShoppingList(t *testing.T) {
	suggestions := Suggest([]string{"chicken", "rice"}, testCatalog(), models.FilterSpec{}, 10)

	if suggestions[0].RecipeID != "r-1" {
		t.Fatalf("expected r-1 first, got %s", suggestions[0].RecipeID)
	}
	want := []string{"egg", "soy sauce"}
	if !reflect.DeepEqual(suggestions[0].ToBuy, want) {
		t.Errorf("ToBuy = %v, want %v", suggestions[0].ToBuy, want)
	}
	if suggestions[0].MissingCount != 2 {
		t.Errorf("MissingCount = %d, want 2", suggestions[0].MissingCount)
	}
}
