// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fridgeworks/smartfridge/internal/models"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}

	for _, r := range c.Recipes() {
		if r.ID == "" || r.Name == "" {
			t.Errorf("recipe %+v missing required fields", r)
		}
		if r.TotalTime <= 0 {
			t.Errorf("recipe %s has no effective total time", r.ID)
		}
		if r.Ingredients == nil || r.DietaryTags == nil || r.Equipment == nil {
			t.Errorf("recipe %s has nil slices after defaults", r.ID)
		}
	}
}

func TestGet(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := c.Recipes()[0]
	got, ok := c.Get(first.ID)
	if !ok {
		t.Fatalf("Get(%s) not found", first.ID)
	}
	if got.Name != first.Name {
		t.Errorf("Name = %q, want %q", got.Name, first.Name)
	}

	if _, ok := c.Get("no-such-recipe"); ok {
		t.Error("Get(no-such-recipe) = ok, want miss")
	}
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestNewFromFile(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "r-1", "name": "Toast", "ingredients": ["bread"], "prep_time": 2, "cook_time": 3},
		{"id": "r-2", "name": "Mystery", "ingredients": ["salt"]}
	]`)

	c, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	// total_time defaults to prep+cook when either is declared.
	toast, _ := c.Get("r-1")
	if toast.TotalTime != 5 {
		t.Errorf("r-1 TotalTime = %d, want 5", toast.TotalTime)
	}

	// No timing at all falls back to the sentinel.
	mystery, _ := c.Get("r-2")
	if mystery.TotalTime != models.DefaultTotalTime {
		t.Errorf("r-2 TotalTime = %d, want %d", mystery.TotalTime, models.DefaultTotalTime)
	}
}

func TestLoadRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{not json`},
		{"missing id", `[{"name": "No ID"}]`},
		{"missing name", `[{"id": "r-1"}]`},
		{"duplicate ids", `[{"id": "r-1", "name": "A"}, {"id": "r-1", "name": "B"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalogFile(t, tt.content)
			if _, err := NewFromFile(path); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestFailedReloadKeepsPreviousSnapshot(t *testing.T) {
	path := writeCatalogFile(t, `[{"id": "r-1", "name": "Good", "ingredients": ["x"]}]`)

	c, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile: %v", err)
	}

	if err := os.WriteFile(path, []byte(`broken`), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := c.LoadFile(path); err == nil {
		t.Fatal("expected reload error")
	}

	if c.Len() != 1 {
		t.Errorf("Len after failed reload = %d, want 1", c.Len())
	}
	if _, ok := c.Get("r-1"); !ok {
		t.Error("previous snapshot lost after failed reload")
	}
}

func TestReloadSwapsSnapshot(t *testing.T) {
	path := writeCatalogFile(t, `[{"id": "r-1", "name": "Old"}]`)

	c, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile: %v", err)
	}

	next := `[{"id": "r-2", "name": "New A"}, {"id": "r-3", "name": "New B"}]`
	if err := os.WriteFile(path, []byte(next), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.Get("r-1"); ok {
		t.Error("old recipe survived the swap")
	}
}

func TestUnknownSkillLevelStillLoads(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "r-1", "name": "Odd", "skill_level": "expert"},
		{"id": "r-2", "name": "Fine", "skill_level": "Beginner"}
	]`)

	c, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2; unknown skill levels must load", c.Len())
	}
	if r, _ := c.Get("r-2"); !knownSkillLevel(r.SkillLevel) {
		t.Errorf("r-2 SkillLevel = %q, want a recognized level", r.SkillLevel)
	}
}

func TestKnownSkillLevel(t *testing.T) {
	for _, level := range []string{models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced, "BEGINNER"} {
		if !knownSkillLevel(level) {
			t.Errorf("knownSkillLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"expert", "novice", ""} {
		if knownSkillLevel(level) {
			t.Errorf("knownSkillLevel(%q) = true, want false", level)
		}
	}
}

func TestRecipesReturnsCopy(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snapshot := c.Recipes()
	original := snapshot[0].Name
	snapshot[0].Name = "mutated"

	if c.Recipes()[0].Name != original {
		t.Error("mutating the returned slice leaked into the catalog")
	}
}
