// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package catalog owns the recipe corpus: an embedded default set, an
// optional file-backed catalog, and an optional hot-reload watcher.
//
// The catalog is a read-only snapshot from the engine's point of view;
// loads and reloads swap the whole recipe slice atomically under a
// lock. A failed reload keeps the previous snapshot: a bad edit never
// empties the catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fridgeworks/smartfridge/internal/logging"
	"github.com/fridgeworks/smartfridge/internal/metrics"
	"github.com/fridgeworks/smartfridge/internal/models"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

//go:embed recipes.json
var defaultRecipes []byte

// Catalog holds the active recipe snapshot.
type Catalog struct {
	mu      sync.RWMutex
	recipes []models.Recipe
	byID    map[string]int // recipe id -> index into recipes
	log     zerolog.Logger
}

// New creates a Catalog preloaded with the embedded default corpus.
func New() (*Catalog, error) {
	c := &Catalog{log: logging.WithComponent("catalog")}
	if err := c.loadBytes(defaultRecipes); err != nil {
		return nil, fmt.Errorf("load embedded catalog: %w", err)
	}
	return c, nil
}

// NewFromFile creates a Catalog loaded from the given JSON file.
func NewFromFile(path string) (*Catalog, error) {
	c := &Catalog{log: logging.WithComponent("catalog")}
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile replaces the snapshot with the contents of the JSON file.
// On any error the previous snapshot stays active.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return fmt.Errorf("read catalog file %s: %w", path, err)
	}
	if err := c.loadBytes(data); err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	metrics.CatalogReloads.WithLabelValues("success").Inc()
	return nil
}

// loadBytes parses, validates, and installs a new snapshot.
func (c *Catalog) loadBytes(data []byte) error {
	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return fmt.Errorf("decode recipes: %w", err)
	}

	byID := make(map[string]int, len(recipes))
	for i := range recipes {
		if err := validateRecipe(&recipes[i]); err != nil {
			return fmt.Errorf("recipe %d: %w", i, err)
		}
		if _, dup := byID[recipes[i].ID]; dup {
			return fmt.Errorf("duplicate recipe id %q", recipes[i].ID)
		}
		applyDefaults(&recipes[i])
		if level := recipes[i].SkillLevel; level != "" && !knownSkillLevel(level) {
			// Loads anyway, but fails every active skill filter.
			c.log.Warn().
				Str("recipe_id", recipes[i].ID).
				Str("skill_level", level).
				Msg("Unrecognized skill level")
		}
		byID[recipes[i].ID] = i
	}

	c.mu.Lock()
	c.recipes = recipes
	c.byID = byID
	c.mu.Unlock()

	metrics.CatalogRecipes.Set(float64(len(recipes)))
	c.log.Info().Int("recipes", len(recipes)).Msg("Catalog snapshot installed")
	return nil
}

// knownSkillLevel reports whether the level is one the filter
// vocabulary recognizes, case-insensitively.
func knownSkillLevel(level string) bool {
	switch strings.ToLower(level) {
	case models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced:
		return true
	}
	return false
}

// validateRecipe checks the required fields. Optional metadata is
// allowed to be absent; defaults handle it.
func validateRecipe(r *models.Recipe) error {
	if r.ID == "" {
		return fmt.Errorf("missing id")
	}
	if r.Name == "" {
		return fmt.Errorf("missing name")
	}
	return nil
}

// applyDefaults fills the documented defaults for optional metadata:
// total time falls back to the sum of prep and cook when both are
// declared, then to the sentinel; nil sets become empty.
func applyDefaults(r *models.Recipe) {
	if r.TotalTime <= 0 {
		if r.PrepTime > 0 || r.CookTime > 0 {
			r.TotalTime = r.PrepTime + r.CookTime
		} else {
			r.TotalTime = models.DefaultTotalTime
		}
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.DietaryTags == nil {
		r.DietaryTags = []string{}
	}
	if r.Equipment == nil {
		r.Equipment = []string{}
	}
}

// Recipes returns a copy of the active snapshot, in catalog order.
func (c *Catalog) Recipes() []models.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recipes := make([]models.Recipe, len(c.recipes))
	copy(recipes, c.recipes)
	return recipes
}

// Get returns one recipe by id.
func (c *Catalog) Get(id string) (models.Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return models.Recipe{}, false
	}
	return c.recipes[i], true
}

// Len returns the number of recipes in the active snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}
