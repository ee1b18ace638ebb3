// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package models

// DefaultTotalTime is the sentinel applied to recipes that declare no
// total time. It is large enough to fail any bounded max_time filter.
const DefaultTotalTime = 999

// Skill levels recognized by the catalog and filter evaluator.
// Comparison is always case-insensitive; any other value is treated
// as unknown and fails an active skill_level filter.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Recipe is an immutable catalog entry. Recipes are inputs to the
// search engine; their lifecycle is owned entirely by the catalog.
//
// Optional metadata degrades gracefully: a missing total time is
// replaced with DefaultTotalTime at load, missing skill level and
// cuisine stay empty (and fail any active filter on that axis), and
// missing tag/equipment sets stay empty.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	PrepTime    int      `json:"prep_time,omitempty"`  // minutes
	CookTime    int      `json:"cook_time,omitempty"`  // minutes
	TotalTime   int      `json:"total_time,omitempty"` // minutes
	Servings    int      `json:"servings,omitempty"`
	SkillLevel  string   `json:"skill_level,omitempty"`
	Cuisine     string   `json:"cuisine,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
}

// FilterSpec is a set of optional hard constraints a recipe must
// satisfy to be eligible for scoring. A zero value on an axis means
// "no constraint on that axis"; all active axes are ANDed.
type FilterSpec struct {
	MaxTime     int      `json:"max_time,omitempty" validate:"min=0"` // minutes, 0 = unconstrained
	SkillLevel  string   `json:"skill_level,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"` // ALL required
	Cuisine     string   `json:"cuisine,omitempty"`
}

// IsZero reports whether no axis is constrained.
func (f FilterSpec) IsZero() bool {
	return f.MaxTime == 0 && f.SkillLevel == "" && len(f.DietaryTags) == 0 && f.Cuisine == ""
}

// MatchResult is one ranked search hit: the recipe's display metadata
// plus the match breakdown. Results are ephemeral and recomputed per
// query, never persisted.
type MatchResult struct {
	RecipeID        string   `json:"recipe_id"`
	Name            string   `json:"name"`
	MatchPercentage float64  `json:"match_percentage"` // 0-100, one decimal
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	TotalTime       int      `json:"total_time"`
	Servings        int      `json:"servings,omitempty"`
	SkillLevel      string   `json:"skill_level,omitempty"`
	Cuisine         string   `json:"cuisine,omitempty"`
	DietaryTags     []string `json:"dietary_tags,omitempty"`
}

// Suggestion is a shopping suggestion: a recipe worth buying for,
// with the missing ingredients as the shopping list.
type Suggestion struct {
	RecipeID        string   `json:"recipe_id"`
	Name            string   `json:"name"`
	MatchPercentage float64  `json:"match_percentage"`
	MissingCount    int      `json:"missing_count"`
	ToBuy           []string `json:"to_buy"`
	TotalTime       int      `json:"total_time"`
}
