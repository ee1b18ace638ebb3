// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package engine

import (
	"sort"

	"github.com/fridgeworks/smartfridge/internal/models"
)

// Search ranks the catalog against the user's ingredient tokens.
//
// For each recipe, in catalog order:
//  1. Recipes failing any active filter axis are skipped; filters
//     dominate scoring, even a 100% ingredient match is excluded.
//  2. Recipes with a 0% score are skipped; no ingredient overlap means
//     no result, an empty token set therefore yields no results.
//  3. Survivors carry a metadata snapshot plus the match breakdown.
//
// Results are ordered by match percentage descending. The sort is
// stable: equal percentages retain their relative catalog order.
// Neither the catalog slice nor the filter is mutated.
func Search(userTokens []string, catalog []models.Recipe, spec models.FilterSpec) []models.MatchResult {
	tokens := NewTokenSet(userTokens)

	results := make([]models.MatchResult, 0, len(catalog))
	for _, recipe := range catalog {
		if !Passes(recipe, spec) {
			continue
		}
		score := Score(recipe.Ingredients, tokens)
		if score.Percentage == 0 {
			continue
		}
		results = append(results, newMatchResult(recipe, score))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})
	return results
}

// newMatchResult snapshots the recipe's display metadata alongside the
// match breakdown.
func newMatchResult(recipe models.Recipe, score MatchScore) models.MatchResult {
	return models.MatchResult{
		RecipeID:        recipe.ID,
		Name:            recipe.Name,
		MatchPercentage: score.Percentage,
		Matched:         score.Matched,
		Missing:         score.Missing,
		TotalTime:       EffectiveTotalTime(recipe),
		Servings:        recipe.Servings,
		SkillLevel:      recipe.SkillLevel,
		Cuisine:         recipe.Cuisine,
		DietaryTags:     recipe.DietaryTags,
	}
}
