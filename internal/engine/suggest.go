// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package engine

import (
	"sort"

	"github.com/fridgeworks/smartfridge/internal/models"
)

// DefaultSuggestionLimit is the number of shopping suggestions returned
// when the caller does not ask for a specific count.
const DefaultSuggestionLimit = 5

// Suggest produces shopping suggestions: recipes the user is close to
// being able to cook, with the missing ingredients as the list to buy.
//
// Unlike Search, recipes with 0% overlap are included (an empty pantry
// still deserves suggestions) while recipes with nothing missing are
// excluded, since there is nothing to buy for them. Filters apply the
// same way as in Search. Ordering: match percentage descending, then
// fewer missing ingredients, then catalog order (stable).
func Suggest(userTokens []string, catalog []models.Recipe, spec models.FilterSpec, limit int) []models.Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	tokens := NewTokenSet(userTokens)

	suggestions := make([]models.Suggestion, 0, len(catalog))
	for _, recipe := range catalog {
		if !Passes(recipe, spec) {
			continue
		}
		score := Score(recipe.Ingredients, tokens)
		if len(score.Missing) == 0 {
			continue
		}
		suggestions = append(suggestions, models.Suggestion{
			RecipeID:        recipe.ID,
			Name:            recipe.Name,
			MatchPercentage: score.Percentage,
			MissingCount:    len(score.Missing),
			ToBuy:           score.Missing,
			TotalTime:       EffectiveTotalTime(recipe),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].MatchPercentage != suggestions[j].MatchPercentage {
			return suggestions[i].MatchPercentage > suggestions[j].MatchPercentage
		}
		return suggestions[i].MissingCount < suggestions[j].MissingCount
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
