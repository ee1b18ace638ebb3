// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package engine

import (
	"math"
	"strings"
)

// MatchScore is the per-recipe scoring breakdown. Matched and Missing
// follow the recipe's declared ingredient order, duplicates preserved;
// together they cover every declared ingredient exactly once.
type MatchScore struct {
	Percentage float64 // 0-100, one decimal place
	Matched    []string
	Missing    []string
}

// Score classifies each of the recipe's ingredients as matched or
// missing against the user's token set and computes the match
// percentage. Recipe ingredient names are lowercased for comparison;
// user tokens are assumed already normalized.
//
// A recipe declaring zero ingredients scores 0 rather than dividing by
// zero.
func Score(recipeIngredients []string, tokens TokenSet) MatchScore {
	matched := make([]string, 0, len(recipeIngredients))
	missing := make([]string, 0, len(recipeIngredients))

	for _, ingredient := range recipeIngredients {
		name := strings.ToLower(strings.TrimSpace(ingredient))
		if tokens.Contains(name) {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}

	score := MatchScore{Matched: matched, Missing: missing}
	if len(recipeIngredients) > 0 {
		score.Percentage = roundPercent(float64(len(matched)) / float64(len(recipeIngredients)) * 100)
	}
	return score
}

// roundPercent rounds to one decimal place, halves away from zero:
// 6.25 becomes 6.3, not banker's 6.2.
func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
