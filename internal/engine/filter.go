// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package engine

import (
	"strings"

	"github.com/fridgeworks/smartfridge/internal/models"
)

// Passes reports whether the recipe satisfies every active axis of the
// filter spec. Inactive axes (zero values) pass unconditionally; active
// axes are ANDed: failing any one excludes the recipe regardless of
// how well its ingredients match.
//
// Missing optional recipe metadata degrades per the catalog defaults: a
// recipe without a total time is treated as models.DefaultTotalTime and
// so fails any bounded max_time filter; empty skill level or cuisine
// fails any active filter on that axis.
func Passes(recipe models.Recipe, spec models.FilterSpec) bool {
	if spec.IsZero() {
		return true
	}
	if spec.MaxTime > 0 && EffectiveTotalTime(recipe) > spec.MaxTime {
		return false
	}
	if spec.SkillLevel != "" && !strings.EqualFold(recipe.SkillLevel, spec.SkillLevel) {
		return false
	}
	if spec.Cuisine != "" && !strings.EqualFold(recipe.Cuisine, spec.Cuisine) {
		return false
	}
	if len(spec.DietaryTags) > 0 {
		tags := make(map[string]struct{}, len(recipe.DietaryTags))
		for _, tag := range recipe.DietaryTags {
			tags[strings.ToLower(tag)] = struct{}{}
		}
		for _, required := range spec.DietaryTags {
			if _, ok := tags[strings.ToLower(required)]; !ok {
				return false
			}
		}
	}
	return true
}

// EffectiveTotalTime returns the recipe's total time, substituting the
// sentinel for recipes that never declared one.
func EffectiveTotalTime(recipe models.Recipe) int {
	if recipe.TotalTime <= 0 {
		return models.DefaultTotalTime
	}
	return recipe.TotalTime
}
