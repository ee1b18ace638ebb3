// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package models defines the shared data structures used across the
// SmartFridge application.
//
// The package contains three groups of types:
//
//   - Catalog and search types: Recipe, FilterSpec, MatchResult,
//     Suggestion. Recipes are immutable inputs; match results are
//     derived per query and never persisted.
//   - Store entities: User, PantryItem, Favorite, ProfileUpdate.
//   - API envelope: APIResponse, Metadata, APIError, the wrapper
//     returned by every HTTP endpoint.
//
// All types use struct tags compatible with goccy/go-json.
package models
