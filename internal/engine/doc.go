// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package engine implements the recipe matching and ranking pipeline.
//
// The pipeline has four stages, composed by Search:
//
//   - Normalize: parse free-form ingredient text into lowercase tokens
//   - Passes: evaluate a recipe against a FilterSpec (hard constraints)
//   - Score: compute the fraction of a recipe's ingredients the user has
//   - Search: filter, score, and rank a catalog into MatchResults
//
// Every function in this package is pure: no shared state, no mutation
// of inputs, deterministic output for identical inputs. The package is
// safe for unlimited concurrent use without synchronization.
//
// Ranking is stable: recipes with equal match percentage retain their
// relative catalog order. This is a contract, not an accident; clients
// rely on catalog curation order as the tie-break.
package engine
