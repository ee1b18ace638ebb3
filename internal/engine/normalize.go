// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package engine

import "strings"

// Normalize parses free-form ingredient text into an ordered list of
// canonical tokens. Input may separate items with commas, newlines, or
// both; newlines are treated as commas. Each surviving piece is
// whitespace-trimmed and lowercased.
//
// Order and duplicates are preserved; callers that need a set should
// build one with NewTokenSet. Empty input yields an empty slice, never
// an error: "nothing entered" is a valid pantry, it just matches no
// recipe.
func Normalize(raw string) []string {
	pieces := strings.Split(strings.ReplaceAll(raw, "\n", ","), ",")
	tokens := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tokens = append(tokens, strings.ToLower(piece))
	}
	return tokens
}

// TokenSet is an unordered membership set of normalized ingredient
// tokens. Equality is exact string match on the normalized form; no
// stemming or synonym expansion.
type TokenSet map[string]struct{}

// NewTokenSet builds a TokenSet from already-normalized tokens,
// collapsing duplicates.
func NewTokenSet(tokens []string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Contains reports whether the normalized token is in the set.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}
