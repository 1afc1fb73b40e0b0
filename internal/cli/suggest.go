// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Switch suggestion for typo correction.
package cli

import (
	"strings"

	"github.com/jeranaias/switchkit/internal/switches"
)

// switchCandidates lists every invocation form of every defined switch.
func switchCandidates(reg *switches.Registry) []string {
	var out []string
	for _, s := range reg.Switches() {
		out = append(out, "--"+s.LongName())
		if !s.IsLongOnly() {
			out = append(out, "-"+s.ShortName())
		}
	}
	return out
}

// SuggestSwitch returns the switch form closest to token, or "" when
// nothing is close enough or token already names a switch.
// Uses Levenshtein distance with a threshold based on token length.
func SuggestSwitch(reg *switches.Registry, token string) string {
	input := strings.ToLower(token)
	if _, ok := reg.ResolveSwitch(input); ok && switches.IsPrefixedSwitchFormat(input) {
		return ""
	}

	// Don't suggest for very short inputs (likely intentional)
	n := len([]rune(input))
	if n < 2 {
		return ""
	}

	// <=3 runes: 1 edit; 4-8: 2 edits (catches transpositions); longer: 3 edits
	maxDistance := 1
	if n >= 4 {
		maxDistance = 2
	}
	if n > 8 {
		maxDistance = 3
	}

	bestMatch := ""
	bestDistance := -1
	for _, cand := range switchCandidates(reg) {
		distance := levenshteinDistance(input, cand)
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cand
		}
	}
	return bestMatch
}

// levenshteinDistance calculates the edit distance between two strings,
// counted in runes.
func levenshteinDistance(a, b string) int {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	rows := len(s1) + 1
	cols := len(s2) + 1

	// Two rows instead of the full matrix
	prev := make([]int, cols)
	curr := make([]int, cols)
	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i
		for j := 1; j < cols; j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[cols-1]
}
