// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suggest finds the closest match to a misspelled name,
// for use in lookup error messages.
package suggest

import (
	"strconv"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MinSimilarity is the minimum similarity in [0, 1] that a
// candidate must have with the name to be suggested.
var MinSimilarity = 0.5

// Closest returns the candidate most similar to the given name
// using the Levenshtein metric, and whether it is at least
// [MinSimilarity] similar.
func Closest(name string, candidates []string) (string, bool) {
	lev := metrics.NewLevenshtein()
	best := ""
	bestSim := -1.0
	for _, c := range candidates {
		sim := strutil.Similarity(name, c, lev)
		if sim > bestSim {
			best, bestSim = c, sim
		}
	}
	return best, bestSim >= MinSimilarity
}

// DidYouMean returns a parenthetical suggestion of the form
// ` (did you mean "x"?)` for the closest candidate, or "" if
// there is no sufficiently close candidate.
func DidYouMean(name string, candidates []string) string {
	c, ok := Closest(name, candidates)
	if !ok {
		return ""
	}
	return " (did you mean " + strconv.Quote(c) + "?)"
}
