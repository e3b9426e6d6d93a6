/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"sort"
	"strings"
)

// nearbyCandidate pairs a known name with its edit distance from some misspelled input.
type nearbyCandidate struct {
	name     string
	distance int
}

// SuggestionList ranks known, against an unrecognized input, by how close a typo-correction
// edit distance puts them, discarding anything too far away to plausibly be a typo.
func SuggestionList(input string, known []string) []string {
	if len(known) == 0 {
		return nil
	}

	cutoff := float64(len(input)) / 2.0

	candidates := make([]nearbyCandidate, 0, len(known))
	for _, name := range known {
		d := editDistance(input, name)
		limit := cutoff
		if half := float64(len(name)) / 2.0; half > limit {
			limit = half
		}
		if limit < 1 {
			limit = 1
		}
		if float64(d) <= limit {
			candidates = append(candidates, nearbyCandidate{name: name, distance: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) == 0 {
		return nil
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// editDistance is a Damerau-Levenshtein distance (insert, delete, substitute, or transpose one
// adjacent pair of characters) with one twist: two strings differing only in case count as
// distance 1, so that a mis-cased name still reads as an obvious near-miss. Computed over two
// rolling rows plus the row before that (needed for the transposition term) rather than a full
// aLength*bLength matrix.
func editDistance(rawA, rawB string) int {
	if rawA == rawB {
		return 0
	}

	a, b := strings.ToLower(rawA), strings.ToLower(rawB)
	if a == b {
		return 1
	}

	n, m := len(a), len(b)

	prev2 := make([]int, m+1) // row i-2
	prev1 := make([]int, m+1) // row i-1
	curr := make([]int, m+1)  // row i

	for j := 0; j <= m; j++ {
		prev1[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			substCost := 1
			if a[i-1] == b[j-1] {
				substCost = 0
			}

			best := prev1[j] + 1      // deletion
			if v := curr[j-1] + 1; v < best {
				best = v // insertion
			}
			if v := prev1[j-1] + substCost; v < best {
				best = v // substitution
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if v := prev2[j-2] + substCost; v < best {
					best = v // transposition
				}
			}

			curr[j] = best
		}
		prev2, prev1, curr = prev1, curr, prev2
	}

	return prev1[m]
}
