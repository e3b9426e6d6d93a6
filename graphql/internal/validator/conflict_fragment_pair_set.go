/**
 * Copyright (c) 2019, The Artemis Authors.
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

package validator

// fragmentPairKey canonicalizes an unordered pair of fragment names so that (a, b) and (b, a)
// land on the same entry.
type fragmentPairKey struct {
	lo, hi string
}

func makeFragmentPairKey(a, b string) fragmentPairKey {
	if a <= b {
		return fragmentPairKey{lo: a, hi: b}
	}
	return fragmentPairKey{lo: b, hi: a}
}

// ConflictFragmentPairSet records, for every pair of fragments compared so far while checking
// field selection merging across fragment spreads, that the pair was compared and whether that
// comparison assumed the two are mutually exclusive (their parent types cannot both apply to the
// same object). Whether the comparison found a conflict is not stored. Comparing the same pair of
// fragments more than once is common when a document spreads them from many places, so the rule
// that builds this set consults it before repeating an O(n*m) field-by-field comparison.
type ConflictFragmentPairSet struct {
	exclusiveWhenConflicting map[fragmentPairKey]bool
}

// NewConflictFragmentPairSet initializes an empty ConflictFragmentPairSet.
func NewConflictFragmentPairSet() ConflictFragmentPairSet {
	return ConflictFragmentPairSet{exclusiveWhenConflicting: map[fragmentPairKey]bool{}}
}

// Add records that the pair (a, b) was compared, and whether that comparison assumed the two
// fragments are mutually exclusive. A later Add of the same pair replaces the earlier record.
func (m ConflictFragmentPairSet) Add(a, b string, areMutuallyExclusive bool) {
	m.exclusiveWhenConflicting[makeFragmentPairKey(a, b)] = areMutuallyExclusive
}

// Has reports whether the pair (a, b) was already recorded under the given exclusivity
// assumption. A pair recorded as unconditional (areMutuallyExclusive == false at Add time) also
// answers a query made under the exclusive assumption, since "conflicts regardless of
// exclusivity" is a stronger statement than "conflicts given exclusivity" — but not vice versa,
// so a pair recorded only under the exclusive assumption cannot answer an unconditional query.
func (m ConflictFragmentPairSet) Has(a, b string, areMutuallyExclusive bool) bool {
	recordedExclusive, exists := m.exclusiveWhenConflicting[makeFragmentPairKey(a, b)]
	if !exists {
		return false
	}
	if !areMutuallyExclusive {
		return !recordedExclusive
	}
	return true
}
