/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// MatchKey is the canonical unordered identifier of a pairing between two
// players.
type MatchKey struct {
	lo, hi string
}

func NewMatchKey(a, b string) MatchKey {
	if a > b {
		a, b = b, a
	}
	return MatchKey{lo: a, hi: b}
}

// MatchSet records every pair of players that has already met. It is the
// absolute guard against repeat pairings and is append-only across a
// tournament.
type MatchSet map[MatchKey]struct{}

func NewMatchSet() MatchSet {
	return make(MatchSet)
}

func (s MatchSet) Add(a, b string) {
	s[NewMatchKey(a, b)] = struct{}{}
}

func (s MatchSet) Has(a, b string) bool {
	_, ok := s[NewMatchKey(a, b)]
	return ok
}

// Clone returns an independent copy; used when validation needs to replay a
// tournament without touching the live set.
func (s MatchSet) Clone() MatchSet {
	out := make(MatchSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
