/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "sort"

// entrant wraps a player with their Bracket Sequential Number. BSNs exist
// only for the duration of one bracket's search; they are never written
// back to the Player.
type entrant struct {
	p   *Player
	bsn int
}

// newEntrants assigns BSNs 1..n in the given order. Callers pass players
// already sorted per Article 1.2.
func newEntrants(players []*Player) []*entrant {
	out := make([]*entrant, len(players))
	for i, p := range players {
		out[i] = &entrant{p: p, bsn: i + 1}
	}
	return out
}

func entrantPlayers(es []*entrant) []*Player {
	out := make([]*Player, len(es))
	for i, e := range es {
		out[i] = e.p
	}
	return out
}

// sortEntrants reorders entrants per Article 1.2 (score desc, pairing
// number asc) in place, keeping each entrant's BSN attached.
func sortEntrants(es []*entrant) {
	sort.SliceStable(es, func(i, j int) bool {
		return ranksHigher(es[i].p, es[j].p)
	})
}

// groupByScore buckets players into score brackets and returns the
// distinct scores in descending order.
func groupByScore(players []*Player) (map[float64][]*Player, []float64) {
	groups := make(map[float64][]*Player)
	for _, p := range players {
		groups[p.Score] = append(groups[p.Score], p)
	}
	scores := make([]float64, 0, len(groups))
	for s := range groups {
		scores = append(scores, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
	return groups, scores
}

// bracketEnv carries the read-only context every candidate evaluation
// needs. Nothing in it is mutated during a bracket's search.
type bracketEnv struct {
	previous     MatchSet
	currentRound int
	totalRounds  int
	initialColor Color
	nextBracket  []*Player
	strict       bool
}

// configLimit bounds how many candidate configurations a bracket search
// may evaluate; thorough for small brackets, minimal for very large ones,
// doubled under strict mode.
func configLimit(bracketSize int, strict bool) int {
	mult := 1
	if strict {
		mult = 2
	}
	switch {
	case bracketSize <= 6:
		return 120 * mult
	case bracketSize <= 12:
		return 60 * mult
	case bracketSize <= 20:
		return 30 * mult
	}
	return 15 * mult
}
