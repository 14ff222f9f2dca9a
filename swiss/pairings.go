/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// Pairing is one board in a round, with colors already resolved.
type Pairing struct {
	White *Player
	Black *Player
}

func (pr Pairing) String() string {
	return fmt.Sprintf("%v vs. %v", pr.White, pr.Black)
}

// Options controls a round's pairing computation. The zero value gives a
// non-strict run with White as the initial color for the top seed.
type Options struct {
	// TotalRounds enables the final-round criteria when currentRound
	// reaches it. Zero disables them.
	TotalRounds int

	// InitialColor is the color the highest-ranked player receives in
	// round one; it also anchors the parity rule in later rounds.
	// NoColor defaults to White.
	InitialColor Color

	// Strict widens the search budgets at the cost of runtime.
	Strict bool

	// AllowRepeatPairing, when set, is consulted before a rematch is
	// created as a last resort. Its answer is advisory: the engine logs
	// a veto but still pairs the players rather than leave them without
	// an opponent.
	AllowRepeatPairing func(p1, p2 *Player) bool

	// SelectBye, when set, chooses who sits out of an odd round before
	// the built-in policy runs. Returning nil, or a player outside the
	// round, defers to the built-in policy.
	SelectBye func(players []*Player, currentRound int) *Player
}

// searchState tracks where the pairing run is in its degradation chain.
type searchState int

const (
	stateSearching searchState = iota
	stateTimedOut
	stateFallback
)

// CreatePairings computes the pairings for currentRound over the given
// players. previous holds every pair that has already met. Withdrawn
// players are skipped; with an odd number of active players the returned
// bye player sits out. Players without pairing numbers are assigned them
// by rating.
func CreatePairings(ctx context.Context, players []*Player, currentRound int,
	previous MatchSet, opts Options) ([]Pairing, *Player, error) {

	if currentRound < 1 {
		return nil, nil, fmt.Errorf("pairing: invalid round %v", currentRound)
	}
	if opts.InitialColor == NoColor {
		opts.InitialColor = White
	}
	if previous == nil {
		previous = NewMatchSet()
	}

	var active []*Player
	for _, p := range players {
		if p.IsActive {
			active = append(active, p)
		}
	}
	if len(active) < 2 {
		return nil, nil, fmt.Errorf("pairing: need at least 2 active players, have %v",
			len(active))
	}

	assignPairingNumbers(active)

	var bye *Player
	if len(active)%2 == 1 {
		if opts.SelectBye != nil {
			bye = opts.SelectBye(active, currentRound)
			if bye != nil && !containsPlayer(active, bye) {
				log.Printf("pairing: bye selector chose %v who is not in round %v; using default policy",
					bye, currentRound)
				bye = nil
			}
		}
		if bye == nil {
			bye = selectByePlayer(active, currentRound)
		}
		active = removePlayer(active, bye)
	}

	var pairings []Pairing
	var err error
	switch {
	case currentRound == 1:
		pairings = seedPairings(active, opts.InitialColor)
	case len(active) > 50 && currentRound > 5 && !opts.Strict:
		log.Printf("pairing: using simplified pairing for %v players, round %v",
			len(active), currentRound)
		pairings, err = simplifiedPairings(active, currentRound, previous, &opts)
	default:
		pairings, err = computeDutchPairings(ctx, active, currentRound, previous,
			&opts)
	}
	if err != nil {
		return nil, nil, err
	}

	recordFloats(pairings, bye, currentRound)
	return pairings, bye, nil
}

// assignPairingNumbers fills in missing pairing numbers by descending
// rating. Existing numbers are preserved so mid-tournament entrants keep
// their published seeding.
func assignPairingNumbers(players []*Player) {
	maxNum := 0
	needsNum := false
	for _, p := range players {
		if p.PairingNumber > maxNum {
			maxNum = p.PairingNumber
		}
		if p.PairingNumber == 0 {
			needsNum = true
		}
	}
	if !needsNum {
		return
	}

	var unnumbered []*Player
	for _, p := range players {
		if p.PairingNumber == 0 {
			unnumbered = append(unnumbered, p)
		}
	}
	sort.SliceStable(unnumbered, func(i, j int) bool {
		if unnumbered[i].Rating != unnumbered[j].Rating {
			return unnumbered[i].Rating > unnumbered[j].Rating
		}
		return unnumbered[i].Name < unnumbered[j].Name
	})
	for _, p := range unnumbered {
		maxNum++
		p.PairingNumber = maxNum
	}
}

// selectByePlayer picks who sits out: the lowest-standing active player
// who has neither received a bye nor scored a full point in an unplayed
// round. When nobody qualifies a second bye becomes unavoidable and is
// logged.
func selectByePlayer(players []*Player, currentRound int) *Player {
	var eligible []*Player
	for _, p := range players {
		if !p.HasReceivedBye && !p.HasFullPointBye() {
			eligible = append(eligible, p)
		}
	}
	secondBye := false
	if len(eligible) == 0 {
		eligible = players
		secondBye = true
	}

	bye := eligible[0]
	for _, p := range eligible[1:] {
		if byeRanksBelow(p, bye) {
			bye = p
		}
	}
	if secondBye {
		log.Printf("pairing: all players have had a bye; %v receives a second bye in round %v",
			bye, currentRound)
	}
	return bye
}

func byeRanksBelow(a, b *Player) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Rating != b.Rating {
		return a.Rating < b.Rating
	}
	return a.PairingNumber > b.PairingNumber
}

// seedPairings implements round one: the field is halved by seeding and
// the top half plays the bottom half in order. Colors follow the Article
// 5.2.5 parity rule: the higher seed's pairing-number parity against the
// initial color, so gaps in the numbering carry through.
func seedPairings(players []*Player, initialColor Color) []Pairing {
	sorted := sortForPairing(players)
	half := len(sorted) / 2

	pairings := make([]Pairing, 0, half)
	for i := 0; i < half; i++ {
		high, low := sorted[i], sorted[half+i]
		highColor := initialColor
		if high.PairingNumber%2 == 0 {
			highColor = initialColor.Opposite()
		}
		if highColor == White {
			pairings = append(pairings, Pairing{White: high, Black: low})
		} else {
			pairings = append(pairings, Pairing{White: low, Black: high})
		}
	}
	return pairings
}

// computeDutchPairings walks the score brackets from the top, pairing each
// one and floating its leftovers into the next. The search runs under a
// time budget scaled to the field size; once exceeded the remaining
// players are paired by the greedy fallback instead.
func computeDutchPairings(ctx context.Context, players []*Player, currentRound int,
	previous MatchSet, opts *Options) ([]Pairing, error) {

	deadline := time.Now().Add(searchBudget(len(players), opts.Strict))
	state := stateSearching

	groups, scores := groupByScore(players)

	var pairings []Pairing
	var carried []*Player

	for gi, score := range scores {
		if state == stateSearching {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("pairing: canceled in round %v: %w",
					currentRound, err)
			}
			if time.Now().After(deadline) {
				state = stateTimedOut
			}
		}
		if state == stateTimedOut {
			log.Printf("pairing: search budget exhausted in round %v; falling back to greedy pairing",
				currentRound)
			state = stateFallback
		}
		if state == stateFallback {
			remaining := append([]*Player(nil), carried...)
			for _, s := range scores[gi:] {
				remaining = append(remaining, groups[s]...)
			}
			fallback, err := pairRemainingPlayers(remaining, currentRound,
				previous, opts)
			if err != nil {
				return nil, err
			}
			return append(pairings, fallback...), nil
		}

		residents := sortForPairing(groups[score])
		mdps := sortForPairing(carried)
		bracket := append(append([]*Player(nil), mdps...), residents...)

		var nextBracket []*Player
		if gi+1 < len(scores) {
			nextBracket = groups[scores[gi+1]]
		}
		env := &bracketEnv{
			previous:     previous,
			currentRound: currentRound,
			totalRounds:  opts.TotalRounds,
			initialColor: opts.InitialColor,
			nextBracket:  nextBracket,
			strict:       opts.Strict,
		}

		entrants := newEntrants(bracket)
		var bracketPairings []Pairing
		var unpaired []*entrant
		if len(mdps) == 0 {
			bracketPairings, unpaired = processHomogeneousBracket(entrants, env)
		} else {
			maxPairs := len(bracket) / 2
			m1 := len(mdps)
			if len(residents) < m1 {
				m1 = len(residents)
			}
			if maxPairs < m1 {
				m1 = maxPairs
			}
			bracketPairings, unpaired = processHeterogeneousBracket(
				entrants, entrants[len(mdps):], m1, env)
		}

		pairings = append(pairings, bracketPairings...)
		carried = entrantPlayers(unpaired)
	}

	if len(carried) > 0 {
		final, err := pairRemainingPlayers(carried, currentRound, previous, opts)
		if err != nil {
			return nil, err
		}
		pairings = append(pairings, final...)
	}

	return pairings, nil
}

// searchBudget returns the wall-clock budget for a full pairing search.
func searchBudget(playerCount int, strict bool) time.Duration {
	perPlayer, floor, ceil := 0.5, 15.0, 60.0
	if strict {
		perPlayer, floor, ceil = 1.0, 20.0, 120.0
	}
	budget := float64(playerCount) * perPlayer
	if budget < floor {
		budget = floor
	}
	if budget > ceil {
		budget = ceil
	}
	return time.Duration(budget * float64(time.Second))
}

// greedyPairBracket pairs a bracket top-down, giving each player the
// highest-ranked compatible partner. Used when no evaluated configuration
// of the bracket pairs anyone.
func greedyPairBracket(bracket []*entrant, env *bracketEnv) ([]Pairing, []*entrant) {
	remaining := append([]*entrant(nil), bracket...)
	sortEntrants(remaining)

	var pairings []Pairing
	var unpaired []*entrant
	for len(remaining) > 0 {
		e1 := remaining[0]
		remaining = remaining[1:]

		matched := -1
		for i, e2 := range remaining {
			if meetsAbsoluteCriteria(e1.p, e2.p, env.previous, env.currentRound,
				env.totalRounds) {
				matched = i
				break
			}
		}
		if matched < 0 {
			unpaired = append(unpaired, e1)
			continue
		}
		e2 := remaining[matched]
		remaining = append(remaining[:matched], remaining[matched+1:]...)
		white, black := AssignColors(e1.p, e2.p, env.currentRound, env.initialColor)
		pairings = append(pairings, Pairing{White: white, Black: black})
	}
	return pairings, unpaired
}

// pairRemainingPlayers is the end of the degradation chain: everyone left
// over after the bracket walk gets an opponent here, across score groups
// if necessary and repeating a previous pairing only when nothing else is
// legal.
func pairRemainingPlayers(players []*Player, currentRound int, previous MatchSet,
	opts *Options) ([]Pairing, error) {

	remaining := sortForPairing(players)
	var pairings []Pairing

	for len(remaining) > 1 {
		p1 := remaining[0]
		remaining = remaining[1:]

		matched := -1
		for i, p2 := range remaining {
			if arePlayersCompatible(p1, p2, previous) {
				matched = i
				break
			}
		}
		if matched < 0 {
			// Rematch as absolute last resort.
			matched = 0
			p2 := remaining[0]
			if opts.AllowRepeatPairing != nil && !opts.AllowRepeatPairing(p1, p2) {
				log.Printf("pairing: repeat pairing %v vs. %v vetoed by policy but unavoidable in round %v",
					p1, p2, currentRound)
			} else {
				log.Printf("pairing: no new opponent available; repeating %v vs. %v in round %v",
					p1, p2, currentRound)
			}
		}

		p2 := remaining[matched]
		remaining = append(remaining[:matched], remaining[matched+1:]...)
		white, black := AssignColors(p1, p2, currentRound, opts.InitialColor)
		pairings = append(pairings, Pairing{White: white, Black: black})
	}

	if len(remaining) == 1 {
		return nil, fmt.Errorf("pairing: player %v left without an opponent in round %v",
			remaining[0], currentRound)
	}
	return pairings, nil
}

// simplifiedPairings handles large late-round fields without the full
// candidate search: adjacent pairing within the standings, with a short
// lookahead to dodge rematches.
func simplifiedPairings(players []*Player, currentRound int, previous MatchSet,
	opts *Options) ([]Pairing, error) {

	remaining := sortForPairing(players)
	var pairings []Pairing

	for len(remaining) > 1 {
		p1 := remaining[0]
		remaining = remaining[1:]

		matched := 0
		for i := 0; i < len(remaining) && i < 10; i++ {
			if arePlayersCompatible(p1, remaining[i], previous) {
				matched = i
				break
			}
		}
		p2 := remaining[matched]
		remaining = append(remaining[:matched], remaining[matched+1:]...)
		white, black := AssignColors(p1, p2, currentRound, opts.InitialColor)
		pairings = append(pairings, Pairing{White: white, Black: black})
	}

	if len(remaining) == 1 {
		return nil, fmt.Errorf("pairing: player %v left without an opponent in round %v",
			remaining[0], currentRound)
	}
	return pairings, nil
}

// recordFloats stamps the round onto the float history of every player
// paired outside their score group, and of the bye recipient. Done once
// the round's pairings are final so an abandoned search leaves no trace.
func recordFloats(pairings []Pairing, bye *Player, currentRound int) {
	for _, pr := range pairings {
		if pr.White.Score == pr.Black.Score {
			continue
		}
		appendFloat(pr.White, currentRound)
		appendFloat(pr.Black, currentRound)
	}
	if bye != nil {
		appendFloat(bye, currentRound)
	}
}

func appendFloat(p *Player, round int) {
	for _, r := range p.FloatHistory {
		if r == round {
			return
		}
	}
	p.FloatHistory = append(p.FloatHistory, round)
}

func containsPlayer(players []*Player, target *Player) bool {
	for _, p := range players {
		if p == target {
			return true
		}
	}
	return false
}

func removePlayer(players []*Player, target *Player) []*Player {
	out := players[:0:0]
	for _, p := range players {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
