/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// candidate is one proposed way to pair a bracket: the pairings it makes,
// the entrants it leaves for the bracket below, and the quality metrics the
// selector filters on. Candidates live only for one bracket's evaluation.
type candidate struct {
	name     string
	seq      int
	pairings []Pairing
	unpaired []*entrant
	mdpIDs   map[string]struct{}
	metrics  qualityMetrics
}

type qualityMetrics struct {
	downfloaters         int
	downfloaterScores    []float64
	futureIncompatible   int
	byeUnplayed          int
	topscorerColorDiff   int
	topscorerConsecutive int
	colorPrefViolations  int
	strongPrefViolations int
	repeatDownfloaters   int
	repeatUpfloaters     int
	twoBackDownfloaters  int
	twoBackUpfloaters    int
	repeatDownDiffs      []float64
	repeatUpDiffs        []float64
	twoBackDownDiffs     []float64
	twoBackUpDiffs       []float64
}

// processHomogeneousBracket searches one same-score bracket: S1/S2 split,
// S2 transpositions, then resident exchanges, selecting the best candidate
// per C6-C21. Falls back to greedy pairing when no candidate pairs anyone.
func processHomogeneousBracket(bracket []*entrant, env *bracketEnv) ([]Pairing, []*entrant) {
	if len(bracket) <= 1 {
		return nil, bracket
	}

	maxPairs := len(bracket) / 2
	s1Base := bracket[:maxPairs]
	s2Base := bracket[maxPairs:]

	limit := configLimit(len(bracket), env.strict)
	var configs []*candidate
	seq := 0

	addTranspositions := func(s1, s2 []*entrant, tag string) {
		for idx, perm := range generateTranspositions(s2, len(s1), limit, env.strict) {
			if len(configs) >= limit {
				return
			}
			c := evaluateConfiguration(s1, perm, env, tag+"_trans_"+strconv.Itoa(idx), seq)
			if c != nil {
				configs = append(configs, c)
				seq++
			}
		}
	}

	addTranspositions(s1Base, s2Base, "s2")

	if len(configs) < limit {
		for i, ex := range generateResidentExchanges(s1Base, s2Base) {
			if len(configs) >= limit {
				break
			}
			s1 := append([]*entrant(nil), ex[0]...)
			s2 := append([]*entrant(nil), ex[1]...)
			sortEntrants(s1)
			sortEntrants(s2)
			addTranspositions(s1, s2, "exch_"+strconv.Itoa(i))
		}
	}

	if best := selectBestConfiguration(configs); best != nil {
		return best.pairings, best.unpaired
	}

	return greedyPairBracket(bracket, env)
}

// processHeterogeneousBracket pairs MDPs against residents per Article 4.4:
// each candidate fixes an MDP subset of size m1 as S1, pairs it against the
// resident S2 prefix (any illegal MDP pair discards the whole candidate),
// and recursively solves the resident remainder as a homogeneous bracket.
func processHeterogeneousBracket(bracket, residents []*entrant, m1 int, env *bracketEnv) ([]Pairing, []*entrant) {
	m0 := len(bracket) - len(residents)
	if m0 < 0 {
		m0 = 0
	}
	mdps := bracket[:m0]

	limit := configLimit(len(bracket), env.strict)
	var configs []*candidate
	seq := 0

	for setIdx, mdpSet := range generatePairableMDPSets(mdps, m1) {
		if len(configs) >= limit {
			break
		}

		limbo := excludeEntrants(mdps, mdpSet)

		for transIdx, s2 := range generateTranspositions(residents, len(mdpSet), limit, env.strict) {
			if len(configs) >= limit {
				break
			}
			name := "mdp_" + strconv.Itoa(setIdx) + "_s2_" + strconv.Itoa(transIdx)
			c := evaluateHeterogeneousConfiguration(mdpSet, s2, limbo, env, name, seq)
			if c != nil {
				configs = append(configs, c)
				seq++
			}
		}
	}

	if best := selectBestConfiguration(configs); best != nil {
		return best.pairings, best.unpaired
	}

	return greedyPairBracket(bracket, env)
}

// evaluateConfiguration pairs S1[i] with S2[i], leaving illegal pairs
// unpaired, and computes the candidate's full quality metric vector.
func evaluateConfiguration(s1, s2 []*entrant, env *bracketEnv, name string, seq int) *candidate {
	c := &candidate{name: name, seq: seq}

	minPairs := len(s1)
	if len(s2) < minPairs {
		minPairs = len(s2)
	}

	for i := 0; i < minPairs; i++ {
		e1, e2 := s1[i], s2[i]
		if !meetsAbsoluteCriteria(e1.p, e2.p, env.previous, env.currentRound, env.totalRounds) {
			c.unpaired = append(c.unpaired, e1, e2)
			continue
		}
		white, black := AssignColors(e1.p, e2.p, env.currentRound, env.initialColor)
		c.pairings = append(c.pairings, Pairing{White: white, Black: black})
	}
	c.unpaired = append(c.unpaired, s1[minPairs:]...)
	c.unpaired = append(c.unpaired, s2[minPairs:]...)

	computeQualityMetrics(c, env)
	return c
}

// evaluateHeterogeneousConfiguration builds the MDP-Pairing plus recursive
// remainder. Any illegal MDP-resident pair invalidates the candidate
// outright rather than being patched around.
func evaluateHeterogeneousConfiguration(s1, s2, limbo []*entrant, env *bracketEnv, name string, seq int) *candidate {
	c := &candidate{name: name, seq: seq, mdpIDs: make(map[string]struct{}, len(s1))}
	for _, e := range s1 {
		c.mdpIDs[e.p.ID] = struct{}{}
	}

	m1 := len(s1)
	if len(s2) < m1 {
		m1 = len(s2)
	}
	for i := 0; i < m1; i++ {
		e1, e2 := s1[i], s2[i]
		if !meetsAbsoluteCriteria(e1.p, e2.p, env.previous, env.currentRound, env.totalRounds) {
			return nil
		}
		white, black := AssignColors(e1.p, e2.p, env.currentRound, env.initialColor)
		c.pairings = append(c.pairings, Pairing{White: white, Black: black})
	}

	remainderPairings, remainderUnpaired := processHomogeneousBracket(s2[m1:], env)
	c.pairings = append(c.pairings, remainderPairings...)
	c.unpaired = append(c.unpaired, remainderUnpaired...)
	c.unpaired = append(c.unpaired, limbo...)

	computeQualityMetrics(c, env)
	return c
}

// computeQualityMetrics fills the C6-C21 metric vector for a candidate.
func computeQualityMetrics(c *candidate, env *bracketEnv) {
	m := &c.metrics

	// C6/C7: downfloater count and their scores, descending.
	m.downfloaters = len(c.unpaired)
	m.downfloaterScores = make([]float64, 0, len(c.unpaired))
	for _, e := range c.unpaired {
		m.downfloaterScores = append(m.downfloaterScores, e.p.Score)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(m.downfloaterScores)))

	// C8: downfloaters with nobody legal left in the next bracket.
	m.futureIncompatible = futureCompatibilityViolations(c.unpaired, env.nextBracket, env.previous)

	// C9: downfloaters who already scored without playing; floating them
	// again risks handing the bye to a player who has had one.
	for _, e := range c.unpaired {
		if e.p.HasFullPointBye() {
			m.byeUnplayed++
		}
	}

	// C10/C11: topscorer color criteria, final round only.
	if env.totalRounds > 0 && env.currentRound == env.totalRounds {
		for _, pr := range c.pairings {
			if !IsTopscorer(pr.White, env.currentRound, env.totalRounds) &&
				!IsTopscorer(pr.Black, env.currentRound, env.totalRounds) {
				continue
			}
			for _, side := range []struct {
				p        *Player
				assigned Color
			}{{pr.White, White}, {pr.Black, Black}} {
				if abs(colorDifferenceAfter(side.p, side.assigned)) > 2 {
					m.topscorerColorDiff++
				}
				if hasThreeConsecutive(side.p, side.assigned) {
					m.topscorerConsecutive++
				}
			}
		}
	}

	// C12/C13: preference and strong-preference violations.
	for _, pr := range c.pairings {
		wPref, wStrength := pr.White.ColorPreference()
		bPref, bStrength := pr.Black.ColorPreference()
		if wPref != NoColor && wPref != White {
			m.colorPrefViolations++
			if wStrength == PrefStrong {
				m.strongPrefViolations++
			}
		}
		if bPref != NoColor && bPref != Black {
			m.colorPrefViolations++
			if bStrength == PrefStrong {
				m.strongPrefViolations++
			}
		}
	}

	// MDP opponents: residents paired against moved-down players.
	var mdpOpponents []*Player
	for _, pr := range c.pairings {
		_, whiteMDP := c.mdpIDs[pr.White.ID]
		_, blackMDP := c.mdpIDs[pr.Black.ID]
		if whiteMDP && !blackMDP {
			mdpOpponents = append(mdpOpponents, pr.Black)
		} else if blackMDP && !whiteMDP {
			mdpOpponents = append(mdpOpponents, pr.White)
		}
	}

	residentDownfloaters := make([]*Player, 0, len(c.unpaired))
	for _, e := range c.unpaired {
		if _, ok := c.mdpIDs[e.p.ID]; !ok {
			residentDownfloaters = append(residentDownfloaters, e.p)
		}
	}

	// C14-C17: repeat float counts, one and two rounds back.
	for _, p := range residentDownfloaters {
		if p.FloatDirection(1, env.currentRound) == FloatDown {
			m.repeatDownfloaters++
		}
		if p.FloatDirection(2, env.currentRound) == FloatDown {
			m.twoBackDownfloaters++
		}
	}
	for _, p := range mdpOpponents {
		if p.FloatDirection(1, env.currentRound) == FloatUp {
			m.repeatUpfloaters++
		}
		if p.FloatDirection(2, env.currentRound) == FloatUp {
			m.twoBackUpfloaters++
		}
	}

	// C18-C21: score-difference lists for the repeat-float pairings.
	repeatDown := make(map[string]struct{})
	twoBackDown := make(map[string]struct{})
	for _, pr := range c.pairings {
		for _, p := range []*Player{pr.White, pr.Black} {
			if _, ok := c.mdpIDs[p.ID]; !ok {
				continue
			}
			if p.FloatDirection(1, env.currentRound) == FloatDown {
				repeatDown[p.ID] = struct{}{}
			}
			if p.FloatDirection(2, env.currentRound) == FloatDown {
				twoBackDown[p.ID] = struct{}{}
			}
		}
	}
	repeatUp := make(map[string]struct{})
	twoBackUp := make(map[string]struct{})
	for _, p := range mdpOpponents {
		if p.FloatDirection(1, env.currentRound) == FloatUp {
			repeatUp[p.ID] = struct{}{}
		}
		if p.FloatDirection(2, env.currentRound) == FloatUp {
			twoBackUp[p.ID] = struct{}{}
		}
	}
	m.repeatDownDiffs = scoreDiffList(c.pairings, repeatDown)
	m.repeatUpDiffs = scoreDiffList(c.pairings, repeatUp)
	m.twoBackDownDiffs = scoreDiffList(c.pairings, twoBackDown)
	m.twoBackUpDiffs = scoreDiffList(c.pairings, twoBackUp)
}

// futureCompatibilityViolations counts downfloaters for whom every player
// in the next bracket is already an old opponent.
func futureCompatibilityViolations(unpaired []*entrant, next []*Player, previous MatchSet) int {
	if len(next) == 0 {
		return 0
	}
	violations := 0
	for _, e := range unpaired {
		compatible := false
		for _, cand := range next {
			if cand.ID == e.p.ID {
				continue
			}
			if !previous.Has(e.p.ID, cand.ID) {
				compatible = true
				break
			}
		}
		if !compatible {
			violations++
		}
	}
	return violations
}

// scoreDiffList returns the descending score gaps of the pairings that
// involve any of the target players.
func scoreDiffList(pairings []Pairing, targets map[string]struct{}) []float64 {
	if len(targets) == 0 {
		return nil
	}
	var diffs []float64
	for _, pr := range pairings {
		_, w := targets[pr.White.ID]
		_, b := targets[pr.Black.ID]
		if w || b {
			diffs = append(diffs, absFloat(pr.White.Score-pr.Black.Score))
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(diffs)))
	return diffs
}

// generateTranspositions produces S2 orderings per Article 4.2: exhaustive
// for small brackets, sorted by the lexicographic BSN key of the first n1
// positions; heuristic sampling above that.
func generateTranspositions(s2 []*entrant, n1, maxConfigs int, strict bool) [][]*entrant {
	if len(s2) == 0 {
		return nil
	}
	if len(s2) == 1 {
		return [][]*entrant{append([]*entrant(nil), s2...)}
	}

	size := len(s2)
	switch {
	case size <= 6 || (strict && size <= 8):
		return completeTranspositions(s2, n1)
	case size <= 12:
		if maxConfigs <= 0 {
			maxConfigs = 50
		}
		return sampledTranspositions(s2, n1, maxConfigs, true)
	default:
		if maxConfigs <= 0 {
			maxConfigs = 25
		}
		return sampledTranspositions(s2, n1, maxConfigs, false)
	}
}

// completeTranspositions enumerates every permutation of S2, orders them by
// the first-n1 BSN key, and drops duplicate keys (Article 4.2.2).
func completeTranspositions(s2 []*entrant, n1 int) [][]*entrant {
	perms := permuteEntrants(s2)
	sort.SliceStable(perms, func(i, j int) bool {
		return compareIntLex(lexKey(perms[i], n1), lexKey(perms[j], n1)) < 0
	})

	seen := make(map[string]struct{}, len(perms))
	out := perms[:0]
	for _, perm := range perms {
		sig := keySignature(lexKey(perm, n1))
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, perm)
	}
	return out
}

// sampledTranspositions collects heuristic reorderings for brackets too
// large to enumerate: the identity, adjacent BSN swaps, score and rating
// sorts, structural patterns, and a seeded random sample. The result is
// re-sorted by the Article 4.2 key and capped.
func sampledTranspositions(s2 []*entrant, n1, maxConfigs int, withRandom bool) [][]*entrant {
	var out [][]*entrant
	seen := make(map[string]struct{})

	add := func(perm []*entrant) bool {
		sig := permSignature(perm)
		if _, ok := seen[sig]; ok {
			return len(out) < maxConfigs
		}
		seen[sig] = struct{}{}
		out = append(out, append([]*entrant(nil), perm...))
		return len(out) < maxConfigs
	}

	add(s2)

	// Adjacent-range BSN swaps biased toward the first n1 positions.
	n := len(s2)
	moves := n1 * 2
	if moves > 10 {
		moves = 10
	}
	for i := 0; i < moves && i < n-1; i++ {
		for j := i + 1; j < i+3 && j < n; j++ {
			perm := append([]*entrant(nil), s2...)
			perm[i], perm[j] = perm[j], perm[i]
			if !add(perm) {
				return finishTranspositions(out, n1, maxConfigs)
			}
		}
	}

	// Score- and rating-ordered variants.
	scoreSorted := append([]*entrant(nil), s2...)
	sort.SliceStable(scoreSorted, func(i, j int) bool {
		return ranksHigher(scoreSorted[i].p, scoreSorted[j].p)
	})
	ratingSorted := append([]*entrant(nil), s2...)
	sort.SliceStable(ratingSorted, func(i, j int) bool {
		if ratingSorted[i].p.Rating != ratingSorted[j].p.Rating {
			return ratingSorted[i].p.Rating > ratingSorted[j].p.Rating
		}
		return ratingSorted[i].p.PairingNumber < ratingSorted[j].p.PairingNumber
	})
	if !add(scoreSorted) || !add(ratingSorted) {
		return finishTranspositions(out, n1, maxConfigs)
	}

	// Structural patterns: reversal, interleaved halves, short rotations.
	reversed := make([]*entrant, n)
	for i, e := range s2 {
		reversed[n-1-i] = e
	}
	if !add(reversed) {
		return finishTranspositions(out, n1, maxConfigs)
	}
	if n >= 4 {
		mid := n / 2
		interleaved := make([]*entrant, 0, n)
		for i := 0; i < mid && i < n-mid; i++ {
			interleaved = append(interleaved, s2[i], s2[mid+i])
		}
		if n%2 == 1 {
			interleaved = append(interleaved, s2[n-1])
		}
		if !add(interleaved) {
			return finishTranspositions(out, n1, maxConfigs)
		}
	}
	for shift := 1; shift < 4 && shift < n; shift++ {
		rotated := append(append([]*entrant(nil), s2[shift:]...), s2[:shift]...)
		if !add(rotated) {
			return finishTranspositions(out, n1, maxConfigs)
		}
	}

	if withRandom {
		// Seeded by bracket size for reproducible search ordering.
		rng := rand.New(rand.NewSource(42 + int64(n)))
		for k := 0; k < 10; k++ {
			perm := append([]*entrant(nil), s2...)
			swaps := 1 + rng.Intn(3)
			for s := 0; s < swaps; s++ {
				i, j := rng.Intn(n), rng.Intn(n)
				perm[i], perm[j] = perm[j], perm[i]
			}
			if !add(perm) {
				break
			}
		}
	}

	return finishTranspositions(out, n1, maxConfigs)
}

func finishTranspositions(perms [][]*entrant, n1, maxConfigs int) [][]*entrant {
	sort.SliceStable(perms, func(i, j int) bool {
		return compareIntLex(lexKey(perms[i], n1), lexKey(perms[j], n1)) < 0
	})
	if len(perms) > maxConfigs {
		perms = perms[:maxConfigs]
	}
	return perms
}

// generateResidentExchanges produces S1/S2 swaps per Article 4.3, ordered
// by fewest exchanged players, then smallest BSN displacement, then the
// 4.3.3 BSN tiebreaks. Capped to keep large brackets tractable.
func generateResidentExchanges(s1, s2 []*entrant) [][2][]*entrant {
	if len(s1) == 0 || len(s2) == 0 {
		return nil
	}

	type exchange struct {
		count   int
		bsnDiff int
		negHiS1 int
		loS2    int
		s1, s2  []*entrant
	}
	var exchanges []exchange

	maxS1 := len(s1)
	if maxS1 > 8 {
		maxS1 = 8
	}
	maxS2 := len(s2)
	if maxS2 > 8 {
		maxS2 = 8
	}

	for i := 0; i < maxS1; i++ {
		for j := 0; j < maxS2; j++ {
			newS1 := append([]*entrant(nil), s1...)
			newS2 := append([]*entrant(nil), s2...)
			newS1[i], newS2[j] = newS2[j], newS1[i]
			sortEntrants(newS1)
			sortEntrants(newS2)
			exchanges = append(exchanges, exchange{
				count:   1,
				bsnDiff: abs(s2[j].bsn - s1[i].bsn),
				negHiS1: -s1[i].bsn,
				loS2:    s2[j].bsn,
				s1:      newS1,
				s2:      newS2,
			})
		}
	}

	// Two-player swaps only for very small halves.
	if len(s1) <= 4 && len(s2) <= 4 {
		for i1 := 0; i1 < len(s1); i1++ {
			for i2 := i1 + 1; i2 < len(s1); i2++ {
				for j1 := 0; j1 < len(s2); j1++ {
					for j2 := j1 + 1; j2 < len(s2); j2++ {
						newS1 := append([]*entrant(nil), s1...)
						newS2 := append([]*entrant(nil), s2...)
						newS1[i1], newS2[j1] = newS2[j1], newS1[i1]
						newS1[i2], newS2[j2] = newS2[j2], newS1[i2]
						sortEntrants(newS1)
						sortEntrants(newS2)
						hiS1 := s1[i1].bsn
						if s1[i2].bsn > hiS1 {
							hiS1 = s1[i2].bsn
						}
						loS2 := s2[j1].bsn
						if s2[j2].bsn < loS2 {
							loS2 = s2[j2].bsn
						}
						exchanges = append(exchanges, exchange{
							count:   2,
							bsnDiff: abs((s2[j1].bsn + s2[j2].bsn) - (s1[i1].bsn + s1[i2].bsn)),
							negHiS1: -hiS1,
							loS2:    loS2,
							s1:      newS1,
							s2:      newS2,
						})
					}
				}
			}
		}
	}

	sort.SliceStable(exchanges, func(i, j int) bool {
		a, b := exchanges[i], exchanges[j]
		if a.count != b.count {
			return a.count < b.count
		}
		if a.bsnDiff != b.bsnDiff {
			return a.bsnDiff < b.bsnDiff
		}
		if a.negHiS1 != b.negHiS1 {
			return a.negHiS1 < b.negHiS1
		}
		return a.loS2 < b.loS2
	})

	if len(exchanges) > 50 {
		exchanges = exchanges[:50]
	}
	out := make([][2][]*entrant, len(exchanges))
	for i, ex := range exchanges {
		out[i] = [2][]*entrant{ex.s1, ex.s2}
	}
	return out
}

// generatePairableMDPSets enumerates the size-m1 MDP subsets eligible to be
// paired in this bracket, per Article 4.4: higher-scoring MDPs above the
// cutoff are mandatory, ties at the cutoff rotate through combinations,
// and the sets are ordered by their ascending BSN lists.
func generatePairableMDPSets(mdps []*entrant, m1 int) [][]*entrant {
	if m1 <= 0 {
		return [][]*entrant{nil}
	}
	if len(mdps) == 0 {
		return nil
	}

	sorted := append([]*entrant(nil), mdps...)
	sortEntrants(sorted)
	if m1 >= len(sorted) {
		return [][]*entrant{sorted}
	}

	uniform := true
	for _, e := range sorted[1:] {
		if e.p.Score != sorted[0].p.Score {
			uniform = false
			break
		}
	}

	var sets [][]*entrant
	if uniform {
		sets = combinations(sorted, m1)
	} else {
		cutoff := sorted[m1-1].p.Score
		var mustInclude, atCutoff []*entrant
		for _, e := range sorted {
			if e.p.Score > cutoff {
				mustInclude = append(mustInclude, e)
			} else if e.p.Score == cutoff {
				atCutoff = append(atCutoff, e)
			}
		}
		slots := m1 - len(mustInclude)
		if slots <= 0 {
			sets = [][]*entrant{mustInclude[:m1]}
		} else {
			for _, combo := range combinations(atCutoff, slots) {
				set := append(append([]*entrant(nil), mustInclude...), combo...)
				sets = append(sets, set)
			}
		}
	}

	sort.SliceStable(sets, func(i, j int) bool {
		return compareIntLex(bsnList(sets[i]), bsnList(sets[j])) < 0
	})
	return sets
}

// lexKey returns the first-n1 BSN signature used for Article 4.2 ordering.
func lexKey(perm []*entrant, n1 int) []int {
	n := n1
	if n > len(perm) {
		n = len(perm)
	}
	key := make([]int, n)
	for i := 0; i < n; i++ {
		key[i] = perm[i].bsn
	}
	return key
}

func bsnList(es []*entrant) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.bsn
	}
	return out
}

func compareIntLex(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func keySignature(key []int) string {
	var sb strings.Builder
	for _, v := range key {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(',')
	}
	return sb.String()
}

func permSignature(perm []*entrant) string {
	var sb strings.Builder
	for _, e := range perm {
		sb.WriteString(e.p.ID)
		sb.WriteByte('|')
	}
	return sb.String()
}

// permuteEntrants enumerates all permutations via Heap's algorithm. Only
// invoked for brackets small enough to enumerate exhaustively.
func permuteEntrants(es []*entrant) [][]*entrant {
	work := append([]*entrant(nil), es...)
	var out [][]*entrant

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			out = append(out, append([]*entrant(nil), work...))
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
		}
	}
	generate(len(work))
	return out
}

func combinations(es []*entrant, k int) [][]*entrant {
	if k == 0 {
		return [][]*entrant{nil}
	}
	if k > len(es) {
		return nil
	}
	var out [][]*entrant
	combo := make([]*entrant, 0, k)

	var recurse func(start int)
	recurse = func(start int) {
		if len(combo) == k {
			out = append(out, append([]*entrant(nil), combo...))
			return
		}
		for i := start; i <= len(es)-(k-len(combo)); i++ {
			combo = append(combo, es[i])
			recurse(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	recurse(0)
	return out
}

func excludeEntrants(all, exclude []*entrant) []*entrant {
	excluded := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		excluded[e.p.ID] = struct{}{}
	}
	var out []*entrant
	for _, e := range all {
		if _, ok := excluded[e.p.ID]; !ok {
			out = append(out, e)
		}
	}
	return out
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

