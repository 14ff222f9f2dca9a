/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package fpc validates Dutch-system pairings against the FIDE handbook
// criteria C1 through C21. The engine in the swiss package strives to meet
// these criteria; this package independently checks whether a given round
// (or a whole tournament record) actually does.
package fpc

import (
	"fmt"
	"log"
	"sort"

	"github.com/mikeb26/swisspair/swiss"
)

type CriterionStatus int

const (
	Compliant CriterionStatus = iota
	Violation
	NotApplicable
)

func (s CriterionStatus) String() string {
	switch s {
	case Compliant:
		return "COMPLIANT"
	case Violation:
		return "VIOLATION"
	case NotApplicable:
		return "NOT_APPLICABLE"
	}
	return "UNKNOWN"
}

type ViolationType int

const (
	// Absolute criteria must never be violated.
	Absolute ViolationType = iota
	// Quality criteria are minimized, not guaranteed.
	Quality
	Warning
)

func (t ViolationType) String() string {
	switch t {
	case Absolute:
		return "ABSOLUTE"
	case Quality:
		return "QUALITY"
	case Warning:
		return "WARNING"
	}
	return "UNKNOWN"
}

// CriterionResult records the outcome of checking one criterion.
type CriterionResult struct {
	Criterion   string
	Status      CriterionStatus
	Type        ViolationType
	Description string
	Round       int
	Players     []string
}

// Report aggregates the criterion results for a round or tournament.
type Report struct {
	TotalCriteria   int
	CompliantCount  int
	Violations      []CriterionResult
	QualityWarnings []CriterionResult
	OverallStatus   CriterionStatus
	Summary         string
	Results         []CriterionResult
}

func (r *Report) CompliancePercentage() float64 {
	if r.TotalCriteria == 0 {
		return 100.0
	}
	return float64(r.CompliantCount) / float64(r.TotalCriteria) * 100.0
}

// RoundInput carries everything needed to validate one round's pairings.
// Players should hold every player eligible to be paired this round;
// Previous holds all pairs that met in earlier rounds; ByeHistory counts
// pairing-allocated byes per player id before this round.
type RoundInput struct {
	Pairings     []swiss.Pairing
	Bye          *swiss.Player
	Players      []*swiss.Player
	CurrentRound int
	TotalRounds  int
	Previous     swiss.MatchSet
	ByeHistory   map[string]int
}

// roundContext precomputes the floater and color views the quality
// criteria share.
type roundContext struct {
	in             *RoundInput
	assignedColors map[string]swiss.Color
	downfloaters   []*swiss.Player
	mdpOpponents   []*swiss.Player
	eligibleBye    []*swiss.Player
}

// ValidateRound checks one round's pairings against C1-C21 and returns a
// full report. Criteria that cannot apply yet (floats before round 2,
// topscorer rules outside the final round) are reported NOT_APPLICABLE or
// omitted, matching how the criteria are defined.
func ValidateRound(in *RoundInput) *Report {
	log.Printf("fpc: validating round %v/%v", in.CurrentRound, in.TotalRounds)

	if in.Previous == nil {
		in.Previous = swiss.NewMatchSet()
	}

	ctx := buildContext(in)

	results := []CriterionResult{
		checkC1NoRepeats(ctx),
		checkC2NoRepeatBye(ctx),
		checkC3AbsolutePreferences(ctx),
		checkC4Completion(ctx),
		checkC5ByeScore(ctx),
		checkC6MaxPairs(ctx),
		checkC7DownfloaterScores(ctx),
		checkC8NextBracketCompat(ctx),
		checkC9ByeUnplayed(ctx),
	}

	if in.TotalRounds > 0 && in.CurrentRound == in.TotalRounds {
		results = append(results,
			checkC10TopscorerColorDiff(ctx),
			checkC11TopscorerConsecutive(ctx))
	}

	results = append(results,
		checkC12ColorPreferences(ctx),
		checkC13StrongPreferences(ctx))

	if in.CurrentRound >= 2 {
		results = append(results,
			checkRepeatFloaters(ctx, "C14", 1, swiss.FloatDown),
			checkRepeatFloaters(ctx, "C15", 1, swiss.FloatUp))
	}
	if in.CurrentRound >= 3 {
		results = append(results,
			checkRepeatFloaters(ctx, "C16", 2, swiss.FloatDown),
			checkRepeatFloaters(ctx, "C17", 2, swiss.FloatUp))
	}
	if in.CurrentRound >= 2 {
		results = append(results,
			checkFloaterScoreDiffs(ctx, "C18", 1, swiss.FloatDown),
			checkFloaterScoreDiffs(ctx, "C19", 1, swiss.FloatUp))
	}
	if in.CurrentRound >= 3 {
		results = append(results,
			checkFloaterScoreDiffs(ctx, "C20", 2, swiss.FloatDown),
			checkFloaterScoreDiffs(ctx, "C21", 2, swiss.FloatUp))
	}

	return buildReport(results)
}

// CheckFeasibility reports whether a tournament of the given size can
// complete without repeat pairings: R rounds of floor(N/2) boards must fit
// within the N*(N-1)/2 distinct pairs. Returns nil when feasible.
func CheckFeasibility(numPlayers, numRounds int) *CriterionResult {
	if numPlayers < 2 || numRounds < 1 {
		return nil
	}

	maxUnique := numPlayers * (numPlayers - 1) / 2
	needed := numRounds * (numPlayers / 2)
	if needed <= maxUnique {
		return nil
	}

	return &CriterionResult{
		Criterion: "C1",
		Status:    Violation,
		Type:      Absolute,
		Description: fmt.Sprintf(
			"%v players over %v rounds requires %v pairings but only %v unique pairings exist (minimum %v repeats)",
			numPlayers, numRounds, needed, maxUnique, needed-maxUnique),
	}
}

func buildContext(in *RoundInput) *roundContext {
	ctx := &roundContext{
		in:             in,
		assignedColors: make(map[string]swiss.Color),
	}
	for _, pr := range in.Pairings {
		ctx.assignedColors[pr.White.ID] = swiss.White
		ctx.assignedColors[pr.Black.ID] = swiss.Black
	}
	if in.Bye != nil {
		ctx.assignedColors[in.Bye.ID] = swiss.NoColor
	}

	for _, pr := range in.Pairings {
		switch {
		case pr.White.Score > pr.Black.Score:
			ctx.downfloaters = append(ctx.downfloaters, pr.White)
			ctx.mdpOpponents = append(ctx.mdpOpponents, pr.Black)
		case pr.Black.Score > pr.White.Score:
			ctx.downfloaters = append(ctx.downfloaters, pr.Black)
			ctx.mdpOpponents = append(ctx.mdpOpponents, pr.White)
		}
	}
	if in.Bye != nil {
		ctx.downfloaters = append(ctx.downfloaters, in.Bye)
	}

	for _, p := range in.Players {
		if !p.HasReceivedBye && !p.HasFullPointBye() {
			ctx.eligibleBye = append(ctx.eligibleBye, p)
		}
	}
	return ctx
}

func buildReport(results []CriterionResult) *Report {
	r := &Report{
		TotalCriteria: len(results),
		Results:       results,
		OverallStatus: Compliant,
	}
	for _, res := range results {
		switch {
		case res.Status == Compliant:
			r.CompliantCount++
		case res.Status == Violation && res.Type == Absolute:
			r.Violations = append(r.Violations, res)
		case res.Status == Violation && res.Type == Quality:
			r.QualityWarnings = append(r.QualityWarnings, res)
		}
	}

	if len(r.Violations) > 0 {
		r.OverallStatus = Violation
		r.Summary = fmt.Sprintf("Absolute violations detected - %v criteria failed; %v quality warnings",
			len(r.Violations), len(r.QualityWarnings))
	} else {
		r.Summary = fmt.Sprintf("Absolute criteria satisfied; %v quality criteria flagged",
			len(r.QualityWarnings))
	}

	log.Printf("fpc: validation complete: %v", r.Summary)
	return r
}

// C1: no two players meet more than once.
func checkC1NoRepeats(ctx *roundContext) CriterionResult {
	for _, pr := range ctx.in.Pairings {
		if ctx.in.Previous.Has(pr.White.ID, pr.Black.ID) {
			return CriterionResult{
				Criterion: "C1",
				Status:    Violation,
				Type:      Absolute,
				Description: fmt.Sprintf("Repeat pairing: %v vs %v",
					pr.White.Name, pr.Black.Name),
				Players: []string{pr.White.ID, pr.Black.ID},
			}
		}
	}
	return CriterionResult{Criterion: "C1", Status: Compliant,
		Description: "No repeat pairings found"}
}

// C2: the pairing-allocated bye goes to a player who has had neither a bye
// nor a full-point unplayed round.
func checkC2NoRepeatBye(ctx *roundContext) CriterionResult {
	bye := ctx.in.Bye
	if bye == nil {
		return CriterionResult{Criterion: "C2", Status: NotApplicable,
			Description: "No bye assigned in this round"}
	}

	if ctx.in.ByeHistory[bye.ID] > 0 || bye.HasFullPointBye() {
		return CriterionResult{
			Criterion:   "C2",
			Status:      Violation,
			Type:        Absolute,
			Description: fmt.Sprintf("Repeat bye: %v", bye.Name),
			Players:     []string{bye.ID},
		}
	}
	return CriterionResult{Criterion: "C2", Status: Compliant,
		Description: fmt.Sprintf("Bye assignment valid: %v", bye.Name)}
}

// C3: in the final round, non-topscorers sharing the same absolute color
// preference shall not meet.
func checkC3AbsolutePreferences(ctx *roundContext) CriterionResult {
	in := ctx.in
	if in.TotalRounds <= 0 || in.CurrentRound != in.TotalRounds {
		return CriterionResult{Criterion: "C3", Status: NotApplicable,
			Description: "C3 only applies in final round"}
	}

	var conflicted []string
	for _, pr := range in.Pairings {
		if swiss.IsTopscorer(pr.White, in.CurrentRound, in.TotalRounds) ||
			swiss.IsTopscorer(pr.Black, in.CurrentRound, in.TotalRounds) {
			continue
		}
		wPref, wStrength := pr.White.ColorPreference()
		bPref, bStrength := pr.Black.ColorPreference()
		if wStrength == swiss.PrefAbsolute && bStrength == swiss.PrefAbsolute &&
			wPref != swiss.NoColor && wPref == bPref {
			conflicted = append(conflicted, pr.White.ID, pr.Black.ID)
		}
	}

	if len(conflicted) > 0 {
		return CriterionResult{
			Criterion: "C3",
			Status:    Violation,
			Type:      Absolute,
			Description: fmt.Sprintf("Absolute preference conflicts found: %v",
				len(conflicted)/2),
			Players: conflicted,
		}
	}
	return CriterionResult{Criterion: "C3", Status: Compliant,
		Description: "No absolute preference conflicts"}
}

// C4: every active player is paired or has the bye. Left-out players are a
// quality issue unless one of them has no legal opponent at all, which
// means the absolute criteria themselves were unsatisfiable.
func checkC4Completion(ctx *roundContext) CriterionResult {
	in := ctx.in
	if len(in.Players) == 0 {
		return CriterionResult{Criterion: "C4", Status: NotApplicable,
			Description: "No players supplied for completion check"}
	}

	var unpaired []*swiss.Player
	for _, p := range in.Players {
		if !p.IsActive {
			continue
		}
		if _, ok := ctx.assignedColors[p.ID]; !ok {
			unpaired = append(unpaired, p)
		}
	}
	if len(unpaired) == 0 {
		return CriterionResult{Criterion: "C4", Status: Compliant,
			Description: "All active players paired or assigned a bye"}
	}

	unavoidable := false
	for _, p := range unpaired {
		hasOpponent := false
		for _, other := range in.Players {
			if other.ID == p.ID || !other.IsActive {
				continue
			}
			if !in.Previous.Has(p.ID, other.ID) {
				hasOpponent = true
				break
			}
		}
		if !hasOpponent {
			unavoidable = true
			break
		}
	}

	vtype := Quality
	desc := "Some active players were not paired"
	if unavoidable {
		vtype = Absolute
		desc = "Cannot create pairings without violating C1 (no repeat pairings)"
	}

	names := make([]string, 0, len(unpaired))
	for _, p := range unpaired {
		names = append(names, p.ID)
	}
	return CriterionResult{
		Criterion:   "C4",
		Status:      Violation,
		Type:        vtype,
		Description: desc,
		Players:     names,
	}
}

// C5: the bye goes to the lowest-scoring eligible player.
func checkC5ByeScore(ctx *roundContext) CriterionResult {
	bye := ctx.in.Bye
	if bye == nil {
		return CriterionResult{Criterion: "C5", Status: NotApplicable,
			Description: "No bye assigned in this round"}
	}
	if len(ctx.eligibleBye) == 0 {
		return CriterionResult{Criterion: "C5", Status: NotApplicable,
			Description: "No eligible bye candidates"}
	}

	minScore := ctx.eligibleBye[0].Score
	for _, p := range ctx.eligibleBye[1:] {
		if p.Score < minScore {
			minScore = p.Score
		}
	}
	if bye.Score > minScore {
		return CriterionResult{
			Criterion: "C5",
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Bye assignee score not minimal: %v has %v, minimum is %v",
				bye.Name, bye.Score, minScore),
			Players: []string{bye.ID},
		}
	}
	return CriterionResult{Criterion: "C5", Status: Compliant,
		Description: "Bye score minimized"}
}

// C6: the round contains the maximum possible number of pairs.
func checkC6MaxPairs(ctx *roundContext) CriterionResult {
	active := 0
	for _, p := range ctx.in.Players {
		if p.IsActive {
			active++
		}
	}
	expected := active / 2
	if len(ctx.in.Pairings) < expected {
		return CriterionResult{
			Criterion: "C6",
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Fewer pairs than maximum possible: %v of %v",
				len(ctx.in.Pairings), expected),
		}
	}
	return CriterionResult{Criterion: "C6", Status: Compliant,
		Description: "Maximum number of pairs achieved"}
}

// C7: no downfloater outranks a player who stayed in bracket.
func checkC7DownfloaterScores(ctx *roundContext) CriterionResult {
	if len(ctx.downfloaters) == 0 {
		return CriterionResult{Criterion: "C7", Status: NotApplicable,
			Description: "No downfloaters to evaluate"}
	}

	down := make(map[string]struct{}, len(ctx.downfloaters))
	maxDown := ctx.downfloaters[0].Score
	for _, p := range ctx.downfloaters {
		down[p.ID] = struct{}{}
		if p.Score > maxDown {
			maxDown = p.Score
		}
	}

	haveOther := false
	minOther := 0.0
	for _, p := range ctx.in.Players {
		if !p.IsActive {
			continue
		}
		if _, ok := down[p.ID]; ok {
			continue
		}
		if !haveOther || p.Score < minOther {
			minOther = p.Score
			haveOther = true
		}
	}

	if haveOther && maxDown > minOther {
		return CriterionResult{
			Criterion:   "C7",
			Status:      Violation,
			Type:        Quality,
			Description: "Higher-scoring players floated down",
		}
	}
	return CriterionResult{Criterion: "C7", Status: Compliant,
		Description: "Downfloater scores minimized"}
}

// C8: each downfloater still has a legal opponent at or below its score.
func checkC8NextBracketCompat(ctx *roundContext) CriterionResult {
	if len(ctx.downfloaters) == 0 {
		return CriterionResult{Criterion: "C8", Status: NotApplicable,
			Description: "No downfloaters to evaluate"}
	}

	var incompatible []string
	for _, d := range ctx.downfloaters {
		found := false
		for _, p := range ctx.in.Players {
			if p.ID == d.ID || p.Score > d.Score {
				continue
			}
			if !ctx.in.Previous.Has(p.ID, d.ID) {
				found = true
				break
			}
		}
		if !found {
			incompatible = append(incompatible, d.ID)
		}
	}

	if len(incompatible) > 0 {
		return CriterionResult{
			Criterion:   "C8",
			Status:      Violation,
			Type:        Quality,
			Description: "Downfloaters lack compatible future opponents",
			Players:     incompatible,
		}
	}
	return CriterionResult{Criterion: "C8", Status: Compliant,
		Description: "Downfloaters compatible with next bracket"}
}

// C9: the bye assignee has no more unplayed rounds than necessary.
func checkC9ByeUnplayed(ctx *roundContext) CriterionResult {
	bye := ctx.in.Bye
	if bye == nil {
		return CriterionResult{Criterion: "C9", Status: NotApplicable,
			Description: "No bye assigned in this round"}
	}
	if len(ctx.eligibleBye) == 0 {
		return CriterionResult{Criterion: "C9", Status: NotApplicable,
			Description: "No eligible bye candidates"}
	}

	unplayed := func(p *swiss.Player) int {
		return ctx.in.CurrentRound - 1 - p.GamesPlayed()
	}
	minUnplayed := unplayed(ctx.eligibleBye[0])
	for _, p := range ctx.eligibleBye[1:] {
		if u := unplayed(p); u < minUnplayed {
			minUnplayed = u
		}
	}
	if unplayed(bye) > minUnplayed {
		return CriterionResult{
			Criterion:   "C9",
			Status:      Violation,
			Type:        Quality,
			Description: "Bye assignee has more unplayed games than necessary",
			Players:     []string{bye.ID},
		}
	}
	return CriterionResult{Criterion: "C9", Status: Compliant,
		Description: "Bye assignee unplayed games minimized"}
}

// C10: in topscorer pairings neither side's color difference may pass 2.
func checkC10TopscorerColorDiff(ctx *roundContext) CriterionResult {
	in := ctx.in
	var violators []string
	for _, pr := range in.Pairings {
		if !swiss.IsTopscorer(pr.White, in.CurrentRound, in.TotalRounds) &&
			!swiss.IsTopscorer(pr.Black, in.CurrentRound, in.TotalRounds) {
			continue
		}
		if d := pr.White.ColorImbalance() + 1; d > 2 || d < -2 {
			violators = append(violators, pr.White.ID)
		}
		if d := pr.Black.ColorImbalance() - 1; d > 2 || d < -2 {
			violators = append(violators, pr.Black.ID)
		}
	}

	if len(violators) > 0 {
		return CriterionResult{
			Criterion: "C10",
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Topscorer color difference issues: %v",
				len(violators)),
			Players: violators,
		}
	}
	return CriterionResult{Criterion: "C10", Status: Compliant,
		Description: "No excessive topscorer color differences"}
}

// C11: in topscorer pairings neither side gets a third consecutive color.
func checkC11TopscorerConsecutive(ctx *roundContext) CriterionResult {
	in := ctx.in
	var violators []string
	for _, pr := range in.Pairings {
		if !swiss.IsTopscorer(pr.White, in.CurrentRound, in.TotalRounds) &&
			!swiss.IsTopscorer(pr.Black, in.CurrentRound, in.TotalRounds) {
			continue
		}
		if wouldBeThirdConsecutive(pr.White, swiss.White) {
			violators = append(violators, pr.White.ID)
		}
		if wouldBeThirdConsecutive(pr.Black, swiss.Black) {
			violators = append(violators, pr.Black.ID)
		}
	}

	if len(violators) > 0 {
		return CriterionResult{
			Criterion: "C11",
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Consecutive color issues: %v",
				len(violators)),
			Players: violators,
		}
	}
	return CriterionResult{Criterion: "C11", Status: Compliant,
		Description: "No topscorer consecutive color issues"}
}

func wouldBeThirdConsecutive(p *swiss.Player, assigned swiss.Color) bool {
	colors := append(p.PlayedColors(), assigned)
	if len(colors) < 3 {
		return false
	}
	last := colors[len(colors)-3:]
	return last[0] == last[1] && last[1] == last[2]
}

// C12: every paired player should receive their preferred color.
func checkC12ColorPreferences(ctx *roundContext) CriterionResult {
	var violators []string
	for _, p := range ctx.in.Players {
		assigned, ok := ctx.assignedColors[p.ID]
		if !ok || assigned == swiss.NoColor {
			continue
		}
		pref, _ := p.ColorPreference()
		if pref != swiss.NoColor && assigned != pref {
			violators = append(violators, p.ID)
		}
	}

	if len(violators) > 0 {
		return CriterionResult{
			Criterion: "C12",
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Color preference violations: %v",
				len(violators)),
			Players: violators,
		}
	}
	return CriterionResult{Criterion: "C12", Status: Compliant,
		Description: "Color preferences satisfied"}
}

// C13: strong preferences specifically should be honored.
func checkC13StrongPreferences(ctx *roundContext) CriterionResult {
	var violators []string
	for _, p := range ctx.in.Players {
		assigned, ok := ctx.assignedColors[p.ID]
		if !ok || assigned == swiss.NoColor {
			continue
		}
		pref, strength := p.ColorPreference()
		if strength == swiss.PrefStrong && pref != swiss.NoColor &&
			assigned != pref {
			violators = append(violators, p.ID)
		}
	}

	if len(violators) > 0 {
		return CriterionResult{
			Criterion: "C13",
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Strong preference violations: %v",
				len(violators)),
			Players: violators,
		}
	}
	return CriterionResult{Criterion: "C13", Status: Compliant,
		Description: "Strong preferences satisfied"}
}

// checkRepeatFloaters covers C14-C17: players floating in the same
// direction they floated roundsBack rounds ago. Downfloat repeats are
// checked against this round's downfloaters, upfloat repeats against the
// opponents pulled up to face them.
func checkRepeatFloaters(ctx *roundContext, criterion string, roundsBack int,
	dir swiss.FloatDirection) CriterionResult {

	pool := ctx.downfloaters
	if dir == swiss.FloatUp {
		pool = ctx.mdpOpponents
	}

	var repeaters []string
	for _, p := range pool {
		if p.FloatDirection(roundsBack, ctx.in.CurrentRound) == dir {
			repeaters = append(repeaters, p.ID)
		}
	}

	if len(repeaters) > 0 {
		return CriterionResult{
			Criterion: criterion,
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Repeat %v floaters (%v back): %v",
				floatWord(dir), roundsBack, len(repeaters)),
			Players: repeaters,
		}
	}
	return CriterionResult{Criterion: criterion, Status: Compliant,
		Description: fmt.Sprintf("Repeat %v floaters minimized", floatWord(dir))}
}

// checkFloaterScoreDiffs covers C18-C21: the score gaps in pairings that
// repeat a float from roundsBack rounds ago.
func checkFloaterScoreDiffs(ctx *roundContext, criterion string, roundsBack int,
	dir swiss.FloatDirection) CriterionResult {

	round := ctx.in.CurrentRound
	var diffs []float64
	for _, pr := range ctx.in.Pairings {
		hi, lo := pr.White, pr.Black
		if lo.Score > hi.Score {
			hi, lo = lo, hi
		}
		if hi.Score == lo.Score {
			continue
		}
		target := hi
		if dir == swiss.FloatUp {
			target = lo
		}
		if target.FloatDirection(roundsBack, round) == dir {
			diffs = append(diffs, hi.Score-lo.Score)
		}
	}

	if len(diffs) > 0 {
		sort.Sort(sort.Reverse(sort.Float64Slice(diffs)))
		return CriterionResult{
			Criterion: criterion,
			Status:    Violation,
			Type:      Quality,
			Description: fmt.Sprintf("Repeat %v floater score differences detected: %v",
				floatWord(dir), diffs),
		}
	}
	return CriterionResult{Criterion: criterion, Status: Compliant,
		Description: fmt.Sprintf("Repeat %v floater score differences minimized",
			floatWord(dir))}
}

func floatWord(dir swiss.FloatDirection) string {
	if dir == swiss.FloatUp {
		return "up"
	}
	return "down"
}
