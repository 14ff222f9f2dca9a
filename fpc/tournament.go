/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fpc

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/mikeb26/swisspair/swiss"
)

// GameResult is one decided board: WhiteScore is 1, 0.5, or 0, and Black
// receives the complement.
type GameResult struct {
	WhiteID    string  `json:"whiteId"`
	BlackID    string  `json:"blackId"`
	WhiteScore float64 `json:"whiteScore"`
}

// RoundRecord is one round of a tournament as it was actually paired and
// played. Pairings list white then black by player id.
type RoundRecord struct {
	RoundNumber   int          `json:"roundNumber"`
	Pairings      [][2]string  `json:"pairings"`
	ByeID         string       `json:"byePlayerId"`
	HalfPointByes []string     `json:"halfPointByes"`
	ZeroPointByes []string     `json:"zeroPointByes"`
	Results       []GameResult `json:"results"`
}

// TournamentRecord is a complete tournament for replay validation. Players
// hold their pre-tournament state; histories are rebuilt round by round.
type TournamentRecord struct {
	Players   []*swiss.Player
	NumRounds int
	Rounds    []RoundRecord
}

// ValidateTournament replays a recorded tournament from the start,
// validating every round against the criteria with the player histories as
// they stood when that round was paired. A structurally infeasible
// tournament short-circuits to a single absolute violation.
func ValidateTournament(rec *TournamentRecord) *Report {
	log.Printf("fpc: validating tournament of %v players over %v rounds",
		len(rec.Players), len(rec.Rounds))

	if len(rec.Players) == 0 || len(rec.Rounds) == 0 {
		return &Report{
			OverallStatus: NotApplicable,
			Summary:       "No tournament data provided for validation",
		}
	}

	numRounds := rec.NumRounds
	if numRounds == 0 {
		numRounds = len(rec.Rounds)
	}
	if infeasible := CheckFeasibility(len(rec.Players), numRounds); infeasible != nil {
		log.Printf("fpc: tournament configuration is infeasible: %v",
			infeasible.Description)
		return &Report{
			TotalCriteria: 1,
			Violations:    []CriterionResult{*infeasible},
			OverallStatus: Violation,
			Summary:       infeasible.Description,
			Results:       []CriterionResult{*infeasible},
		}
	}

	playerMap := make(map[string]*swiss.Player, len(rec.Players))
	for _, p := range rec.Players {
		playerMap[p.ID] = clonePlayer(p)
	}

	agg := &Report{OverallStatus: Compliant}
	previous := swiss.NewMatchSet()
	byeHistory := make(map[string]int)

	rounds := append([]RoundRecord(nil), rec.Rounds...)
	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].RoundNumber < rounds[j].RoundNumber
	})

	for _, round := range rounds {
		scheduled := make(map[string]struct{})
		for _, id := range round.HalfPointByes {
			scheduled[id] = struct{}{}
		}
		for _, id := range round.ZeroPointByes {
			scheduled[id] = struct{}{}
		}

		var pairings []swiss.Pairing
		for _, pair := range round.Pairings {
			white, wok := playerMap[pair[0]]
			black, bok := playerMap[pair[1]]
			if !wok || !bok {
				continue
			}
			pairings = append(pairings, swiss.Pairing{White: white, Black: black})
		}
		bye := playerMap[round.ByeID]

		var roundPlayers []*swiss.Player
		for _, p := range playerMap {
			if _, ok := scheduled[p.ID]; !ok {
				roundPlayers = append(roundPlayers, p)
			}
		}
		sort.Slice(roundPlayers, func(i, j int) bool {
			return roundPlayers[i].ID < roundPlayers[j].ID
		})

		report := ValidateRound(&RoundInput{
			Pairings:     pairings,
			Bye:          bye,
			Players:      roundPlayers,
			CurrentRound: round.RoundNumber,
			TotalRounds:  numRounds,
			Previous:     previous,
			ByeHistory:   byeHistory,
		})

		agg.TotalCriteria += report.TotalCriteria
		agg.CompliantCount += report.CompliantCount
		for _, v := range report.Violations {
			v.Round = round.RoundNumber
			agg.Violations = append(agg.Violations, v)
		}
		for _, w := range report.QualityWarnings {
			w.Round = round.RoundNumber
			agg.QualityWarnings = append(agg.QualityWarnings, w)
		}

		for _, pr := range pairings {
			previous.Add(pr.White.ID, pr.Black.ID)
		}
		if bye != nil {
			byeHistory[bye.ID]++
		}

		applyRoundResults(&round, playerMap, bye)
	}

	agg.Summary = tournamentSummary(agg)
	if len(agg.Violations) > 0 {
		agg.OverallStatus = Violation
	}
	return agg
}

// applyRoundResults advances the replayed player histories past one round.
// Both sides' entering scores are captured before either is updated.
func applyRoundResults(round *RoundRecord, playerMap map[string]*swiss.Player,
	bye *swiss.Player) {

	for _, res := range round.Results {
		white, wok := playerMap[res.WhiteID]
		black, bok := playerMap[res.BlackID]
		if !wok || !bok {
			continue
		}
		whiteScore, blackScore := white.Score, black.Score
		white.AddRoundResult(black.ID, blackScore, res.WhiteScore, swiss.White)
		black.AddRoundResult(white.ID, whiteScore, 1.0-res.WhiteScore, swiss.Black)
	}

	if bye != nil && round.RoundNumber > len(bye.Results) {
		bye.AddByeResult(1.0)
	}
	for _, id := range round.HalfPointByes {
		if p, ok := playerMap[id]; ok && round.RoundNumber > len(p.Results) {
			p.AddRequestedBye(0.5)
		}
	}
	for _, id := range round.ZeroPointByes {
		if p, ok := playerMap[id]; ok && round.RoundNumber > len(p.Results) {
			p.AddRequestedBye(0.0)
		}
	}
}

func tournamentSummary(agg *Report) string {
	if agg.TotalCriteria == 0 ||
		(len(agg.Violations) == 0 && len(agg.QualityWarnings) == 0) {
		return "Tournament validation complete"
	}

	var ids []string
	c4Absolute := false
	for _, v := range agg.Violations {
		ids = append(ids, v.Criterion)
		if v.Criterion == "C4" {
			c4Absolute = true
		}
	}
	for _, w := range agg.QualityWarnings {
		ids = append(ids, w.Criterion)
	}

	note := ""
	if c4Absolute {
		note = " (C4 violations indicate C1-C3 cannot be satisfied)"
	}
	return fmt.Sprintf("Tournament validation complete - %v absolute violations, %v quality warnings (%v)%v",
		len(agg.Violations), len(agg.QualityWarnings), strings.Join(ids, " "), note)
}

func clonePlayer(p *swiss.Player) *swiss.Player {
	clone := *p
	clone.ColorHistory = append([]swiss.Color(nil), p.ColorHistory...)
	clone.OpponentIDs = append([]string(nil), p.OpponentIDs...)
	clone.Results = append([]float64(nil), p.Results...)
	clone.MatchHistory = append([]swiss.MatchInfo(nil), p.MatchHistory...)
	clone.FloatHistory = append([]int(nil), p.FloatHistory...)
	return &clone
}
