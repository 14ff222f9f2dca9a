/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTournamentEmpty(t *testing.T) {
	report := ValidateTournament(&TournamentRecord{})
	require.Equal(t, NotApplicable, report.OverallStatus)
}

func TestValidateTournamentInfeasible(t *testing.T) {
	report := ValidateTournament(&TournamentRecord{
		Players:   testField(1800, 1700, 1600, 1500),
		NumRounds: 4,
		Rounds: []RoundRecord{
			{RoundNumber: 1, Pairings: [][2]string{{"p1", "p3"}, {"p2", "p4"}}},
		},
	})

	require.Equal(t, Violation, report.OverallStatus)
	require.Len(t, report.Violations, 1)
	require.Equal(t, "C1", report.Violations[0].Criterion)
}

func TestValidateTournamentClean(t *testing.T) {
	report := ValidateTournament(&TournamentRecord{
		Players:   testField(1800, 1700, 1600, 1500),
		NumRounds: 3,
		Rounds: []RoundRecord{
			{
				RoundNumber: 1,
				Pairings:    [][2]string{{"p1", "p3"}, {"p2", "p4"}},
				Results: []GameResult{
					{WhiteID: "p1", BlackID: "p3", WhiteScore: 1.0},
					{WhiteID: "p2", BlackID: "p4", WhiteScore: 1.0},
				},
			},
			{
				RoundNumber: 2,
				Pairings:    [][2]string{{"p2", "p1"}, {"p4", "p3"}},
				Results: []GameResult{
					{WhiteID: "p2", BlackID: "p1", WhiteScore: 0.5},
					{WhiteID: "p4", BlackID: "p3", WhiteScore: 0.0},
				},
			},
		},
	})

	require.Empty(t, report.Violations)
	require.Equal(t, Compliant, report.OverallStatus)
	require.Greater(t, report.TotalCriteria, 0)
}

func TestValidateTournamentRematch(t *testing.T) {
	report := ValidateTournament(&TournamentRecord{
		Players:   testField(1800, 1700, 1600, 1500),
		NumRounds: 3,
		Rounds: []RoundRecord{
			{
				RoundNumber: 1,
				Pairings:    [][2]string{{"p1", "p3"}, {"p2", "p4"}},
				Results: []GameResult{
					{WhiteID: "p1", BlackID: "p3", WhiteScore: 1.0},
					{WhiteID: "p2", BlackID: "p4", WhiteScore: 1.0},
				},
			},
			{
				RoundNumber: 2,
				Pairings:    [][2]string{{"p1", "p3"}, {"p2", "p4"}},
				Results: []GameResult{
					{WhiteID: "p1", BlackID: "p3", WhiteScore: 1.0},
					{WhiteID: "p2", BlackID: "p4", WhiteScore: 1.0},
				},
			},
		},
	})

	require.Equal(t, Violation, report.OverallStatus)
	var c1Rounds []int
	for _, v := range report.Violations {
		if v.Criterion == "C1" {
			c1Rounds = append(c1Rounds, v.Round)
		}
	}
	require.Equal(t, []int{2}, c1Rounds)
}

func TestValidateTournamentRepeatBye(t *testing.T) {
	report := ValidateTournament(&TournamentRecord{
		Players:   testField(1800, 1700, 1600, 1500, 1400),
		NumRounds: 3,
		Rounds: []RoundRecord{
			{
				RoundNumber: 1,
				Pairings:    [][2]string{{"p1", "p3"}, {"p2", "p4"}},
				ByeID:       "p5",
				Results: []GameResult{
					{WhiteID: "p1", BlackID: "p3", WhiteScore: 1.0},
					{WhiteID: "p2", BlackID: "p4", WhiteScore: 0.0},
				},
			},
			{
				RoundNumber: 2,
				Pairings:    [][2]string{{"p1", "p4"}, {"p2", "p3"}},
				ByeID:       "p5",
				Results: []GameResult{
					{WhiteID: "p1", BlackID: "p4", WhiteScore: 1.0},
					{WhiteID: "p2", BlackID: "p3", WhiteScore: 0.5},
				},
			},
		},
	})

	require.Equal(t, Violation, report.OverallStatus)
	found := false
	for _, v := range report.Violations {
		if v.Criterion == "C2" {
			found = true
			require.Equal(t, 2, v.Round)
		}
	}
	require.True(t, found, "expected a C2 violation in round 2")
}
