/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fpc

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikeb26/swisspair/swiss"
)

func testField(ratings ...int) []*swiss.Player {
	players := make([]*swiss.Player, 0, len(ratings))
	for i, r := range ratings {
		players = append(players,
			swiss.NewPlayer("p"+strconv.Itoa(i+1), "Player "+strconv.Itoa(i+1),
				r, i+1))
	}
	return players
}

func TestCheckFeasibility(t *testing.T) {
	testCases := []struct {
		name       string
		players    int
		rounds     int
		infeasible bool
	}{
		{"four players four rounds", 4, 4, true},
		{"four players three rounds", 4, 3, false},
		{"eight players five rounds", 8, 5, false},
		{"three players three rounds", 3, 3, true},
		{"too few players", 1, 3, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := CheckFeasibility(tc.players, tc.rounds)
			if !tc.infeasible {
				require.Nil(t, res)
				return
			}
			require.NotNil(t, res)
			require.Equal(t, "C1", res.Criterion)
			require.Equal(t, Violation, res.Status)
			require.Equal(t, Absolute, res.Type)
		})
	}
}

func TestValidateRoundDetectsRematch(t *testing.T) {
	players := testField(1800, 1700, 1600, 1500)
	previous := swiss.NewMatchSet()
	previous.Add("p1", "p2")

	report := ValidateRound(&RoundInput{
		Pairings: []swiss.Pairing{
			{White: players[0], Black: players[1]},
			{White: players[2], Black: players[3]},
		},
		Players:      players,
		CurrentRound: 2,
		TotalRounds:  3,
		Previous:     previous,
	})

	require.Equal(t, Violation, report.OverallStatus)
	require.NotEmpty(t, report.Violations)
	require.Equal(t, "C1", report.Violations[0].Criterion)
	require.ElementsMatch(t, []string{"p1", "p2"}, report.Violations[0].Players)
}

func TestValidateRoundDetectsRepeatBye(t *testing.T) {
	players := testField(1800, 1700, 1600, 1500, 1400)

	report := ValidateRound(&RoundInput{
		Pairings: []swiss.Pairing{
			{White: players[0], Black: players[1]},
			{White: players[2], Black: players[3]},
		},
		Bye:          players[4],
		Players:      players,
		CurrentRound: 2,
		TotalRounds:  4,
		Previous:     swiss.NewMatchSet(),
		ByeHistory:   map[string]int{"p5": 1},
	})

	found := false
	for _, v := range report.Violations {
		if v.Criterion == "C2" {
			found = true
			require.Equal(t, []string{"p5"}, v.Players)
		}
	}
	require.True(t, found, "expected a C2 violation")
}

func TestValidateRoundAcceptsEngineOutput(t *testing.T) {
	players := testField(2000, 1900, 1800, 1700, 1600, 1500, 1400, 1300)

	pairings, bye, err := swiss.CreatePairings(context.Background(), players,
		1, swiss.NewMatchSet(), swiss.Options{TotalRounds: 4})
	require.NoError(t, err)

	report := ValidateRound(&RoundInput{
		Pairings:     pairings,
		Bye:          bye,
		Players:      players,
		CurrentRound: 1,
		TotalRounds:  4,
		Previous:     swiss.NewMatchSet(),
	})

	require.Equal(t, Compliant, report.OverallStatus)
	require.Empty(t, report.Violations)
}

func TestCompliancePercentage(t *testing.T) {
	r := &Report{}
	require.Equal(t, 100.0, r.CompliancePercentage())

	r = &Report{TotalCriteria: 4, CompliantCount: 3}
	require.Equal(t, 75.0, r.CompliancePercentage())
}

func TestBuildReportOutput(t *testing.T) {
	players := testField(1800, 1700)
	report := ValidateRound(&RoundInput{
		Pairings: []swiss.Pairing{
			{White: players[0], Black: players[1]},
		},
		Players:      players,
		CurrentRound: 1,
		TotalRounds:  2,
		Previous:     swiss.NewMatchSet(),
	})

	out := BuildReportOutput(report)
	require.True(t, strings.Contains(out, "Compliance"),
		"missing compliance line in %v", out)
}
