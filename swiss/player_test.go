/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"
)

// TestColorPreference verifies the preference tiers derived from a
// player's color history.
func TestColorPreference(t *testing.T) {
	cases := []struct {
		name         string
		colors       []Color
		wantPref     Color
		wantStrength PreferenceStrength
	}{
		{
			name:         "no games",
			colors:       nil,
			wantPref:     NoColor,
			wantStrength: PrefNone,
		},
		{
			name:         "one white game",
			colors:       []Color{White},
			wantPref:     Black,
			wantStrength: PrefStrong,
		},
		{
			name:         "two whites in a row",
			colors:       []Color{White, White},
			wantPref:     Black,
			wantStrength: PrefAbsolute,
		},
		{
			name:         "imbalance beyond one",
			colors:       []Color{White, Black, White, White},
			wantPref:     Black,
			wantStrength: PrefAbsolute,
		},
		{
			name:         "balanced alternating",
			colors:       []Color{White, Black},
			wantPref:     White,
			wantStrength: PrefMild,
		},
		{
			name:         "balanced ending black",
			colors:       []Color{Black, White, Black, White},
			wantPref:     Black,
			wantStrength: PrefMild,
		},
		{
			name:         "one black game",
			colors:       []Color{Black},
			wantPref:     White,
			wantStrength: PrefStrong,
		},
		{
			name:         "two blacks in a row balanced history",
			colors:       []Color{White, White, Black, Black},
			wantPref:     White,
			wantStrength: PrefAbsolute,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer("p1", "Test Player", 1500, 1)
			p.ColorHistory = c.colors
			pref, strength := p.ColorPreference()
			if pref != c.wantPref {
				t.Errorf("preference = %v; want %v", pref, c.wantPref)
			}
			if strength != c.wantStrength {
				t.Errorf("strength = %v; want %v", strength, c.wantStrength)
			}
		})
	}
}

func TestFloatDirection(t *testing.T) {
	p := NewPlayer("p1", "Floater", 1600, 1)
	// Round 1: beat a lower-scored player (both 0.0, no float).
	p.AddRoundResult("p2", 0.0, 1.0, White)
	// Round 2: paired down against a 0.0 opponent while holding 1.0.
	p.AddRoundResult("p3", 0.0, 1.0, Black)
	// Round 3: paired up against a 2.5 opponent while holding 2.0.
	p.AddRoundResult("p4", 2.5, 0.0, White)

	if got := p.FloatDirection(1, 4); got != FloatUp {
		t.Errorf("one round back = %v; want FloatUp", got)
	}
	if got := p.FloatDirection(2, 4); got != FloatDown {
		t.Errorf("two rounds back = %v; want FloatDown", got)
	}
	if got := p.FloatDirection(3, 4); got != FloatNone {
		t.Errorf("three rounds back = %v; want FloatNone", got)
	}
	if got := p.FloatDirection(4, 4); got != FloatNone {
		t.Errorf("out of range lookup = %v; want FloatNone", got)
	}
}

func TestByeCountsAsDownfloat(t *testing.T) {
	p := NewPlayer("p1", "Byed", 1400, 1)
	p.AddByeResult(1.0)

	if got := p.FloatDirection(1, 2); got != FloatDown {
		t.Errorf("bye float = %v; want FloatDown", got)
	}
	if !p.HasReceivedBye {
		t.Errorf("HasReceivedBye not set after AddByeResult")
	}
	if !p.HasFullPointBye() {
		t.Errorf("HasFullPointBye false after full point bye")
	}
}

func TestRequestedByeKeepsEligibility(t *testing.T) {
	p := NewPlayer("p1", "Requested", 1400, 1)
	p.AddRequestedBye(0.5)

	if p.HasReceivedBye {
		t.Errorf("requested bye should not consume the pairing bye")
	}
	if p.HasFullPointBye() {
		t.Errorf("half point bye misreported as full point")
	}
	if p.Score != 0.5 {
		t.Errorf("score = %v; want 0.5", p.Score)
	}
}

func TestIsTopscorer(t *testing.T) {
	p := NewPlayer("p1", "Leader", 2000, 1)
	p.Score = 3.5

	if IsTopscorer(p, 4, 5) {
		t.Errorf("topscorer status should only apply in the final round")
	}
	if !IsTopscorer(p, 5, 5) {
		t.Errorf("3.5/4 entering the final round should be a topscorer")
	}

	p.Score = 2.0
	if IsTopscorer(p, 5, 5) {
		t.Errorf("2.0/4 should not be a topscorer")
	}
}

func TestAddRoundResultHistory(t *testing.T) {
	p := NewPlayer("p1", "History", 1500, 1)
	p.AddRoundResult("p2", 0.0, 0.5, White)
	p.AddRoundResult("p3", 1.0, 1.0, Black)

	if p.Score != 1.5 {
		t.Errorf("score = %v; want 1.5", p.Score)
	}
	if p.GamesPlayed() != 2 {
		t.Errorf("games played = %v; want 2", p.GamesPlayed())
	}
	if len(p.MatchHistory) != 2 {
		t.Fatalf("match history length = %v; want 2", len(p.MatchHistory))
	}
	// Before-round scores must be captured, not post-round.
	if p.MatchHistory[1].PlayerScore != 0.5 {
		t.Errorf("round 2 entering score = %v; want 0.5",
			p.MatchHistory[1].PlayerScore)
	}
	if p.ColorImbalance() != 0 {
		t.Errorf("imbalance = %v; want 0", p.ColorImbalance())
	}
}
