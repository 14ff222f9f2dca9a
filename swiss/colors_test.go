/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"
)

func playerWithColors(id string, rating, num int, colors ...Color) *Player {
	p := NewPlayer(id, id, rating, num)
	p.ColorHistory = colors
	return p
}

// TestAssignColors walks the Article 5.2 priority chain case by case.
func TestAssignColors(t *testing.T) {
	cases := []struct {
		name      string
		p1, p2    *Player
		wantWhite string
	}{
		{
			name:      "opposite preferences both granted",
			p1:        playerWithColors("a", 1800, 1, White),
			p2:        playerWithColors("b", 1700, 2, Black),
			wantWhite: "b",
		},
		{
			name:      "absolute beats strong",
			p1:        playerWithColors("a", 1800, 1, White, White),
			p2:        playerWithColors("b", 1700, 2, White),
			wantWhite: "b",
		},
		{
			name: "conflicting absolutes wider imbalance wins",
			// a is W+3, b is W+2 with last two same; both demand black.
			p1:        playerWithColors("a", 1800, 1, White, White, White),
			p2:        playerWithColors("b", 1700, 2, Black, White, White),
			wantWhite: "b",
		},
		{
			name: "same strong preference falls to alternation",
			// Both at -1 wanting white: alternation decides off the most
			// recent round where their colors differed, where a had black.
			p1:        playerWithColors("a", 1800, 1, Black, White, Black),
			p2:        playerWithColors("b", 1700, 2, Black, Black, White),
			wantWhite: "a",
		},
		{
			name:      "no history higher seed odd number gets initial color",
			p1:        playerWithColors("a", 1800, 1),
			p2:        playerWithColors("b", 1700, 2),
			wantWhite: "a",
		},
		{
			name:      "no history higher seed even number gets opposite",
			p1:        playerWithColors("a", 1800, 2),
			p2:        playerWithColors("b", 1700, 3),
			wantWhite: "b",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			white, black := AssignColors(c.p1, c.p2, 2, White)
			if white.ID != c.wantWhite {
				t.Errorf("white = %v; want %v", white.ID, c.wantWhite)
			}
			wantBlack := c.p1.ID
			if c.wantWhite == c.p1.ID {
				wantBlack = c.p2.ID
			}
			if black.ID != wantBlack {
				t.Errorf("black = %v; want %v", black.ID, wantBlack)
			}
		})
	}
}

func TestMeetsAbsoluteCriteria(t *testing.T) {
	previous := NewMatchSet()
	previous.Add("a", "b")

	a := NewPlayer("a", "A", 1800, 1)
	b := NewPlayer("b", "B", 1700, 2)
	c := NewPlayer("c", "C", 1600, 3)

	if meetsAbsoluteCriteria(a, b, previous, 3, 5) {
		t.Errorf("rematch allowed")
	}
	if !meetsAbsoluteCriteria(a, c, previous, 3, 5) {
		t.Errorf("fresh pairing rejected")
	}
}

func TestMeetsAbsoluteCriteriaFinalRound(t *testing.T) {
	// Both non-topscorers demand black.
	a := playerWithColors("a", 1800, 1, White, White)
	b := playerWithColors("b", 1700, 2, White, White)
	a.Score = 1.0
	b.Score = 1.0

	if meetsAbsoluteCriteria(a, b, NewMatchSet(), 3, 3) {
		t.Errorf("conflicting absolute preferences allowed in final round")
	}
	// Outside the final round the same pair is legal.
	if !meetsAbsoluteCriteria(a, b, NewMatchSet(), 2, 3) {
		t.Errorf("pair rejected before the final round")
	}

	// Topscorers are exempt.
	a.Score = 2.0
	if !meetsAbsoluteCriteria(a, b, NewMatchSet(), 3, 3) {
		t.Errorf("topscorer pair rejected in final round")
	}
}

func TestHasThreeConsecutive(t *testing.T) {
	p := playerWithColors("a", 1500, 1, White, White)
	if !hasThreeConsecutive(p, White) {
		t.Errorf("third consecutive white not detected")
	}
	if hasThreeConsecutive(p, Black) {
		t.Errorf("false positive on alternating color")
	}
}
