/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"sort"
)

// Color identifies the pieces a player had in one round. NoColor marks a
// bye or an otherwise unplayed round.
type Color int

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "-"
	}
}

// Opposite returns the other playing color; NoColor maps to itself.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// PreferenceStrength is the FIDE Article 1.6.2 tier of a color preference.
type PreferenceStrength int

const (
	PrefNone PreferenceStrength = iota
	PrefMild
	PrefStrong
	PrefAbsolute
)

func (s PreferenceStrength) String() string {
	switch s {
	case PrefMild:
		return "mild"
	case PrefStrong:
		return "strong"
	case PrefAbsolute:
		return "absolute"
	default:
		return "none"
	}
}

// FloatDirection describes how a player moved relative to their opponent's
// score group in a past round.
type FloatDirection int

const (
	FloatNone FloatDirection = iota
	FloatDown
	FloatUp
)

// MatchInfo records one round of a player's history. Scores are the values
// both players held entering the round, which is what float lookups compare.
type MatchInfo struct {
	OpponentID    string
	PlayerScore   float64
	OpponentScore float64
}

// Player is the mutable per-tournament record of one competitor. The three
// history slices stay parallel: one entry per round recorded.
type Player struct {
	ID            string
	Name          string
	Rating        int
	PairingNumber int

	Score          float64
	IsActive       bool
	HasReceivedBye bool

	// ColorHistory holds NoColor for byes; OpponentIDs holds "" for byes.
	ColorHistory []Color
	OpponentIDs  []string
	Results      []float64
	MatchHistory []MatchInfo

	// FloatHistory lists the rounds in which the player was moved down a
	// bracket. Append-only across the tournament.
	FloatHistory []int
}

func NewPlayer(id, name string, rating, pairingNumber int) *Player {
	return &Player{
		ID:            id,
		Name:          name,
		Rating:        rating,
		PairingNumber: pairingNumber,
		IsActive:      true,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s(%d %v)", p.Name, p.Rating, p.Score)
}

// RoundsRecorded returns the number of rounds present in the history.
func (p *Player) RoundsRecorded() int {
	return len(p.ColorHistory)
}

// PlayedColors returns the color sequence with byes filtered out.
func (p *Player) PlayedColors() []Color {
	colors := make([]Color, 0, len(p.ColorHistory))
	for _, c := range p.ColorHistory {
		if c != NoColor {
			colors = append(colors, c)
		}
	}
	return colors
}

// ColorImbalance returns white games minus black games.
func (p *Player) ColorImbalance() int {
	diff := 0
	for _, c := range p.ColorHistory {
		switch c {
		case White:
			diff++
		case Black:
			diff--
		}
	}
	return diff
}

// ColorPreference derives the player's color preference per FIDE Article
// 1.6.2: absolute when the imbalance exceeds one or the last two played
// games had the same color, strong when the imbalance is exactly one, mild
// (alternate the last color) when balanced, none before the first game.
func (p *Player) ColorPreference() (Color, PreferenceStrength) {
	colors := p.PlayedColors()
	if len(colors) == 0 {
		return NoColor, PrefNone
	}

	diff := p.ColorImbalance()
	if diff > 1 {
		return Black, PrefAbsolute
	}
	if diff < -1 {
		return White, PrefAbsolute
	}
	if len(colors) >= 2 && colors[len(colors)-1] == colors[len(colors)-2] {
		return colors[len(colors)-1].Opposite(), PrefAbsolute
	}
	if diff == 1 {
		return Black, PrefStrong
	}
	if diff == -1 {
		return White, PrefStrong
	}

	return colors[len(colors)-1].Opposite(), PrefMild
}

// FloatDirection reports whether the player floated down or up roundsBack
// rounds before currentRound. A bye that scored points is treated as a
// down-float; otherwise the before-round scores recorded in MatchHistory
// decide.
func (p *Player) FloatDirection(roundsBack, currentRound int) FloatDirection {
	if roundsBack < 1 || roundsBack >= currentRound {
		return FloatNone
	}

	idx := currentRound - roundsBack - 1
	if idx < 0 || idx >= len(p.MatchHistory) {
		return FloatNone
	}

	info := p.MatchHistory[idx]
	if info.OpponentID == "" {
		if idx < len(p.Results) && p.Results[idx] > 0 {
			return FloatDown
		}
		return FloatNone
	}

	switch {
	case info.PlayerScore > info.OpponentScore:
		return FloatDown
	case info.PlayerScore < info.OpponentScore:
		return FloatUp
	}
	return FloatNone
}

// HasFullPointBye reports whether the player has ever scored a full point
// in an unplayed round.
func (p *Player) HasFullPointBye() bool {
	for i, oppID := range p.OpponentIDs {
		if oppID == "" && i < len(p.Results) && p.Results[i] >= 1.0 {
			return true
		}
	}
	return false
}

// GamesPlayed counts rounds with a real opponent.
func (p *Player) GamesPlayed() int {
	n := 0
	for _, oppID := range p.OpponentIDs {
		if oppID != "" {
			n++
		}
	}
	return n
}

// AddRoundResult appends one played game to the history. opponentScore is
// the opponent's score entering the round; callers recording both sides of
// a game must capture the two scores before updating either player.
func (p *Player) AddRoundResult(opponentID string, opponentScore, result float64, color Color) {
	p.MatchHistory = append(p.MatchHistory, MatchInfo{
		OpponentID:    opponentID,
		PlayerScore:   p.Score,
		OpponentScore: opponentScore,
	})
	p.OpponentIDs = append(p.OpponentIDs, opponentID)
	p.Results = append(p.Results, result)
	p.ColorHistory = append(p.ColorHistory, color)
	p.Score += result
}

// AddByeResult appends a pairing-allocated bye worth the given points.
func (p *Player) AddByeResult(points float64) {
	p.addUnplayedRound(points)
	p.HasReceivedBye = true
}

// AddRequestedBye appends a bye the player asked for in advance. Unlike a
// pairing-allocated bye it does not make the player ineligible for one.
func (p *Player) AddRequestedBye(points float64) {
	p.addUnplayedRound(points)
}

func (p *Player) addUnplayedRound(points float64) {
	p.MatchHistory = append(p.MatchHistory, MatchInfo{PlayerScore: p.Score})
	p.OpponentIDs = append(p.OpponentIDs, "")
	p.Results = append(p.Results, points)
	p.ColorHistory = append(p.ColorHistory, NoColor)
	p.Score += points
}

// IsTopscorer implements FIDE Article 1.7: only meaningful when pairing the
// final round, where a topscorer holds more than 50% of the maximum score
// achievable so far.
func IsTopscorer(p *Player, currentRound, totalRounds int) bool {
	if totalRounds <= 0 || currentRound != totalRounds {
		return false
	}
	maxPossible := float64(currentRound - 1)
	return p.Score > maxPossible*0.5
}

// sortForPairing orders players per FIDE Article 1.2: score descending,
// then pairing number ascending. Returns a new slice.
func sortForPairing(players []*Player) []*Player {
	sorted := append([]*Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].PairingNumber < sorted[j].PairingNumber
	})
	return sorted
}

// ranksHigher reports whether a outranks b (better score, then lower
// pairing number).
func ranksHigher(a, b *Player) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.PairingNumber < b.PairingNumber
}
