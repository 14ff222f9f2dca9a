/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// AssignColors resolves the colors for a legal pair per FIDE Article 5.2,
// in strictly descending priority:
//
//	5.2.1 grant both preferences when they are opposite
//	5.2.2 grant the stronger preference (absolute > strong > mild)
//	5.2.3 mirror the most recent round where the two alternated
//	5.2.4 grant the higher ranked player's preference
//	5.2.5 pairing-number parity of the higher ranked player vs initialColor
//
// It never fails; callers must have verified the pair against the absolute
// criteria first.
func AssignColors(p1, p2 *Player, currentRound int, initialColor Color) (white, black *Player) {
	pref1, strength1 := p1.ColorPreference()
	pref2, strength2 := p2.ColorPreference()
	abs1 := strength1 == PrefAbsolute
	abs2 := strength2 == PrefAbsolute
	strong1 := strength1 == PrefStrong
	strong2 := strength2 == PrefStrong

	// 5.2.1: opposite defined preferences.
	if pref1 != NoColor && pref2 != NoColor && pref1 != pref2 {
		return orient(p1, p2, pref1)
	}

	// 5.2.2: stronger preference wins.
	switch {
	case abs1 && abs2:
		// Conflicting absolutes: wider imbalance wins, equal imbalance
		// falls through to alternation.
		bal1 := abs(p1.ColorImbalance())
		bal2 := abs(p2.ColorImbalance())
		if bal1 > bal2 {
			return orient(p1, p2, pref1)
		}
		if bal2 > bal1 {
			return orient(p2, p1, pref2)
		}
	case abs1:
		return orient(p1, p2, pref1)
	case abs2:
		return orient(p2, p1, pref2)
	case strong1 && strong2:
		// Same strong preference: fall through to alternation.
	case strong1:
		return orient(p1, p2, pref1)
	case strong2:
		return orient(p2, p1, pref2)
	}

	// 5.2.3: alternate from the most recent round where the two players
	// held different colors; p1 gets the opposite of what p1 had then.
	if idx := mostRecentAlternation(p1, p2); idx >= 0 {
		colors1 := p1.PlayedColors()
		then := colors1[idx]
		if then == White {
			return p2, p1
		}
		return p1, p2
	}

	// 5.2.4: grant the higher ranked player's preference.
	higher, lower := p1, p2
	if ranksHigher(p2, p1) {
		higher, lower = p2, p1
	}
	if hp, _ := higher.ColorPreference(); hp != NoColor {
		return orient(higher, lower, hp)
	}

	// 5.2.5: pairing-number parity against the initial color.
	if higher.PairingNumber%2 == 1 {
		return orient(higher, lower, initialColor)
	}
	return orient(lower, higher, initialColor)
}

// orient returns (white, black) given that p wants the color pref and opp
// takes the other side.
func orient(p, opp *Player, pref Color) (*Player, *Player) {
	if pref == White {
		return p, opp
	}
	return opp, p
}

// mostRecentAlternation finds the latest index, over both players' played
// color sequences, where the two held different colors. Returns -1 when no
// such round exists.
func mostRecentAlternation(p1, p2 *Player) int {
	colors1 := p1.PlayedColors()
	colors2 := p2.PlayedColors()
	n := len(colors1)
	if len(colors2) < n {
		n = len(colors2)
	}
	for i := n - 1; i >= 0; i-- {
		if colors1[i] != colors2[i] {
			return i
		}
	}
	return -1
}

// colorsSatisfyPreferences reports whether a (white, black) assignment
// grants every defined preference.
func colorsSatisfyPreferences(white, black *Player) bool {
	wp, _ := white.ColorPreference()
	bp, _ := black.ColorPreference()
	return (wp == NoColor || wp == White) && (bp == NoColor || bp == Black)
}

// colorDifferenceAfter returns the player's color imbalance once the given
// color is added.
func colorDifferenceAfter(p *Player, assigned Color) int {
	diff := p.ColorImbalance()
	switch assigned {
	case White:
		diff++
	case Black:
		diff--
	}
	return diff
}

// hasThreeConsecutive reports whether appending assigned would give the
// player the same color three games running.
func hasThreeConsecutive(p *Player, assigned Color) bool {
	colors := p.PlayedColors()
	if assigned != NoColor {
		colors = append(colors, assigned)
	}
	if len(colors) < 3 {
		return false
	}
	last := len(colors) - 1
	return colors[last] == colors[last-1] && colors[last] == colors[last-2]
}

// meetsAbsoluteCriteria checks C1 (no rematch) and C3 (conflicting absolute
// preferences between non-topscorers, final round only).
func meetsAbsoluteCriteria(p1, p2 *Player, previous MatchSet, currentRound, totalRounds int) bool {
	if previous.Has(p1.ID, p2.ID) {
		return false
	}

	if totalRounds > 0 && currentRound == totalRounds {
		if !IsTopscorer(p1, currentRound, totalRounds) && !IsTopscorer(p2, currentRound, totalRounds) {
			pref1, s1 := p1.ColorPreference()
			pref2, s2 := p2.ColorPreference()
			if s1 == PrefAbsolute && s2 == PrefAbsolute && pref1 == pref2 {
				return false
			}
		}
	}

	return true
}

// arePlayersCompatible is the relaxed legality check used by the greedy
// fallbacks: no rematch and no identical absolute preferences.
func arePlayersCompatible(p1, p2 *Player, previous MatchSet) bool {
	if previous.Has(p1.ID, p2.ID) {
		return false
	}
	pref1, s1 := p1.ColorPreference()
	pref2, s2 := p2.ColorPreference()
	if s1 == PrefAbsolute && s2 == PrefAbsolute && pref1 == pref2 {
		return false
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
