/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"strings"

	"github.com/mikeb26/swisspair/internal"
)

// BuildPairingsOutput formats a round's pairings into aligned string output
func BuildPairingsOutput(roundNum int, pairings []Pairing, bye *Player) string {
	var sb strings.Builder

	if len(pairings) == 0 && bye == nil {
		sb.WriteString("No pairings computed")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Round %v Pairings:\n\n", roundNum))

	type row struct{ board, white, black string }
	var rows []row
	for idx, p := range pairings {
		rows = append(rows, row{
			board: fmt.Sprintf("%d.", idx+1),
			white: playerCell(p.White),
			black: playerCell(p.Black),
		})
	}
	if bye != nil {
		rows = append(rows, row{
			board: "n/a",
			white: playerCell(bye),
			black: "BYE(1)",
		})
	}

	// Compute column widths
	maxB, maxW, maxBl := len("Board"), len("White"), len("Black")
	for _, r := range rows {
		if l := len(r.board); l > maxB {
			maxB = l
		}
		if l := len(r.white); l > maxW {
			maxW = l
		}
		if l := len(r.black); l > maxBl {
			maxBl = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Board", maxW,
		"White", maxBl, "Black"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.board,
			maxW, r.white, maxBl, r.black))
	}
	sb.WriteString("\n")

	return sb.String()
}

func playerCell(p *Player) string {
	return fmt.Sprintf("%s(%d %v)", p.Name, p.Rating,
		internal.ScoreToString(p.Score))
}
