/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fpc

import (
	"fmt"
	"strings"
)

// BuildReportOutput formats a validation report into aligned string output
func BuildReportOutput(r *Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%v\n\n", r.Summary))
	sb.WriteString(fmt.Sprintf("Compliance: %v/%v criteria (%.1f%%)\n\n",
		r.CompliantCount, r.TotalCriteria, r.CompliancePercentage()))

	flagged := append(append([]CriterionResult(nil), r.Violations...),
		r.QualityWarnings...)
	if len(flagged) == 0 {
		return sb.String()
	}

	type row struct{ criterion, rtype, round, desc string }
	var rows []row
	for _, res := range flagged {
		round := "-"
		if res.Round > 0 {
			round = fmt.Sprintf("%v", res.Round)
		}
		rows = append(rows, row{
			criterion: res.Criterion,
			rtype:     res.Type.String(),
			round:     round,
			desc:      res.Description,
		})
	}

	// Compute column widths
	maxC, maxT, maxR := len("Criterion"), len("Type"), len("Round")
	for _, r := range rows {
		if l := len(r.criterion); l > maxC {
			maxC = l
		}
		if l := len(r.rtype); l > maxT {
			maxT = l
		}
		if l := len(r.round); l > maxR {
			maxR = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxC, "Criterion",
		maxT, "Type", maxR, "Round", "Description"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxC, r.criterion,
			maxT, r.rtype, maxR, r.round, r.desc))
	}
	sb.WriteString("\n")

	return sb.String()
}
