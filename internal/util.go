/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ScoreToString renders a chess score in the conventional form, e.g. "2½".
func ScoreToString(score float64) string {
	whole := int(score)
	if score-float64(whole) >= 0.5 {
		if whole == 0 {
			return "½"
		}
		return fmt.Sprintf("%v½", whole)
	}
	return fmt.Sprintf("%v", whole)
}
