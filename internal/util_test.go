/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestParseDateOrZero(t *testing.T) {
	testCases := []struct {
		in       string
		wantZero bool
	}{
		{"", true},
		{"null", true},
		{"2026-08-01", false},
		{"Aug 1, 2026", false},
	}

	for _, tc := range testCases {
		got, err := ParseDateOrZero(tc.in)
		if err != nil {
			t.Errorf("ParseDateOrZero(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got.IsZero() != tc.wantZero {
			t.Errorf("ParseDateOrZero(%q): expected zero=%v got %v", tc.in,
				tc.wantZero, got)
		}
	}

	want := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	got, err := ParseDateOrZero("2026-08-01")
	if err != nil {
		t.Fatalf("ParseDateOrZero failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("expected %v got %v", want, got)
	}
}

func TestScoreToString(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0.0, "0"},
		{0.5, "½"},
		{1.0, "1"},
		{2.5, "2½"},
		{3.0, "3"},
	}

	for _, tc := range testCases {
		if got := ScoreToString(tc.in); got != tc.want {
			t.Errorf("ScoreToString(%v): expected %q got %q", tc.in, tc.want,
				got)
		}
	}
}
