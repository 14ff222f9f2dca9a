/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/swisspair/internal"
)

// Entry represents a single registration entry for an event.
type Entry struct {
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	MemberID          int       `json:"uscfId"`
	ChessTitle        string    `json:"chessTitle"`
	SectionName       string    `json:"sectionName"`
	RegistrationDate  time.Time `json:"registrationDate"`
	ByeRequests       string    `json:"byeRequests"`
	PrimaryRating     string    `json:"primaryRating"`
	PrimaryRatingType string    `json:"primaryRatingType"`
	SecondaryRating   string    `json:"secondaryRating"`
}

// Custom unmarshaller for Entry to handle flexible date parsing.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type Alias Entry
	aux := &struct {
		RegistrationDate string `json:"registrationDate"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Entry unmarshal: %w", err)
	}
	var err error
	e.RegistrationDate, err = internal.ParseDateOrZero(aux.RegistrationDate)
	if err != nil {
		return fmt.Errorf("parsing Entry.RegistrationDate: %w", err)
	}
	return nil
}

func (e *Entry) DisplayName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", e.FirstName, e.LastName))
}

// Rating returns the entry's primary rating as an integer, or 0 when
// unrated.
func (e *Entry) Rating() int {
	return ratingToInt(e.PrimaryRating)
}

func ratingToInt(rating string) int {
	r := 0
	if rating != "" {
		// handle formats like "559/24"
		if idx := strings.Index(rating, "/"); idx != -1 {
			rating = rating[:idx]
		}
		if v, err := strconv.Atoi(strings.TrimSpace(rating)); err == nil {
			r = v
		}
	}

	return r
}

var (
	numOnlyRe  = regexp.MustCompile(`^\d+$`)
	byeListRe  = regexp.MustCompile(`(?i)\b(?:round|rnd|rounds|rnds)\b[\s:]*((?:\d+(?:\s*[,&;/]\s*\d+)*))`)
	byeDigitRe = regexp.MustCompile(`\d+`)
)

// ByeRequestedForRound reports whether the entry's free-form bye request
// field names the given round. Accepted forms include "1", "round 1,5",
// and "rnds 1&4".
func (e *Entry) ByeRequestedForRound(round int) bool {
	s := strings.TrimSpace(e.ByeRequests)
	if s == "" {
		return false
	}
	if numOnlyRe.MatchString(s) {
		if n, err := strconv.Atoi(s); err == nil && n == round {
			return true
		}
		return false
	}

	if matches := byeListRe.FindStringSubmatch(strings.ToLower(s)); matches != nil {
		for _, m := range byeDigitRe.FindAllString(matches[1], -1) {
			if n, err := strconv.Atoi(m); err == nil && n == round {
				return true
			}
		}
	}

	return false
}
