/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roster fetches tournament registration rosters from a club
// website, preferring the JSON API but falling back to scraping the public
// entries page, and converts them into players the pairing engine accepts.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/swiss"
)

const defaultBaseURL = "https://beta.boylstonchess.org"

// Roster holds one event's registered entries.
type Roster struct {
	EventID int64   `json:"eventId"`
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Client fetches rosters. The zero value is not usable; construct with
// NewClient.
type Client struct {
	// BaseURL is the site root, without a trailing slash.
	BaseURL string

	// HTTP is the client used for all fetches.
	HTTP *http.Client
}

// NewClient returns a roster client backed by the shared cached http
// client. Roster pages change infrequently so a 15 minute TTL is used.
func NewClient(ctx context.Context) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    internal.NewCachedHttpClient(ctx, 15*time.Minute),
	}
}

// Fetch retrieves the roster for eventID. The API and the public entries
// page are fetched concurrently; the API response wins when both succeed.
func (c *Client) Fetch(ctx context.Context, eventID int64) (*Roster, error) {
	var apiRoster, webRoster *Roster

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apiRoster, err = c.fetchViaApi(gctx, eventID)
		if err != nil {
			// tolerated as long as the scrape succeeds
			apiRoster = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		webRoster, err = c.fetchViaWeb(gctx, eventID)
		if err != nil {
			webRoster = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// prefer the api response
	if apiRoster != nil {
		return apiRoster, nil
	}
	if webRoster != nil {
		return webRoster, nil
	}
	return nil, fmt.Errorf("roster: unable to fetch roster for event %v", eventID)
}

func (c *Client) fetchViaApi(ctx context.Context, eventID int64) (*Roster, error) {
	url := fmt.Sprintf("%s/api/event/%d", c.BaseURL, eventID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch event detail (new): %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch event detail (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", url,
			resp.StatusCode)
	}

	roster := &Roster{}
	if err := json.NewDecoder(resp.Body).Decode(roster); err != nil {
		return nil, fmt.Errorf("unable to parse event detail: %w", err)
	}
	roster.EventID = eventID
	if len(roster.Entries) == 0 {
		return nil, fmt.Errorf("roster API returned an empty response")
	}

	return roster, nil
}

func (c *Client) fetchViaWeb(ctx context.Context, eventID int64) (*Roster, error) {
	url := fmt.Sprintf("%s/tournament/entries/%d", c.BaseURL, eventID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch entries page (new): %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch entries page (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse entries page: %w", err)
	}

	roster := &Roster{EventID: eventID}
	roster.Entries = parseEntries(doc)
	if len(roster.Entries) == 0 {
		return nil, fmt.Errorf("no entries found on entries page")
	}
	return roster, nil
}

// parseEntries extracts registration entries from the members table in the
// entries page document.
func parseEntries(doc *goquery.Document) []Entry {
	var entries []Entry
	doc.Find("table#members tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 4 {
			return
		}
		name := strings.TrimSpace(cells.Eq(1).Text())
		rating := strings.TrimSpace(cells.Eq(2).Text())
		memberID, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(3).Text()))

		e := Entry{
			MemberID:      memberID,
			PrimaryRating: rating,
		}
		parts := strings.Fields(name)
		if len(parts) > 0 {
			e.FirstName = parts[0]
		}
		if len(parts) > 1 {
			e.LastName = strings.Join(parts[1:], " ")
		}
		entries = append(entries, e)
	})

	return entries
}

// Players converts the roster's entries into pairing engine players,
// seeded by descending rating. Entries without a member id are assigned a
// synthetic id from their name.
func (r *Roster) Players() []*swiss.Player {
	sorted := append([]Entry(nil), r.Entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating() != sorted[j].Rating() {
			return sorted[i].Rating() > sorted[j].Rating()
		}
		return sorted[i].DisplayName() < sorted[j].DisplayName()
	})

	players := make([]*swiss.Player, 0, len(sorted))
	for i, e := range sorted {
		id := strconv.Itoa(e.MemberID)
		if e.MemberID == 0 {
			id = strings.ToLower(strings.ReplaceAll(e.DisplayName(), " ", "-"))
		}
		players = append(players,
			swiss.NewPlayer(id, e.DisplayName(), e.Rating(), i+1))
	}
	return players
}

// RequestedByes returns the entry ids that asked off the given round in
// advance, keyed the same way Players keys player ids.
func (r *Roster) RequestedByes(round int) []string {
	var ids []string
	for _, e := range r.Entries {
		if !e.ByeRequestedForRound(round) {
			continue
		}
		id := strconv.Itoa(e.MemberID)
		if e.MemberID == 0 {
			id = strings.ToLower(strings.ReplaceAll(e.DisplayName(), " ", "-"))
		}
		ids = append(ids, id)
	}
	return ids
}
