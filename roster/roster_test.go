/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testEntriesJson = `{
  "title": "Thursday Night Swiss",
  "entries": [
    {"firstName": "Alice", "lastName": "Adams", "uscfId": 12345678,
     "primaryRating": "1980", "registrationDate": "2026-08-01",
     "byeRequests": "round 1,5"},
    {"firstName": "Bob", "lastName": "Baker", "uscfId": 23456789,
     "primaryRating": "1755/12", "registrationDate": "2026-08-02"},
    {"firstName": "Carol", "lastName": "Chen", "uscfId": 0,
     "primaryRating": "", "registrationDate": ""}
  ]
}`

const testEntriesHtml = `<html><body>
<table id="members"><tbody>
<tr><td>1</td><td>Alice Adams</td><td>1980</td><td>12345678</td></tr>
<tr><td>2</td><td>Bob Baker</td><td>1755/12</td><td>23456789</td></tr>
<tr><td colspan="4">section header</td></tr>
</tbody></table>
</body></html>`

func newTestClient(t *testing.T, apiStatus, webStatus int) *Client {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/event/55", func(w http.ResponseWriter, r *http.Request) {
		if apiStatus != http.StatusOK {
			w.WriteHeader(apiStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testEntriesJson))
	})
	mux.HandleFunc("/tournament/entries/55", func(w http.ResponseWriter, r *http.Request) {
		if webStatus != http.StatusOK {
			w.WriteHeader(webStatus)
			return
		}
		_, _ = w.Write([]byte(testEntriesHtml))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &Client{BaseURL: server.URL, HTTP: server.Client()}
}

func TestFetchPrefersApi(t *testing.T) {
	client := newTestClient(t, http.StatusOK, http.StatusOK)

	roster, err := client.Fetch(context.Background(), 55)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(roster.Entries) != 3 {
		t.Fatalf("expected 3 entries got %v", len(roster.Entries))
	}
	if roster.Title != "Thursday Night Swiss" {
		t.Errorf("expected API title, got %v", roster.Title)
	}
	if roster.Entries[0].ByeRequests != "round 1,5" {
		t.Errorf("bye requests not carried through: %v",
			roster.Entries[0].ByeRequests)
	}
}

func TestFetchFallsBackToWeb(t *testing.T) {
	client := newTestClient(t, http.StatusInternalServerError, http.StatusOK)

	roster, err := client.Fetch(context.Background(), 55)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	// the colspan row is skipped
	if len(roster.Entries) != 2 {
		t.Fatalf("expected 2 scraped entries got %v", len(roster.Entries))
	}
	if roster.Entries[0].DisplayName() != "Alice Adams" {
		t.Errorf("unexpected first entry: %v", roster.Entries[0].DisplayName())
	}
	if roster.Entries[1].Rating() != 1755 {
		t.Errorf("expected provisional rating 1755 got %v",
			roster.Entries[1].Rating())
	}
}

func TestFetchBothUnavailable(t *testing.T) {
	client := newTestClient(t, http.StatusInternalServerError,
		http.StatusNotFound)

	_, err := client.Fetch(context.Background(), 55)
	if err == nil {
		t.Fatal("expected an error when both sources fail")
	}
}

func TestPlayers(t *testing.T) {
	roster := &Roster{
		Entries: []Entry{
			{FirstName: "Carol", LastName: "Chen"},
			{FirstName: "Alice", LastName: "Adams", MemberID: 12345678,
				PrimaryRating: "1980"},
			{FirstName: "Bob", LastName: "Baker", MemberID: 23456789,
				PrimaryRating: "1755/12"},
		},
	}

	players := roster.Players()
	if len(players) != 3 {
		t.Fatalf("expected 3 players got %v", len(players))
	}
	wantNames := []string{"Alice Adams", "Bob Baker", "Carol Chen"}
	for i, want := range wantNames {
		if players[i].Name != want {
			t.Errorf("seed %v: expected %v got %v", i+1, want, players[i].Name)
		}
		if players[i].PairingNumber != i+1 {
			t.Errorf("seed %v: pairing number %v", i+1, players[i].PairingNumber)
		}
	}
	if players[0].ID != "12345678" {
		t.Errorf("expected member id key got %v", players[0].ID)
	}
	if players[2].ID != "carol-chen" {
		t.Errorf("expected synthetic id got %v", players[2].ID)
	}
}

func TestRequestedByes(t *testing.T) {
	roster := &Roster{
		Entries: []Entry{
			{FirstName: "Alice", LastName: "Adams", MemberID: 12345678,
				ByeRequests: "round 1,5"},
			{FirstName: "Bob", LastName: "Baker", MemberID: 23456789},
			{FirstName: "Carol", LastName: "Chen", ByeRequests: "1"},
		},
	}

	byes := roster.RequestedByes(1)
	if len(byes) != 2 {
		t.Fatalf("expected 2 bye requests got %v", byes)
	}
	if byes[0] != "12345678" || byes[1] != "carol-chen" {
		t.Errorf("unexpected bye ids: %v", byes)
	}
	if got := roster.RequestedByes(5); len(got) != 1 {
		t.Errorf("expected only one round 5 bye, got %v", got)
	}
	if got := roster.RequestedByes(3); len(got) != 0 {
		t.Errorf("expected no round 3 byes, got %v", got)
	}
}

func TestByeRequestedForRound(t *testing.T) {
	testCases := []struct {
		requests string
		round    int
		want     bool
	}{
		{"", 1, false},
		{"1", 1, true},
		{"1", 2, false},
		{"round 1,5", 5, true},
		{"round 1,5", 3, false},
		{"Rnds 1&4", 4, true},
		{"rounds 2; 3", 3, true},
		{"rnd: 2", 2, true},
		{"none", 1, false},
		{"maybe later", 2, false},
	}

	for _, tc := range testCases {
		e := &Entry{ByeRequests: tc.requests}
		if got := e.ByeRequestedForRound(tc.round); got != tc.want {
			t.Errorf("ByeRequestedForRound(%q, %v): expected %v got %v",
				tc.requests, tc.round, tc.want, got)
		}
	}
}

func TestRatingToInt(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"1980", 1980},
		{"559/24", 559},
		{" 1200 ", 1200},
		{"unr.", 0},
	}

	for _, tc := range testCases {
		if got := ratingToInt(tc.in); got != tc.want {
			t.Errorf("ratingToInt(%q): expected %v got %v", tc.in, tc.want, got)
		}
	}
}
