/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mikeb26/swisspair/fpc"
	"github.com/mikeb26/swisspair/roster"
	"github.com/mikeb26/swisspair/swiss"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"pair":     handlePair,
	"validate": handleValidate,
	"roster":   handleRoster,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handlePair(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("pair", flag.ExitOnError)
	file := fs.String("file", "", "Tournament state file (json)")
	round := fs.Int("round", 0, "Round to pair (default: next unplayed)")
	strict := fs.Bool("strict", false, "Widen search budgets for closer compliance")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintf(os.Stderr, "pair: --file is required\n")
		os.Exit(1)
	}

	tf, err := loadTournamentFile(*file)
	if err != nil {
		log.Fatalf("Error loading tournament: %v", err)
	}

	players, previous, err := tf.replay()
	if err != nil {
		log.Fatalf("Error replaying tournament: %v", err)
	}

	pairRound := *round
	if pairRound == 0 {
		pairRound = len(tf.Rounds) + 1
	}

	pairings, bye, err := swiss.CreatePairings(ctx, players, pairRound, previous,
		swiss.Options{
			TotalRounds: tf.NumRounds,
			Strict:      *strict,
		})
	if err != nil {
		log.Fatalf("Error computing pairings: %v", err)
	}

	fmt.Printf("%v", swiss.BuildPairingsOutput(pairRound, pairings, bye))
}

func handleValidate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "Tournament state file (json)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintf(os.Stderr, "validate: --file is required\n")
		os.Exit(1)
	}

	tf, err := loadTournamentFile(*file)
	if err != nil {
		log.Fatalf("Error loading tournament: %v", err)
	}

	report := fpc.ValidateTournament(tf.toRecord())
	fmt.Printf("%v", fpc.BuildReportOutput(report))

	if len(report.Violations) > 0 {
		os.Exit(1)
	}
}

func handleRoster(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("roster", flag.ExitOnError)
	eventID := fs.Int64("eventid", 0, "Event ID to fetch the roster for")
	pair := fs.Bool("pair", false, "Also print predicted round 1 pairings")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventID == 0 {
		fmt.Fprintf(os.Stderr, "roster: --eventid is required\n")
		os.Exit(1)
	}

	client := roster.NewClient(ctx)
	r, err := client.Fetch(ctx, *eventID)
	if err != nil {
		log.Fatalf("Error fetching roster: %v", err)
	}

	players := r.Players()
	fmt.Printf("%v entries for event %v:\n", len(players), *eventID)
	for _, p := range players {
		fmt.Printf("  %3v. %v (%v)\n", p.PairingNumber, p.Name, p.Rating)
	}

	if !*pair {
		return
	}

	// Players with a round 1 bye request sit out the prediction.
	requested := make(map[string]struct{})
	for _, id := range r.RequestedByes(1) {
		requested[id] = struct{}{}
	}
	var active []*swiss.Player
	for _, p := range players {
		if _, ok := requested[p.ID]; !ok {
			active = append(active, p)
		}
	}

	pairings, bye, err := swiss.CreatePairings(ctx, active, 1,
		swiss.NewMatchSet(), swiss.Options{})
	if err != nil {
		log.Fatalf("Error predicting pairings: %v", err)
	}
	fmt.Printf("\n%v", swiss.BuildPairingsOutput(1, pairings, bye))
}

// tournamentFile is the on-disk tournament state format.
type tournamentFile struct {
	NumRounds int              `json:"numRounds"`
	Players   []playerRecord   `json:"players"`
	Rounds    []fpc.RoundRecord `json:"rounds"`
}

type playerRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

func loadTournamentFile(path string) (*tournamentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %v: %w", path, err)
	}
	var tf tournamentFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("unable to parse %v: %w", path, err)
	}
	if len(tf.Players) == 0 {
		return nil, fmt.Errorf("%v contains no players", path)
	}
	return &tf, nil
}

func (tf *tournamentFile) toRecord() *fpc.TournamentRecord {
	rec := &fpc.TournamentRecord{
		NumRounds: tf.NumRounds,
		Rounds:    tf.Rounds,
	}
	for i, pr := range tf.Players {
		rec.Players = append(rec.Players,
			swiss.NewPlayer(pr.ID, pr.Name, pr.Rating, i+1))
	}
	return rec
}

// replay rebuilds live player state from the recorded rounds so the next
// round can be paired.
func (tf *tournamentFile) replay() ([]*swiss.Player, swiss.MatchSet, error) {
	playerMap := make(map[string]*swiss.Player, len(tf.Players))
	players := make([]*swiss.Player, 0, len(tf.Players))
	for i, pr := range tf.Players {
		p := swiss.NewPlayer(pr.ID, pr.Name, pr.Rating, i+1)
		playerMap[p.ID] = p
		players = append(players, p)
	}

	previous := swiss.NewMatchSet()
	for _, round := range tf.Rounds {
		for _, res := range round.Results {
			white, wok := playerMap[res.WhiteID]
			black, bok := playerMap[res.BlackID]
			if !wok || !bok {
				return nil, nil, fmt.Errorf("round %v references unknown player",
					round.RoundNumber)
			}
			whiteScore, blackScore := white.Score, black.Score
			white.AddRoundResult(black.ID, blackScore, res.WhiteScore, swiss.White)
			black.AddRoundResult(white.ID, whiteScore, 1.0-res.WhiteScore, swiss.Black)
			previous.Add(white.ID, black.ID)
		}
		if bye, ok := playerMap[round.ByeID]; ok && round.ByeID != "" {
			bye.AddByeResult(1.0)
		}
		for _, id := range round.HalfPointByes {
			if p, ok := playerMap[id]; ok {
				p.AddRequestedBye(0.5)
			}
		}
		for _, id := range round.ZeroPointByes {
			if p, ok := playerMap[id]; ok {
				p.AddRequestedBye(0.0)
			}
		}
	}

	return players, previous, nil
}
