package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mhladik/rinkrating/internal/season"
)

// Default generation constants.
const (
	defaultGames   = 40
	defaultTeams   = 8
	defaultRoster  = 6
	defaultSeed    = 1
	defaultTimeout = time.Minute
)

func main() {
	var (
		outDir = flag.String("out", "testdata/season", "Output directory for schedule and boxscores")
		games  = flag.Int("games", defaultGames, "Number of games to generate")
		teams  = flag.Int("teams", defaultTeams, "Number of teams")
		roster = flag.Int("roster", defaultRoster, "Players per team")
		seed   = flag.Int64("seed", defaultSeed, "Random seed; identical seeds reproduce the season")
		start  = flag.String("start", "2025-10-01", "Date of the first game (YYYY-MM-DD)")
	)
	flag.Parse()

	firstGame, err := time.Parse(time.DateOnly, *start)
	if err != nil {
		os.Stderr.WriteString("invalid -start date: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	gen := season.New(
		season.WithSeed(*seed),
		season.WithGames(*games),
		season.WithTeams(*teams),
		season.WithPlayersPerTeam(*roster),
		season.WithStart(firstGame.Add(19*time.Hour)),
	)
	if err := gen.WriteFiles(ctx, *outDir); err != nil {
		os.Stderr.WriteString("season generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
