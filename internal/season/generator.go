// Package season generates deterministic synthetic seasons for local runs
// and load testing.
package season

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mhladik/rinkrating/internal/domain/model"
)

// Default generator configuration constants.
const (
	defaultTeams          = 8
	defaultPlayersPerTeam = 6
	defaultGames          = 40
	defaultSeed           = 1
)

var teamNames = []string{
	"Sharks", "Wings", "Bears", "Eagles", "Wolves", "Rapids",
	"Comets", "Pilots", "Miners", "Giants", "Rangers", "Storm",
}

// Generator produces a reproducible season: the same seed always yields the
// same schedule, scores and boxscores. Game ids are content-derived UUIDs,
// so regenerating does not change them.
type Generator struct {
	seed           int64
	teams          int
	playersPerTeam int
	games          int
	start          time.Time
}

// New creates a generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		seed:           defaultSeed,
		teams:          defaultTeams,
		playersPerTeam: defaultPlayersPerTeam,
		games:          defaultGames,
		start:          time.Date(2025, 10, 1, 19, 0, 0, 0, time.UTC),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.teams > len(teamNames) {
		g.teams = len(teamNames)
	}
	if g.teams < 2 {
		g.teams = 2
	}
	return g
}

// Generate returns the synthetic season in schedule order, one game per day.
// Every game is completed; callers wanting future games can relabel the tail.
func (g *Generator) Generate() []model.Event {
	rng := rand.New(rand.NewSource(g.seed))

	events := make([]model.Event, 0, g.games)
	for i := 0; i < g.games; i++ {
		home := rng.Intn(g.teams)
		away := rng.Intn(g.teams - 1)
		if away >= home {
			away++
		}

		homeScore := rng.Intn(6)
		awayScore := rng.Intn(6)
		scheduled := g.start.AddDate(0, 0, i)

		ev := model.Event{
			ID:        gameID(scheduled, home, away),
			Scheduled: scheduled,
			Status:    model.StatusCompleted,
			Home:      model.Side{TeamID: teamID(home), Name: teamNames[home], Score: homeScore},
			Away:      model.Side{TeamID: teamID(away), Name: teamNames[away], Score: awayScore},
			Box: &model.Boxscore{
				Home: g.teamBox(rng, home, homeScore),
				Away: g.teamBox(rng, away, awayScore),
			},
		}
		events = append(events, ev)
	}
	return events
}

// teamBox distributes the team's goals over its roster and sprinkles
// assists, at most two per goal.
func (g *Generator) teamBox(rng *rand.Rand, team, goals int) *model.TeamBox {
	players := make([]model.BoxPlayer, g.playersPerTeam)
	for p := range players {
		players[p] = model.BoxPlayer{
			ID:         playerID(team, p),
			FullName:   fmt.Sprintf("%s Skater %d", teamNames[team], p+1),
			Statistics: &model.BoxStats{Total: &model.StatLine{}},
		}
	}

	for i := 0; i < goals; i++ {
		scorer := rng.Intn(len(players))
		players[scorer].Statistics.Total.Goals++
		for a := 0; a < rng.Intn(3); a++ {
			helper := rng.Intn(len(players))
			if helper != scorer {
				players[helper].Statistics.Total.Assists++
			}
		}
	}
	return &model.TeamBox{Players: players}
}

func teamID(i int) string {
	return fmt.Sprintf("team-%02d", i+1)
}

func playerID(team, p int) string {
	return fmt.Sprintf("%s-p%02d", teamID(team), p+1)
}

// gameID derives a stable UUID from the matchup and date.
func gameID(scheduled time.Time, home, away int) string {
	seedStr := fmt.Sprintf("%s/%d/%d", scheduled.Format(time.DateOnly), home, away)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seedStr)).String()
}

// wire shapes matching the feed loader's schedule and boxscore formats.
type scheduleGame struct {
	ID         string   `json:"id"`
	Scheduled  string   `json:"scheduled"`
	Status     string   `json:"status"`
	Home       wireTeam `json:"home"`
	Away       wireTeam `json:"away"`
	HomePoints int      `json:"home_points"`
	AwayPoints int      `json:"away_points"`
}

type wireTeam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WriteFiles materializes the season to disk: dir/schedule.json plus one
// boxscore file per game under dir/boxscores/.
func (g *Generator) WriteFiles(ctx context.Context, dir string) error {
	boxDir := filepath.Join(dir, "boxscores")
	if err := os.MkdirAll(boxDir, 0o755); err != nil {
		return fmt.Errorf("create season dir: %w", err)
	}

	events := g.Generate()
	games := make([]scheduleGame, 0, len(events))
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("season write canceled: %w", err)
		}

		games = append(games, scheduleGame{
			ID:         ev.ID,
			Scheduled:  ev.Scheduled.Format(time.RFC3339),
			Status:     "closed",
			Home:       wireTeam{ID: ev.Home.TeamID, Name: ev.Home.Name},
			Away:       wireTeam{ID: ev.Away.TeamID, Name: ev.Away.Name},
			HomePoints: ev.Home.Score,
			AwayPoints: ev.Away.Score,
		})

		raw, err := json.MarshalIndent(ev.Box, "", "  ")
		if err != nil {
			return fmt.Errorf("encode boxscore %s: %w", ev.ID, err)
		}
		path := filepath.Join(boxDir, ev.ID+".json")
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("write boxscore %s: %w", ev.ID, err)
		}
	}

	raw, err := json.MarshalIndent(map[string]any{"games": games}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "schedule.json"), raw, 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}
