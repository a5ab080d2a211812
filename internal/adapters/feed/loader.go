// Package feed loads the season schedule and per-game boxscore files from
// disk and maps them onto domain events.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/pkg/logger"
	"github.com/mhladik/rinkrating/pkg/metrics"
)

const defaultParseWorkers = 4

// Loader reads one schedule document plus a directory of boxscore files,
// one file per game named <game id>.json.
type Loader struct {
	schedulePath string
	boxscoreDir  string
	workers      int

	logger logger.Logger
}

// NewLoader creates a loader with configuration options.
func NewLoader(schedulePath, boxscoreDir string, opts ...Option) *Loader {
	l := &Loader{
		schedulePath: schedulePath,
		boxscoreDir:  boxscoreDir,
		workers:      defaultParseWorkers,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = logger.Get().Named("feed")
	}

	return l
}

// scheduleFile is the wire shape of the schedule document.
type scheduleFile struct {
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID         string    `json:"id"`
	Scheduled  time.Time `json:"scheduled"`
	Status     string    `json:"status"`
	Home       wireTeam  `json:"home"`
	Away       wireTeam  `json:"away"`
	HomePoints *int      `json:"home_points,omitempty"`
	AwayPoints *int      `json:"away_points,omitempty"`
}

// wireTeam tolerates feeds that nest the score under the team record
// instead of the top-level points fields.
type wireTeam struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Market string `json:"market,omitempty"`
	Points *int   `json:"points,omitempty"`
}

// Load reads the schedule, attaches boxscores to completed games and
// returns every event in schedule order. A completed game with no boxscore
// file is kept; only team ratings apply to it.
func (l *Loader) Load(ctx context.Context) ([]model.Event, error) {
	raw, err := os.ReadFile(l.schedulePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadSchedule, l.schedulePath, err)
	}

	var sched scheduleFile
	if err := json.Unmarshal(raw, &sched); err != nil {
		metrics.RecordErrorByComponent("feed", "schedule_decode")
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeSchedule, l.schedulePath, err)
	}

	events := make([]model.Event, 0, len(sched.Games))
	for _, g := range sched.Games {
		events = append(events, l.toEvent(g))
	}

	if err := l.attachBoxscores(ctx, events); err != nil {
		return nil, err
	}

	l.logger.Info(ctx, "schedule loaded",
		logger.String("path", l.schedulePath),
		logger.Int("events", len(events)),
	)
	return events, nil
}

func (l *Loader) toEvent(g scheduleGame) model.Event {
	home := model.Side{TeamID: g.Home.ID, Name: teamName(g.Home)}
	away := model.Side{TeamID: g.Away.ID, Name: teamName(g.Away)}

	home.Score = score(g.HomePoints, g.Home.Points)
	away.Score = score(g.AwayPoints, g.Away.Points)

	return model.Event{
		ID:        g.ID,
		Scheduled: g.Scheduled,
		Status:    mapStatus(g.Status),
		Home:      home,
		Away:      away,
	}
}

func teamName(t wireTeam) string {
	if t.Market != "" && t.Name != "" {
		return t.Market + " " + t.Name
	}
	if t.Name != "" {
		return t.Name
	}
	return t.Market
}

func score(topLevel, nested *int) int {
	if topLevel != nil {
		return *topLevel
	}
	if nested != nil {
		return *nested
	}
	return 0
}

// mapStatus folds upstream status vocabularies into the three domain states.
func mapStatus(s string) model.Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "closed", "complete", "completed", "final":
		return model.StatusCompleted
	case "inprogress", "in_progress", "halftime", "live":
		return model.StatusInProgress
	default:
		return model.StatusScheduled
	}
}

// attachBoxscores parses boxscore files concurrently with a bounded worker
// pool. Each worker owns distinct indices of the slice, so no locking is
// needed around the writes.
func (l *Loader) attachBoxscores(ctx context.Context, events []model.Event) error {
	workers := l.workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				l.attachBoxscore(ctx, &events[idx])
			}
		}()
	}

	for idx := range events {
		if !events[idx].Completed() || events[idx].ID == "" {
			continue
		}
		select {
		case jobs <- idx:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return fmt.Errorf("boxscore load canceled: %w", ctx.Err())
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

func (l *Loader) attachBoxscore(ctx context.Context, ev *model.Event) {
	path := filepath.Join(l.boxscoreDir, ev.ID+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn(ctx, "no boxscore for completed game", logger.String("event_id", ev.ID))
			return
		}
		metrics.RecordErrorByComponent("feed", "boxscore_read")
		l.logger.Error(ctx, "boxscore read failed", logger.String("path", path), logger.Error(err))
		return
	}

	// Some archives wrap the payload under a "game" key, some ship the two
	// sides at the top level.
	var wire struct {
		Game *model.Boxscore `json:"game,omitempty"`
		Home *model.TeamBox  `json:"home,omitempty"`
		Away *model.TeamBox  `json:"away,omitempty"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		metrics.RecordErrorByComponent("feed", "boxscore_decode")
		l.logger.Error(ctx, "boxscore decode failed", logger.String("path", path), logger.Error(err))
		return
	}

	if wire.Game != nil {
		ev.Box = wire.Game
		return
	}
	if wire.Home != nil || wire.Away != nil {
		ev.Box = &model.Boxscore{Home: wire.Home, Away: wire.Away}
	}
}
