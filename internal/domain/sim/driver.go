// Package sim folds an ordered season of events through extraction,
// selection, staking and rating in the correct order.
package sim

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mhladik/rinkrating/internal/adapters/repository"
	"github.com/mhladik/rinkrating/internal/domain/dedupe"
	"github.com/mhladik/rinkrating/internal/domain/extract"
	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/internal/domain/rating"
	"github.com/mhladik/rinkrating/internal/domain/staking"
	"github.com/mhladik/rinkrating/internal/domain/topk"
	"github.com/mhladik/rinkrating/pkg/logger"
	"github.com/mhladik/rinkrating/pkg/metrics"
)

// Driver owns the simulation context: it is the only mutator of the rating
// ledger and the staking engine, and nothing observes them mid-fold.
type Driver struct {
	extractor *extract.Extractor
	ledger    *rating.Ledger
	selector  *topk.Selector
	engine    *staking.Engine
	seen      dedupe.Deduper

	logger logger.Logger
}

// Report is the staking output of a run.
type Report struct {
	Summary staking.Summary `json:"summary"`
	TopK    []staking.Row   `json:"topK,omitempty"`
}

// Result carries everything a run produces.
type Result struct {
	RunID string `json:"run_id"`

	EventsProcessed int `json:"events_processed"`
	EventsSkipped   int `json:"events_skipped"`
	EventsDuplicate int `json:"events_duplicate"`

	// TeamRatings and PlayerRatings are keyed by resolved display name,
	// matching what the presentation layer renders.
	TeamRatings   map[string]float64 `json:"team_ratings"`
	PlayerRatings map[string]float64 `json:"player_ratings"`

	// Leaderboard is the final ranking, best first.
	Leaderboard []repository.Entry `json:"leaderboard"`

	Martingale Report `json:"martingale"`
}

// Checkpoint is the full resumable state between two events.
type Checkpoint struct {
	Ratings rating.Snapshot  `json:"ratings"`
	Stakes  staking.Snapshot `json:"stakes"`
	Applied []string         `json:"applied_events"`
}

// NewDriver wires the simulation collaborators together.
func NewDriver(x *extract.Extractor, l *rating.Ledger, sel *topk.Selector, e *staking.Engine, opts ...Option) *Driver {
	d := &Driver{
		extractor: x,
		ledger:    l,
		selector:  sel,
		engine:    e,
		seen:      dedupe.NewInMemoryDeduper(),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.Get().Named("sim")
	}

	return d
}

// Run folds the events in chronological order and returns the final result.
// The input need not be sorted; events with identical timestamps keep their
// relative input order.
func (d *Driver) Run(ctx context.Context, events []model.Event) (*Result, error) {
	start := time.Now()

	ordered := make([]model.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Scheduled.Before(ordered[j].Scheduled)
	})

	res := &Result{RunID: uuid.NewString()}

	for _, ev := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run canceled: %w", err)
		}
		if !ev.Completed() {
			res.EventsSkipped++
			metrics.RecordEventSkipped()
			continue
		}
		if ev.ID != "" && d.seen.SeenAndRecord(ctx, ev.ID) {
			d.logger.Warn(ctx, "duplicate event dropped", logger.String("event_id", ev.ID))
			res.EventsDuplicate++
			metrics.RecordEventDuplicate()
			continue
		}

		if err := d.step(ctx, ev); err != nil {
			return nil, err
		}
		res.EventsProcessed++
		metrics.RecordEventProcessed()
	}

	if err := d.finish(ctx, res); err != nil {
		return nil, err
	}

	metrics.RecordRunDuration(float64(time.Since(start).Milliseconds()))
	d.logger.Info(ctx, "simulation run complete",
		logger.String("run_id", res.RunID),
		logger.Int("events", res.EventsProcessed),
		logger.Int("skipped", res.EventsSkipped),
		logger.Int("players", len(res.Leaderboard)),
	)
	return res, nil
}

// step processes one completed event. Order matters: the top-K is selected
// from ratings as they stood strictly before the event, stakes resolve
// against in-event performances, and only then does the rating update land.
func (d *Driver) step(ctx context.Context, ev model.Event) error {
	perfs := d.extractor.Extract(ev.Box)

	pre, err := d.selector.Select(ctx, d.ledger)
	if err != nil {
		return fmt.Errorf("select top-k before event %s: %w", ev.ID, err)
	}
	d.engine.ResolveEvent(ev, toMembers(pre), perfs)

	if err := d.ledger.ApplyEvent(ctx, ev, perfs); err != nil {
		return fmt.Errorf("apply event %s: %w", ev.ID, err)
	}

	// Players pushed out by this event's rating update go dormant.
	post, err := d.selector.Select(ctx, d.ledger)
	if err != nil {
		return fmt.Errorf("select top-k after event %s: %w", ev.ID, err)
	}
	d.engine.Deactivate(toMembers(post))
	return nil
}

func (d *Driver) finish(ctx context.Context, res *Result) error {
	final, err := d.selector.Select(ctx, d.ledger)
	if err != nil {
		return fmt.Errorf("select final top-k: %w", err)
	}

	res.TeamRatings = d.ledger.TeamRatings()
	res.PlayerRatings = d.ledger.PlayerRatingsByName(ctx)
	if n := d.ledger.PlayerCount(ctx); n > 0 {
		res.Leaderboard, err = d.ledger.TopPlayers(ctx, n)
		if err != nil {
			return fmt.Errorf("final leaderboard: %w", err)
		}
	}

	summary := d.engine.Summary()
	res.Martingale = Report{
		Summary: summary,
		TopK:    d.engine.Rows(toMembers(final)),
	}

	metrics.UpdateStakingTotals(
		summary.TotalStaked.InexactFloat64(),
		summary.TotalReturned.InexactFloat64(),
		summary.Profit.InexactFloat64(),
	)
	return nil
}

// Checkpoint exports the resumable state as of now.
func (d *Driver) Checkpoint(ctx context.Context) Checkpoint {
	return Checkpoint{
		Ratings: d.ledger.Snapshot(ctx),
		Stakes:  d.engine.Snapshot(),
		Applied: d.seen.IDs(),
	}
}

// Restore seeds the driver from a checkpoint. A run resumed this way over
// the remaining events reproduces an uninterrupted run exactly; events
// already applied are rejected by the exactly-once guard.
func (d *Driver) Restore(ctx context.Context, cp Checkpoint) {
	d.ledger.Restore(ctx, cp.Ratings)
	d.engine.Restore(cp.Stakes)
	for _, id := range cp.Applied {
		d.seen.SeenAndRecord(ctx, id)
	}
}

func toMembers(entries []repository.Entry) []staking.Member {
	out := make([]staking.Member, len(entries))
	for i, e := range entries {
		out[i] = staking.Member{PlayerID: e.PlayerID, Name: e.Name}
	}
	return out
}
