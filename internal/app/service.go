// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/mhladik/rinkrating/internal/adapters/feed"
	"github.com/mhladik/rinkrating/internal/adapters/repository"
	"github.com/mhladik/rinkrating/internal/adapters/snapshot"
	"github.com/mhladik/rinkrating/internal/config"
	"github.com/mhladik/rinkrating/internal/domain/extract"
	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/internal/domain/rating"
	"github.com/mhladik/rinkrating/internal/domain/sim"
	"github.com/mhladik/rinkrating/internal/domain/staking"
	"github.com/mhladik/rinkrating/internal/domain/topk"
	"github.com/mhladik/rinkrating/pkg/logger"
	"github.com/shopspring/decimal"
)

// Service owns the simulation lifecycle: it loads the season feed, runs the
// fold once and serves the resulting read models to the HTTP layer.
type Service struct {
	mu sync.RWMutex

	cfg *config.Config

	// Core components
	ledger      *rating.Ledger
	engine      *staking.Engine
	driver      *sim.Driver
	loader      *feed.Loader
	checkpoints *snapshot.FileStore

	// State
	started bool
	events  []model.Event
	result  *sim.Result

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader replaces the season feed loader.
func WithLoader(l *feed.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// New constructs a new Service for the given configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Service{cfg: cfg}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the simulation components and loads the season. It restores
// a previous checkpoint when one exists at the configured path.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting rating service...")

	s.ledger = rating.New(
		repository.NewTreapStore(),
		rating.WithBaseRating(s.cfg.BaseRating),
		rating.WithTeamWeights(s.cfg.TeamGoalWeight, s.cfg.WinBonus, s.cfg.LossPenalty),
		rating.WithPlayerWeights(s.cfg.PlayerGoalWeight, s.cfg.PlayerAssistWeight),
	)
	s.engine = staking.NewEngine(
		staking.WithOdds(decimal.NewFromFloat(s.cfg.Odds)),
		staking.WithBaseStake(decimal.NewFromFloat(s.cfg.BaseStake)),
		staking.WithResetOnReentry(s.cfg.ResetOnReentry),
	)
	s.driver = sim.NewDriver(
		extract.New(),
		s.ledger,
		topk.New(s.cfg.TopK),
		s.engine,
		sim.WithLogger(s.logger.Named("sim")),
	)

	if s.cfg.CheckpointPath != "" {
		s.checkpoints = snapshot.NewFileStore(s.cfg.CheckpointPath)
		cp, ok, err := s.checkpoints.Load(ctx)
		if err != nil {
			return fmt.Errorf("load checkpoint: %w", err)
		}
		if ok {
			s.driver.Restore(ctx, cp)
			s.logger.Info(ctx, "resumed from checkpoint",
				logger.Int("applied_events", len(cp.Applied)),
			)
		}
	}

	if s.loader == nil {
		s.loader = feed.NewLoader(
			s.cfg.SchedulePath,
			s.cfg.BoxscoreDir,
			feed.WithParseWorkers(s.cfg.ParseWorkers),
		)
	}
	events, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load season: %w", err)
	}
	s.events = events

	s.started = true
	s.logger.Info(ctx, "rating service started",
		logger.Int("events", len(events)),
		logger.Int("top_k", s.cfg.TopK),
	)
	return nil
}

// Run executes the simulation over the loaded season and writes a checkpoint
// when one is configured.
func (s *Service) Run(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	res, err := s.driver.Run(ctx, s.events)
	if err != nil {
		return fmt.Errorf("simulation run: %w", err)
	}
	s.result = res

	if s.checkpoints != nil {
		if err := s.checkpoints.Save(ctx, s.driver.Checkpoint(ctx)); err != nil {
			return fmt.Errorf("save checkpoint: %w", err)
		}
	}
	return nil
}

// Season returns every loaded event in chronological order.
func (s *Service) Season(ctx context.Context) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// TeamRatings returns final team ratings keyed by display name.
func (s *Service) TeamRatings(ctx context.Context) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(s.result.TeamRatings))
	for k, v := range s.result.TeamRatings {
		out[k] = v
	}
	return out
}

// PlayerRatings returns final player ratings keyed by display name.
func (s *Service) PlayerRatings(ctx context.Context) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(s.result.PlayerRatings))
	for k, v := range s.result.PlayerRatings {
		out[k] = v
	}
	return out
}

// TopPlayers returns the n highest-rated players.
func (s *Service) TopPlayers(ctx context.Context, n int) ([]repository.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ledger == nil {
		return nil, ErrNotStarted
	}
	return s.ledger.TopPlayers(ctx, n)
}

// MartingaleReport returns the staking summary and current top-K rows.
func (s *Service) MartingaleReport(ctx context.Context) sim.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return sim.Report{}
	}
	return s.result.Martingale
}

// StakeState returns the full staking position of one player.
func (s *Service) StakeState(ctx context.Context, playerID string) (staking.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.engine == nil {
		return staking.State{}, false
	}
	return s.engine.State(playerID)
}

// Result returns the outcome of the last run, if any.
func (s *Service) Result() *sim.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"events":  len(s.events),
		"top_k":   s.cfg.TopK,
	}

	if s.result != nil {
		stats["run_id"] = s.result.RunID
		stats["events_processed"] = s.result.EventsProcessed
		stats["events_skipped"] = s.result.EventsSkipped
		stats["events_duplicate"] = s.result.EventsDuplicate
		stats["tracked_players"] = len(s.result.Leaderboard)
	}

	return stats
}
