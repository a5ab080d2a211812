// Package rating holds team and player skill ratings and applies event
// outcomes to them.
package rating

import (
	"context"
	"fmt"

	"github.com/mhladik/rinkrating/internal/adapters/repository"
	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/pkg/metrics"
)

// Default rating constants, matching the historical deployment.
const (
	defaultBaseRating         = 1500.0
	defaultTeamGoalWeight     = 10.0
	defaultWinBonus           = 10.0
	defaultLossPenalty        = -10.0
	defaultPlayerGoalWeight   = 20.0
	defaultPlayerAssistWeight = 10.0
)

// Ledger owns the mutable rating state. Reads never mutate; applying an
// event is an exactly-once, in-order operation with no undo. Replaying or
// reordering corrupts the ledger, and the driver guards against it.
type Ledger struct {
	baseRating         float64
	teamGoalWeight     float64
	winBonus           float64
	lossPenalty        float64
	playerGoalWeight   float64
	playerAssistWeight float64

	teams     map[string]float64
	teamNames map[string]string
	players   repository.Store
}

// New constructs a Ledger over the given player rank store.
func New(store repository.Store, opts ...Option) *Ledger {
	l := &Ledger{
		baseRating:         defaultBaseRating,
		teamGoalWeight:     defaultTeamGoalWeight,
		winBonus:           defaultWinBonus,
		lossPenalty:        defaultLossPenalty,
		playerGoalWeight:   defaultPlayerGoalWeight,
		playerAssistWeight: defaultPlayerAssistWeight,
		teams:              make(map[string]float64),
		teamNames:          make(map[string]string),
		players:            store,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// BaseRating returns the rating every unseen team and player starts from.
func (l *Ledger) BaseRating() float64 {
	return l.baseRating
}

// TeamRating returns the current rating for a team key, or the base rating
// for unseen teams. Never mutates.
func (l *Ledger) TeamRating(key string) float64 {
	if r, ok := l.teams[key]; ok {
		return r
	}
	return l.baseRating
}

// PlayerRating returns the current rating for a player id, or the base
// rating for unseen players. Never mutates.
func (l *Ledger) PlayerRating(ctx context.Context, playerID string) float64 {
	if r, ok := l.players.Rating(ctx, playerID); ok {
		return r
	}
	return l.baseRating
}

// ApplyEvent folds one completed event into the ledger: goal differential
// and win/loss adjustments for both teams, goal/assist weights for every
// performance record.
func (l *Ledger) ApplyEvent(ctx context.Context, ev model.Event, perfs []model.PerformanceRecord) error {
	if !ev.Completed() {
		return fmt.Errorf("%w: event %s is %s", ErrEventNotCompleted, ev.ID, ev.Status)
	}

	l.applyTeamOutcome(ev)

	for _, p := range perfs {
		current := l.PlayerRating(ctx, p.PlayerID)
		delta := float64(p.Goals)*l.playerGoalWeight + float64(p.Assists)*l.playerAssistWeight
		l.players.SetRating(ctx, p.PlayerID, p.Name, current+delta)
	}

	metrics.UpdateTrackedTeams(len(l.teams))
	metrics.UpdateTrackedPlayers(l.players.Count(ctx))
	return nil
}

func (l *Ledger) applyTeamOutcome(ev model.Event) {
	homeKey, awayKey := ev.Home.Key(), ev.Away.Key()
	if homeKey == "" || awayKey == "" {
		// A side without even a name cannot be rated.
		return
	}
	l.ensureTeam(homeKey, ev.Home.Name)
	l.ensureTeam(awayKey, ev.Away.Name)

	diff := float64(ev.Home.Score-ev.Away.Score) * l.teamGoalWeight
	l.teams[homeKey] += diff
	l.teams[awayKey] -= diff

	switch {
	case ev.Home.Score > ev.Away.Score:
		l.teams[homeKey] += l.winBonus
		l.teams[awayKey] += l.lossPenalty
	case ev.Away.Score > ev.Home.Score:
		l.teams[awayKey] += l.winBonus
		l.teams[homeKey] += l.lossPenalty
	}
	// Draws carry no win/loss adjustment.
}

func (l *Ledger) ensureTeam(key, name string) {
	if _, ok := l.teams[key]; !ok {
		l.teams[key] = l.baseRating
	}
	if name != "" {
		l.teamNames[key] = name
	}
}

// TopPlayers returns the n highest-rated players, rating desc, id asc.
func (l *Ledger) TopPlayers(ctx context.Context, n int) ([]repository.Entry, error) {
	entries, err := l.players.TopN(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("top players: %w", err)
	}
	return entries, nil
}

// PlayerCount returns the number of rated players.
func (l *Ledger) PlayerCount(ctx context.Context) int {
	return l.players.Count(ctx)
}

// TeamRatings returns a copy of the team rating map keyed by display name.
func (l *Ledger) TeamRatings() map[string]float64 {
	out := make(map[string]float64, len(l.teams))
	for key, r := range l.teams {
		name := l.teamNames[key]
		if name == "" {
			name = key
		}
		out[name] = r
	}
	return out
}

// PlayerRatingsByName returns player ratings keyed by resolved display name.
// When feeds reuse a display name the later entry wins, as in the source
// system.
func (l *Ledger) PlayerRatingsByName(ctx context.Context) map[string]float64 {
	all := l.players.All(ctx)
	out := make(map[string]float64, len(all))
	for _, e := range all {
		name := e.Name
		if name == "" {
			name = e.PlayerID
		}
		out[name] = e.Rating
	}
	return out
}
