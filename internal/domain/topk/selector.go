// Package topk selects the K highest-rated players from a rating snapshot.
package topk

import (
	"context"

	"github.com/mhladik/rinkrating/internal/adapters/repository"
	"github.com/mhladik/rinkrating/internal/domain/rating"
)

// Selector picks the top-K players. Ordering is deterministic: rating desc,
// player id asc. Only players the ledger has actually seen qualify; the
// unseen baseline population never enters the leaderboard.
type Selector struct {
	k int
}

// New creates a selector for a fixed K.
func New(k int) *Selector {
	if k < 1 {
		k = 1
	}
	return &Selector{k: k}
}

// K returns the configured leaderboard size.
func (s *Selector) K() int {
	return s.k
}

// Select returns up to K entries from the ledger as it stands right now.
// The caller decides the point in time; during a fold that must be strictly
// before the event under consideration is applied.
func (s *Selector) Select(ctx context.Context, l *rating.Ledger) ([]repository.Entry, error) {
	return l.TopPlayers(ctx, s.k)
}

// IDs projects entries onto their player ids, preserving rank order.
func IDs(entries []repository.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.PlayerID
	}
	return out
}
