// Package repository defines the player ranking store interface and errors.
package repository

import "context"

// Entry represents one ranked player row.
type Entry struct {
	Rank     int
	PlayerID string
	Name     string
	Rating   float64
}

// Store provides read/write access to the ranked player-rating state.
type Store interface {
	// SetRating replaces the rating for a player, inserting on first sight.
	// The display name is stored alongside and refreshed on every write.
	SetRating(ctx context.Context, playerID, name string, rating float64)

	// Rating returns the current rating and whether the player is known.
	// Reads are side-effect-free.
	Rating(ctx context.Context, playerID string) (float64, bool)

	// TopN returns the top-N entries ordered by rating desc, player id asc.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// All returns every entry in rank order.
	All(ctx context.Context) []Entry

	// Count returns the number of players tracked.
	Count(ctx context.Context) int
}
