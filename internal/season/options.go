package season

import "time"

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random source; identical seeds reproduce the season.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithTeams sets the number of participating teams.
func WithTeams(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.teams = n
		}
	}
}

// WithPlayersPerTeam sets the roster size.
func WithPlayersPerTeam(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.playersPerTeam = n
		}
	}
}

// WithGames sets the number of games in the season.
func WithGames(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.games = n
		}
	}
}

// WithStart sets the date of the first game.
func WithStart(t time.Time) Option {
	return func(g *Generator) {
		if !t.IsZero() {
			g.start = t
		}
	}
}
