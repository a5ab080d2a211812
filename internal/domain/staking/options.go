package staking

import "github.com/shopspring/decimal"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithOdds sets the fixed odds paid on a winning stake. Values at or below
// evens are ignored.
func WithOdds(odds decimal.Decimal) Option {
	return func(e *Engine) {
		if odds.GreaterThan(decimal.NewFromInt(1)) {
			e.odds = odds
		}
	}
}

// WithBaseStake sets the starting stake and the reset target after a win.
func WithBaseStake(stake decimal.Decimal) Option {
	return func(e *Engine) {
		if stake.IsPositive() {
			e.baseStake = stake
		}
	}
}

// WithResetOnReentry controls whether a dormant player's stake resets to the
// base stake when the player re-enters the top-K. Disabled, the stake
// resumes where the last resolution left it.
func WithResetOnReentry(enabled bool) Option {
	return func(e *Engine) {
		e.resetOnReentry = enabled
	}
}
