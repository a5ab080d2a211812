package rating

// Option applies a configuration option to the Ledger.
type Option func(*Ledger)

// WithBaseRating sets the rating unseen teams and players start from.
func WithBaseRating(base float64) Option {
	return func(l *Ledger) {
		if base > 0 {
			l.baseRating = base
		}
	}
}

// WithTeamWeights sets the per-goal weight, win bonus and loss penalty
// applied to team ratings. The penalty is expected to be negative.
func WithTeamWeights(goalWeight, winBonus, lossPenalty float64) Option {
	return func(l *Ledger) {
		l.teamGoalWeight = goalWeight
		l.winBonus = winBonus
		l.lossPenalty = lossPenalty
	}
}

// WithPlayerWeights sets the per-goal and per-assist weights applied to
// player ratings.
func WithPlayerWeights(goalWeight, assistWeight float64) Option {
	return func(l *Ledger) {
		l.playerGoalWeight = goalWeight
		l.playerAssistWeight = assistWeight
	}
}
