// Package staking runs the martingale staking simulation over the top-K
// leaderboard.
package staking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome of a resolved stake.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// LedgerEntry is one append-only audit row for a resolved stake.
type LedgerEntry struct {
	Date        time.Time       `json:"date"`
	StakeBefore decimal.Decimal `json:"stake_before"`
	Goals       int             `json:"goals"`
	Outcome     Outcome         `json:"outcome"`
	WinAmount   decimal.Decimal `json:"win_amount"`
	NewStake    decimal.Decimal `json:"new_stake"`
}

// State is the martingale position of one player. Created lazily on first
// top-K entry and kept for the rest of the run; Active flags whether the
// player currently occupies the leaderboard.
type State struct {
	PlayerID      string          `json:"player_id"`
	Name          string          `json:"name"`
	Stake         decimal.Decimal `json:"stake"`
	TotalStaked   decimal.Decimal `json:"total_staked"`
	TotalReturned decimal.Decimal `json:"total_returned"`
	LastOutcome   Outcome         `json:"last_outcome,omitempty"`
	Active        bool            `json:"active"`
	Log           []LedgerEntry   `json:"log,omitempty"`
}

// Member identifies one top-K occupant handed to the engine.
type Member struct {
	PlayerID string
	Name     string
}

// Summary aggregates the run across all players.
type Summary struct {
	TotalStaked   decimal.Decimal `json:"totalStaked"`
	TotalReturned decimal.Decimal `json:"totalReturned"`
	Profit        decimal.Decimal `json:"profit"`
	Odds          decimal.Decimal `json:"odds"`
}

// Row is the display shape for one current top-K player.
type Row struct {
	PlayerName  string          `json:"playerName"`
	Stake       decimal.Decimal `json:"stake"`
	LastOutcome Outcome         `json:"lastOutcome,omitempty"`
	Odds        decimal.Decimal `json:"odds"`
}

// Snapshot is the serializable engine state for checkpointing.
type Snapshot struct {
	Odds      decimal.Decimal `json:"odds"`
	BaseStake decimal.Decimal `json:"base_stake"`
	States    []State         `json:"states"`
}
