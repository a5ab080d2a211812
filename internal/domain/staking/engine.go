package staking

import (
	"time"

	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/pkg/metrics"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Engine maintains one martingale state per player who has ever entered the
// top-K. State machine per player: unseen -> active -> resolved win/loss ->
// active again on the next qualifying event, with a dormant side branch while
// the player is outside the leaderboard.
type Engine struct {
	odds           decimal.Decimal
	baseStake      decimal.Decimal
	resetOnReentry bool

	states map[string]*State
	order  []string // creation order, keeps exports deterministic
}

// NewEngine creates an engine with configuration options. Defaults follow
// the historical deployment: odds 2.5, unit base stake, stake reset when a
// dormant player re-enters the leaderboard.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		odds:           decimal.RequireFromString("2.5"),
		baseStake:      decimal.NewFromInt(1),
		resetOnReentry: true,
		states:         make(map[string]*State),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Odds returns the fixed odds applied to every stake.
func (e *Engine) Odds() decimal.Decimal {
	return e.odds
}

// ResolveEvent resolves stakes for one completed event. Must be called with
// the top-K selected from ratings as they stood strictly before the event,
// and before the event's rating update is applied.
//
// Only members who actually played, meaning they appear in perfs, are
// resolved; the rest are skipped with no stake placed. Scoring at least one
// goal wins the stake at fixed odds and resets it; anything else doubles it.
func (e *Engine) ResolveEvent(ev model.Event, topK []Member, perfs []model.PerformanceRecord) {
	played := make(map[string]model.PerformanceRecord, len(perfs))
	for _, p := range perfs {
		played[p.PlayerID] = p
	}

	for _, m := range topK {
		st := e.ensure(m)

		p, ok := played[m.PlayerID]
		if !ok {
			continue
		}
		e.resolve(st, ev.Scheduled, p.Goals)
	}
}

// ensure creates the state on first top-K entry and reactivates dormant
// players on re-entry. Totals and the audit log always survive dormancy;
// whether the stake itself does is the resetOnReentry policy.
func (e *Engine) ensure(m Member) *State {
	st, ok := e.states[m.PlayerID]
	if !ok {
		st = &State{
			PlayerID: m.PlayerID,
			Name:     m.Name,
			Stake:    e.baseStake,
			Active:   true,
		}
		e.states[m.PlayerID] = st
		e.order = append(e.order, m.PlayerID)
		return st
	}
	if m.Name != "" {
		st.Name = m.Name
	}
	if !st.Active {
		st.Active = true
		if e.resetOnReentry {
			st.Stake = e.baseStake
		}
	}
	return st
}

func (e *Engine) resolve(st *State, date time.Time, goals int) {
	stakeBefore := st.Stake
	st.TotalStaked = st.TotalStaked.Add(stakeBefore)

	entry := LedgerEntry{
		Date:        date,
		StakeBefore: stakeBefore,
		Goals:       goals,
	}

	if goals > 0 {
		payout := stakeBefore.Mul(e.odds)
		st.TotalReturned = st.TotalReturned.Add(payout)
		st.Stake = e.baseStake
		st.LastOutcome = OutcomeWin
		entry.Outcome = OutcomeWin
		entry.WinAmount = payout
	} else {
		st.Stake = stakeBefore.Mul(two)
		st.LastOutcome = OutcomeLoss
		entry.Outcome = OutcomeLoss
		entry.WinAmount = decimal.Zero
	}
	entry.NewStake = st.Stake
	st.Log = append(st.Log, entry)

	metrics.RecordStakeResolution(string(entry.Outcome))
}

// Deactivate flags every tracked player outside the given membership as
// dormant. No stake reset happens here; resets belong to winning
// resolutions and, by policy, to re-entry.
func (e *Engine) Deactivate(current []Member) {
	in := make(map[string]bool, len(current))
	for _, m := range current {
		in[m.PlayerID] = true
	}
	for _, id := range e.order {
		if !in[id] {
			e.states[id].Active = false
		}
	}
}

// State returns a copy of one player's state.
func (e *Engine) State(playerID string) (State, bool) {
	st, ok := e.states[playerID]
	if !ok {
		return State{}, false
	}
	return copyState(st), true
}

// States returns copies of every tracked state in creation order.
func (e *Engine) States() []State {
	out := make([]State, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, copyState(e.states[id]))
	}
	return out
}

// Summary aggregates totals across every player ever staked on.
func (e *Engine) Summary() Summary {
	s := Summary{
		TotalStaked:   decimal.Zero,
		TotalReturned: decimal.Zero,
		Odds:          e.odds,
	}
	for _, id := range e.order {
		st := e.states[id]
		s.TotalStaked = s.TotalStaked.Add(st.TotalStaked)
		s.TotalReturned = s.TotalReturned.Add(st.TotalReturned)
	}
	s.Profit = s.TotalReturned.Sub(s.TotalStaked)
	return s
}

// Rows renders the display rows for the current top-K. Players the engine
// has never staked on show the base stake and no outcome.
func (e *Engine) Rows(topK []Member) []Row {
	rows := make([]Row, 0, len(topK))
	for _, m := range topK {
		row := Row{PlayerName: m.Name, Stake: e.baseStake, Odds: e.odds}
		if st, ok := e.states[m.PlayerID]; ok {
			row.Stake = st.Stake
			row.LastOutcome = st.LastOutcome
			if st.Name != "" {
				row.PlayerName = st.Name
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Snapshot exports the engine state for checkpointing.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Odds:      e.odds,
		BaseStake: e.baseStake,
		States:    e.States(),
	}
}

// Restore replaces the engine state with a snapshot. Resuming from a
// restored snapshot reproduces the results of an uninterrupted run.
func (e *Engine) Restore(snap Snapshot) {
	if snap.Odds.IsPositive() {
		e.odds = snap.Odds
	}
	if snap.BaseStake.IsPositive() {
		e.baseStake = snap.BaseStake
	}
	e.states = make(map[string]*State, len(snap.States))
	e.order = e.order[:0]
	for i := range snap.States {
		st := copyState(&snap.States[i])
		e.states[st.PlayerID] = &st
		e.order = append(e.order, st.PlayerID)
	}
}

func copyState(st *State) State {
	out := *st
	out.Log = make([]LedgerEntry, len(st.Log))
	copy(out.Log, st.Log)
	return out
}
