package rating

import (
	"context"
)

// PlayerState is one player row inside a snapshot.
type PlayerState struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
}

// Snapshot is an immutable copy of the full rating state at a point in the
// simulation. It serializes cleanly and can seed a fresh ledger.
type Snapshot struct {
	BaseRating float64            `json:"base_rating"`
	Teams      map[string]float64 `json:"teams"`
	TeamNames  map[string]string  `json:"team_names"`
	Players    []PlayerState      `json:"players"`
}

// Snapshot returns a deep copy of the current state. Players come back in
// rank order, which keeps serialized snapshots byte-stable across runs.
func (l *Ledger) Snapshot(ctx context.Context) Snapshot {
	snap := Snapshot{
		BaseRating: l.baseRating,
		Teams:      make(map[string]float64, len(l.teams)),
		TeamNames:  make(map[string]string, len(l.teamNames)),
	}
	for k, v := range l.teams {
		snap.Teams[k] = v
	}
	for k, v := range l.teamNames {
		snap.TeamNames[k] = v
	}
	for _, e := range l.players.All(ctx) {
		snap.Players = append(snap.Players, PlayerState{PlayerID: e.PlayerID, Name: e.Name, Rating: e.Rating})
	}
	return snap
}

// Restore replaces the ledger state with a previously taken snapshot.
// Resuming a fold from a restored snapshot reproduces the results of an
// uninterrupted run.
func (l *Ledger) Restore(ctx context.Context, snap Snapshot) {
	if snap.BaseRating != 0 {
		l.baseRating = snap.BaseRating
	}
	l.teams = make(map[string]float64, len(snap.Teams))
	for k, v := range snap.Teams {
		l.teams[k] = v
	}
	l.teamNames = make(map[string]string, len(snap.TeamNames))
	for k, v := range snap.TeamNames {
		l.teamNames[k] = v
	}
	for _, p := range snap.Players {
		l.players.SetRating(ctx, p.PlayerID, p.Name, p.Rating)
	}
}
