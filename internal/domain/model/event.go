// Package model contains domain models passed between layers.
package model

import "time"

// Status is the lifecycle state of an event. Only completed events
// participate in rating and staking.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Side describes one participant of an event with its final score.
type Side struct {
	TeamID string `json:"team_id,omitempty"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// Key returns the rating key for the side: the stable team id when the feed
// provides one, the display name otherwise.
func (s Side) Key() string {
	if s.TeamID != "" {
		return s.TeamID
	}
	return s.Name
}

// Event represents one historical match. Immutable once completed.
type Event struct {
	ID        string    `json:"id"`
	Scheduled time.Time `json:"scheduled"`
	Status    Status    `json:"status"`
	Home      Side      `json:"home"`
	Away      Side      `json:"away"`
	Box       *Boxscore `json:"statistics,omitempty"`
}

// Completed reports whether the event is eligible for the simulation.
func (e Event) Completed() bool {
	return e.Status == StatusCompleted
}

// PerformanceRecord is the canonical per-player output of extraction,
// scoped to one event.
type PerformanceRecord struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
}
