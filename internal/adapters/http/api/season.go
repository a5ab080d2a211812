// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/internal/domain/sim"
	"github.com/mhladik/rinkrating/internal/domain/staking"
)

// SeasonDependencies defines the interface for the season overview.
type SeasonDependencies interface {
	Season(ctx context.Context) []model.Event
	TeamRatings(ctx context.Context) map[string]float64
	PlayerRatings(ctx context.Context) map[string]float64
	MartingaleReport(ctx context.Context) sim.Report
}

// SeasonHandler handles season overview requests.
type SeasonHandler struct {
	deps SeasonDependencies
}

// NewSeasonHandler creates a new season handler.
func NewSeasonHandler(deps SeasonDependencies) *SeasonHandler {
	return &SeasonHandler{deps: deps}
}

// seasonEvent is the list view of one event; boxscores stay server-side.
type seasonEvent struct {
	ID        string     `json:"id"`
	Scheduled time.Time  `json:"scheduled"`
	Status    string     `json:"status"`
	Home      model.Side `json:"home"`
	Away      model.Side `json:"away"`
}

// seasonResponse bundles everything the presentation layer renders from
// one request: the match list, both rating tables and the staking summary.
type seasonResponse struct {
	Matches       []seasonEvent      `json:"matches"`
	TeamRatings   map[string]float64 `json:"ratings"`
	PlayerRatings map[string]float64 `json:"playerRatings"`
	Martingale    staking.Summary    `json:"martingale"`
}

// HandleGetSeason handles GET /api/season requests.
func (h *SeasonHandler) HandleGetSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	events := h.deps.Season(ctx)
	matches := make([]seasonEvent, 0, len(events))
	for _, ev := range events {
		matches = append(matches, seasonEvent{
			ID:        ev.ID,
			Scheduled: ev.Scheduled,
			Status:    string(ev.Status),
			Home:      ev.Home,
			Away:      ev.Away,
		})
	}

	writeJSON(w, http.StatusOK, seasonResponse{
		Matches:       matches,
		TeamRatings:   h.deps.TeamRatings(ctx),
		PlayerRatings: h.deps.PlayerRatings(ctx),
		Martingale:    h.deps.MartingaleReport(ctx).Summary,
	})
}
