// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mhladik/rinkrating/internal/adapters/repository"
	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/internal/domain/sim"
	"github.com/mhladik/rinkrating/internal/domain/staking"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Season returns every loaded event in chronological order.
	Season(ctx context.Context) []model.Event

	// TeamRatings returns final team ratings keyed by display name.
	TeamRatings(ctx context.Context) map[string]float64

	// PlayerRatings returns final player ratings keyed by display name.
	PlayerRatings(ctx context.Context) map[string]float64

	// TopPlayers returns the n highest-rated players.
	TopPlayers(ctx context.Context, n int) ([]repository.Entry, error)

	// MartingaleReport returns the staking summary and current top-K rows.
	MartingaleReport(ctx context.Context) sim.Report

	// StakeState returns the full staking position of one player.
	StakeState(ctx context.Context, playerID string) (staking.State, bool)
}

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = repository.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	seasonHandler     *SeasonHandler
	ratingsHandler    *RatingsHandler
	martingaleHandler *MartingaleHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		seasonHandler:     NewSeasonHandler(deps),
		ratingsHandler:    NewRatingsHandler(deps, maxLimit),
		martingaleHandler: NewMartingaleHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/season", MetricsMiddleware(s.seasonHandler.HandleGetSeason, "season"))
	mux.HandleFunc("/api/ratings/teams", MetricsMiddleware(s.ratingsHandler.HandleGetTeams, "ratings_teams"))
	mux.HandleFunc("/api/ratings/players", MetricsMiddleware(s.ratingsHandler.HandleGetPlayers, "ratings_players"))
	mux.HandleFunc("/api/martingale", MetricsMiddleware(s.martingaleHandler.HandleGetReport, "martingale"))
	mux.HandleFunc("/api/martingale/log", MetricsMiddleware(s.martingaleHandler.HandleGetLog, "martingale_log"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
