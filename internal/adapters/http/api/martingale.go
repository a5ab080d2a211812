// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/mhladik/rinkrating/internal/domain/sim"
	"github.com/mhladik/rinkrating/internal/domain/staking"
)

// MartingaleDependencies defines the interface for staking queries.
type MartingaleDependencies interface {
	MartingaleReport(ctx context.Context) sim.Report
	StakeState(ctx context.Context, playerID string) (staking.State, bool)
}

// MartingaleHandler handles staking report requests.
type MartingaleHandler struct {
	deps MartingaleDependencies
}

// NewMartingaleHandler creates a new martingale handler.
func NewMartingaleHandler(deps MartingaleDependencies) *MartingaleHandler {
	return &MartingaleHandler{deps: deps}
}

// HandleGetReport handles GET /api/martingale requests.
func (h *MartingaleHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.MartingaleReport(r.Context()))
}

// HandleGetLog handles GET /api/martingale/log?player=ID requests. The full
// audit log of one player's stakes, wins and losses.
func (h *MartingaleHandler) HandleGetLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	playerID := strings.TrimSpace(r.URL.Query().Get("player"))
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "missing_player", ErrBadRequest)
		return
	}

	st, ok := h.deps.StakeState(r.Context(), playerID)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", ErrPlayerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
