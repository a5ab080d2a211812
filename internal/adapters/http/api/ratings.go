// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
)

const defaultPlayerLimit = 10

// RatingsDependencies defines the interface for rating queries.
type RatingsDependencies interface {
	TeamRatings(ctx context.Context) map[string]float64
	TopPlayers(ctx context.Context, n int) ([]Entry, error)
}

// RatingsHandler handles team and player rating requests.
type RatingsHandler struct {
	deps     RatingsDependencies
	maxLimit int
}

// NewRatingsHandler creates a new ratings handler.
func NewRatingsHandler(deps RatingsDependencies, maxLimit int) *RatingsHandler {
	return &RatingsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetTeams handles GET /api/ratings/teams requests.
func (h *RatingsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.TeamRatings(r.Context()))
}

// HandleGetPlayers handles GET /api/ratings/players?limit=N requests.
func (h *RatingsHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	n := defaultPlayerLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		n = parsed
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
		return
	}

	entries, err := h.deps.TopPlayers(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
