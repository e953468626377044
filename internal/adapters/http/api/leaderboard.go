// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/spectral-layer/arcade/pkg/logger"
)

// LeaderboardHandler serves the paged ranked view.
type LeaderboardHandler struct {
	deps         Dependencies
	cors         *CORSPolicy
	maxLimit     int
	defaultLimit int
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps Dependencies, cors *CORSPolicy, maxLimit, defaultLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:         deps,
		cors:         cors,
		maxLimit:     maxLimit,
		defaultLimit: defaultLimit,
	}
}

type leaderboardResponse struct {
	Frozen       bool    `json:"frozen"`
	Entries      []Entry `json:"entries"`
	TotalWallets int     `json:"total_wallets"`
}

// HandleGetLeaderboard handles GET /leaderboard?limit=N&offset=M requests.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.cors.Apply(w, r)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit, ok := h.queryInt(r, "limit", h.defaultLimit)
	if !ok || limit < 1 {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	if limit > h.maxLimit {
		writeError(w, http.StatusBadRequest, "Limit exceeds maximum")
		return
	}
	offset, ok := h.queryInt(r, "offset", 0)
	if !ok || offset < 0 {
		writeError(w, http.StatusBadRequest, "Invalid offset")
		return
	}

	board, err := h.deps.Leaderboard(r.Context(), limit, offset)
	if err != nil {
		logger.Get().Error(r.Context(), "leaderboard read failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "Leaderboard read failed")
		return
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{
		Frozen:       board.Frozen,
		Entries:      board.Entries,
		TotalWallets: board.TotalWallets,
	})
}

// queryInt parses an optional integer query parameter.
func (h *LeaderboardHandler) queryInt(r *http.Request, key string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
