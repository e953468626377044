// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/spectral-layer/arcade/pkg/logger"
)

// WallOfFameHandler serves the live leaderboard view.
type WallOfFameHandler struct {
	deps Dependencies
	cors *CORSPolicy
}

// NewWallOfFameHandler creates a new wall-of-fame handler.
func NewWallOfFameHandler(deps Dependencies, cors *CORSPolicy) *WallOfFameHandler {
	return &WallOfFameHandler{deps: deps, cors: cors}
}

// HandleWallOfFame handles GET /wall-of-fame requests.
func (h *WallOfFameHandler) HandleWallOfFame(w http.ResponseWriter, r *http.Request) {
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

	board, err := h.deps.WallOfFame(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "wall-of-fame read failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "Leaderboard read failed")
		return
	}
	writeJSON(w, http.StatusOK, boardResponse{
		Frozen: board.Frozen,
		Winner: board.Winner,
		Top20:  board.Entries,
	})
}
