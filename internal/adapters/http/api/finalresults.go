// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/spectral-layer/arcade/pkg/logger"
)

// FinalResultsHandler serves the frozen snapshot view. Until the leaderboard
// is frozen it mirrors the live wall of fame; once frozen every response is
// byte-identical.
type FinalResultsHandler struct {
	deps Dependencies
	cors *CORSPolicy
}

// NewFinalResultsHandler creates a new final-results handler.
func NewFinalResultsHandler(deps Dependencies, cors *CORSPolicy) *FinalResultsHandler {
	return &FinalResultsHandler{deps: deps, cors: cors}
}

// HandleFinalResults handles GET /final-results requests.
func (h *FinalResultsHandler) HandleFinalResults(w http.ResponseWriter, r *http.Request) {
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

	board, err := h.deps.FinalResults(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "final results read failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "Leaderboard read failed")
		return
	}
	writeJSON(w, http.StatusOK, boardResponse{
		Frozen: board.Frozen,
		Winner: board.Winner,
		Top20:  board.Entries,
	})
}
