// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	app "github.com/spectral-layer/arcade/internal/app"
	"github.com/spectral-layer/arcade/internal/domain/submission"
	"github.com/spectral-layer/arcade/pkg/logger"
)

// SubmitHandler handles score submissions.
type SubmitHandler struct {
	deps Dependencies
	cors *CORSPolicy
}

// NewSubmitHandler creates a new submit handler.
func NewSubmitHandler(deps Dependencies, cors *CORSPolicy) *SubmitHandler {
	return &SubmitHandler{deps: deps, cors: cors}
}

// submitRequest mirrors the wire shape of POST /submit-score. Score is any
// so numeric strings coerce instead of failing the decode.
type submitRequest struct {
	Wallet string `json:"wallet"`
	Game   string `json:"game"`
	Score  any    `json:"score"`
}

// scoreRow echoes the inserted record back to the caller.
type scoreRow struct {
	RunID     string    `json:"run_id"`
	Wallet    string    `json:"wallet"`
	Game      string    `json:"game"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type rejectedResponse struct {
	OK          bool     `json:"ok"`
	Accepted    bool     `json:"accepted"`
	Reason      string   `json:"reason"`
	RetryInMS   *int64   `json:"retry_in_ms,omitempty"`
	CurrentBest *float64 `json:"current_best,omitempty"`
	Submitted   *float64 `json:"submitted,omitempty"`
}

type acceptedResponse struct {
	OK           bool      `json:"ok"`
	Accepted     bool      `json:"accepted"`
	Reason       string    `json:"reason"`
	PreviousBest *float64  `json:"previous_best"`
	CurrentBest  float64   `json:"current_best"`
	Data         *scoreRow `json:"data,omitempty"`
}

// HandleSubmitScore handles POST /submit-score requests.
func (h *SubmitHandler) HandleSubmitScore(w http.ResponseWriter, r *http.Request) {
	h.cors.Apply(w, r)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.deps.Submit(r.Context(), submission.Raw{
		Wallet: req.Wallet,
		Game:   req.Game,
		Score:  req.Score,
	})
	if err != nil {
		h.writeSubmitError(w, r, err)
		return
	}

	if !result.Accepted {
		resp := rejectedResponse{OK: true, Accepted: false, Reason: result.Reason}
		switch result.Reason {
		case app.ReasonCooldown:
			retry := result.RetryInMS
			resp.RetryInMS = &retry
		case app.ReasonNotImproved:
			resp.CurrentBest = result.CurrentBest
			submitted := result.Submitted
			resp.Submitted = &submitted
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp := acceptedResponse{
		OK:           true,
		Accepted:     true,
		Reason:       result.Reason,
		PreviousBest: result.PreviousBest,
		CurrentBest:  *result.CurrentBest,
	}
	if rec := result.Record; rec != nil {
		resp.Data = &scoreRow{
			RunID:     rec.RunID,
			Wallet:    rec.Wallet,
			Game:      rec.Game.String(),
			Score:     rec.Score,
			CreatedAt: rec.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeSubmitError translates pipeline errors: validation sentinels become
// 400s with the matching message, everything else is a 500 with a generic
// message and a detailed operator-facing log line.
func (h *SubmitHandler) writeSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, submission.ErrInvalidWallet):
		writeError(w, http.StatusBadRequest, "Invalid wallet")
	case errors.Is(err, submission.ErrInvalidGame):
		writeError(w, http.StatusBadRequest, "Invalid game")
	case errors.Is(err, submission.ErrInvalidScore):
		writeError(w, http.StatusBadRequest, "Invalid score")
	default:
		logger.Get().Error(r.Context(), "submission failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "Score submission failed")
	}
}
