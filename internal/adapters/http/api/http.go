// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	app "github.com/spectral-layer/arcade/internal/app"
	"github.com/spectral-layer/arcade/internal/domain/ranking"
	"github.com/spectral-layer/arcade/internal/domain/submission"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Submit(ctx context.Context, raw submission.Raw) (app.Result, error)
	WallOfFame(ctx context.Context) (app.Board, error)
	Leaderboard(ctx context.Context, limit, offset int) (app.Board, error)
	FinalResults(ctx context.Context) (app.Board, error)
}

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = ranking.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	submitHandler       *SubmitHandler
	wallOfFameHandler   *WallOfFameHandler
	leaderboardHandler  *LeaderboardHandler
	finalResultsHandler *FinalResultsHandler
	statsHandler        *StatsHandler
	healthHandler       *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, cors *CORSPolicy, maxLimit, defaultLimit int) *Server {
	return &Server{
		submitHandler:       NewSubmitHandler(deps, cors),
		wallOfFameHandler:   NewWallOfFameHandler(deps, cors),
		leaderboardHandler:  NewLeaderboardHandler(deps, cors, maxLimit, defaultLimit),
		finalResultsHandler: NewFinalResultsHandler(deps, cors),
		statsHandler:        NewStatsHandler(statsProvider),
		healthHandler:       NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/submit-score", MetricsMiddleware(s.submitHandler.HandleSubmitScore, "submit_score"))
	mux.HandleFunc("/wall-of-fame", MetricsMiddleware(s.wallOfFameHandler.HandleWallOfFame, "wall_of_fame"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/final-results", MetricsMiddleware(s.finalResultsHandler.HandleFinalResults, "final_results"))
}

// boardResponse is the envelope shared by the wall-of-fame and final-results
// endpoints. Winner is null and Top20 empty when no scores exist.
type boardResponse struct {
	Frozen bool    `json:"frozen"`
	Winner *Entry  `json:"winner"`
	Top20  []Entry `json:"top20"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{OK: false, Error: msg})
}
