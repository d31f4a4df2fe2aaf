// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzles.
// Exposes, per game kind (minesweeper | sudoku):
//   - GET  /daily/{kind}              → today's (or a given date's) board,
//                                       with the caller's attempt if any
//   - POST /daily/{kind}/attempt      → record/update the caller's attempt
//   - GET  /daily/{kind}/leaderboard  → fastest wins for a date
//
// The first request of a day triggers generation; every later request for
// that date gets the identical stored board.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jurijkreutz/spielbar/internal/daily"
	"github.com/jurijkreutz/spielbar/internal/minesweeper"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily() {
	s.r.Route("/daily/{kind}", func(r chi.Router) {
		r.Get("/", s.handleGetDaily)
		r.Post("/attempt", s.handleRecordAttempt)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// handleGetDaily serves GetDailyPuzzle: kind from the path, optional date
// and playerId from the query. Without an explicit playerId the caller's
// cookie/token identity is used, so browsers always see their own attempt.
func (s *Server) handleGetDaily(w http.ResponseWriter, r *http.Request) {
	kind, err := daily.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, `{"error":"unknown_kind"}`, http.StatusBadRequest)
		return
	}
	date := r.URL.Query().Get("date")
	pid := s.playerID(w, r, r.URL.Query().Get("playerId"))

	p, err := s.svc.GetDailyPuzzle(r.Context(), kind, date, pid)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// attemptReq is the POST /daily/{kind}/attempt payload.
type attemptReq struct {
	Date      string `json:"date"`
	PlayerID  string `json:"playerId"`
	Completed bool   `json:"completed"`
	Won       bool   `json:"won"`
	Time      *int   `json:"time"`
	Moves     *int   `json:"moves"`
	UsedHints bool   `json:"usedHints"`
}

// attemptRes is the RecordAttempt response.
type attemptRes struct {
	Success bool           `json:"success"`
	Attempt *daily.Attempt `json:"attempt"`
}

// handleRecordAttempt validates the payload and upserts the attempt.
func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	kind, err := daily.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, `{"error":"unknown_kind"}`, http.StatusBadRequest)
		return
	}
	var req attemptReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	pid := s.playerID(w, r, req.PlayerID)

	a, err := s.svc.RecordAttempt(r.Context(), kind, daily.AttemptInput{
		Date:        req.Date,
		PlayerID:    pid,
		Completed:   req.Completed,
		Won:         req.Won,
		TimeSeconds: req.Time,
		Moves:       req.Moves,
		UsedHints:   req.UsedHints,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(attemptRes{Success: true, Attempt: a})
}

// lbRes is returned by /daily/{kind}/leaderboard.
type lbRes struct {
	Date string                 `json:"date"`
	Top  []daily.LeaderboardRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	kind, err := daily.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, `{"error":"unknown_kind"}`, http.StatusBadRequest)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.svc.Today()
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := s.svc.Leaderboard(r.Context(), kind, date, limit)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}

// writeEngineError maps the engine error taxonomy onto HTTP statuses:
// caller mistakes 400, missing board 404, exhausted generation 500,
// anything else is treated as a transient storage problem, 503.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, daily.ErrInvalid):
		http.Error(w, `{"error":"invalid_request"}`, http.StatusBadRequest)
	case errors.Is(err, daily.ErrNoBoard):
		http.Error(w, `{"error":"no_board_for_date"}`, http.StatusNotFound)
	case errors.Is(err, minesweeper.ErrUnsolvable):
		log.Error().Err(err).Msg("daily generation failed")
		http.Error(w, `{"error":"generation_failed"}`, http.StatusInternalServerError)
	default:
		log.Warn().Err(err).Msg("storage error")
		http.Error(w, `{"error":"storage_unavailable"}`, http.StatusServiceUnavailable)
	}
}
