// internal/daily/types.go
//
// Core type definitions for the daily puzzle engine.
// Defines:
//   - Kind: game discriminator (minesweeper | sudoku).
//   - Board / SudokuBoard: the immutable once-per-day generated puzzles.
//   - Attempt: per (date, player) progress record, upserted in place.
//   - The engine error taxonomy used by handlers for status mapping.

package daily

import (
	"errors"
	"fmt"
	"time"

	"github.com/jurijkreutz/spielbar/internal/minesweeper"
	"github.com/jurijkreutz/spielbar/internal/seed"
	"github.com/jurijkreutz/spielbar/internal/sudoku"
)

// Kind selects which daily puzzle a call refers to. The two kinds use
// independent seed spaces and independent tables.
type Kind string

const (
	KindMinesweeper Kind = "minesweeper"
	KindSudoku      Kind = "sudoku"
)

// ParseKind validates a kind string from the request layer.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMinesweeper, KindSudoku:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalid, s)
}

// Engine errors. Handlers dispatch on these with errors.Is; anything else
// coming out of the stores is a transient storage problem.
var (
	// ErrInvalid marks caller mistakes: malformed dates, missing playerId,
	// unknown kinds. Never retried.
	ErrInvalid = errors.New("invalid input")
	// ErrNoBoard is returned when an attempt references a date that has no
	// generated board.
	ErrNoBoard = errors.New("no board for date")
)

// ValidateDate checks the fixed YYYY-MM-DD calendar format.
func ValidateDate(date string) error {
	if _, err := time.Parse(seed.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalid, date)
	}
	return nil
}

// Board is the daily Minesweeper board. At most one exists per date; it is
// created on the first request of the day and never mutated afterwards.
// Verified is true iff the deduction solver certified the layout at
// generation time; the store never persists anything else.
type Board struct {
	Date       string            `json:"date"`
	Seed       uint64            `json:"seed"`
	Rows       int               `json:"rows"`
	Cols       int               `json:"cols"`
	MineCount  int               `json:"mineCount"`
	Mines      []minesweeper.Pos `json:"mines"`
	Opening    minesweeper.Pos   `json:"opening"`
	Difficulty string            `json:"difficulty"`
	Verified   bool              `json:"verified"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// SudokuBoard is the daily Sudoku: the carved puzzle (0 = blank) and its
// unique solution. Same once-per-day immutability as Board.
type SudokuBoard struct {
	Date       string      `json:"date"`
	Seed       uint64      `json:"seed"`
	Puzzle     sudoku.Grid `json:"puzzle"`
	Solution   sudoku.Grid `json:"solution"`
	Difficulty string      `json:"difficulty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Attempt is one player's progress on one day's puzzle. Exactly one row per
// (date, playerId); reports before completion overwrite in place,
// CompletedAt is pinned at the moment Completed first becomes true.
// UsedHints only applies to Minesweeper and is last-write-wins (see DESIGN.md).
type Attempt struct {
	Date        string     `json:"date"`
	PlayerID    string     `json:"playerId"`
	Completed   bool       `json:"completed"`
	Won         bool       `json:"won"`
	TimeSeconds *int       `json:"time,omitempty"`
	Moves       *int       `json:"moves,omitempty"`
	UsedHints   bool       `json:"usedHints"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// AttemptInput is the validated payload for recording an attempt.
type AttemptInput struct {
	Date        string
	PlayerID    string
	Completed   bool
	Won         bool
	TimeSeconds *int
	Moves       *int
	UsedHints   bool
}

// Puzzle is the GetDailyPuzzle response: exactly one of Minesweeper/Sudoku
// is set, Attempt only when a playerId was supplied and a record exists.
type Puzzle struct {
	Kind        Kind         `json:"kind"`
	Date        string       `json:"date"`
	Difficulty  string       `json:"difficulty"`
	Minesweeper *Board       `json:"minesweeper,omitempty"`
	Sudoku      *SudokuBoard `json:"sudoku,omitempty"`
	Attempt     *Attempt     `json:"attempt,omitempty"`
}

// LeaderboardRow is one entry of the daily leaderboard: clean completed
// wins with a reported time, ordered fastest first.
type LeaderboardRow struct {
	PlayerID    string `json:"playerId"`
	TimeSeconds int    `json:"time"`
	Moves       int    `json:"moves"`
}
