// internal/daily/service.go
//
// The engine facade the request layer talks to.
// Responsibilities:
//   - GetDailyPuzzle: resolve "today" when no date given, get-or-create the
//     board, attach the caller's attempt when a playerId is present.
//   - RecordAttempt: validate input, require an existing board (not-found
//     otherwise), delegate to the upsert store.
//   - Leaderboard passthrough.
//
// "Today" comes from an injected clock; nothing below this file reads
// ambient time, so generation stays a pure function of the date string.

package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/jurijkreutz/spielbar/internal/seed"
)

// storageTimeout bounds every storage round-trip so a wedged database
// surfaces as an error instead of a hang.
const storageTimeout = 5 * time.Second

// Service bundles the two stores behind the engine API.
type Service struct {
	Boards   *BoardStore
	Attempts *AttemptStore
	now      func() time.Time
}

// NewService wires the engine. now supplies the caller-local "today";
// pass time.Now in production.
func NewService(boards *BoardStore, attempts *AttemptStore, now func() time.Time) *Service {
	return &Service{Boards: boards, Attempts: attempts, now: now}
}

// Today returns the current date key from the injected clock.
func (s *Service) Today() string {
	return seed.DateKey(s.now())
}

// GetDailyPuzzle returns the puzzle for (kind, date), generating it on the
// first request of the day. Empty date means today. The player's attempt is
// attached only when playerID is non-empty and a record exists.
func (s *Service) GetDailyPuzzle(ctx context.Context, kind Kind, date, playerID string) (*Puzzle, error) {
	if date == "" {
		date = s.Today()
	}
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	p := &Puzzle{Kind: kind, Date: date}
	switch kind {
	case KindMinesweeper:
		b, err := s.Boards.GetOrCreateMinesweeper(ctx, date)
		if err != nil {
			return nil, err
		}
		p.Minesweeper = b
		p.Difficulty = b.Difficulty
	case KindSudoku:
		b, err := s.Boards.GetOrCreateSudoku(ctx, date)
		if err != nil {
			return nil, err
		}
		p.Sudoku = b
		p.Difficulty = b.Difficulty
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}

	if playerID != "" {
		a, err := s.Attempts.Get(ctx, kind, date, playerID)
		switch {
		case err == nil:
			p.Attempt = a
		case !IsMiss(err):
			return nil, fmt.Errorf("load attempt: %w", err)
		}
	}
	return p, nil
}

// RecordAttempt upserts the player's progress for a day. Fails with
// ErrInvalid on missing/malformed fields and ErrNoBoard when the date has
// no generated board yet.
func (s *Service) RecordAttempt(ctx context.Context, kind Kind, in AttemptInput) (*Attempt, error) {
	if in.Date == "" {
		return nil, fmt.Errorf("%w: date required", ErrInvalid)
	}
	if err := ValidateDate(in.Date); err != nil {
		return nil, err
	}
	if in.PlayerID == "" {
		return nil, fmt.Errorf("%w: playerId required", ErrInvalid)
	}
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	ok, err := s.Boards.Exists(ctx, in.Date, kind)
	if err != nil {
		return nil, fmt.Errorf("check board %s: %w", in.Date, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoBoard, in.Date)
	}
	return s.Attempts.Record(ctx, kind, in)
}

// Leaderboard returns the fastest clean completed wins for (kind, date);
// empty date means today.
func (s *Service) Leaderboard(ctx context.Context, kind Kind, date string, limit int) ([]LeaderboardRow, error) {
	if date == "" {
		date = s.Today()
	}
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.Attempts.Leaderboard(ctx, kind, date, limit)
}
