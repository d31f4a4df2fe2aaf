// internal/daily/attempts.go
//
// Idempotent upsert store for per-player daily attempts.
// Responsibilities:
//   - Record: INSERT ... ON CONFLICT(date, player_id) DO UPDATE: the first
//     report creates the row, later reports overwrite the mutable fields
//     (last-write-wins), and completed_at is pinned at the first transition
//     to completed so repeat completion reports never move it.
//   - Get: point lookup by (date, playerId).
//   - Leaderboard: fastest clean completed wins for a date.
//
// Duplicate network retries may land in any order; every write is a single
// atomic row upsert, so that is safe by construction.

package daily

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// AttemptStore owns the attempt tables, one per game kind.
type AttemptStore struct {
	db *sql.DB
}

// NewAttemptStore wires an AttemptStore over an opened database.
func NewAttemptStore(db *sql.DB) *AttemptStore {
	return &AttemptStore{db: db}
}

func attemptTable(kind Kind) string {
	if kind == KindSudoku {
		return "daily_sudoku_attempts"
	}
	return "daily_attempts"
}

// Record upserts the attempt row for (date, playerId) and returns the
// stored row. Board existence is the caller's (Service) concern.
func (s *AttemptStore) Record(ctx context.Context, kind Kind, in AttemptInput) (*Attempt, error) {
	var completedAt any
	if in.Completed {
		completedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	table := attemptTable(kind)

	usedHints := 0
	if in.UsedHints {
		usedHints = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO `+table+`
			(date, player_id, completed, won, time_seconds, moves, used_hints, completed_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?)
		ON CONFLICT(date, player_id) DO UPDATE SET
			completed=excluded.completed,
			won=excluded.won,
			time_seconds=excluded.time_seconds,
			moves=excluded.moves,
			used_hints=excluded.used_hints,
			completed_at=CASE
				WHEN excluded.completed=0 THEN NULL
				WHEN `+table+`.completed_at IS NOT NULL THEN `+table+`.completed_at
				ELSE excluded.completed_at END,
			updated_at=excluded.updated_at`,
		in.Date, in.PlayerID, boolInt(in.Completed), boolInt(in.Won),
		in.TimeSeconds, in.Moves, usedHints, completedAt, now,
	)
	if err != nil {
		return nil, fmt.Errorf("record attempt %s/%s: %w", in.Date, in.PlayerID, err)
	}
	return s.Get(ctx, kind, in.Date, in.PlayerID)
}

// Get loads the attempt row for (date, playerId), or sql.ErrNoRows wrapped
// as a plain miss for the caller to interpret.
func (s *AttemptStore) Get(ctx context.Context, kind Kind, date, playerID string) (*Attempt, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT date, player_id, completed, won, time_seconds, moves, used_hints, completed_at, updated_at
		FROM `+attemptTable(kind)+` WHERE date=? AND player_id=?`, date, playerID)

	var (
		a                   Attempt
		completed, won      int
		usedHints           int
		completedAt         sql.NullString
		timeSeconds, movesN sql.NullInt64
		updated             string
	)
	if err := row.Scan(&a.Date, &a.PlayerID, &completed, &won,
		&timeSeconds, &movesN, &usedHints, &completedAt, &updated); err != nil {
		return nil, err
	}
	a.Completed = completed == 1
	a.Won = won == 1
	a.UsedHints = usedHints == 1
	if timeSeconds.Valid {
		v := int(timeSeconds.Int64)
		a.TimeSeconds = &v
	}
	if movesN.Valid {
		v := int(movesN.Int64)
		a.Moves = &v
	}
	if completedAt.Valid {
		t := mustParse(completedAt.String)
		a.CompletedAt = &t
	}
	a.UpdatedAt = mustParse(updated)
	return &a, nil
}

// Leaderboard returns the fastest clean completed wins for a date.
// Ordered by elapsed time ASC, then moves ASC. Default limit is 20.
// Rows without a reported time are excluded; NULLs would otherwise sort
// ahead of every real time. Hinted runs never rank.
func (s *AttemptStore) Leaderboard(ctx context.Context, kind Kind, date string, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, time_seconds, COALESCE(moves, 0)
		FROM `+attemptTable(kind)+`
		WHERE date=? AND completed=1 AND won=1 AND used_hints=0 AND time_seconds IS NOT NULL
		ORDER BY time_seconds ASC, moves ASC, updated_at ASC
		LIMIT ?`, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0, limit)
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.PlayerID, &r.TimeSeconds, &r.Moves); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// IsMiss reports whether err is a plain row miss.
func IsMiss(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
