// internal/daily/boards.go
//
// Idempotent get-or-create store for the daily boards.
// Responsibilities:
//   - Point lookup by date, per kind table.
//   - On miss: derive the seed, generate (and for Minesweeper certify) the
//     board, then persist under the UNIQUE(date) constraint.
//   - Race tolerance: concurrent first-requests may both generate; the
//     insert uses INSERT OR IGNORE and the canonical row is always
//     re-fetched, so the loser silently discards its (identical) board and
//     no uniqueness violation ever reaches the caller.
//   - Read cache: boards are immutable once persisted, so a small in-memory
//     map in front of SQLite is safe and serves the common case.

package daily

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jurijkreutz/spielbar/internal/minesweeper"
	"github.com/jurijkreutz/spielbar/internal/seed"
	"github.com/jurijkreutz/spielbar/internal/sudoku"
)

// BoardStore owns the board tables; generation is internal to it.
type BoardStore struct {
	db      *sql.DB
	deriver *seed.Deriver

	mu     sync.RWMutex
	mines  map[string]*Board
	sudoku map[string]*SudokuBoard
}

// NewBoardStore wires a BoardStore over an opened database.
func NewBoardStore(db *sql.DB, deriver *seed.Deriver) *BoardStore {
	return &BoardStore{
		db:      db,
		deriver: deriver,
		mines:   make(map[string]*Board),
		sudoku:  make(map[string]*SudokuBoard),
	}
}

// ----------------------------- minesweeper ---------------------------------

// GetOrCreateMinesweeper returns the board for date, generating and
// persisting it on the first request of the day. Stored boards are returned
// unchanged forever, even if the generator changes.
func (s *BoardStore) GetOrCreateMinesweeper(ctx context.Context, date string) (*Board, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	s.mu.RLock()
	b, ok := s.mines[date]
	s.mu.RUnlock()
	if ok {
		return b, nil
	}

	b, err := s.fetchMinesweeper(ctx, date)
	if err == nil {
		s.cacheMinesweeper(b)
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load board %s: %w", date, err)
	}

	day, _ := time.Parse(seed.DateLayout, date)
	diff := minesweeper.DifficultyFor(day.Weekday())
	sd := s.deriver.Derive(date, string(KindMinesweeper))
	layout, attempts, err := minesweeper.Generate(sd, diff)
	if err != nil {
		// never downgraded to an unverified board; this is a server fault
		log.Error().Err(err).Str("date", date).Int("attempts", attempts).
			Msg("minesweeper generation exhausted")
		return nil, err
	}
	log.Info().Str("date", date).Str("difficulty", string(diff)).
		Int("attempts", attempts).Msg("generated minesweeper board")

	minesJSON, err := json.Marshal(layout.Mines)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_boards
			(date, seed, row_count, col_count, mine_count, mines, opening_row, opening_col, difficulty, verified, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,1,?)`,
		date, int64(sd), layout.Rows, layout.Cols, layout.MineCount,
		string(minesJSON), layout.Opening.Row, layout.Opening.Col,
		string(layout.Difficulty), now,
	); err != nil {
		return nil, fmt.Errorf("persist board %s: %w", date, err)
	}

	// win or lose the insert race, the stored row is canonical
	b, err = s.fetchMinesweeper(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("reload board %s: %w", date, err)
	}
	s.cacheMinesweeper(b)
	return b, nil
}

func (s *BoardStore) fetchMinesweeper(ctx context.Context, date string) (*Board, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT date, seed, row_count, col_count, mine_count, mines, opening_row, opening_col, difficulty, verified, created_at
		FROM daily_boards WHERE date=?`, date)
	var (
		b         Board
		seedVal   int64
		minesJSON string
		verified  int
		created   string
	)
	if err := row.Scan(&b.Date, &seedVal, &b.Rows, &b.Cols, &b.MineCount,
		&minesJSON, &b.Opening.Row, &b.Opening.Col, &b.Difficulty, &verified, &created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(minesJSON), &b.Mines); err != nil {
		return nil, fmt.Errorf("decode mines for %s: %w", date, err)
	}
	b.Seed = uint64(seedVal)
	b.Verified = verified == 1
	b.CreatedAt = mustParse(created)
	return &b, nil
}

func (s *BoardStore) cacheMinesweeper(b *Board) {
	s.mu.Lock()
	s.mines[b.Date] = b
	s.mu.Unlock()
}

// ------------------------------- sudoku ------------------------------------

// GetOrCreateSudoku is the Sudoku counterpart of GetOrCreateMinesweeper.
func (s *BoardStore) GetOrCreateSudoku(ctx context.Context, date string) (*SudokuBoard, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	s.mu.RLock()
	b, ok := s.sudoku[date]
	s.mu.RUnlock()
	if ok {
		return b, nil
	}

	b, err := s.fetchSudoku(ctx, date)
	if err == nil {
		s.cacheSudoku(b)
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load sudoku board %s: %w", date, err)
	}

	day, _ := time.Parse(seed.DateLayout, date)
	diff := sudoku.DifficultyFor(day.Weekday())
	sd := s.deriver.Derive(date, string(KindSudoku))
	puz := sudoku.Generate(seed.Rand(sd, 0), diff)
	log.Info().Str("date", date).Str("difficulty", string(diff)).
		Int("blanks", puz.Puzzle.Blanks()).Msg("generated sudoku board")

	puzzleJSON, err := json.Marshal(puz.Puzzle)
	if err != nil {
		return nil, err
	}
	solutionJSON, err := json.Marshal(puz.Solution)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_sudoku_boards
			(date, seed, puzzle, solution, difficulty, created_at)
		VALUES (?,?,?,?,?,?)`,
		date, int64(sd), string(puzzleJSON), string(solutionJSON),
		string(puz.Difficulty), now,
	); err != nil {
		return nil, fmt.Errorf("persist sudoku board %s: %w", date, err)
	}

	b, err = s.fetchSudoku(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("reload sudoku board %s: %w", date, err)
	}
	s.cacheSudoku(b)
	return b, nil
}

func (s *BoardStore) fetchSudoku(ctx context.Context, date string) (*SudokuBoard, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT date, seed, puzzle, solution, difficulty, created_at
		FROM daily_sudoku_boards WHERE date=?`, date)
	var (
		b                SudokuBoard
		seedVal          int64
		puzJSON, solJSON string
		created          string
	)
	if err := row.Scan(&b.Date, &seedVal, &puzJSON, &solJSON, &b.Difficulty, &created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(puzJSON), &b.Puzzle); err != nil {
		return nil, fmt.Errorf("decode puzzle for %s: %w", date, err)
	}
	if err := json.Unmarshal([]byte(solJSON), &b.Solution); err != nil {
		return nil, fmt.Errorf("decode solution for %s: %w", date, err)
	}
	b.Seed = uint64(seedVal)
	b.CreatedAt = mustParse(created)
	return &b, nil
}

func (s *BoardStore) cacheSudoku(b *SudokuBoard) {
	s.mu.Lock()
	s.sudoku[b.Date] = b
	s.mu.Unlock()
}

// ------------------------------- helpers -----------------------------------

// Exists reports whether a board row is present for (date, kind) without
// triggering generation. Attempt recording uses it.
func (s *BoardStore) Exists(ctx context.Context, date string, kind Kind) (bool, error) {
	table := "daily_boards"
	if kind == KindSudoku {
		table = "daily_sudoku_boards"
	}
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM `+table+` WHERE date=?`, date).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
