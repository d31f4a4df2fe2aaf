// internal/minesweeper/minesweeper.go
//
// Core types for the daily Minesweeper.
// Defines:
//   - Pos: a (row, col) cell coordinate.
//   - Layout: a generated mine layout plus its parameters.
//   - Difficulty: enumerated tier mapped to a fixed parameter table.
//
// Tiers stay within dimensions the no-guess verifier can certify with a
// realistic retry budget; there is deliberately no 99-mine expert board.

package minesweeper

import "time"

// Pos identifies a cell on the board.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Difficulty selects a row of the parameter table.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// params is the fixed per-tier board geometry.
type params struct {
	rows, cols, mines int
}

func tierParams(d Difficulty) params {
	switch d {
	case Easy:
		return params{9, 9, 10}
	case Medium:
		return params{16, 16, 24}
	default:
		return params{16, 16, 32} // Hard
	}
}

// DifficultyFor returns the tier played on a given weekday.
// Matches the Sudoku ramp: easy start of week, hard weekend.
func DifficultyFor(wd time.Weekday) Difficulty {
	switch wd {
	case time.Monday, time.Tuesday:
		return Easy
	case time.Wednesday, time.Thursday:
		return Medium
	default:
		return Hard
	}
}

// Layout is a generated daily board: dimensions, mine positions in sorted
// (row, col) order, and the opening cell the verifier certified from.
type Layout struct {
	Rows       int
	Cols       int
	MineCount  int
	Mines      []Pos
	Opening    Pos
	Difficulty Difficulty
}

// openingFor returns the fixed safe opening cell for a board geometry: the
// center cell. Mines are never placed within one square of it.
func openingFor(rows, cols int) Pos {
	return Pos{Row: rows / 2, Col: cols / 2}
}
