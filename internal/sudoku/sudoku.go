// internal/sudoku/sudoku.go
//
// Core types for the daily Sudoku.
// Defines:
//   - Grid: 9x9 cell matrix, 0 = blank, 1–9 = value.
//   - Difficulty: enumerated tier controlling how many givens remain.

package sudoku

import "time"

// Grid is a 9x9 Sudoku grid. Zero means blank.
type Grid [9][9]uint8

// Difficulty labels the target clue count for puzzle carving.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// targetGivens maps a tier to the number of clues carving aims for.
func targetGivens(d Difficulty) int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 34
	case Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// DifficultyFor returns the tier played on a given weekday.
// The week ramps up: easy start, expert Sunday.
func DifficultyFor(wd time.Weekday) Difficulty {
	switch wd {
	case time.Monday, time.Tuesday:
		return Easy
	case time.Wednesday, time.Thursday:
		return Medium
	case time.Friday, time.Saturday:
		return Hard
	default:
		return Expert
	}
}

// Blanks counts the empty cells of g.
func (g *Grid) Blanks() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}
