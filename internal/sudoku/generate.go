// internal/sudoku/generate.go
//
// Deterministic daily Sudoku construction.
// Two phases, both driven purely by the seeded sequence:
//   1. Fill an empty grid into a full valid solution, shuffling the
//      candidate order at every cell.
//   2. Carve blanks in a seeded cell order, re-checking after each removal
//      that exactly one solution remains; stop at the tier's target clue
//      count or when no further removal preserves uniqueness.
//
// The same rand source always yields the same (puzzle, solution) pair.

package sudoku

import "math/rand"

// Puzzle is a generated daily Sudoku: the carved grid plus its unique
// canonical solution.
type Puzzle struct {
	Puzzle     Grid
	Solution   Grid
	Difficulty Difficulty
}

// Generate builds the day's puzzle from a seeded sequence.
// Determinism contract: the output is a pure function of rng's state.
func Generate(rng *rand.Rand, diff Difficulty) Puzzle {
	var full Grid
	fillRandom(rng, &full)

	puz := full
	positions := rng.Perm(81)
	target := targetGivens(diff)
	givens := 81

	for _, pos := range positions {
		if givens <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		if CountSolutions(puz) != 1 {
			puz[r][c] = old // removal breaks uniqueness, put it back
			continue
		}
		givens--
	}

	return Puzzle{Puzzle: puz, Solution: full, Difficulty: diff}
}

// fillRandom completes an empty grid by depth-first search, picking the
// candidate order at each cell from rng. Always succeeds on an empty grid.
func fillRandom(rng *rand.Rand, g *Grid) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if isValid(g, r, c, v) {
				g[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}
