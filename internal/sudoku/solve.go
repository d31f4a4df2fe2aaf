// internal/sudoku/solve.go
//
// Backtracking solver and validity checks.
// Responsibilities:
//   - Solve: fill all blanks of a grid, first solution in fixed cell order.
//   - CountSolutions: count distinct completions, stopping early at 2
//     (all the uniqueness verifier needs).
//   - ValidSolution: every row, column and 3x3 box is a permutation of 1–9.

package sudoku

// isValid reports whether v can be placed at (r, c) without clashing with
// the row, column, or 3x3 box.
func isValid(g *Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first blank cell in row-major order.
func findEmpty(g *Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve returns the first completion of g found by depth-first search in a
// fixed candidate order, or false if none exists. g is not modified.
func Solve(g Grid) (Grid, bool) {
	var dfs func() bool
	dfs = func() bool {
		r, c, ok := findEmpty(&g)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			if isValid(&g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		return Grid{}, false
	}
	return g, true
}

// CountSolutions counts completions of g, stopping as soon as a second one
// is found. The carve loop only ever asks "exactly one?".
func CountSolutions(g Grid) int {
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(&g)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			if isValid(&g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count
}

// ValidSolution reports whether g is fully filled with every row, column,
// and 3x3 box containing each of 1–9 exactly once.
func ValidSolution(g *Grid) bool {
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v < 1 || v > 9 || m&(1<<v) != 0 {
				return false
			}
			m |= 1 << v
		}
	}
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			v := g[r][c]
			if v < 1 || v > 9 || m&(1<<v) != 0 {
				return false
			}
			m |= 1 << v
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					v := g[br+dr][bc+dc]
					if v < 1 || v > 9 || m&(1<<v) != 0 {
						return false
					}
					m |= 1 << v
				}
			}
		}
	}
	return true
}
