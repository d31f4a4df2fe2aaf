// internal/minesweeper/solve.go
//
// No-guess deduction verifier.
// Starting from the safe opening, two rules run to fixpoint:
//   (a) a revealed number whose unresolved-neighbor count equals its
//       remaining mine count marks every unresolved neighbor as a mine;
//   (b) a revealed number whose known-mine-neighbor count equals its number
//       marks every remaining unresolved neighbor as safe.
// A layout is certified solvable iff the fixpoint leaves no unresolved cell.
// Rule (b) with a zero number also drives the usual opening flood-fill, so
// no separate expansion pass is needed.

package minesweeper

// cell resolution states during deduction.
const (
	unknown = iota
	safe    // revealed, number visible
	mined   // deduced mine
)

// Solvable reports whether the layout is fully resolvable by pure deduction
// from the opening cell, with no guess step.
func Solvable(l *Layout) bool {
	w, h := l.Cols, l.Rows
	mines := make([]bool, w*h)
	for _, p := range l.Mines {
		if p.Row < 0 || p.Row >= h || p.Col < 0 || p.Col >= w {
			return false
		}
		mines[p.Row*w+p.Col] = true
	}
	open := l.Opening.Row*w + l.Opening.Col
	if mines[open] {
		return false
	}

	state := make([]int, w*h)
	state[open] = safe

	// neighbor numbers come from ground truth; the solver only ever reads
	// the number of a cell it has already proven safe.
	number := func(idx int) int {
		n := 0
		eachNeighbor(idx, w, h, func(j int) {
			if mines[j] {
				n++
			}
		})
		return n
	}

	for changed := true; changed; {
		changed = false
		for i := range state {
			if state[i] != safe {
				continue
			}
			n := number(i)
			unknowns, known := 0, 0
			eachNeighbor(i, w, h, func(j int) {
				switch state[j] {
				case unknown:
					unknowns++
				case mined:
					known++
				}
			})
			if unknowns == 0 {
				continue
			}
			switch {
			case n-known == unknowns:
				eachNeighbor(i, w, h, func(j int) {
					if state[j] == unknown {
						state[j] = mined
					}
				})
				changed = true
			case n == known:
				eachNeighbor(i, w, h, func(j int) {
					if state[j] == unknown {
						state[j] = safe
					}
				})
				changed = true
			}
		}
	}

	for i, st := range state {
		if st == unknown {
			return false
		}
		// deduction soundness check: a cell must never be resolved wrongly
		if (st == mined) != mines[i] {
			return false
		}
	}
	return true
}

// eachNeighbor calls fn with the index of every in-bounds neighbor of idx.
func eachNeighbor(idx, w, h int, fn func(j int)) {
	r, c := idx/w, idx%w
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if nr < 0 || nr >= h || nc < 0 || nc >= w {
				continue
			}
			fn(nr*w + nc)
		}
	}
}
