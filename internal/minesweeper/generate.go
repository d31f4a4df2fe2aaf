// internal/minesweeper/generate.go
//
// Deterministic daily board construction.
// Mine positions are sampled without replacement from the seeded sequence,
// excluding the one-square zone around the fixed safe opening, then the
// layout is handed to the no-guess verifier. Unsolvable candidates are
// discarded and regeneration continues at the next seed offset, bounded by
// maxAttempts. If the primary seed space is exhausted, a decorrelated
// fallback space gets the same budget; only a certified layout is ever
// returned; exhaustion is a typed error, never an unverified board.

package minesweeper

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jurijkreutz/spielbar/internal/seed"
)

// maxAttempts bounds the retry loop per seed space.
const maxAttempts = 1000

// fallbackTag shifts generation into an independent seed space when the
// primary one never produces a solvable layout.
const fallbackTag uint64 = 0x6d696e6573 // "mines"

// ErrUnsolvable is returned when both seed spaces are exhausted without a
// layout the verifier certifies.
var ErrUnsolvable = errors.New("minesweeper: no solvable layout within attempt budget")

// Generate builds the certified daily layout for a seed and tier.
// The result is a pure function of (seedVal, diff): retries walk a fixed
// offset schedule, so replaying the same inputs reproduces the same board.
// Attempts returns alongside for logging.
func Generate(seedVal uint64, diff Difficulty) (*Layout, int, error) {
	p := tierParams(diff)
	attempts := 0
	for _, space := range []uint64{seedVal, seedVal ^ fallbackTag} {
		for off := uint64(0); off < maxAttempts; off++ {
			attempts++
			l := candidate(space, off, p, diff)
			if Solvable(l) {
				return l, attempts, nil
			}
		}
	}
	return nil, attempts, fmt.Errorf("%w (tier %s, %d attempts)", ErrUnsolvable, diff, attempts)
}

// candidate samples one mine layout from the sequence at a seed offset.
func candidate(seedVal, offset uint64, p params, diff Difficulty) *Layout {
	rng := seed.Rand(seedVal, offset)
	open := openingFor(p.rows, p.cols)

	// every cell more than one square from the opening is a mine slot
	candidates := make([]int, 0, p.rows*p.cols)
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if absDiff(r, open.Row) > 1 || absDiff(c, open.Col) > 1 {
				candidates = append(candidates, r*p.cols+c)
			}
		}
	}

	// draw mines without replacement
	mines := make([]Pos, 0, p.mines)
	k := len(candidates)
	for i := 0; i < p.mines; i++ {
		j := rng.Intn(k)
		idx := candidates[j]
		mines = append(mines, Pos{Row: idx / p.cols, Col: idx % p.cols})
		k--
		candidates[j] = candidates[k]
	}
	sort.Slice(mines, func(i, j int) bool {
		if mines[i].Row != mines[j].Row {
			return mines[i].Row < mines[j].Row
		}
		return mines[i].Col < mines[j].Col
	})

	return &Layout{
		Rows:       p.rows,
		Cols:       p.cols,
		MineCount:  p.mines,
		Mines:      mines,
		Opening:    open,
		Difficulty: diff,
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
