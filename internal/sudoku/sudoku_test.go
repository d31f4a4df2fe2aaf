package sudoku

import (
	"math/rand"
	"testing"
)

// A classic, solvable Sudoku (0 = empty).
var sample = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestSolveSample(t *testing.T) {
	out, ok := Solve(sample)
	if !ok {
		t.Fatal("sample puzzle reported unsolvable")
	}
	if !ValidSolution(&out) {
		t.Fatal("solved grid fails row/col/box validation")
	}
	// givens preserved
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != 0 && out[r][c] != sample[r][c] {
				t.Fatalf("given at (%d,%d) changed: %d -> %d", r, c, sample[r][c], out[r][c])
			}
		}
	}
}

func TestCountSolutionsStopsAtTwo(t *testing.T) {
	var empty Grid
	if got := CountSolutions(empty); got != 2 {
		t.Fatalf("empty grid solutions = %d, want early stop at 2", got)
	}
	if got := CountSolutions(sample); got != 1 {
		t.Fatalf("sample solutions = %d, want 1", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)), Medium)
	b := Generate(rand.New(rand.NewSource(42)), Medium)
	if a.Puzzle != b.Puzzle || a.Solution != b.Solution {
		t.Fatal("same seed produced different puzzles")
	}
	c := Generate(rand.New(rand.NewSource(43)), Medium)
	if a.Puzzle == c.Puzzle {
		t.Fatal("different seeds produced identical puzzles")
	}
}

func TestGenerateAllDifficulties(t *testing.T) {
	cases := []struct {
		name string
		diff Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"expert", Expert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Generate(rand.New(rand.NewSource(12345)), tc.diff)

			if !ValidSolution(&p.Solution) {
				t.Fatal("stored solution is not a valid completion")
			}
			if got := CountSolutions(p.Puzzle); got != 1 {
				t.Fatalf("puzzle has %d solutions, want exactly 1", got)
			}
			// independent solve must reproduce the stored solution
			solved, ok := Solve(p.Puzzle)
			if !ok || solved != p.Solution {
				t.Fatal("reference solve does not match stored solution")
			}
			// every given matches the solution
			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if v := p.Puzzle[r][c]; v != 0 {
						givens++
						if v != p.Solution[r][c] {
							t.Fatalf("given at (%d,%d) contradicts solution", r, c)
						}
					}
				}
			}
			if givens < 17 || givens > 81 {
				t.Fatalf("implausible givens count: %d", givens)
			}
		})
	}
}
