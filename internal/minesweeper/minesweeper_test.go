package minesweeper

import (
	"testing"

	"github.com/jurijkreutz/spielbar/internal/seed"
)

func TestGenerateDeterministicAndCertified(t *testing.T) {
	sd := seed.New("").Derive("2024-06-15", "minesweeper")

	a, _, err := Generate(sd, Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, _, err := Generate(sd, Easy)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if len(a.Mines) != len(b.Mines) {
		t.Fatal("same seed produced different mine counts")
	}
	for i := range a.Mines {
		if a.Mines[i] != b.Mines[i] {
			t.Fatalf("same seed produced different layouts at mine %d", i)
		}
	}
	if !Solvable(a) {
		t.Fatal("generated layout is not certified solvable")
	}
}

func TestGenerateRespectsParameters(t *testing.T) {
	sd := seed.New("").Derive("2024-06-10", "minesweeper")
	l, _, err := Generate(sd, Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if l.Rows != 9 || l.Cols != 9 || l.MineCount != 10 {
		t.Fatalf("easy parameters wrong: %dx%d/%d", l.Rows, l.Cols, l.MineCount)
	}
	if len(l.Mines) != l.MineCount {
		t.Fatalf("mine list has %d entries, want %d", len(l.Mines), l.MineCount)
	}
	seen := map[Pos]bool{}
	for _, p := range l.Mines {
		if p.Row < 0 || p.Row >= l.Rows || p.Col < 0 || p.Col >= l.Cols {
			t.Fatalf("mine out of bounds: %+v", p)
		}
		if seen[p] {
			t.Fatalf("duplicate mine: %+v", p)
		}
		seen[p] = true
		// one-square safe zone around the opening
		if absDiff(p.Row, l.Opening.Row) <= 1 && absDiff(p.Col, l.Opening.Col) <= 1 {
			t.Fatalf("mine inside the safe opening zone: %+v", p)
		}
	}
}

// A wall mine on a 1x5 strip: cells left of the mine resolve, but the cell
// behind it has no revealed neighbor, so deduction can never touch it.
func TestSolvableRejectsUnreachableLayout(t *testing.T) {
	l := &Layout{
		Rows: 1, Cols: 5, MineCount: 1,
		Mines:   []Pos{{Row: 0, Col: 3}},
		Opening: Pos{Row: 0, Col: 0},
	}
	if Solvable(l) {
		t.Fatal("layout with unreachable cell certified solvable")
	}
}

// A classic 50/50 on a 2x3 board: the mine sits in one of the two rightmost
// cells, and the revealed 1s at (0,1) and (1,1) are satisfied by either
// placement, so neither cell can ever be pinned down without a guess.
func TestSolvableRejectsAmbiguousPair(t *testing.T) {
	for _, mine := range []Pos{{Row: 0, Col: 2}, {Row: 1, Col: 2}} {
		l := &Layout{
			Rows: 2, Cols: 3, MineCount: 1,
			Mines:   []Pos{mine},
			Opening: Pos{Row: 0, Col: 0},
		}
		if Solvable(l) {
			t.Fatalf("ambiguous layout with mine at %+v certified solvable", mine)
		}
	}
}

// The same strip with the mine in the last cell resolves completely:
// zeros flood to the 1, which pins the mine by rule (a).
func TestSolvableAcceptsResolvableLayout(t *testing.T) {
	l := &Layout{
		Rows: 1, Cols: 5, MineCount: 1,
		Mines:   []Pos{{Row: 0, Col: 4}},
		Opening: Pos{Row: 0, Col: 0},
	}
	if !Solvable(l) {
		t.Fatal("fully deducible layout rejected")
	}
}

func TestSolvableRejectsMinedOpening(t *testing.T) {
	l := &Layout{
		Rows: 1, Cols: 2, MineCount: 1,
		Mines:   []Pos{{Row: 0, Col: 0}},
		Opening: Pos{Row: 0, Col: 0},
	}
	if Solvable(l) {
		t.Fatal("opening on a mine certified solvable")
	}
}

func TestDifficultyTable(t *testing.T) {
	cases := []struct {
		diff          Difficulty
		rows, cols, n int
	}{
		{Easy, 9, 9, 10},
		{Medium, 16, 16, 24},
		{Hard, 16, 16, 32},
	}
	for _, tc := range cases {
		p := tierParams(tc.diff)
		if p.rows != tc.rows || p.cols != tc.cols || p.mines != tc.n {
			t.Fatalf("%s: got %dx%d/%d", tc.diff, p.rows, p.cols, p.mines)
		}
	}
}
