package model

import (
	"testing"

	"github.com/pkg/errors"
)

// gridOf builds a grid with exactly the given cells alive
func gridOf(t *testing.T, live ...Position) Grid {
	t.Helper()
	g := Empty()
	for _, p := range live {
		var err error
		if g, err = g.WithCell(p.Row, p.Col, Alive); err != nil {
			t.Fatalf("WithCell(%d, %d): %v", p.Row, p.Col, err)
		}
	}
	return g
}

func TestEmpty(t *testing.T) {
	g := Empty()
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("empty grid has %d living cells", n)
	}
	if g.BoundingBoxSize() != 0 {
		t.Fatalf("empty grid bounding box = %d, want 0", g.BoundingBoxSize())
	}
}

func TestRandom(t *testing.T) {
	if n := Random(0, NewRand(1)).CountLivingCells(); n != 0 {
		t.Fatalf("p=0 produced %d living cells", n)
	}
	if n := Random(1, NewRand(1)).CountLivingCells(); n != Rows*Cols {
		t.Fatalf("p=1 produced %d living cells, want %d", n, Rows*Cols)
	}

	a := Random(DefaultLiveProbability, NewRand(42))
	b := Random(DefaultLiveProbability, NewRand(42))
	if a != b {
		t.Fatal("same seed produced different grids")
	}

	n := a.CountLivingCells()
	if n < 100 || n > 280 {
		t.Fatalf("p=%.1f produced %d living cells of %d", DefaultLiveProbability, n, Rows*Cols)
	}
}

func TestGetOutOfRange(t *testing.T) {
	g := Empty()
	for _, tc := range []Position{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}, {Rows, Cols}} {
		if _, err := g.Get(tc.Row, tc.Col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d, %d) err = %v, want ErrOutOfRange", tc.Row, tc.Col, err)
		}
		if _, err := g.WithCellToggled(tc.Row, tc.Col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("WithCellToggled(%d, %d) err = %v, want ErrOutOfRange", tc.Row, tc.Col, err)
		}
	}
}

func TestWithCellToggled(t *testing.T) {
	orig := Random(0.5, NewRand(7))

	toggled, err := orig.WithCellToggled(3, 4)
	if err != nil {
		t.Fatal(err)
	}

	before, _ := orig.Get(3, 4)
	after, _ := toggled.Get(3, 4)
	if before == after {
		t.Fatalf("cell not flipped: %v -> %v", before, after)
	}
	if again, _ := orig.Get(3, 4); again != before {
		t.Fatal("toggle mutated the receiver")
	}

	back, err := toggled.WithCellToggled(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if back != orig {
		t.Fatal("toggling twice did not restore the original grid")
	}
}

func TestLiveCellsAndBounds(t *testing.T) {
	g := gridOf(t, Position{2, 3}, Position{5, 1}, Position{4, 7})

	live := g.LiveCells()
	want := []Position{{2, 3}, {4, 7}, {5, 1}}
	if len(live) != len(want) {
		t.Fatalf("LiveCells = %v, want %v", live, want)
	}
	for i := range want {
		if live[i] != want[i] {
			t.Fatalf("LiveCells = %v, want %v", live, want)
		}
	}

	// rows 2..5, cols 1..7
	if got := g.BoundingBoxSize(); got != 4*7 {
		t.Fatalf("BoundingBoxSize = %d, want %d", got, 4*7)
	}
}

func TestHashAndString(t *testing.T) {
	a := gridOf(t, Position{0, 0})
	b := gridOf(t, Position{0, 1})

	if a.Hash() == b.Hash() {
		t.Fatal("different grids share a hash")
	}
	if a.Hash() != gridOf(t, Position{0, 0}).Hash() {
		t.Fatal("equal grids hash differently")
	}

	s := a.String()
	if len(s) != Rows*(Cols+1) {
		t.Fatalf("String length = %d, want %d", len(s), Rows*(Cols+1))
	}
	if s[0] != '#' || s[1] != '.' {
		t.Fatalf("String starts with %q", s[:2])
	}
}

func TestRandomNilSource(t *testing.T) {
	g := Random(1, nil)
	if n := g.CountLivingCells(); n != Rows*Cols {
		t.Fatalf("p=1 with nil source produced %d living cells", n)
	}
}

func TestInjectRandomLife(t *testing.T) {
	base := gridOf(t, Position{0, 0})

	g := InjectRandomLife(base, 10, NewRand(6))
	if g != InjectRandomLife(base, 10, NewRand(6)) {
		t.Fatal("same seed injected different cells")
	}
	if n := g.CountLivingCells(); n < 2 || n > 11 {
		t.Fatalf("got %d living cells after injecting 10", n)
	}
	if c, _ := g.Get(0, 0); c != Alive {
		t.Fatal("injection killed an existing cell")
	}
	if base.CountLivingCells() != 1 {
		t.Fatal("injection mutated its input")
	}

	if InjectRandomLife(base, 0, NewRand(6)) != base || InjectRandomLife(base, -3, nil) != base {
		t.Fatal("non-positive count changed the grid")
	}
	if InjectRandomLife(Empty(), 1, nil).CountLivingCells() != 1 {
		t.Fatal("nil source injected nothing")
	}
}
