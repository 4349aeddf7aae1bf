package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// Rows is the fixed number of grid rows
	Rows = 25
	// Cols is the fixed number of grid columns
	Cols = 25

	// DefaultLiveProbability matches the reference random fill density
	DefaultLiveProbability = 0.3
)

// ErrOutOfRange is returned for coordinates outside the grid
var ErrOutOfRange = errors.New("coordinate out of range")

// Cell is the state of a single grid position
type Cell bool

const (
	// Dead is an empty position
	Dead Cell = false
	// Alive is a populated position
	Alive Cell = true
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Position addresses a single cell
type Position struct {
	Row int
	Col int
}

// Grid is an immutable snapshot of the game board.
//
// Grid is a value type: copying it copies every cell, and every method that
// changes a cell returns a new Grid leaving the receiver untouched. Two grids
// can be compared with ==.
type Grid struct {
	cells [Rows][Cols]Cell
}

// Empty returns a grid with every cell dead
func Empty() Grid {
	return Grid{}
}

// NewRand returns a deterministic random source for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Random returns a grid where each cell is independently alive with probability p.
// A nil r falls back to a time seeded source.
func Random(p float64, r *rand.Rand) Grid {
	if r == nil {
		r = NewRand(time.Now().UnixNano())
	}
	var g Grid
	for row := range Rows {
		for col := range Cols {
			g.cells[row][col] = Cell(r.Float64() < p)
		}
	}
	return g
}

// InjectRandomLife returns a copy of g with n randomly chosen cells set alive.
// A nil r falls back to a time seeded source.
func InjectRandomLife(g Grid, n int, r *rand.Rand) Grid {
	if r == nil {
		r = NewRand(time.Now().UnixNano())
	}
	for range max(n, 0) {
		g.cells[r.IntN(Rows)][r.IntN(Cols)] = Alive
	}
	return g
}

// InBounds reports whether (row, col) is a position on the grid
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func checkBounds(fn string, row, col int) error {
	if !InBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[%s] (%d, %d) not in %dx%d grid", fn, row, col, Rows, Cols)
	}
	return nil
}

// Get returns the state of a cell
func (g Grid) Get(row, col int) (Cell, error) {
	if err := checkBounds("Get", row, col); err != nil {
		return Dead, err
	}
	return g.cells[row][col], nil
}

// WithCell returns a copy of the grid with the cell at (row, col) set to state
func (g Grid) WithCell(row, col int, state Cell) (Grid, error) {
	if err := checkBounds("WithCell", row, col); err != nil {
		return g, err
	}
	g.cells[row][col] = state
	return g, nil
}

// WithCellToggled returns a copy of the grid with the cell at (row, col) flipped
func (g Grid) WithCellToggled(row, col int) (Grid, error) {
	if err := checkBounds("WithCellToggled", row, col); err != nil {
		return g, err
	}
	g.cells[row][col] = !g.cells[row][col]
	return g, nil
}

// CountNeighbors counts living neighbors of an in-bounds cell, ignoring positions off the grid
func (g *Grid) CountNeighbors(row, col int) (count int) {
	for _, off := range rules.NeighborOffsets {
		r, c := row+off[0], col+off[1]
		if InBounds(r, c) && g.cells[r][c] == Alive {
			count++
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g Grid) CountLivingCells() (count int) {
	for row := range Rows {
		for col := range Cols {
			if g.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// LiveCells lists the living positions in row-major order
func (g Grid) LiveCells() []Position {
	var live []Position
	for row := range Rows {
		for col := range Cols {
			if g.cells[row][col] == Alive {
				live = append(live, Position{Row: row, Col: col})
			}
		}
	}
	return live
}

// bounds returns the bounding box of living cells, ok is false for an empty grid
func (g *Grid) bounds() (minRow, maxRow, minCol, maxCol int, ok bool) {
	for row := range Rows {
		for col := range Cols {
			if g.cells[row][col] != Alive {
				continue
			}
			if !ok {
				minRow, maxRow, minCol, maxCol, ok = row, row, col, col, true
				continue
			}
			minRow = min(minRow, row)
			maxRow = max(maxRow, row)
			minCol = min(minCol, col)
			maxCol = max(maxCol, col)
		}
	}
	return
}

// BoundingBoxSize returns the area of the smallest rectangle holding every living cell
func (g Grid) BoundingBoxSize() int {
	minRow, maxRow, minCol, maxCol, ok := g.bounds()
	if !ok {
		return 0
	}
	return (maxRow - minRow + 1) * (maxCol - minCol + 1)
}

// Hash returns an MD5 fingerprint of the grid state
func (g Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, 0, Rows*Cols)
	for row := range Rows {
		for col := range Cols {
			if g.cells[row][col] == Alive {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid one row per line, '#' for alive and '.' for dead
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for row := range Rows {
		for col := range Cols {
			if g.cells[row][col] == Alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
