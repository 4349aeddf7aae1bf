package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// StepFunc computes the next generation from the current one
type StepFunc func(Grid) Grid

// Step calculates the next generation by scanning every cell.
// It reads only from g and returns a new grid.
func Step(g Grid) Grid {
	var next Grid
	g.stepRows(&next, 0, Rows, 0, Cols)
	return next
}

// StepParallel calculates the next generation using parallel processing
func StepParallel(g Grid) Grid {
	var (
		next          Grid
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (Rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, Rows)
		)
		if startRow >= Rows {
			break
		}

		// workers write disjoint rows of next
		eg.Go(func() error {
			g.stepRows(&next, startRow, endRow, 0, Cols)
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()

	return next
}

// StepBounded calculates the next generation only in the active region plus a one cell margin
func StepBounded(g Grid) Grid {
	var next Grid

	minRow, maxRow, minCol, maxCol, ok := g.bounds()
	if !ok {
		return next
	}

	g.stepRows(&next,
		max(0, minRow-1), min(Rows, maxRow+2),
		max(0, minCol-1), min(Cols, maxCol+2),
	)
	return next
}

// StepFuncFor picks the stepping strategy, bounded taking precedence over parallel
func StepFuncFor(parallel, bounded bool) StepFunc {
	switch {
	case bounded:
		return StepBounded
	case parallel:
		return StepParallel
	default:
		return Step
	}
}

// stepRows writes the next state of rows [startRow, endRow) and columns [startCol, endCol) into next
func (g *Grid) stepRows(next *Grid, startRow, endRow, startCol, endCol int) {
	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			alive := g.cells[row][col] == Alive
			next.cells[row][col] = Cell(rules.ApplyConwayRules(g.CountNeighbors(row, col), alive))
		}
	}
}
