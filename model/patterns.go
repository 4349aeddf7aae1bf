package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned for a pattern outside the built-in set
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern names one of the built-in seed shapes
type Pattern int

const (
	Blinker Pattern = iota
	Glider
	Pulsar

	numPatterns
)

// Offset is a (row, col) displacement from a pattern's anchor
type Offset struct {
	Row int
	Col int
}

var patternNames = [numPatterns]string{
	Blinker: "blinker",
	Glider:  "glider",
	Pulsar:  "pulsar",
}

var patternOffsets = [numPatterns][]Offset{
	// vertical line of three
	Blinker: {{-1, 0}, {0, 0}, {1, 0}},
	// heads down and to the right, one cell every four generations
	Glider: {{-1, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1}},
	Pulsar: pulsarOffsets(),
}

// pulsarOffsets builds the 48 cell pulsar centred on the anchor: bars of three
// cells at distance 1 and 6 from both axes, mirrored into all four quadrants.
func pulsarOffsets() []Offset {
	offsets := make([]Offset, 0, 48)
	for _, bar := range []int{-6, -1, 1, 6} {
		for _, run := range []int{-4, -3, -2, 2, 3, 4} {
			offsets = append(offsets, Offset{Row: bar, Col: run})
		}
	}
	for _, bar := range []int{-6, -1, 1, 6} {
		for _, run := range []int{-4, -3, -2, 2, 3, 4} {
			offsets = append(offsets, Offset{Row: run, Col: bar})
		}
	}
	return offsets
}

// Patterns lists every built-in pattern
func Patterns() []Pattern {
	return []Pattern{Blinker, Glider, Pulsar}
}

func (p Pattern) valid() bool {
	return p >= 0 && p < numPatterns
}

func (p Pattern) String() string {
	if !p.valid() {
		return fmt.Sprintf("pattern(%d)", int(p))
	}
	return patternNames[p]
}

// Offsets returns a copy of the pattern's cell offsets
func (p Pattern) Offsets() []Offset {
	if !p.valid() {
		return nil
	}
	return append([]Offset(nil), patternOffsets[p]...)
}

// ParsePattern resolves a case-insensitive pattern name
func ParsePattern(name string) (Pattern, error) {
	for _, p := range Patterns() {
		if strings.EqualFold(strings.TrimSpace(name), patternNames[p]) {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPattern, "[ParsePattern] %q", name)
}

// Stamp sets the pattern's cells alive around (anchorRow, anchorCol).
// Cells that fall off the grid are skipped, and cells not covered by the
// pattern keep their state.
func Stamp(g Grid, p Pattern, anchorRow, anchorCol int) (Grid, error) {
	if !p.valid() {
		return g, errors.Wrapf(ErrUnknownPattern, "[Stamp] %d", int(p))
	}
	if err := checkBounds("Stamp", anchorRow, anchorCol); err != nil {
		return g, err
	}

	for _, off := range patternOffsets[p] {
		row, col := anchorRow+off.Row, anchorCol+off.Col
		if InBounds(row, col) {
			g.cells[row][col] = Alive
		}
	}
	return g, nil
}

// StampCentered stamps the pattern anchored at the grid's midpoint
func StampCentered(g Grid, p Pattern) (Grid, error) {
	return Stamp(g, p, Rows/2, Cols/2)
}
