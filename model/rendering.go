package model

import (
	"fmt"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and clears the screen
	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws grids as blocks of text
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g Grid) {
	for row := range Rows {
		for col := range Cols {
			if g.cells[row][col] == Alive {
				fmt.Fprint(r.Out, gridPosBlock)
			} else {
				fmt.Fprint(r.Out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}
