package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

Fewer than two or more than three live neighbors kill the cell, a dead cell with
exactly three live neighbors is born, and every other cell keeps its state.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if neighbors < 2 || neighbors > 3 {
		return false
	}
	if !alive && neighbors == 3 {
		return true
	}
	return alive
}

// NeighborOffsets lists the 8 (row, col) offsets of a cell's Moore neighborhood
var NeighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
