package gol

// Offsets of the eight cells around a cell, row by row.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CellLive reports whether (x, y) is a live cell. Anything off the board is
// dead: the grid is surrounded by cells that never come alive and its edges
// do not wrap.
func (b Board) CellLive(x, y int) bool {
	return b.inBounds(x, y) && b.cells[y*b.cols+x]
}

// LivingNeighbours counts the live cells in the Moore neighbourhood of (x, y).
func (b Board) LivingNeighbours(x, y int) int {
	n := 0
	for _, off := range neighbourOffsets {
		if b.CellLive(x+off[0], y+off[1]) {
			n++
		}
	}
	return n
}

// Successor is the state of (x, y) in the next generation.
//
//	any live cell with two or three live neighbours survives
//	any dead cell with exactly three live neighbours becomes alive
//	every other cell is dead
func (b Board) Successor(x, y int) bool {
	adj := b.LivingNeighbours(x, y)
	if b.CellLive(x, y) {
		return adj == 2 || adj == 3
	}
	return adj == 3
}

// successorAt is Successor addressed by flat row-major index.
func (b Board) successorAt(idx int) bool {
	return b.Successor(idx%b.cols, idx/b.cols)
}
