package util

import "fmt"

// Cell is a board coordinate. X is the column and Y is the row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Scale maps a display position onto the cell it falls in when every cell
// is drawn as a scale x scale square.
func Scale(px, py, scale int) Cell {
	if scale <= 0 {
		scale = 1
	}
	return Cell{X: px / scale, Y: py / scale}
}
