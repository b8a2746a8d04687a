package gol

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"uk.ac.bris.cs/life/util"
)

// Board is one generation of the game: a rows x cols grid of cells stored
// row-major, so cell (x, y) lives at cells[y*cols+x].
//
// Boards are values. Every operation that produces a board returns a new one
// and leaves its receiver untouched, which is what lets the parallel engine
// share the previous generation between goroutines without locking.
type Board struct {
	cells []bool
	rows  int
	cols  int
}

// Source is anything that can hand out random bits, e.g. *rand.Rand.
type Source interface {
	Uint64() uint64
}

// New returns a rows x cols board with every cell dead.
func New(rows, cols int) Board {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("gol: negative board size %dx%d", rows, cols))
	}
	return Board{cells: make([]bool, rows*cols), rows: rows, cols: cols}
}

func (b Board) Rows() int { return b.rows }
func (b Board) Cols() int { return b.cols }

// Len is the number of cells on the board.
func (b Board) Len() int { return b.rows * b.cols }

// Random returns a board of the same size where every cell is alive with
// probability one half.
func (b Board) Random() Board {
	return b.RandomWith(globalSource{})
}

// RandomWith is Random drawing its bits from src.
func (b Board) RandomWith(src Source) Board {
	next := New(b.rows, b.cols)
	var bits uint64
	for i := range next.cells {
		if i%64 == 0 {
			bits = src.Uint64()
		}
		next.cells[i] = bits&1 == 1
		bits >>= 1
	}
	return next
}

type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// Toggle returns a copy of the board with the cell at (x, y) flipped.
func (b Board) Toggle(x, y int) (Board, error) {
	if !b.inBounds(x, y) {
		return Board{}, fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfRange, x, y, b.cols, b.rows)
	}
	next := b.clone()
	idx := y*b.cols + x
	next.cells[idx] = !next.cells[idx]
	return next, nil
}

// Clear returns an all-dead board of the same size.
func (b Board) Clear() Board {
	return New(b.rows, b.cols)
}

// Cells walks the board in row-major order, yielding each coordinate with
// whether that cell is alive. The sequence can be ranged over any number of
// times.
func (b Board) Cells() iter.Seq2[util.Cell, bool] {
	return func(yield func(util.Cell, bool) bool) {
		for y := 0; y < b.rows; y++ {
			for x := 0; x < b.cols; x++ {
				if !yield(util.Cell{X: x, Y: y}, b.cells[y*b.cols+x]) {
					return
				}
			}
		}
	}
}

// Equal reports whether both boards have the same size and the same cells.
func (b Board) Equal(o Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i, alive := range b.cells {
		if o.cells[i] != alive {
			return false
		}
	}
	return true
}

// AliveCells returns the coordinates of every live cell in row-major order.
func (b Board) AliveCells() []util.Cell {
	aliveCells := make([]util.Cell, 0)
	for cell, alive := range b.Cells() {
		if alive {
			aliveCells = append(aliveCells, cell)
		}
	}
	return aliveCells
}

func (b Board) AliveCount() int {
	n := 0
	for _, alive := range b.cells {
		if alive {
			n++
		}
	}
	return n
}

func (b Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

func (b Board) clone() Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	return Board{cells: cells, rows: b.rows, cols: b.cols}
}
