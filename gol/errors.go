package gol

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an edit names a cell that is not on the board.
var ErrOutOfRange = errors.New("gol: cell out of range")

// FormatError describes text that could not be parsed into a board.
// Line and Column are 1-based; Column is 0 when the whole line is at fault.
type FormatError struct {
	Line   int
	Column int
	Msg    string
}

func (e *FormatError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("gol: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("gol: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}
