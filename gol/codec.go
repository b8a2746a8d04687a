package gol

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Characters of the text form of a board.
const (
	LiveCell   = '@'
	DeadCell   = '.'
	Terminator = '\n'
)

// Parse reads a board from its text form: one line per row, LiveCell or
// DeadCell per column, rows separated by Terminator. A single terminator at
// the very end is allowed. Every line must have the same length.
func Parse(text string) (Board, error) {
	if text == "" {
		return New(0, 0), nil
	}
	lines := strings.Split(strings.TrimSuffix(text, string(Terminator)), string(Terminator))

	rows, cols := len(lines), len(lines[0])
	board := New(rows, cols)
	for y, line := range lines {
		if len(line) != cols {
			return Board{}, &FormatError{
				Line: y + 1,
				Msg:  "line length differs from the first line",
			}
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case LiveCell:
				board.cells[y*cols+x] = true
			case DeadCell:
			default:
				return Board{}, &FormatError{
					Line:   y + 1,
					Column: x + 1,
					Msg:    "unexpected character " + quoteChar(line[x:]),
				}
			}
		}
	}
	return board, nil
}

// MustParse is Parse for boards written into the source; it panics on error.
func MustParse(text string) Board {
	b, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return b
}

// Format writes the board in the text form read by Parse, without a
// terminator after the last row.
func (b Board) Format() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for y := 0; y < b.rows; y++ {
		if y > 0 {
			sb.WriteByte(Terminator)
		}
		for _, alive := range b.cells[y*b.cols : (y+1)*b.cols] {
			if alive {
				sb.WriteByte(LiveCell)
			} else {
				sb.WriteByte(DeadCell)
			}
		}
	}
	return sb.String()
}

func (b Board) String() string {
	return b.Format()
}

func quoteChar(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return strconv.QuoteRune(r)
}
