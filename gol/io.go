package gol

import (
	"fmt"
	"os"
)

// ReadFile loads a board stored in the text form, as written by WriteFile.
func ReadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("reading board: %w", err)
	}
	b, err := Parse(string(data))
	if err != nil {
		return Board{}, fmt.Errorf("reading board %s: %w", path, err)
	}
	return b, nil
}

// WriteFile stores the board in the text form, ending the file with a
// terminator so it reads as a normal text file.
func WriteFile(path string, b Board) error {
	text := b.Format()
	if b.rows > 0 {
		text += string(Terminator)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing board: %w", err)
	}
	return nil
}

// Filename is the name a board of this size is saved under after the given
// number of completed turns, e.g. 65x250x10.txt.
func Filename(b Board, turns int) string {
	return fmt.Sprintf("%dx%dx%d.txt", b.rows, b.cols, turns)
}
