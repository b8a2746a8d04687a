package controller

// keyCommand is an instruction decoded from a keypress.
type keyCommand uint8

const (
	pause keyCommand = iota
	quit
	clearBoard
	randomise
	step
	save
)

// commandFor maps a key to the command it triggers. Keys with no meaning
// report false.
func commandFor(key rune) (keyCommand, bool) {
	switch key {
	case 'p', ' ':
		return pause, true
	case 'q':
		return quit, true
	case 'c':
		return clearBoard, true
	case 'r':
		return randomise, true
	case 's':
		return step, true
	case 'w':
		return save, true
	}
	return 0, false
}
