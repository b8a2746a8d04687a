package controller

import (
	"fmt"

	"uk.ac.bris.cs/life/gol"
)

// Event is sent by the controller to whichever front-end is driving it.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// TurnComplete is sent after every generation, and once for the starting
// board with CompletedTurns 0.
type TurnComplete struct {
	CompletedTurns int
	Board          gol.Board
}

// BoardEdited is sent when the board changes without a turn passing: a
// toggle, clear or randomise.
type BoardEdited struct {
	CompletedTurns int
	Board          gol.Board
}

// StateChange is sent when the run is paused, resumed or stopped.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// AliveCellsCount is sent every two seconds.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// BoardSaved is sent once the board has been written to Filename.
type BoardSaved struct {
	CompletedTurns int
	Filename       string
}

// FinalTurnComplete is the last event before the channel is closed.
type FinalTurnComplete struct {
	CompletedTurns int
	Board          gol.Board
}

func (e TurnComplete) String() string {
	return fmt.Sprintf("Turn %d complete", e.CompletedTurns)
}

func (e TurnComplete) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e BoardEdited) String() string {
	return fmt.Sprintf("Board edited on turn %d", e.CompletedTurns)
}

func (e BoardEdited) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e StateChange) String() string {
	return fmt.Sprintf("%v", e.NewState)
}

func (e StateChange) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %d", e.CellsCount)
}

func (e AliveCellsCount) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e BoardSaved) String() string {
	return fmt.Sprintf("Board saved to %s", e.Filename)
}

func (e BoardSaved) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e FinalTurnComplete) String() string {
	return fmt.Sprintf("Final turn %d complete, %d alive", e.CompletedTurns, e.Board.AliveCount())
}

func (e FinalTurnComplete) GetCompletedTurns() int {
	return e.CompletedTurns
}
