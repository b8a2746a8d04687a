package controller

import (
	"log"
	"math/rand/v2"
	"path/filepath"
	"time"

	"uk.ac.bris.cs/life/gol"
	"uk.ac.bris.cs/life/util"
)

// Params provides the details of how to run the Game of Life.
type Params struct {
	Rows    int
	Cols    int
	Turns   int           // 0 runs until quit
	Threads int           // 1 or less uses the sequential engine
	Tick    time.Duration // 0 steps as fast as possible
	Initial *gol.Board    // nil starts from a random board
	Seed    uint64        // non-zero makes random boards reproducible
	OutDir  string        // where 'w' saves the board
}

// How often an AliveCellsCount event is sent.
var aliveInterval = 2 * time.Second

// controller owns the current board for the duration of a run.
type controller struct {
	params Params
	events chan<- Event
	rng    gol.Source

	board gol.Board
	turn  int
	state State
}

// Run starts the Game of Life on its own goroutine and returns immediately.
// Every change is reported on events, which is closed once the run ends.
// Keys are described in keypress.go; cells received on clicks are toggled.
// Closing keyPresses stops the run.
func Run(p Params, events chan<- Event, keyPresses <-chan rune, clicks <-chan util.Cell) {
	c := &controller{
		params: p,
		events: events,
		state:  Executing,
	}
	if p.Seed != 0 {
		c.rng = rand.New(rand.NewPCG(p.Seed, p.Seed))
	}
	if p.Initial != nil {
		c.board = *p.Initial
	} else {
		c.board = c.random(gol.New(p.Rows, p.Cols))
	}
	go c.loop(keyPresses, clicks)
}

func (c *controller) loop(keyPresses <-chan rune, clicks <-chan util.Cell) {
	// Close the channel to stop the front-end gracefully
	defer close(c.events)

	aliveTicker := time.NewTicker(aliveInterval)
	defer aliveTicker.Stop()

	// With no tick the next generation is always due: a closed channel is
	// always ready to receive.
	var tick <-chan time.Time
	if c.params.Tick > 0 {
		ticker := time.NewTicker(c.params.Tick)
		defer ticker.Stop()
		tick = ticker.C
	} else {
		due := make(chan time.Time)
		close(due)
		tick = due
	}

	c.events <- TurnComplete{CompletedTurns: 0, Board: c.board}

	for c.state != Quitting && !c.finished() {
		var next <-chan time.Time
		if c.state == Executing {
			next = tick
		}

		select {
		case key, ok := <-keyPresses:
			if !ok {
				c.setState(Quitting)
				continue
			}
			c.handleKey(key)
		case cell, ok := <-clicks:
			if !ok {
				clicks = nil
				continue
			}
			c.toggle(cell)
		case <-aliveTicker.C:
			c.events <- AliveCellsCount{CompletedTurns: c.turn, CellsCount: c.board.AliveCount()}
		case <-next:
			c.step()
		}
	}

	c.events <- FinalTurnComplete{CompletedTurns: c.turn, Board: c.board}
	if c.state != Quitting {
		c.setState(Quitting)
	}
}

func (c *controller) finished() bool {
	return c.params.Turns > 0 && c.turn >= c.params.Turns
}

func (c *controller) setState(s State) {
	c.state = s
	c.events <- StateChange{CompletedTurns: c.turn, NewState: s}
}

// step advances the board by one generation.
func (c *controller) step() {
	if c.params.Threads <= 1 {
		c.board = c.board.NextGeneration()
	} else {
		c.board = c.board.ParallelNextGeneration(c.params.Threads)
	}
	c.turn++
	c.events <- TurnComplete{CompletedTurns: c.turn, Board: c.board}
}

func (c *controller) handleKey(key rune) {
	cmd, ok := commandFor(key)
	if !ok {
		return
	}
	switch cmd {
	case pause:
		if c.state == Paused {
			c.setState(Executing)
		} else {
			c.setState(Paused)
		}
	case quit:
		c.setState(Quitting)
	case clearBoard:
		c.edit(c.board.Clear())
	case randomise:
		c.edit(c.random(c.board))
	case step:
		c.step()
	case save:
		c.save()
	}
}

// toggle flips a clicked cell. Clicks that land outside the board are
// ignored.
func (c *controller) toggle(cell util.Cell) {
	board, err := c.board.Toggle(cell.X, cell.Y)
	if err != nil {
		log.Printf("ignoring click at %v: %v", cell, err)
		return
	}
	c.edit(board)
}

func (c *controller) edit(board gol.Board) {
	c.board = board
	c.events <- BoardEdited{CompletedTurns: c.turn, Board: c.board}
}

func (c *controller) random(board gol.Board) gol.Board {
	if c.rng != nil {
		return board.RandomWith(c.rng)
	}
	return board.Random()
}

func (c *controller) save() {
	filename := filepath.Join(c.params.OutDir, gol.Filename(c.board, c.turn))
	if err := gol.WriteFile(filename, c.board); err != nil {
		log.Printf("saving turn %d: %v", c.turn, err)
		return
	}
	c.events <- BoardSaved{CompletedTurns: c.turn, Filename: filename}
}
