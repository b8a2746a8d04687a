package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"uk.ac.bris.cs/life/controller"
	"uk.ac.bris.cs/life/gol"
	"uk.ac.bris.cs/life/util"
)

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// status is what the bottom line of the screen shows.
type status struct {
	turn  int
	alive int
	state controller.State
	note  string
}

func (s status) String() string {
	line := fmt.Sprintf(" turn %d | %d alive | %v | p pause  s step  c clear  r random  w save  q quit ", s.turn, s.alive, s.state)
	if s.note != "" {
		line += "| " + s.note + " "
	}
	return line
}

func main() {
	rows := flag.Int("rows", 65, "board height in cells")
	cols := flag.Int("cols", 250, "board width in cells")
	threads := flag.Int("threads", gol.DefaultThreads(), "workers per generation, 1 runs sequentially")
	tick := flag.Duration("tick", 64*time.Millisecond, "time between generations")
	in := flag.String("in", "", "start from this board file instead of a random board")
	seed := flag.Uint64("seed", 0, "seed for random boards, 0 picks one")
	out := flag.String("out", ".", "directory boards are saved to")
	logPath := flag.String("log", "", "append log output to this file while the screen is open")
	flag.Parse()

	log.SetPrefix("life-term: ")
	log.SetFlags(0)

	params := controller.Params{
		Rows:    *rows,
		Cols:    *cols,
		Threads: *threads,
		Tick:    *tick,
		Seed:    *seed,
		OutDir:  *out,
	}
	if *in != "" {
		board, err := gol.ReadFile(*in)
		if err != nil {
			log.Fatalf("%v", err)
		}
		params.Initial = &board
	} else if *rows < 0 || *cols < 0 {
		log.Fatalf("board size %dx%d is negative", *rows, *cols)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.Clear()

	// The screen owns the terminal until Fini
	logFile := redirectLog(*logPath)

	keyPresses := make(chan rune, 10)
	clicks := make(chan util.Cell, 10)
	events := make(chan controller.Event)
	controller.Run(params, events, keyPresses, clicks)
	go pollInput(screen, keyPresses, clicks)

	var (
		st    = status{state: controller.Executing}
		final *controller.FinalTurnComplete
	)
	for event := range events {
		switch e := event.(type) {
		case controller.TurnComplete:
			st.turn, st.alive = e.CompletedTurns, e.Board.AliveCount()
			drawBoard(screen, e.Board)
		case controller.BoardEdited:
			st.alive = e.Board.AliveCount()
			drawBoard(screen, e.Board)
		case controller.StateChange:
			st.state = e.NewState
		case controller.BoardSaved:
			st.note = "saved " + e.Filename
		case controller.FinalTurnComplete:
			final = &e
		}
		drawStatus(screen, st)
		screen.Show()
	}

	screen.Fini()
	if logFile != nil {
		logFile.Close()
	}
	if final != nil {
		fmt.Println(final)
	}
}

// redirectLog sends log output to path, or discards it when path is empty.
func redirectLog(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

// pollInput forwards keys and left clicks to the controller. Escape closes
// keyPresses, which stops the run. A right click pauses like the space bar.
func pollInput(screen tcell.Screen, keyPresses chan<- rune, clicks chan<- util.Cell) {
	var held tcell.ButtonMask
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalised
			return
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				close(keyPresses)
				return
			case ev.Key() == tcell.KeyRune:
				keyPresses <- ev.Rune()
			}
		case *tcell.EventMouse:
			buttons := ev.Buttons()
			pressed := buttons &^ held
			held = buttons
			if pressed&tcell.Button1 != 0 {
				x, y := ev.Position()
				clicks <- util.Cell{X: x, Y: y}
			}
			if pressed&tcell.Button2 != 0 {
				keyPresses <- ' '
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func drawBoard(screen tcell.Screen, b gol.Board) {
	for cell, alive := range b.Cells() {
		r, style := gol.DeadCell, deadStyle
		if alive {
			r, style = gol.LiveCell, liveStyle
		}
		screen.SetContent(cell.X, cell.Y, r, nil, style)
	}
}

// drawStatus writes the status line across the last terminal row.
func drawStatus(screen tcell.Screen, st status) {
	width, height := screen.Size()
	y := height - 1
	text := []rune(st.String())
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		screen.SetContent(x, y, r, nil, statusStyle)
	}
}
