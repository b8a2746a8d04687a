package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/life/controller"
	"uk.ac.bris.cs/life/gol"
	"uk.ac.bris.cs/life/util"
)

// Board events handled per frame, so a fast controller cannot starve input.
const eventsPerFrame = 8

func init() {
	// SDL must be driven from the main thread
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 1920, "window width in pixels")
	height := flag.Int("height", 1080, "window height in pixels")
	scale := flag.Int("scale", 5, "pixels per cell")
	fullscreen := flag.Bool("fullscreen", false, "open a fullscreen window")
	threads := flag.Int("threads", gol.DefaultThreads(), "workers per generation, 1 runs sequentially")
	tick := flag.Duration("tick", 16*time.Millisecond, "time between generations")
	in := flag.String("in", "", "start from this board file instead of a random board")
	out := flag.String("out", ".", "directory boards are saved to")
	flag.Parse()

	log.SetPrefix("life-gui: ")

	if *scale <= 0 || *width <= 0 || *height <= 0 {
		log.Fatalf("window %dx%d at scale %d is not drawable", *width, *height, *scale)
	}
	params := controller.Params{
		Rows:    *height / *scale,
		Cols:    *width / *scale,
		Threads: *threads,
		Tick:    *tick,
		OutDir:  *out,
	}
	if *in != "" {
		board, err := gol.ReadFile(*in)
		if err != nil {
			log.Fatalf("%v", err)
		}
		params.Initial = &board
	}

	w, err := newWindow(int32(*width), int32(*height), *scale, *fullscreen)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer w.destroy()

	keyPresses := make(chan rune, 10)
	clicks := make(chan util.Cell, 10)
	events := make(chan controller.Event)
	controller.Run(params, events, keyPresses, clicks)

	quitting := false
	stop := func() {
		if !quitting {
			quitting = true
			close(keyPresses)
		}
	}
	send := func(key rune) {
		if quitting {
			return
		}
		select {
		case keyPresses <- key:
		default:
			log.Printf("dropping key %q", key)
		}
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				stop()
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					stop()
				case sdl.K_SPACE:
					send(' ')
				case sdl.K_p, sdl.K_q, sdl.K_c, sdl.K_r, sdl.K_s, sdl.K_w:
					send(rune(e.Keysym.Sym))
				}
			case *sdl.MouseButtonEvent:
				if e.Type != sdl.MOUSEBUTTONDOWN || quitting {
					break
				}
				switch e.Button {
				case sdl.BUTTON_LEFT:
					select {
					case clicks <- w.cellAt(e.X, e.Y):
					default:
					}
				case sdl.BUTTON_RIGHT:
					send(' ')
				}
			}
		}

		for i := 0; i < eventsPerFrame; i++ {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				switch e := event.(type) {
				case controller.TurnComplete:
					w.draw(e.Board)
				case controller.BoardEdited:
					w.draw(e.Board)
				case controller.StateChange, controller.BoardSaved, controller.FinalTurnComplete:
					log.Println(e)
				}
			default:
				i = eventsPerFrame
			}
		}

		if err := w.renderFrame(); err != nil {
			log.Printf("rendering frame: %v", err)
		}
		sdl.Delay(5)
	}
}
