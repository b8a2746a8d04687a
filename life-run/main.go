package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"uk.ac.bris.cs/life/controller"
	"uk.ac.bris.cs/life/gol"
)

var done = spin.Spinner{Frames: []string{"✔"}}

func main() {
	rows := flag.Int("rows", 200, "board height in cells")
	cols := flag.Int("cols", 200, "board width in cells")
	turns := flag.Int("turns", 100, "generations to run")
	threads := flag.Int("threads", gol.DefaultThreads(), "workers per generation, 1 runs sequentially")
	seed := flag.Uint64("seed", 0, "seed for the random board, 0 picks one")
	in := flag.String("in", "", "start from this board file instead of a random board")
	out := flag.String("out", "", "write the final board here instead of stdout")
	check := flag.Bool("check", false, "recompute every turn sequentially and stop on a mismatch")
	flag.Parse()

	log.SetPrefix("life-run: ")

	if *turns <= 0 {
		log.Fatalf("-turns must be positive, got %d", *turns)
	}
	params := controller.Params{
		Rows:    *rows,
		Cols:    *cols,
		Turns:   *turns,
		Threads: *threads,
		Seed:    *seed,
	}
	if *in != "" {
		board, err := load(*in)
		if err != nil {
			log.Fatalf("%v", err)
		}
		params.Initial = &board
	} else if *rows < 0 || *cols < 0 {
		log.Fatalf("board size %dx%d is negative", *rows, *cols)
	}

	final, err := run(params, *check)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *out == "" {
		fmt.Println(final.Board)
		return
	}
	if err := save(*out, final.Board); err != nil {
		log.Fatalf("%v", err)
	}
	log.Println(final)
}

// run drives the controller to the last turn with a progress bar, checking
// each generation against the sequential engine when asked to.
func run(p controller.Params, check bool) (controller.FinalTurnComplete, error) {
	events := make(chan controller.Event)
	keyPresses := make(chan rune)
	controller.Run(p, events, keyPresses, nil)

	bar := pb.StartNew(p.Turns)

	start := time.Now()
	var (
		previous gol.Board
		final    controller.FinalTurnComplete
		mismatch error
	)
	for event := range events {
		switch e := event.(type) {
		case controller.TurnComplete:
			if check && e.CompletedTurns > 0 && mismatch == nil {
				if want := previous.NextGeneration(); !want.Equal(e.Board) {
					mismatch = fmt.Errorf("turn %d differs from the sequential engine", e.CompletedTurns)
					// Stop the run early
					close(keyPresses)
				}
			}
			previous = e.Board
			if e.CompletedTurns > 0 {
				bar.Increment()
			}
		case controller.FinalTurnComplete:
			final = e
		}
	}
	bar.Finish()
	if mismatch != nil {
		return final, mismatch
	}

	elapsed := time.Since(start)
	log.Printf("%d turns in %v (%.1f turns/s)", final.CompletedTurns, elapsed.Round(time.Millisecond), float64(final.CompletedTurns)/elapsed.Seconds())
	return final, nil
}

func load(path string) (gol.Board, error) {
	w := wow.New(os.Stderr, spin.Get(spin.Dots), " Loading "+path)
	w.Start()
	board, err := gol.ReadFile(path)
	if err != nil {
		w.Stop()
		return gol.Board{}, err
	}
	w.PersistWith(done, fmt.Sprintf(" Loaded %dx%d board", board.Rows(), board.Cols()))
	return board, nil
}

func save(path string, b gol.Board) error {
	w := wow.New(os.Stderr, spin.Get(spin.Dots), " Writing "+path)
	w.Start()
	if err := gol.WriteFile(path, b); err != nil {
		w.Stop()
		return err
	}
	w.PersistWith(done, " Wrote "+path)
	return nil
}
