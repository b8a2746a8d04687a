package controller

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"uk.ac.bris.cs/life/gol"
	"uk.ac.bris.cs/life/util"
)

var blinker = gol.MustParse("...\n@@@\n...\n")

func TestMain(m *testing.M) {
	// Tests hand keys to the controller one at a time; a periodic event
	// arriving mid-exchange would block both sides.
	aliveInterval = time.Hour
	os.Exit(m.Run())
}

// nextEvent returns the next event that is not a periodic alive cells count.
func nextEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	for {
		select {
		case e, ok := <-events:
			if !ok {
				t.Fatal("events closed early")
			}
			if _, ok := e.(AliveCellsCount); ok {
				continue
			}
			return e
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for an event")
		}
	}
}

func expectClosed(t *testing.T, events <-chan Event) {
	t.Helper()
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return
			}
			if _, ok := e.(AliveCellsCount); !ok {
				t.Fatalf("unexpected event %v", e)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("events never closed")
		}
	}
}

func TestRunTurns(t *testing.T) {
	for _, threads := range []int{1, 2, 4} {
		initial := blinker
		events := make(chan Event)
		Run(Params{Turns: 5, Threads: threads, Initial: &initial}, events, nil, nil)

		for turn := 0; turn <= 5; turn++ {
			e, ok := nextEvent(t, events).(TurnComplete)
			if !ok || e.CompletedTurns != turn {
				t.Fatalf("%d threads: got %#v, want TurnComplete %d", threads, e, turn)
			}
		}
		final, ok := nextEvent(t, events).(FinalTurnComplete)
		if !ok {
			t.Fatalf("%d threads: want FinalTurnComplete, got %#v", threads, final)
		}
		want := gol.MustParse(".@.\n.@.\n.@.\n")
		if final.CompletedTurns != 5 || !final.Board.Equal(want) {
			t.Errorf("%d threads: final turn %d:\n%v\nwant turn 5:\n%v", threads, final.CompletedTurns, final.Board, want)
		}
		if e, ok := nextEvent(t, events).(StateChange); !ok || e.NewState != Quitting {
			t.Errorf("%d threads: want Quitting, got %#v", threads, e)
		}
		expectClosed(t, events)
	}
}

func TestRunRandomSize(t *testing.T) {
	events := make(chan Event)
	Run(Params{Rows: 16, Cols: 9, Turns: 1, Seed: 42}, events, nil, nil)
	first := nextEvent(t, events).(TurnComplete)
	if first.Board.Rows() != 16 || first.Board.Cols() != 9 {
		t.Errorf("board is %dx%d, want 16x9", first.Board.Rows(), first.Board.Cols())
	}
	if first.Board.AliveCount() == 0 {
		t.Error("random start is empty")
	}
	for range events {
	}
}

func TestKeysAndClicks(t *testing.T) {
	dir := t.TempDir()
	initial := blinker
	events := make(chan Event)
	keys := make(chan rune)
	clicks := make(chan util.Cell)
	Run(Params{Threads: 2, Tick: time.Hour, Initial: &initial, OutDir: dir}, events, keys, clicks)

	if e := nextEvent(t, events).(TurnComplete); e.CompletedTurns != 0 || !e.Board.Equal(blinker) {
		t.Fatalf("start event %#v", e)
	}

	keys <- 's'
	stepped, ok := nextEvent(t, events).(TurnComplete)
	if !ok || stepped.CompletedTurns != 1 || !stepped.Board.Equal(blinker.NextGeneration()) {
		t.Fatalf("step: got %#v", stepped)
	}

	keys <- 'p'
	if e, ok := nextEvent(t, events).(StateChange); !ok || e.NewState != Paused {
		t.Fatalf("pause: got %#v", e)
	}

	keys <- 'w'
	saved, ok := nextEvent(t, events).(BoardSaved)
	if !ok {
		t.Fatalf("save: got %#v", saved)
	}
	if want := filepath.Join(dir, "3x3x1.txt"); saved.Filename != want {
		t.Errorf("saved to %s, want %s", saved.Filename, want)
	}
	if b, err := gol.ReadFile(saved.Filename); err != nil || !b.Equal(stepped.Board) {
		t.Errorf("saved board %v, %v", b, err)
	}

	keys <- 'c'
	cleared, ok := nextEvent(t, events).(BoardEdited)
	if !ok || cleared.Board.AliveCount() != 0 || cleared.CompletedTurns != 1 {
		t.Fatalf("clear: got %#v", cleared)
	}

	// Off the board: ignored, so the next event comes from the next click.
	clicks <- util.Cell{X: 3, Y: 0}
	clicks <- util.Cell{X: 2, Y: 1}
	toggled, ok := nextEvent(t, events).(BoardEdited)
	if !ok || !toggled.Board.Equal(gol.MustParse("...\n..@\n...\n")) {
		t.Fatalf("click: got %#v", toggled)
	}

	// Unknown keys do nothing.
	keys <- 'z'
	keys <- 'p'
	if e, ok := nextEvent(t, events).(StateChange); !ok || e.NewState != Executing {
		t.Fatalf("resume: got %#v", e)
	}

	keys <- 'q'
	if e, ok := nextEvent(t, events).(StateChange); !ok || e.NewState != Quitting {
		t.Fatalf("quit: got %#v", e)
	}
	final, ok := nextEvent(t, events).(FinalTurnComplete)
	if !ok || final.CompletedTurns != 1 {
		t.Fatalf("final: got %#v", final)
	}
	expectClosed(t, events)
}

func TestClosingKeysQuits(t *testing.T) {
	initial := blinker
	events := make(chan Event)
	keys := make(chan rune)
	Run(Params{Tick: time.Hour, Initial: &initial}, events, keys, nil)
	nextEvent(t, events)

	close(keys)
	if e, ok := nextEvent(t, events).(StateChange); !ok || e.NewState != Quitting {
		t.Fatalf("got %#v", e)
	}
	if _, ok := nextEvent(t, events).(FinalTurnComplete); !ok {
		t.Fatal("no final turn")
	}
	expectClosed(t, events)
}

func TestRandomiseWithSeed(t *testing.T) {
	run := func() gol.Board {
		events := make(chan Event)
		keys := make(chan rune)
		initial := gol.New(10, 10)
		Run(Params{Tick: time.Hour, Initial: &initial, Seed: 7}, events, keys, nil)
		nextEvent(t, events)
		keys <- 'r'
		e := nextEvent(t, events).(BoardEdited)
		close(keys)
		for range events {
		}
		return e.Board
	}
	a, b := run(), run()
	if a.AliveCount() == 0 || !a.Equal(b) {
		t.Errorf("seeded randomise gave\n%v\nand\n%v", a, b)
	}
}

func TestSaveError(t *testing.T) {
	initial := blinker
	events := make(chan Event)
	keys := make(chan rune)
	missing := filepath.Join(t.TempDir(), "missing")
	Run(Params{Tick: time.Hour, Initial: &initial, OutDir: missing}, events, keys, nil)
	nextEvent(t, events)

	keys <- 'w'
	keys <- 'p'
	if e, ok := nextEvent(t, events).(StateChange); !ok || e.NewState != Paused {
		t.Fatalf("want the failed save to be skipped, got %#v", e)
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Errorf("save created %s", missing)
	}
	close(keys)
	for range events {
	}
}

func TestAliveCellsCount(t *testing.T) {
	aliveInterval = 10 * time.Millisecond
	defer func() { aliveInterval = time.Hour }()

	initial := blinker
	events := make(chan Event)
	keys := make(chan rune)
	Run(Params{Tick: time.Hour, Initial: &initial}, events, keys, nil)

	count := 0
	for event := range events {
		e, ok := event.(AliveCellsCount)
		if !ok {
			continue
		}
		if e.CellsCount != 3 || e.CompletedTurns != 0 {
			t.Errorf("got %#v, want 3 alive on turn 0", e)
		}
		count++
		if count == 2 {
			close(keys)
		}
	}
	if count < 2 {
		t.Errorf("saw %d alive cell counts", count)
	}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  rune
		want keyCommand
	}{
		{'p', pause}, {' ', pause}, {'q', quit}, {'c', clearBoard},
		{'r', randomise}, {'s', step}, {'w', save},
	}
	for _, test := range tests {
		if got, ok := commandFor(test.key); !ok || got != test.want {
			t.Errorf("commandFor(%q) = %v, %v", test.key, got, ok)
		}
	}
	if _, ok := commandFor('x'); ok {
		t.Error("'x' should not be a command")
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{Paused: "Paused", Executing: "Executing", Quitting: "Quitting", State(9): "Incorrect State"} {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(state), got, want)
		}
	}
}
