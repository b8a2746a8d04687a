package gol

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// fragment is the slice of flat cell indices [start, end) one worker
// computes, along with the worker's result for that range.
type fragment struct {
	start int
	end   int
	cells []bool
}

// DefaultThreads is the concurrency hint used when the caller has no
// preference: one worker per usable CPU.
func DefaultThreads() int {
	return runtime.GOMAXPROCS(0)
}

// NextGeneration applies the rules to every cell of the board and returns the
// resulting generation.
func (b Board) NextGeneration() Board {
	next := New(b.rows, b.cols)
	for idx := range next.cells {
		next.cells[idx] = b.successorAt(idx)
	}
	return next
}

// ParallelNextGeneration returns the same board as NextGeneration, computed by
// up to threads goroutines. The cells are split into contiguous fragments of
// equal size, the last one taking any remainder; each goroutine reads the
// current board and fills its own fragment, and the fragments are joined in
// index order once every goroutine has finished.
func (b Board) ParallelNextGeneration(threads int) Board {
	fragments := splitFragments(b.Len(), threads)

	var eg errgroup.Group
	for i := range fragments {
		frag := &fragments[i]
		eg.Go(func() error {
			frag.cells = b.successorRange(frag.start, frag.end)
			return nil
		})
	}
	// Workers are pure and cannot fail; Wait is only the join.
	_ = eg.Wait()

	cells := make([]bool, 0, b.Len())
	for _, frag := range fragments {
		cells = append(cells, frag.cells...)
	}
	return Board{cells: cells, rows: b.rows, cols: b.cols}
}

// splitFragments divides [0, total) between max(1, min(threads, total))
// workers.
func splitFragments(total, threads int) []fragment {
	numWorkers := max(1, min(threads, total))
	fragSize := total / numWorkers

	fragments := make([]fragment, numWorkers)
	for w := range fragments {
		start := w * fragSize
		end := (w + 1) * fragSize
		// Give any remaining cells to the last worker
		if w == numWorkers-1 {
			end = total
		}
		fragments[w] = fragment{start: start, end: end}
	}
	return fragments
}

func (b Board) successorRange(start, end int) []bool {
	cells := make([]bool, end-start)
	for idx := start; idx < end; idx++ {
		cells[idx-start] = b.successorAt(idx)
	}
	return cells
}
