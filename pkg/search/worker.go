package search

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/oisee/intcode/pkg/cpu"
	"github.com/oisee/intcode/pkg/result"
)

// WorkerPool manages parallel search workers. Work is split by noun:
// each task is one row of verbs.
type WorkerPool struct {
	NumWorkers int
	checked    atomic.Int64
	found      atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{NumWorkers: numWorkers}
}

// Stats returns search statistics.
func (wp *WorkerPool) Stats() (checked, found int64) {
	return wp.checked.Load(), wp.found.Load()
}

// rowOutcome is the first event of a row: a match or a failed run.
type rowOutcome struct {
	done bool
	sol  result.Solution
	err  error
}

// First returns the first match in enumeration order.
func (wp *WorkerPool) First(mem cpu.Memory, cfg Config) (result.Solution, error) {
	var out rowOutcome
	if wp.NumWorkers == 1 {
		out = wp.firstSequential(mem, cfg)
	} else {
		out = wp.firstParallel(mem, cfg)
	}
	if !out.done {
		return result.Solution{}, ErrNoSolution
	}
	return out.sol, out.err
}

// All adds every match to a new table.
func (wp *WorkerPool) All(mem cpu.Memory, cfg Config) (*result.Table, error) {
	table := result.NewTable()
	outcomes := wp.runRows(mem, cfg, table)
	for _, out := range outcomes {
		if out.done {
			return nil, out.err
		}
	}
	return table, nil
}

// firstSequential walks the space in order on the calling goroutine.
func (wp *WorkerPool) firstSequential(mem cpu.Memory, cfg Config) rowOutcome {
	var out rowOutcome
	EnumeratePairs(cfg.Limit, func(p Pair) bool {
		out = wp.check(mem, cfg.Target, p, nil)
		return !out.done
	})
	return out
}

// firstParallel scans rows concurrently and keeps the lowest row with an
// event. Rows above the lowest event seen so far are skipped; rows below
// it are always scanned, so the result matches a sequential walk.
func (wp *WorkerPool) firstParallel(mem cpu.Memory, cfg Config) rowOutcome {
	for _, out := range wp.runRows(mem, cfg, nil) {
		if out.done {
			return out
		}
	}
	return rowOutcome{}
}

// runRows scans every row with the pool's workers. A row stops at its first
// event; with a nil table a match is an event, otherwise matches are added
// to table and only failures stop the row.
func (wp *WorkerPool) runRows(mem cpu.Memory, cfg Config, table *result.Table) []rowOutcome {
	rows := cfg.Limit
	outcomes := make([]rowOutcome, rows)

	var lowest atomic.Int64
	lowest.Store(int64(rows))

	ch := make(chan int, rows)
	for noun := 0; noun < rows; noun++ {
		ch <- noun
	}
	close(ch)

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for noun := range ch {
				if int64(noun) > lowest.Load() {
					continue
				}
				out := wp.scanRow(mem, cfg, uint64(noun), table)
				outcomes[noun] = out
				if out.done {
					lower(&lowest, int64(noun))
				}
			}
		}()
	}
	wg.Wait()
	return outcomes
}

// scanRow checks every verb of one noun row until the first event.
func (wp *WorkerPool) scanRow(mem cpu.Memory, cfg Config, noun uint64, table *result.Table) rowOutcome {
	var out rowOutcome
	EnumerateRow(noun, cfg.Limit, func(p Pair) bool {
		out = wp.check(mem, cfg.Target, p, table)
		return !out.done
	})
	return out
}

// check runs one pair. With a non-nil table matches are recorded there
// instead of ending the scan.
func (wp *WorkerPool) check(mem cpu.Memory, target uint64, p Pair, table *result.Table) rowOutcome {
	wp.checked.Add(1)

	output, err := Execute(mem, p.Noun, p.Verb)
	if err != nil {
		return rowOutcome{done: true, err: errors.Wrapf(err, "noun %d, verb %d", p.Noun, p.Verb)}
	}
	if output != target {
		return rowOutcome{}
	}

	wp.found.Add(1)
	sol := result.NewSolution(p.Noun, p.Verb, output)
	if table != nil {
		table.Add(sol)
		return rowOutcome{}
	}
	return rowOutcome{done: true, sol: sol}
}

// lower stores v in x if it is smaller than the current value.
func lower(x *atomic.Int64, v int64) {
	for {
		cur := x.Load()
		if v >= cur || x.CompareAndSwap(cur, v) {
			return
		}
	}
}
