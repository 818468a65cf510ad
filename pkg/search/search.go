package search

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/oisee/intcode/pkg/cpu"
	"github.com/oisee/intcode/pkg/result"
)

// Bounds for Config.Limit, the exclusive upper bound for noun and verb.
// Beyond MaxLimit the answer 100*noun + verb no longer identifies one pair.
const (
	DefaultLimit = 99
	MaxLimit     = 100
)

// ErrNoSolution is returned when no pair in the search space produces
// the target. The accompanying Solution is the zero value (answer 0).
var ErrNoSolution = errors.New("no solution found")

// ErrLimit is returned for a Config.Limit above MaxLimit.
var ErrLimit = errors.New("limit out of range")

// Config holds search configuration.
type Config struct {
	Target     uint64 // Value wanted at address 0
	Limit      int    // Noun and verb range over [0, Limit) (defaults to DefaultLimit)
	NumWorkers int    // Number of parallel workers (defaults to NumCPU)
}

// Resolve fills in defaults and validates the limit. The returned Config
// holds the values a search actually uses.
func (cfg Config) Resolve() (Config, error) {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Limit > MaxLimit {
		return cfg, errors.Wrapf(ErrLimit, "limit %d exceeds %d", cfg.Limit, MaxLimit)
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	return cfg, nil
}

// Search returns the first pair, in enumeration order (noun outer, verb
// inner), whose run leaves cfg.Target at address 0.
//
// A failing run aborts the whole search and its error is returned. The
// result does not depend on cfg.NumWorkers: a parallel search reports the
// same match or error a sequential one would.
func Search(mem cpu.Memory, cfg Config) (result.Solution, error) {
	sol, _, err := run(mem, cfg)
	return sol, err
}

// SearchAll returns every pair whose run leaves cfg.Target at address 0.
// As with Search, the first failing run aborts the search.
func SearchAll(mem cpu.Memory, cfg Config) (*result.Table, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	snap := takeSnapshot(mem)

	pool := NewWorkerPool(cfg.NumWorkers)
	table, err := pool.All(mem, cfg)
	if serr := snap.verify(mem); serr != nil {
		return nil, serr
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Answer runs Search over the default space and returns 100*noun + verb.
func Answer(mem cpu.Memory, target uint64) (uint64, error) {
	sol, err := Search(mem, Config{Target: target, NumWorkers: 1})
	return sol.Answer, err
}

// Run executes Search and also returns the pool, for its statistics.
func Run(mem cpu.Memory, cfg Config) (result.Solution, *WorkerPool, error) {
	return run(mem, cfg)
}

func run(mem cpu.Memory, cfg Config) (result.Solution, *WorkerPool, error) {
	cfg, err := cfg.Resolve()
	pool := NewWorkerPool(cfg.NumWorkers)
	if err != nil {
		return result.Solution{}, pool, err
	}
	snap := takeSnapshot(mem)

	sol, err := pool.First(mem, cfg)
	if serr := snap.verify(mem); serr != nil {
		return result.Solution{}, pool, serr
	}
	return sol, pool, err
}
