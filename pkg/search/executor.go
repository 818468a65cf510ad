package search

import (
	"github.com/pkg/errors"

	"github.com/oisee/intcode/pkg/cpu"
)

// Addresses patched before every run.
const (
	NounAddr = 1
	VerbAddr = 2
)

// Execute runs a copy of mem with noun stored at address 1 and verb at
// address 2, and returns the value left at address 0.
// mem itself is never modified.
func Execute(mem cpu.Memory, noun, verb uint64) (uint64, error) {
	if len(mem) <= VerbAddr {
		return 0, errors.Wrapf(cpu.ErrOutOfBounds, "memory has %d cells, noun and verb need %d", len(mem), VerbAddr+1)
	}

	m := cpu.New(mem, nil)
	work := m.Memory()
	work[NounAddr] = noun
	work[VerbAddr] = verb

	final, err := m.Run()
	if err != nil {
		return 0, err
	}
	return final[0], nil
}
