package cpu

import (
	"slices"

	"tailscale.com/util/deephash"
)

// Memory holds both program code and data, addressed by absolute position.
// Address 0 is the entry point and, by convention, the answer cell.
type Memory []uint64

// Clone returns an independent copy of m.
func (m Memory) Clone() Memory {
	return slices.Clone(m)
}

// Load returns the value at addr.
func (m Memory) Load(addr uint64) (uint64, error) {
	if addr >= uint64(len(m)) {
		return 0, ErrOutOfBounds
	}
	return m[addr], nil
}

// Store sets the value at addr.
func (m Memory) Store(addr, value uint64) error {
	if addr >= uint64(len(m)) {
		return ErrOutOfBounds
	}
	m[addr] = value
	return nil
}

// Equal returns true if both memories hold the same cells.
func (m Memory) Equal(o Memory) bool {
	return slices.Equal(m, o)
}

// Hash returns a fingerprint of the memory contents.
func (m Memory) Hash() deephash.Sum {
	return deephash.Hash(&m)
}
