package cpu

import (
	"errors"
	"testing"
)

func TestMemoryLoadStore(t *testing.T) {
	m := Memory{5, 6, 7}

	v, err := m.Load(2)
	if err != nil || v != 7 {
		t.Errorf("Load(2) = %d, %v; want 7, nil", v, err)
	}
	if _, err := m.Load(3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Load(3) error = %v, want ErrOutOfBounds", err)
	}
	if err := m.Store(0, 9); err != nil || m[0] != 9 {
		t.Errorf("Store(0, 9): err=%v mem=%v", err, m)
	}
	if err := m.Store(1<<63, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Store(1<<63) error = %v, want ErrOutOfBounds", err)
	}
}

// TestMemoryCloneIndependent verifies clones never share cells.
func TestMemoryCloneIndependent(t *testing.T) {
	orig := Memory{1, 2, 3}
	c := orig.Clone()
	c[0] = 100
	if orig[0] != 1 {
		t.Errorf("clone shares storage with original: %v", orig)
	}
}

func TestMemoryHash(t *testing.T) {
	a := Memory{1, 2, 3}
	b := Memory{1, 2, 3}
	c := Memory{1, 2, 4}
	if a.Hash() != b.Hash() {
		t.Error("equal memories should hash equal")
	}
	if a.Hash() == c.Hash() {
		t.Error("different memories should (likely) hash differently")
	}
}
