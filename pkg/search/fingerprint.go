package search

import (
	"github.com/pkg/errors"
	"tailscale.com/util/deephash"

	"github.com/oisee/intcode/pkg/cpu"
)

// ErrSnapshotMutated is returned if the initial memory changed while a
// search was running. Every run must work on its own copy.
var ErrSnapshotMutated = errors.New("initial memory was modified during search")

// snapshot records the fingerprint of the initial memory of a search.
type snapshot struct {
	sum deephash.Sum
	len int
}

func takeSnapshot(mem cpu.Memory) snapshot {
	return snapshot{sum: mem.Hash(), len: len(mem)}
}

// verify returns ErrSnapshotMutated if mem no longer matches the snapshot.
func (s snapshot) verify(mem cpu.Memory) error {
	if len(mem) != s.len || mem.Hash() != s.sum {
		return ErrSnapshotMutated
	}
	return nil
}
