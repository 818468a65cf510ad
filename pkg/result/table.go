package result

import (
	"sort"
	"sync"
)

// Solution is a (noun, verb) pair whose run produced Output at address 0.
type Solution struct {
	Noun   uint64 `json:"noun"`
	Verb   uint64 `json:"verb"`
	Output uint64 `json:"output"`
	Answer uint64 `json:"answer"` // 100*Noun + Verb
}

// NewSolution builds a Solution and fills in its Answer.
func NewSolution(noun, verb, output uint64) Solution {
	return Solution{
		Noun:   noun,
		Verb:   verb,
		Output: output,
		Answer: 100*noun + verb,
	}
}

// Table stores discovered solutions.
type Table struct {
	mu        sync.Mutex
	solutions []Solution
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a solution into the table.
func (t *Table) Add(s Solution) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.solutions = append(t.solutions, s)
}

// Solutions returns a copy of all solutions in enumeration order
// (noun, then verb).
func (t *Table) Solutions() []Solution {
	t.mu.Lock()
	defer t.mu.Unlock()
	result := make([]Solution, len(t.solutions))
	copy(result, t.solutions)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Noun != result[j].Noun {
			return result[i].Noun < result[j].Noun
		}
		return result[i].Verb < result[j].Verb
	})
	return result
}

// Len returns the number of solutions.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.solutions)
}
