package search

// Pair is one point of the (noun, verb) parameter space.
type Pair struct {
	Noun, Verb uint64
}

// Answer encodes the pair as 100*Noun + Verb.
func (p Pair) Answer() uint64 {
	return 100*p.Noun + p.Verb
}

// EnumeratePairs calls fn for every pair with noun and verb in [0, limit),
// noun in the outer loop. fn should return false to stop enumeration early.
// Returns false if enumeration was stopped.
func EnumeratePairs(limit int, fn func(Pair) bool) bool {
	for noun := 0; noun < limit; noun++ {
		if !EnumerateRow(uint64(noun), limit, fn) {
			return false
		}
	}
	return true
}

// EnumerateRow calls fn for every verb in [0, limit) with the given noun.
func EnumerateRow(noun uint64, limit int, fn func(Pair) bool) bool {
	for verb := 0; verb < limit; verb++ {
		if !fn(Pair{Noun: noun, Verb: uint64(verb)}) {
			return false
		}
	}
	return true
}

// PairCount returns the size of the search space for limit, or 0 if limit
// is outside (0, MaxLimit].
func PairCount(limit int) int {
	if limit <= 0 || limit > MaxLimit {
		return 0
	}
	return limit * limit
}
