package planning

import "math/bits"

// FluentSet is a set of fluent indices backed by a bitset. Iteration
// always visits members in ascending index order, which keeps every
// clause emitted from a set deterministic.
//
// The zero value is an empty set ready for use.
type FluentSet struct {
	words []uint64
}

// NewFluentSet returns a set containing the given fluent indices.
func NewFluentSet(indices ...int) FluentSet {
	var s FluentSet
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Add inserts index i, growing the set as needed.
func (s *FluentSet) Add(i int) {
	w := i >> 6
	for len(s.words) <= w {
		s.words = append(s.words, 0)
	}
	s.words[w] |= 1 << (uint(i) & 63)
}

// Contains reports whether index i is a member.
func (s FluentSet) Contains(i int) bool {
	w := i >> 6
	if i < 0 || w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(uint(i)&63)) != 0
}

// Len returns the number of members.
func (s FluentSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether the set has no members.
func (s FluentSet) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Each calls f for every member in ascending index order.
func (s FluentSet) Each(f func(i int)) {
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			f(wi<<6 | b)
			w &^= 1 << uint(b)
		}
	}
}

// Indices returns the members in ascending order.
func (s FluentSet) Indices() []int {
	out := make([]int, 0, s.Len())
	s.Each(func(i int) {
		out = append(out, i)
	})
	return out
}
