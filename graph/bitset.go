package graph

import (
	"fmt"
	"math/bits"
)

// bitrow is one packed adjacency row: presence bits stored LSB-first across
// 64-bit words. The bit for target t lives in word t/wordBits at offset
// t%wordBits. Padding bits past the row length stay zero; popcounts rely
// on that invariant.
type bitrow []uint64

// wordsFor returns the number of words needed to hold n bits.
func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// set turns bit t on. Callers must have validated t.
func (r bitrow) set(t int) {
	word := t / wordBits
	bit := uint(t % wordBits)
	r[word] |= 1 << bit
}

// clear turns bit t off. Callers must have validated t.
func (r bitrow) clear(t int) {
	word := t / wordBits
	bit := uint(t % wordBits)
	r[word] &^= 1 << bit
}

// get reports bit t. Callers must have validated t.
func (r bitrow) get(t int) bool {
	word := t / wordBits
	bit := uint(t % wordBits)

	return r[word]&(1<<bit) != 0
}

// ones counts the set bits across the whole row.
func (r bitrow) ones() int {
	n := 0
	for _, w := range r {
		n += bits.OnesCount64(w)
	}

	return n
}

// Row is a read-only view over one outgoing-edge row of a Graph. It shares
// the graph's storage instead of copying it: edits made through the graph
// after the Row was obtained are visible through the Row, and the Row stays
// valid for the lifetime of its graph.
//
// Obtain a Row via Graph.Edges.
type Row struct {
	words bitrow // shared storage, clipped to this row's words
	size  int    // number of addressable targets
}

// Len returns the number of targets in the row, equal to the graph size.
// Complexity: O(1).
func (r Row) Len() int { return r.size }

// At reports whether the edge to target t is present. Like slice indexing,
// At panics when t is outside [0, Len()).
// Complexity: O(1).
func (r Row) At(t int) bool {
	if t < 0 || t >= r.size {
		panic(fmt.Sprintf("graph: Row.At(%d): target out of range [0,%d)", t, r.size))
	}

	return r.words.get(t)
}

// Do calls f for every target in ascending order with the presence of the
// edge to that target, stopping early when f returns false. No allocations.
// Complexity: O(Len).
func (r Row) Do(f func(target int, present bool) bool) {
	for t := 0; t < r.size; t++ {
		if !f(t, r.words.get(t)) {
			return
		}
	}
}

// Ones returns the number of present edges in the row via per-word
// popcounts.
// Complexity: O(Len/64).
func (r Row) Ones() int { return r.words.ones() }
