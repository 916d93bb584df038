// Package graph defines the shared types and sentinel errors for the
// fixed-capacity containers of github.com/TiagoCavalcante/const-graphs.
package graph

import (
	"errors"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidSize indicates a constructor received a non-positive capacity.
	ErrInvalidSize = errors.New("graph: size must be positive")
	// ErrVertexOutOfRange indicates a vertex index outside [0, Size()).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)

// wordBits is the width of one packed storage word in Graph rows.
const wordBits = 64

// Cell is one slot of a WeightedGraph row: an edge weight plus a presence
// flag. The zero Cell means "no edge"; a present edge of weight 0 is a
// distinct, legal state.
type Cell struct {
	Weight  float64 // edge weight; meaningful only when Present
	Present bool    // true when the edge exists
}

// Neighbor pairs an adjacent vertex with the weight of the connecting edge.
type Neighbor struct {
	Target int     // adjacent vertex index
	Weight float64 // weight of the edge to Target
}
