package graph

import (
	"fmt"
	"strings"
)

// Graph is a fixed-capacity adjacency matrix over vertices 0..Size()-1 with
// bit-packed rows. Capacity is set once at construction; the backing storage
// is a single allocation that is never resized. Edges are directed ordered
// pairs and self-loops are representable; use the *Undirected helpers to
// keep the matrix symmetric when an undirected policy is wanted.
//
// Graph carries no locks: concurrent readers are safe, writers require
// exclusive access (see the package documentation).
type Graph struct {
	size   int      // vertex capacity, fixed at construction
	stride int      // words per row: wordsFor(size)
	words  []uint64 // packed rows, len == size*stride; row v at [v*stride, (v+1)*stride)
}

// Compile-time fmt.Stringer conformance.
var _ fmt.Stringer = (*Graph)(nil)

// New returns an empty Graph with capacity for size vertices.
// Returns ErrInvalidSize when size <= 0.
// Complexity: O(size²/64) zero-init, single allocation.
func New(size int) (*Graph, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	stride := wordsFor(size)

	return &Graph{
		size:   size,
		stride: stride,
		words:  make([]uint64, size*stride),
	}, nil
}

// Size returns the vertex capacity fixed at construction.
// Complexity: O(1).
func (g *Graph) Size() int { return g.size }

// checkVertex validates a single vertex index, returning the bare sentinel
// so callers can wrap it with method context.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.size {
		return ErrVertexOutOfRange
	}

	return nil
}

// checkPair validates both endpoints before any mutation happens.
func (g *Graph) checkPair(from, to int) error {
	if from < 0 || from >= g.size || to < 0 || to >= g.size {
		return ErrVertexOutOfRange
	}

	return nil
}

// row returns the packed words of vertex v's row, capacity-clipped so the
// slice can never reach into a neighboring row. Callers must have
// validated v.
func (g *Graph) row(v int) bitrow {
	lo := v * g.stride
	hi := lo + g.stride

	return bitrow(g.words[lo:hi:hi])
}

// AddEdge inserts the directed edge from → to; inserting a present edge is
// a no-op. Returns ErrVertexOutOfRange when either endpoint is outside
// [0, Size()), in which case the graph is left untouched.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int) error {
	if err := g.checkPair(from, to); err != nil {
		return fmt.Errorf("Graph.AddEdge(%d,%d): %w", from, to, err)
	}
	g.row(from).set(to)

	return nil
}

// AddEdgeUndirected inserts both u → v and v → u. Both endpoints are
// validated before either direction is written, so a bad index mutates
// nothing.
// Complexity: O(1).
func (g *Graph) AddEdgeUndirected(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return fmt.Errorf("Graph.AddEdgeUndirected(%d,%d): %w", u, v, err)
	}
	g.row(u).set(v)
	g.row(v).set(u)

	return nil
}

// RemoveEdge deletes the directed edge from → to; removing an absent edge
// is a no-op. Returns ErrVertexOutOfRange when either endpoint is outside
// [0, Size()), in which case the graph is left untouched.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) error {
	if err := g.checkPair(from, to); err != nil {
		return fmt.Errorf("Graph.RemoveEdge(%d,%d): %w", from, to, err)
	}
	g.row(from).clear(to)

	return nil
}

// RemoveEdgeUndirected deletes both u → v and v → u, validating both
// endpoints before touching either direction.
// Complexity: O(1).
func (g *Graph) RemoveEdgeUndirected(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return fmt.Errorf("Graph.RemoveEdgeUndirected(%d,%d): %w", u, v, err)
	}
	g.row(u).clear(v)
	g.row(v).clear(u)

	return nil
}

// HasEdge reports whether the directed edge from → to is present.
// Returns ErrVertexOutOfRange when either endpoint is invalid.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) (bool, error) {
	if err := g.checkPair(from, to); err != nil {
		return false, fmt.Errorf("Graph.HasEdge(%d,%d): %w", from, to, err)
	}

	return g.row(from).get(to), nil
}

// Edges returns a read-only view of vertex's outgoing row without copying:
// the Row aliases the graph's storage, so later AddEdge/RemoveEdge calls
// are visible through it. Returns ErrVertexOutOfRange for an invalid index.
// Complexity: O(1).
func (g *Graph) Edges(vertex int) (Row, error) {
	if err := g.checkVertex(vertex); err != nil {
		return Row{}, fmt.Errorf("Graph.Edges(%d): %w", vertex, err)
	}

	return Row{words: g.row(vertex), size: g.size}, nil
}

// InverseEdges returns the incoming-edge column of vertex: element s
// reports whether s → vertex is present. Columns are not contiguous in
// packed storage, so the result is a fresh snapshot and later edits do not
// show through it.
// Complexity: O(Size).
func (g *Graph) InverseEdges(vertex int) ([]bool, error) {
	if err := g.checkVertex(vertex); err != nil {
		return nil, fmt.Errorf("Graph.InverseEdges(%d): %w", vertex, err)
	}
	col := make([]bool, g.size)
	for s := 0; s < g.size; s++ {
		col[s] = g.row(s).get(vertex)
	}

	return col, nil
}

// Neighbors returns the targets of vertex's present outgoing edges in
// ascending order. The slice is freshly allocated and safe to retain.
// Complexity: O(Size).
func (g *Graph) Neighbors(vertex int) ([]int, error) {
	if err := g.checkVertex(vertex); err != nil {
		return nil, fmt.Errorf("Graph.Neighbors(%d): %w", vertex, err)
	}
	row := g.row(vertex)
	// Size the result exactly via popcount to avoid append growth.
	out := make([]int, 0, row.ones())
	for t := 0; t < g.size; t++ {
		if row.get(t) {
			out = append(out, t)
		}
	}

	return out, nil
}

// Degree returns the number of present outgoing edges of vertex.
// Complexity: O(Size/64) via per-word popcounts.
func (g *Graph) Degree(vertex int) (int, error) {
	if err := g.checkVertex(vertex); err != nil {
		return 0, fmt.Errorf("Graph.Degree(%d): %w", vertex, err)
	}

	return g.row(vertex).ones(), nil
}

// EdgeCount returns the number of present edges, self-loops included.
// Complexity: O(Size²/64).
func (g *Graph) EdgeCount() int {
	return bitrow(g.words).ones()
}

// MaxEdgeCount returns Size·(Size-1), the number of ordered pairs with
// distinct endpoints. Self-loops are storable and counted by EdgeCount yet
// excluded from this bound, so Density may exceed 1 on graphs with loops.
// Complexity: O(1).
func (g *Graph) MaxEdgeCount() int {
	return g.size * (g.size - 1)
}

// Density returns EdgeCount divided by MaxEdgeCount under IEEE-754 rules.
// At Size 1 the bound is zero, yielding NaN for an empty graph and +Inf
// once the self-loop is present.
// Complexity: O(Size²/64).
func (g *Graph) Density() float64 {
	return float64(g.EdgeCount()) / float64(g.MaxEdgeCount())
}

// Clear removes every edge while keeping capacity and storage.
// Complexity: O(Size²/64).
func (g *Graph) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
}

// Clone returns a deep copy with independent storage.
// Complexity: O(Size²/64).
func (g *Graph) Clone() *Graph {
	cp := make([]uint64, len(g.words))
	copy(cp, g.words)

	return &Graph{
		size:   g.size,
		stride: g.stride,
		words:  cp,
	}
}

// String renders the matrix one row per line, '1' for a present edge and
// '0' for an absent one. Diagnostic helper, not for hot paths.
// Complexity: O(Size²).
func (g *Graph) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for v := 0; v < g.size; v++ {
		row := g.row(v)
		for t := 0; t < g.size; t++ {
			if row.get(t) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
