package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// WeightedGraph is the weighted sibling of Graph: a fixed-capacity
// adjacency matrix whose slots carry an optional float64 weight. Each
// ordered pair owns a Cell, so a present edge of weight 0 stays distinct
// from an absent edge and no weight value is reserved as a sentinel.
// Capacity is set once at construction; the backing storage is a single
// allocation that is never resized.
//
// Weights are stored verbatim, NaN and infinities included; interpreting
// them is the caller's business.
type WeightedGraph struct {
	size  int    // vertex capacity, fixed at construction
	cells []Cell // row-major slots, len == size*size; slot (v,t) at v*size+t
}

var _ fmt.Stringer = (*WeightedGraph)(nil)

// NewWeighted returns an empty WeightedGraph with capacity for size
// vertices. Returns ErrInvalidSize when size <= 0.
// Complexity: O(size²) zero-init, single allocation.
func NewWeighted(size int) (*WeightedGraph, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	return &WeightedGraph{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// Size returns the vertex capacity fixed at construction.
// Complexity: O(1).
func (g *WeightedGraph) Size() int { return g.size }

// checkVertex validates a single vertex index, returning the bare sentinel
// so callers can wrap it with method context.
func (g *WeightedGraph) checkVertex(v int) error {
	if v < 0 || v >= g.size {
		return ErrVertexOutOfRange
	}

	return nil
}

// checkPair validates both endpoints before any mutation happens.
func (g *WeightedGraph) checkPair(from, to int) error {
	if from < 0 || from >= g.size || to < 0 || to >= g.size {
		return ErrVertexOutOfRange
	}

	return nil
}

// row returns vertex v's slots, capacity-clipped so the slice can never
// reach into a neighboring row. Callers must have validated v.
func (g *WeightedGraph) row(v int) []Cell {
	lo := v * g.size
	hi := lo + g.size

	return g.cells[lo:hi:hi]
}

// AddEdge inserts the directed edge from → to with the given weight,
// overwriting the weight when the edge is already present. Returns
// ErrVertexOutOfRange when either endpoint is outside [0, Size()), in
// which case the graph is left untouched.
// Complexity: O(1).
func (g *WeightedGraph) AddEdge(from, to int, weight float64) error {
	if err := g.checkPair(from, to); err != nil {
		return fmt.Errorf("WeightedGraph.AddEdge(%d,%d): %w", from, to, err)
	}
	g.cells[from*g.size+to] = Cell{Weight: weight, Present: true}

	return nil
}

// AddEdgeUndirected inserts u → v and v → u with the same weight. Both
// endpoints are validated before either direction is written, so a bad
// index mutates nothing.
// Complexity: O(1).
func (g *WeightedGraph) AddEdgeUndirected(u, v int, weight float64) error {
	if err := g.checkPair(u, v); err != nil {
		return fmt.Errorf("WeightedGraph.AddEdgeUndirected(%d,%d): %w", u, v, err)
	}
	cell := Cell{Weight: weight, Present: true}
	g.cells[u*g.size+v] = cell
	g.cells[v*g.size+u] = cell

	return nil
}

// RemoveEdge deletes the directed edge from → to; removing an absent edge
// is a no-op. Returns ErrVertexOutOfRange when either endpoint is outside
// [0, Size()), in which case the graph is left untouched.
// Complexity: O(1).
func (g *WeightedGraph) RemoveEdge(from, to int) error {
	if err := g.checkPair(from, to); err != nil {
		return fmt.Errorf("WeightedGraph.RemoveEdge(%d,%d): %w", from, to, err)
	}
	g.cells[from*g.size+to] = Cell{}

	return nil
}

// RemoveEdgeUndirected deletes both u → v and v → u, validating both
// endpoints before touching either direction.
// Complexity: O(1).
func (g *WeightedGraph) RemoveEdgeUndirected(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return fmt.Errorf("WeightedGraph.RemoveEdgeUndirected(%d,%d): %w", u, v, err)
	}
	g.cells[u*g.size+v] = Cell{}
	g.cells[v*g.size+u] = Cell{}

	return nil
}

// HasEdge reports whether the directed edge from → to is present.
// Returns ErrVertexOutOfRange when either endpoint is invalid.
// Complexity: O(1).
func (g *WeightedGraph) HasEdge(from, to int) (bool, error) {
	if err := g.checkPair(from, to); err != nil {
		return false, fmt.Errorf("WeightedGraph.HasEdge(%d,%d): %w", from, to, err)
	}

	return g.cells[from*g.size+to].Present, nil
}

// Weight returns the weight of the directed edge from → to with a
// presence flag: (w, true, nil) for a present edge, (0, false, nil) for an
// absent one. Returns ErrVertexOutOfRange when either endpoint is invalid.
// Complexity: O(1).
func (g *WeightedGraph) Weight(from, to int) (float64, bool, error) {
	if err := g.checkPair(from, to); err != nil {
		return 0, false, fmt.Errorf("WeightedGraph.Weight(%d,%d): %w", from, to, err)
	}
	cell := g.cells[from*g.size+to]

	return cell.Weight, cell.Present, nil
}

// Edges returns vertex's outgoing row without copying: the slice aliases
// the graph's storage, so later AddEdge/RemoveEdge calls are visible
// through it. Treat the slice as read-only; write through the graph's
// methods instead. Returns ErrVertexOutOfRange for an invalid index.
// Complexity: O(1).
func (g *WeightedGraph) Edges(vertex int) ([]Cell, error) {
	if err := g.checkVertex(vertex); err != nil {
		return nil, fmt.Errorf("WeightedGraph.Edges(%d): %w", vertex, err)
	}

	return g.row(vertex), nil
}

// InverseEdges returns the incoming-edge column of vertex: element s holds
// the slot of s → vertex. Columns are not contiguous in row-major storage,
// so the result is a fresh snapshot and later edits do not show through it.
// Complexity: O(Size).
func (g *WeightedGraph) InverseEdges(vertex int) ([]Cell, error) {
	if err := g.checkVertex(vertex); err != nil {
		return nil, fmt.Errorf("WeightedGraph.InverseEdges(%d): %w", vertex, err)
	}
	col := make([]Cell, g.size)
	for s := 0; s < g.size; s++ {
		col[s] = g.cells[s*g.size+vertex]
	}

	return col, nil
}

// Neighbors returns (target, weight) pairs for vertex's present outgoing
// edges in ascending target order. The slice is freshly allocated and safe
// to retain.
// Complexity: O(Size).
func (g *WeightedGraph) Neighbors(vertex int) ([]Neighbor, error) {
	if err := g.checkVertex(vertex); err != nil {
		return nil, fmt.Errorf("WeightedGraph.Neighbors(%d): %w", vertex, err)
	}
	row := g.row(vertex)
	out := make([]Neighbor, 0, g.size)
	for t, cell := range row {
		if cell.Present {
			out = append(out, Neighbor{Target: t, Weight: cell.Weight})
		}
	}

	return out, nil
}

// Degree returns the number of present outgoing edges of vertex.
// Complexity: O(Size).
func (g *WeightedGraph) Degree(vertex int) (int, error) {
	if err := g.checkVertex(vertex); err != nil {
		return 0, fmt.Errorf("WeightedGraph.Degree(%d): %w", vertex, err)
	}
	n := 0
	for _, cell := range g.row(vertex) {
		if cell.Present {
			n++
		}
	}

	return n, nil
}

// EdgeCount returns the number of present edges, self-loops included.
// Complexity: O(Size²).
func (g *WeightedGraph) EdgeCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Present {
			n++
		}
	}

	return n
}

// MaxEdgeCount returns Size·(Size-1), the number of ordered pairs with
// distinct endpoints; the diagonal is excluded exactly as for Graph.
// Complexity: O(1).
func (g *WeightedGraph) MaxEdgeCount() int {
	return g.size * (g.size - 1)
}

// Density returns EdgeCount divided by MaxEdgeCount under IEEE-754 rules.
// At Size 1 the bound is zero, yielding NaN for an empty graph and +Inf
// once the self-loop is present.
// Complexity: O(Size²).
func (g *WeightedGraph) Density() float64 {
	return float64(g.EdgeCount()) / float64(g.MaxEdgeCount())
}

// Clear removes every edge while keeping capacity and storage.
// Complexity: O(Size²).
func (g *WeightedGraph) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Clone returns a deep copy with independent storage.
// Complexity: O(Size²).
func (g *WeightedGraph) Clone() *WeightedGraph {
	cp := make([]Cell, len(g.cells))
	copy(cp, g.cells)

	return &WeightedGraph{
		size:  g.size,
		cells: cp,
	}
}

// String renders the matrix one row per line with space-separated slots:
// the weight formatted by strconv 'g' for a present edge, '.' for an
// absent one. Diagnostic helper, not for hot paths.
// Complexity: O(Size²).
func (g *WeightedGraph) String() string {
	var b strings.Builder
	for v := 0; v < g.size; v++ {
		row := g.row(v)
		for t, cell := range row {
			if t > 0 {
				b.WriteByte(' ')
			}
			if cell.Present {
				b.WriteString(strconv.FormatFloat(cell.Weight, 'g', -1, 64))
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
