// Package graph provides fixed-capacity adjacency-matrix containers whose
// full memory footprint is decided at construction time: Graph keeps edge
// presence in bit-packed rows, WeightedGraph keeps optional float64 weights
// in tagged slots.
//
// What
//
//   - Graph: one presence bit per ordered vertex pair, packed 64 bits to
//     the word, over vertices 0..Size()-1.
//   - WeightedGraph: one Cell{Weight, Present} slot per ordered pair, so a
//     zero-weight edge stays distinct from an absent edge and no weight
//     value is reserved as a sentinel.
//   - Both allocate exactly once in the constructor and never resize;
//     Clear empties the edge set without touching capacity.
//   - Edges(v) hands out the live row with no copying: Row for Graph,
//     []Cell for WeightedGraph. Neighbors(v) is the filtered counterpart,
//     a fresh ascending list of present targets.
//   - InverseEdges(v) answers the incoming side; columns are not
//     contiguous, so it returns a snapshot.
//   - AddEdgeUndirected / RemoveEdgeUndirected mirror an edge in both
//     directions inside one validated call.
//
// Why
//
//   - Bounded workloads want predictable memory: capacity is paid up front
//     and queries never grow the heap behind the caller's back.
//   - Bit-packed rows keep presence data 64 times denser than a bool
//     matrix and turn Degree into a handful of popcounts.
//
// Representation
//
//	Graph stores row v in ceil(Size/64) uint64 words; the bit for target t
//	sits in word t/64 at offset t%64, and padding bits past Size stay
//	zero. WeightedGraph is a flat row-major []Cell of length Size².
//	Self-loops are representable. Directedness is the caller's policy:
//	work with the directed operations as they are, or keep the matrix
//	symmetric through the *Undirected helpers.
//
// Concurrency
//
//	The containers carry no locks. Any number of concurrent readers is
//	safe; a writer needs exclusive access. Note that packed rows share
//	words between targets, so two unsynchronized writers race at word
//	level even when they touch different edges.
//
// Complexity (n = Size)
//
//   - AddEdge / RemoveEdge / HasEdge / Weight: O(1)
//   - Edges (view): O(1); Neighbors / InverseEdges: O(n)
//   - Degree: O(n/64) packed, O(n) weighted
//   - EdgeCount / Density / Clear / Clone: O(n²/64) packed, O(n²) weighted
//
// Usage
//
//	g, err := graph.New(128)
//	if err != nil { ... }
//	_ = g.AddEdge(2, 5)
//	row, _ := g.Edges(2)         // live view, sees later edits
//	_ = row.At(5)                // true
//	targets, _ := g.Neighbors(2) // [5]
//
//	w, _ := graph.NewWeighted(16)
//	_ = w.AddEdge(0, 1, 7)
//	weight, ok, _ := w.Weight(0, 1) // 7, true
//
// Errors
//
//   - ErrInvalidSize       when a constructor receives size <= 0.
//   - ErrVertexOutOfRange  when any vertex index falls outside [0, Size());
//     surfaced before any mutation, so a failed operation leaves the
//     container untouched.
//
// Traversal, serialization and path algorithms are out of scope; the
// package examples show a BFS built on top of Edges.
package graph
