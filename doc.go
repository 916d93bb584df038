// Package constgraphs is a home for fixed-capacity graph containers built
// for workloads that want every byte of graph storage allocated up front.
//
// 🚀 What is const-graphs?
//
//	A small, allocation-predictable library built around two containers:
//		• graph.Graph         – bit-packed adjacency matrix, 1 bit per edge
//		• graph.WeightedGraph – optional-weight matrix with tagged float64 slots
//	Both fix their vertex capacity at construction, never resize, and pair
//	O(1) edge queries with copy-free row views.
//
// ✨ Why choose const-graphs?
//
//   - Predictable memory – one allocation per container, made once
//   - Copy-free reads – Edges(v) aliases live storage instead of copying
//   - Explicit errors – bad indices return sentinels, mutations stay atomic
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under one subpackage:
//
//	graph/ – Graph, WeightedGraph, the Row view and their sentinel errors
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	2───3
//
//	a square of four vertices and four undirected edges fits in a Graph of
//	size 4, stored in a single uint64 word per row.
//
// Traversal and serialization stay out of scope by design; the graph
// package's examples show a BFS written entirely against the public API.
//
//	go get github.com/TiagoCavalcante/const-graphs/graph
package constgraphs
