// Package core defines the central Graph and Edge types used by every
// algorithm in pathfind.
//
// What & Why
//
//   - A Graph is an immutable, ordered collection of weighted directed edges.
//     It is built exactly once from an edge list and never mutated afterwards:
//     there is no edge-removal API and no post-construction AddEdge. To change
//     a graph, rebuild it.
//
//   - Vertices are bare integer ids. The vertex set is not declared up front;
//     it is derived from the endpoints of the edge list. The derived vertex
//     list is always sorted ascending by id, so iteration order is
//     deterministic and repeatable.
//
//   - The adjacency view maps each vertex id to its outgoing edges, in edge
//     insertion order.
//
// Concurrency
//
// Derived views (vertex list, adjacency map) are computed lazily on first
// access and cached under sync.Once. Because a Graph never changes after
// NewGraph returns, any number of goroutines may query it concurrently —
// shortest-path queries in package dijkstra rely on this.
//
// Errors:
//
//	ErrVertexNotFound — requested vertex id does not appear in the graph.
//
// Complexity summary:
//
//	NewGraph     O(E)            (copies the edge list)
//	Vertices     O(E log V) once, O(1) thereafter (cached)
//	Neighbors    O(E) once, O(1) lookup thereafter (cached)
//	HasVertex    O(1) after the first derived-view access
//	Edges        O(E)            (defensive copy)
package core
