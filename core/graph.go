// Package core: Graph construction and derived read-only views.
package core

import (
	"sort"
	"sync"
)

// Graph is an immutable set of weighted directed edges.
//
// The edge list keeps insertion order. The vertex set and the adjacency map
// are derived from the edge list on first use and cached; they are never
// invalidated because a Graph cannot change after construction.
type Graph struct {
	edges []Edge // insertion-ordered edge list, owned exclusively by the Graph

	once      sync.Once      // guards the one-time build of the derived views
	vertices  []int          // derived vertex ids, ascending
	adjacency map[int][]Edge // derived vertex id → outgoing edges, insertion order
}

// NewGraph builds a Graph from the given edges. The slice is copied, so the
// caller may reuse or mutate its argument afterwards.
// Complexity: O(E).
func NewGraph(edges ...Edge) *Graph {
	g := &Graph{edges: make([]Edge, len(edges))}
	copy(g.edges, edges)

	return g
}

// build computes the derived vertex list and adjacency map. Runs exactly once
// per Graph, under g.once.
func (g *Graph) build() {
	// 1) Collect every endpoint into the adjacency map. A vertex that only
	//    ever appears as a destination still gets an (empty) adjacency bucket,
	//    so membership checks and Neighbors work for sink vertices too.
	g.adjacency = make(map[int][]Edge)
	var e Edge
	for _, e = range g.edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		if _, ok := g.adjacency[e.To]; !ok {
			g.adjacency[e.To] = nil
		}
	}

	// 2) Materialize the vertex list and sort ascending by id for
	//    deterministic iteration.
	g.vertices = make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		g.vertices = append(g.vertices, id)
	}
	sort.Ints(g.vertices)
}

// Vertices returns all vertex ids in ascending order.
// The returned slice is a copy; callers may modify it freely.
// Complexity: O(E log V) on first call, O(V) thereafter.
func (g *Graph) Vertices() []int {
	g.once.Do(g.build)

	out := make([]int, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of distinct vertex ids in the graph.
// Complexity: O(1) after the derived views are built.
func (g *Graph) VertexCount() int {
	g.once.Do(g.build)

	return len(g.vertices)
}

// HasVertex reports whether id appears as an endpoint of any edge.
// Complexity: O(1) after the derived views are built.
func (g *Graph) HasVertex(id int) bool {
	g.once.Do(g.build)
	_, ok := g.adjacency[id]

	return ok
}

// Neighbors returns the outgoing edges of vertex id, in insertion order.
// Returns ErrVertexNotFound if id is not a vertex of the graph; a vertex with
// no outgoing edges yields an empty slice and a nil error.
// The returned slice is a copy.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.once.Do(g.build)

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges in the graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }
