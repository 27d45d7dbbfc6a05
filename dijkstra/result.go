// Package dijkstra: query results and path reconstruction.
package dijkstra

import (
	"fmt"

	"github.com/vkoshel/pathfind/core"
)

// Result holds the outcome of one Dijkstra query: a distance per vertex and
// the best incoming edge of every reached non-source vertex. A Result is a
// plain value snapshot — it does not reference the graph and stays valid
// however the caller uses it afterwards.
type Result struct {
	// Source is the vertex the query started from.
	Source int

	// Dist maps every vertex id of the graph to its minimal total cost from
	// Source, or Inf when no path exists.
	Dist map[int]int64

	// Prev maps each reached vertex id to the incoming edge lying on a
	// minimal-cost path from Source. The source itself and unreachable
	// vertices have no entry.
	Prev map[int]core.Edge
}

// Reachable reports whether v was reached from the source. Unknown vertex ids
// report false.
func (r *Result) Reachable(v int) bool {
	d, ok := r.Dist[v]

	return ok && d != Inf
}

// PathTo reconstructs the minimal-cost path from the query source to finish
// as a sequence of edges in source→finish order.
//
// Returns:
//
//   - (edges, true, nil)  — finish is reachable; edges is empty when
//     finish == Source (the trivial zero-length path).
//   - (nil, false, nil)   — finish is a vertex of the graph but no path from
//     the source reaches it. Not an error; the boolean tag is what
//     distinguishes this from the trivial path above.
//   - (nil, false, err)   — finish is not a vertex of the graph
//     (ErrVertexNotFound).
//
// Complexity: O(L) for a path of L edges.
func (r *Result) PathTo(finish int) ([]core.Edge, bool, error) {
	// 1) Unknown finish is a hard error, distinct from "no path".
	d, ok := r.Dist[finish]
	if !ok {
		return nil, false, fmt.Errorf("%w: finish %d", ErrVertexNotFound, finish)
	}

	// 2) Unreachable: a valid, tagged empty result.
	if d == Inf {
		return nil, false, nil
	}

	// 3) Walk the recorded incoming edges back from finish until a vertex
	//    with no recorded edge — the source — then reverse into forward order.
	path := make([]core.Edge, 0)
	cur := finish
	for {
		e, found := r.Prev[cur]
		if !found {
			break
		}
		path = append(path, e)
		cur = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true, nil
}

// ShortestPath computes the minimal-cost path between two vertices in one
// call: it runs Dijkstra from source and reconstructs the path to finish.
//
// Returns the path in source→finish order and its total cost. When finish is
// unreachable the path is empty and the cost is Inf — still a nil error; "no
// path" is a valid answer, not a failure. When source == finish the path is
// empty and the cost is 0.
//
// Validation mirrors Dijkstra, plus finish must be a vertex of the graph
// (ErrVertexNotFound).
//
// Complexity: O((V + E) log V) — dominated by the distance computation.
func ShortestPath(g *core.Graph, source, finish int, opts ...Option) ([]core.Edge, int64, error) {
	// 1) Validate finish up front so the error arrives before the O(V log V)
	//    work, matching the fail-fast validation order of Dijkstra itself.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(finish) {
		return nil, 0, fmt.Errorf("%w: finish %d", ErrVertexNotFound, finish)
	}

	// 2) Full single-source computation.
	res, err := Dijkstra(g, source, opts...)
	if err != nil {
		return nil, 0, err
	}

	// 3) Reconstruct. finish was validated, so the only non-error outcome
	//    left to distinguish is reachable vs not.
	path, reached, err := res.PathTo(finish)
	if err != nil {
		return nil, 0, err
	}
	if !reached {
		return nil, Inf, nil
	}

	return path, res.Dist[finish], nil
}
