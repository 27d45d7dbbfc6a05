// Package dijkstra: the relaxation engine. See doc.go for the algorithm
// overview and complexity discussion.
package dijkstra

import (
	"fmt"

	"github.com/vkoshel/pathfind/core"
	"github.com/vkoshel/pathfind/ipq"
)

// Dijkstra computes shortest distances from source to every vertex of the
// weighted directed graph g, along with the best incoming edge of each
// reached vertex for path reconstruction.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No edge in g may have negative weight (ErrNegativeWeight).
//
// The returned Result maps every vertex id of g to a distance (Inf for
// unreachable vertices) and every reached non-source vertex to the incoming
// edge lying on a minimal-cost path. A Graph is never mutated by a query, so
// running the same query twice yields identical results, and concurrent
// queries over one Graph are safe — each call owns its tables and heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph.
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast: a single
	//    negative weight invalidates the popped-is-final invariant.
	var e core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Initialize runner state and execute the relaxation loop.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, g.VertexCount()),
		prev:    make(map[int]core.Edge, g.VertexCount()),
	}
	if err := r.init(source); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	// 6) Package the transient tables into the query result.
	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution. All of it
// is discarded (or handed to the Result) when the query completes; nothing is
// shared across calls.
type runner struct {
	g        *core.Graph         // the input graph; read-only within a query
	options  Options             // thresholds (MaxDistance, InfEdgeThreshold)
	dist     map[int]int64       // vertex id → current best distance from source
	prev     map[int]core.Edge   // vertex id → best incoming edge on a shortest path
	frontier *ipq.Heap[distNode] // indexed min-heap over {distance, vertex} records
}

// distNode is a priority record: a vertex and its current tentative distance
// from the source. Records are the heap's element values, so each vertex must
// map to exactly one record at any time — relaxation swaps the old record for
// the improved one via decrease-key instead of inserting a second.
type distNode struct {
	dist int64 // tentative distance from source
	id   int   // vertex id
}

// nodeLess orders records by ascending distance, breaking ties by vertex id
// so that extraction order (and therefore tie-breaking between equal-cost
// paths) is deterministic.
func nodeLess(a, b distNode) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.id < b.id
}

// init seeds the distance table (source = 0, everything else = Inf) and bulk-
// builds the frontier heap from one record per vertex in linear time.
func (r *runner) init(source int) error {
	vertices := r.g.Vertices()

	// 1) One record per vertex; only the source starts at distance zero.
	records := make([]distNode, 0, len(vertices))
	var v int
	var d int64
	for _, v = range vertices {
		d = Inf
		if v == source {
			d = 0
		}
		r.dist[v] = d
		records = append(records, distNode{dist: d, id: v})
	}

	// 2) Linear-time heapify. Vertex ids are unique within a graph, so the
	//    records are unique and the uniqueness precondition cannot trip.
	frontier, err := ipq.NewFrom(records, nodeLess)
	if err != nil {
		return fmt.Errorf("dijkstra: building frontier: %w", err)
	}
	r.frontier = frontier

	return nil
}

// process is the core loop: repeatedly extract the minimum record — that
// vertex is now finalized — and relax its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every vertex processed).
//   - The minimum distance is Inf (every remaining vertex is unreachable).
//   - The minimum distance exceeds MaxDistance (nothing closer remains).
func (r *runner) process() error {
	var u distNode
	var ok bool
	for {
		// 1) Extract the closest frontier vertex; its distance is now final.
		if u, ok = r.frontier.PopMin(); !ok {
			break
		}

		// 2) Inf means no path from the source reaches u — and since u was
		//    the minimum, none reaches anything still in the heap either.
		if u.dist == Inf {
			break
		}

		// 3) Beyond the exploration cap: stop entirely, the heap holds
		//    nothing closer.
		if u.dist > r.options.MaxDistance {
			break
		}

		// 4) Relax all outgoing edges of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from the finalized vertex u and improves
// neighbor distances where a cheaper route via u exists. Every improvement is
// applied to the frontier with a true decrease-key: the neighbor's old
// {distance, id} record is replaced in place by the improved one.
func (r *runner) relax(u distNode) error {
	// 1) Outgoing edges of u, insertion-ordered.
	neighbors, err := r.g.Neighbors(u.id)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u.id, err)
	}

	var e core.Edge
	var w, candidate, known int64
	for _, e = range neighbors {
		w = e.Weight

		// 2) Skip edges marked impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// 3) Saturating guard: if u.dist + w would overflow, the candidate is
		//    effectively infinite and cannot improve anything.
		if u.dist > Inf-w {
			continue
		}
		candidate = u.dist + w

		// 4) Respect the exploration cap.
		if candidate > r.options.MaxDistance {
			continue
		}

		// 5) Relaxation test: strictly better only. Equal-cost routes keep
		//    the first-found incoming edge, and finalized vertices can never
		//    pass this test (their distance is already minimal).
		known = r.dist[e.To]
		if candidate >= known {
			continue
		}

		// 6) Decrease-key on the neighbor's live record. The improved record
		//    must not collide and must strictly improve, both guaranteed by
		//    the checks above; an error here means the heap and the distance
		//    table have diverged, which must surface, not be papered over.
		if err = r.frontier.Update(
			distNode{dist: known, id: e.To},
			distNode{dist: candidate, id: e.To},
		); err != nil {
			return fmt.Errorf("dijkstra: decrease-key for vertex %d: %w", e.To, err)
		}

		// 7) Commit the improvement to the tables.
		r.dist[e.To] = candidate
		r.prev[e.To] = e
	}

	return nil
}
