// Package dijkstra_test validates the shortest-path engine: input validation,
// distance and path correctness on small directed graphs, unreachable-vertex
// tagging, exploration thresholds, determinism, and agreement with a naive
// quadratic reference implementation on larger random graphs.
package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkoshel/pathfind/core"
	"github.com/vkoshel/pathfind/dijkstra"
)

// buildTriangle constructs the canonical bidirected triangle:
//
//	0→1(1), 1→0(4), 1→2(1), 2→1(1), 0→2(2), 2→0(2)
//
// Cheapest route from 1 to 0 is 1→2→0 with total cost 3, beating the direct
// 1→0 edge of weight 4.
func buildTriangle() *core.Graph {
	return core.NewGraph(
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 0, Weight: 4},
		core.Edge{From: 1, To: 2, Weight: 1},
		core.Edge{From: 2, To: 1, Weight: 1},
		core.Edge{From: 0, To: 2, Weight: 2},
		core.Edge{From: 2, To: 0, Weight: 2},
	)
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

// TestDijkstra_NilGraph verifies the nil-graph sentinel.
func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.ShortestPath(nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// TestDijkstra_SourceNotFound verifies unknown source ids are a hard error,
// not an empty result.
func TestDijkstra_SourceNotFound(t *testing.T) {
	g := buildTriangle()

	_, err := dijkstra.Dijkstra(g, 42)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// TestDijkstra_FinishNotFound verifies the two-vertex entry point validates
// finish as well.
func TestDijkstra_FinishNotFound(t *testing.T) {
	g := buildTriangle()

	_, _, err := dijkstra.ShortestPath(g, 0, 42)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	_, _, err = res.PathTo(42)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// TestDijkstra_NegativeWeightDetectedEarly verifies the fail-fast pre-scan.
func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph(
		core.Edge{From: 0, To: 1, Weight: 3},
		core.Edge{From: 1, To: 2, Weight: -5},
	)

	_, err := dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestOptions_PanicOnInvalidArguments verifies option constructors reject
// nonsensical thresholds at configuration time.
func TestOptions_PanicOnInvalidArguments(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0)(&dijkstra.Options{}) })
	assert.NotPanics(t, func() { dijkstra.WithInfEdgeThreshold(1)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Path correctness on the canonical triangle.
// ------------------------------------------------------------------------

// TestShortestPath_TriangleDetour verifies the two-hop detour 1→2→0 (cost 3)
// beats the direct edge 1→0 (cost 4), edge by edge.
func TestShortestPath_TriangleDetour(t *testing.T) {
	g := buildTriangle()

	path, cost, err := dijkstra.ShortestPath(g, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(3), cost)
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 0, Weight: 2},
	}, path)
}

// TestShortestPath_SourceEqualsFinish verifies the trivial zero-length path:
// empty edge sequence, zero cost, reachable.
func TestShortestPath_SourceEqualsFinish(t *testing.T) {
	g := buildTriangle()

	path, cost, err := dijkstra.ShortestPath(g, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Zero(t, cost)

	// The tagged API must mark the trivial path as reached.
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	edges, reached, err := res.PathTo(0)
	require.NoError(t, err)
	assert.True(t, reached)
	assert.Empty(t, edges)
}

// TestDijkstra_TriangleDistances verifies the full distance table from each
// source of the triangle.
func TestDijkstra_TriangleDistances(t *testing.T) {
	g := buildTriangle()

	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)

	assert.Equal(t, map[int]int64{0: 3, 1: 0, 2: 1}, res.Dist)

	// Best incoming edges: 2 via 1→2, 0 via 2→0; the source has none.
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 1}, res.Prev[2])
	assert.Equal(t, core.Edge{From: 2, To: 0, Weight: 2}, res.Prev[0])
	_, hasSourcePrev := res.Prev[1]
	assert.False(t, hasSourcePrev)
}

// ------------------------------------------------------------------------
// 3. Unreachable vertices.
// ------------------------------------------------------------------------

// TestDijkstra_UnreachableVertex verifies a disconnected component keeps the
// Inf sentinel and yields a tagged empty path without error.
func TestDijkstra_UnreachableVertex(t *testing.T) {
	// Two components: {0,1} and {5,6}. Vertex 5 has no incoming edges at all.
	g := core.NewGraph(
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 5, To: 6, Weight: 1},
	)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Inf, res.Dist[5])
	assert.Equal(t, dijkstra.Inf, res.Dist[6])
	assert.False(t, res.Reachable(5))
	assert.True(t, res.Reachable(1))

	// PathTo: empty sequence, reached=false, no error.
	path, reached, err := res.PathTo(6)
	require.NoError(t, err)
	assert.False(t, reached)
	assert.Empty(t, path)

	// ShortestPath signals the same through an Inf cost.
	path, cost, err := dijkstra.ShortestPath(g, 0, 6)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, dijkstra.Inf, cost)
}

// TestDijkstra_SelfLoop verifies a zero-weight self-loop neither loops the
// engine nor disturbs the trivial distance.
func TestDijkstra_SelfLoop(t *testing.T) {
	g := core.NewGraph(
		core.Edge{From: 0, To: 0, Weight: 0},
		core.Edge{From: 0, To: 1, Weight: 2},
	)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, int64(2), res.Dist[1])
	_, hasPrev := res.Prev[0]
	assert.False(t, hasPrev, "self-loop must not become the source's incoming edge")
}

// TestDijkstra_DirectedEdgeIsOneWay verifies distances never flow against
// edge direction.
func TestDijkstra_DirectedEdgeIsOneWay(t *testing.T) {
	g := core.NewGraph(core.Edge{From: 0, To: 1, Weight: 1})

	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[1])
	assert.Equal(t, dijkstra.Inf, res.Dist[0], "0→1 must not be walked backwards")
}

// ------------------------------------------------------------------------
// 4. Larger fixed graph with path reconstruction.
// ------------------------------------------------------------------------

// TestDijkstra_ChainWithBranch verifies distances and the full reconstructed
// path on a slightly larger graph:
//
//	0→1(2), 0→2(1), 2→1(1) [so 1 costs 2 either way, direct edge wins the tie],
//	1→3(3), 2→3(5), 3→4(1)
func TestDijkstra_ChainWithBranch(t *testing.T) {
	g := core.NewGraph(
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 2, To: 1, Weight: 1},
		core.Edge{From: 1, To: 3, Weight: 3},
		core.Edge{From: 2, To: 3, Weight: 5},
		core.Edge{From: 3, To: 4, Weight: 1},
	)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, map[int]int64{0: 0, 1: 2, 2: 1, 3: 5, 4: 6}, res.Dist)

	// Equal-cost routes to 1 (direct 0→1 vs 0→2→1): relaxation is strict, so
	// the first-found incoming edge is kept — the direct one.
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 2}, res.Prev[1])

	path, reached, err := res.PathTo(4)
	require.NoError(t, err)
	require.True(t, reached)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 3, Weight: 3},
		{From: 3, To: 4, Weight: 1},
	}, path)
}

// ------------------------------------------------------------------------
// 5. Exploration thresholds.
// ------------------------------------------------------------------------

// TestDijkstra_MaxDistanceLimits verifies vertices beyond the cap stay
// unreached.
func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Line: 0→1(1)→2(1)→3(1).
	g := core.NewGraph(
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 1},
		core.Edge{From: 2, To: 3, Weight: 1},
	)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, int64(1), res.Dist[1])
	assert.Equal(t, dijkstra.Inf, res.Dist[2])
	assert.Equal(t, dijkstra.Inf, res.Dist[3])
}

// TestDijkstra_MaxDistanceZero verifies only the source itself is processed
// under a zero cap.
func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g := core.NewGraph(core.Edge{From: 0, To: 1, Weight: 1})

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, dijkstra.Inf, res.Dist[1])
}

// TestDijkstra_InfThresholdStopsHeavyEdge verifies edges at or above the
// threshold act as walls, forcing the detour.
func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// 0→2 direct (10) vs 0→1→2 (2+4=6).
	g := core.NewGraph(
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 1, To: 2, Weight: 4},
		core.Edge{From: 0, To: 2, Weight: 10},
	)

	// Without the threshold the direct edge still loses (10 > 6)…
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Dist[2])

	// …with threshold 4 the 1→2 edge becomes a wall and the direct edge is
	// also blocked, so 2 is unreachable.
	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Inf, res.Dist[2])

	// Threshold 11 blocks nothing.
	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(11))
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Dist[2])
}

// ------------------------------------------------------------------------
// 6. Determinism & idempotence.
// ------------------------------------------------------------------------

// TestDijkstra_Idempotent verifies computing twice over an unmodified graph
// yields identical tables.
func TestDijkstra_Idempotent(t *testing.T) {
	g := buildMediumGraph(60, 240)

	first, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Dist, second.Dist)
	assert.Equal(t, first.Prev, second.Prev)
}

// ------------------------------------------------------------------------
// 7. Cross-check against a naive reference.
// ------------------------------------------------------------------------

// buildMediumGraph creates a connected, weighted directed graph with n
// vertices and roughly edgesCount edges: a guaranteed chain 0→1→…→n-1 plus
// random extra edges, all seeded deterministically.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	r := rand.New(rand.NewSource(42))

	edges := make([]core.Edge, 0, edgesCount)
	seen := make(map[[2]int]bool, edgesCount)

	// 1) Chain for connectivity.
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{From: i - 1, To: i, Weight: int64(1 + r.Intn(10))})
		seen[[2]int{i - 1, i}] = true
	}

	// 2) Random extra edges; skip loops and duplicate (from,to) pairs.
	for len(edges) < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v || seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		edges = append(edges, core.Edge{From: u, To: v, Weight: int64(1 + r.Intn(100))})
	}

	return core.NewGraph(edges...)
}

// naiveDistances is a quadratic Dijkstra without any heap: linear-scan the
// unfinalized vertex of minimal distance, relax, repeat. Slow and obviously
// correct.
func naiveDistances(g *core.Graph, source int) map[int]int64 {
	dist := make(map[int]int64)
	done := make(map[int]bool)
	for _, v := range g.Vertices() {
		dist[v] = dijkstra.Inf
	}
	dist[source] = 0

	for {
		u, best := -1, dijkstra.Inf
		for _, v := range g.Vertices() {
			if !done[v] && dist[v] < best {
				u, best = v, dist[v]
			}
		}
		if u == -1 {
			break
		}
		done[u] = true

		neighbors, _ := g.Neighbors(u)
		for _, e := range neighbors {
			if nd := best + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
			}
		}
	}

	return dist
}

// TestDijkstra_MatchesNaiveReference cross-checks the indexed-heap engine
// against the quadratic reference from several sources of a 120-vertex graph.
func TestDijkstra_MatchesNaiveReference(t *testing.T) {
	g := buildMediumGraph(120, 600)

	for _, source := range []int{0, 17, 59, 119} {
		t.Run(fmt.Sprintf("source=%d", source), func(t *testing.T) {
			res, err := dijkstra.Dijkstra(g, source)
			require.NoError(t, err)
			assert.Equal(t, naiveDistances(g, source), res.Dist)
		})
	}
}

// TestDijkstra_PathCostsMatchDistances verifies, for every reachable vertex,
// that the reconstructed path's edge weights sum to the reported distance and
// that the path is a connected chain starting at the source.
func TestDijkstra_PathCostsMatchDistances(t *testing.T) {
	g := buildMediumGraph(80, 320)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	for _, v := range g.Vertices() {
		path, reached, err := res.PathTo(v)
		require.NoError(t, err)
		require.True(t, reached, "chain construction makes every vertex reachable from 0")

		var total int64
		cur := 0
		for _, e := range path {
			require.Equal(t, cur, e.From, "path edges must chain head to tail")
			cur = e.To
			total += e.Weight
		}
		if v != 0 {
			assert.Equal(t, v, cur, "path must end at the queried vertex")
		}
		assert.Equal(t, res.Dist[v], total, "path cost must equal the distance table entry for %d", v)
	}
}
