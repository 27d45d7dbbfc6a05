// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// directed graphs, driven by the indexed min-heap from package ipq.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights. It
// processes vertices in order of increasing distance, relaxing edges and
// updating distances as cheaper routes appear.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Every vertex is seeded into the heap once and extracted at most once: V extractions.
//   - Each edge relaxation performs at most one decrease-key: up to E updates.
//   - Each heap operation costs O(log V) — the heap never holds more than V entries.
//   - Space: O(V + E)
//   - O(V) for the distance table, the best-incoming-edge table, and the heap.
//
// Notes on implementation choices:
//
//   - Unlike the common "lazy" formulation that pushes duplicate entries and
//     skips stale ones on extraction, this implementation uses the indexed
//     heap's true decrease-key (ipq.Heap.Update): each frontier vertex has
//     exactly one live heap entry at all times, re-prioritized in place.
//   - We perform an upfront scan of all edges (O(E)) to detect negative
//     weights and fail fast with ErrNegativeWeight; with a negative weight
//     present the popped-is-final invariant does not hold and the algorithm
//     would silently return wrong distances.
//   - Unreachable vertices keep the distance sentinel Inf. Relaxation uses a
//     saturating guard, so Inf plus any edge weight can never wrap around and
//     masquerade as a real distance.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable wall,
//     and stop exploring once the minimum distance in the heap exceeds
//     MaxDistance.
//
// Entry points:
//
//   - Dijkstra(g, source, opts...)              — distances + best incoming edge per vertex.
//   - Result.PathTo(finish)                     — reconstruct one path, with a reachable tag.
//   - ShortestPath(g, source, finish, opts...)  — one-shot path between two vertices.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the provided graph pointer is nil.
//   - ErrVertexNotFound  if source or finish is not a vertex of the graph.
//   - ErrNegativeWeight  if a negative edge weight is detected.
//   - ErrBadMaxDistance  if WithMaxDistance receives a negative value (panic).
//   - ErrBadInfThreshold if WithInfEdgeThreshold receives a non-positive value (panic).
//
// "No path" is not an error: PathTo reports it through its boolean tag and
// ShortestPath through an Inf total cost.
package dijkstra
