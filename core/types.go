// Package core declares the Edge value type, the Graph container and the
// sentinel errors shared by the rest of the module.
package core

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex id that does
// not appear as an endpoint of any edge in the graph.
var ErrVertexNotFound = errors.New("core: vertex not found")

// Edge represents a one-way connection between two vertices.
//
// From and To are vertex ids; Weight is the traversal cost. Edge is a plain
// value type: copy freely, compare with ==, never mutate a stored one.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the cost of traversing the edge.
	Weight int64
}

// LessWeight reports whether e is cheaper than other.
// Convenience comparison for weight-ordered containers.
func (e Edge) LessWeight(other Edge) bool { return e.Weight < other.Weight }
