// Package dijkstra: sentinel errors, the Inf distance sentinel, and the
// functional options shared by Dijkstra and ShortestPath.
package dijkstra

import (
	"errors"
	"math"
)

// Inf is the distance recorded for vertices with no known path from the
// source. Relaxation never adds to an Inf distance (saturating guard), so the
// sentinel cannot overflow into a value that compares smaller than a real
// accumulated distance.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the requested source or finish vertex
	// does not exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Dijkstra's correctness argument requires non-negative weights, so this
	// is rejected up front rather than producing a silently wrong result.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of a shortest-path computation.
//
// MaxDistance      – cap on distances to explore; vertices whose final
// distance would exceed it are left unreached. Must be ≥ 0.
// Default is Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable
// obstacles. Must be > 0. Default is Inf (no obstacles).
type Options struct {
	MaxDistance      int64 // maximum distance to explore
	InfEdgeThreshold int64 // weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring a computation.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed this value are not explored and stay unreached.
// Panics with ErrBadMaxDistance for negative values.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight). Edges with weight
// ≥ threshold are skipped entirely.
// Panics with ErrBadInfThreshold for non-positive values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no
// impassable-edge threshold.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}
