// Package dijkstra defines configuration options and sentinel errors for
// Dijkstra's shortest-distance algorithm over a core.Store.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/routeplan/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no valid source point ID was provided.
	ErrEmptySource = errors.New("dijkstra: source point ID is empty")

	// ErrNilGraph indicates that a nil store was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrPointNotFound indicates that the source point is not in the store.
	ErrPointNotFound = errors.New("dijkstra: source point not found in graph")

	// ErrNegativeLength indicates that a route with negative length was reached.
	ErrNegativeLength = errors.New("dijkstra: negative route length encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting point ID (must be valid and present in the store).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – points farther than this (km) are not settled. Default +Inf.
type Options struct {
	Source      core.PointID
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting point.
func Source(id core.PointID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance in km; farther points are not settled.
// Panics on a negative value, like the other option constructors of this package.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for the given source with no distance cap
// and no predecessor map.
func DefaultOptions(source core.PointID) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
