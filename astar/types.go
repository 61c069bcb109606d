// Package astar defines options, hooks, results and sentinel errors for
// the A* route search over a core.Store.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/geo"
)

// Sentinel errors returned by FindPath.
var (
	// ErrInvalidInput is the class of every precondition failure. The more
	// specific sentinels below always match it through errors.Is as well.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrEmptyGraph indicates a nil store or a store without points.
	ErrEmptyGraph = errors.New("astar: graph is empty")

	// ErrOriginNotFound indicates the origin does not resolve to a stored point.
	ErrOriginNotFound = errors.New("astar: origin point not found")

	// ErrDestinationNotFound indicates the destination does not resolve to a stored point.
	ErrDestinationNotFound = errors.New("astar: destination point not found")

	// ErrNoPath indicates the search exhausted the open set without reaching
	// the destination. The Result still carries the real set sizes.
	ErrNoPath = errors.New("astar: no path between points")

	// ErrBudgetExceeded indicates WithMaxExpansions stopped the search early.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Result is the outcome of a search.
//
//	Length – total route length of Path in km; -1 if no path was produced.
//	Path   – origin→destination steps; nil if no path was produced.
//	Open   – open-set size when the search stopped; -1 if it never ran.
//	Closed – closed-set size when the search stopped; -1 if it never ran.
type Result struct {
	Length float64
	Path   core.Path
	Open   int
	Closed int
}

// Found reports whether the result carries a path.
func (r Result) Found() bool { return len(r.Path) > 0 }

// invalidResult is returned whenever the search never ran.
func invalidResult() Result {
	return Result{Length: -1, Path: nil, Open: -1, Closed: -1}
}

// Visit describes a search node handed to hooks.
//
// Open and Closed are the set sizes right after the event that triggered
// the hook (the pop for OnExpand, the insertion for OnEnqueue).
type Visit struct {
	Point  core.PointID
	Route  core.RouteID
	G      float64
	H      float64
	Open   int
	Closed int
}

// F returns the estimated total cost G+H.
func (v Visit) F() float64 { return v.G + v.H }

// Heuristic estimates the remaining cost from a point to the destination.
type Heuristic func(from, to core.Point) float64

// Option configures FindPath via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and hooks for one search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search after that many nodes were
	// expanded without reaching the destination. 0 means unlimited.
	MaxExpansions int

	// Heuristic estimates the remaining distance; defaults to geo.Haversine.
	Heuristic Heuristic

	// OnExpand is called after a node moves from the open to the closed set.
	OnExpand func(v Visit)

	// OnEnqueue is called after a node is inserted into the open set.
	OnEnqueue func(v Visit)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion budget
//   - great-circle heuristic
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Heuristic:     geo.Haversine,
		OnExpand:      func(Visit) {},
		OnEnqueue:     func(Visit) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0:  stop after n expansions
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the great-circle heuristic. The function must not
// overestimate the remaining route length, or the result may not be the
// shortest path.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(v Visit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run for every node inserted into the open set.
func WithOnEnqueue(fn func(v Visit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
