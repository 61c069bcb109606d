// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Store.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartPointNotFound is returned when the start ID is absent or invalid.
	ErrStartPointNotFound = errors.New("bfs: start point not found")

	// ErrGraphNil is returned if a nil store is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a point. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.PointID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many routes from the start.
	MaxDepth int

	err error
}

// DefaultOptions returns a BFSOptions with background context, no depth
// limit and a no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(core.PointID, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.PointID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: points visited, in visit sequence.
//   - Depth: point → number of routes from the start.
//   - Parent: point → route through which it was first reached.
type BFSResult struct {
	Order  []core.PointID
	Depth  map[core.PointID]int
	Parent map[core.PointID]core.Route
}
