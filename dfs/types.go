// Package dfs defines types and options for depth-first search over a map,
// including cancellation, pre-/post-order hooks, depth limiting and
// full-map (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/routeplan/core"
)

var (
	// ErrGraphNil is returned when a nil map is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartPointNotFound indicates that the start ID is not a stored point.
	ErrStartPointNotFound = errors.New("dfs: start point not found")
)

// Map is the read surface DFS needs: lookups plus the full point list for
// forest traversal. *core.Graph satisfies it.
type Map interface {
	core.Store
	Points() []core.Point
}

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per discovered point.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a point (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.PointID) error

	// OnExit, if non-nil, is invoked after all descendants of a point have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(id core.PointID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start point. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, restarts from every unvisited point in map
	// order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		MaxDepth:      -1,
		FullTraversal: false,
	}
}

// WithContext sets the Context for DFS traversal. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.PointID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.PointID) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit routes from each root.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal makes DFS restart from each unvisited point.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records points in the sequence they finished (post-order).
	Order []core.PointID

	// Depth maps each point to its distance in routes from its tree root.
	Depth map[core.PointID]int

	// Parent maps each point to the route it was discovered through.
	// Roots do not appear.
	Parent map[core.PointID]core.Route

	// Roots lists the tree roots in discovery order; one per component
	// in full traversal.
	Roots []core.PointID

	// Tree maps each visited point to the index of its root in Roots.
	Tree map[core.PointID]int
}
