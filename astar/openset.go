package astar

import (
	"sort"

	"github.com/katalvlaran/routeplan/core"
)

// node is one entry of the open or closed set.
//
// parent is the closed-set position of the node this one was reached from,
// or -1 for the origin.
type node struct {
	point  core.PointID
	route  core.RouteID
	g      float64
	h      float64
	parent int
}

func (n node) f() float64 { return n.g + n.h }

// openSet is kept sorted by ascending f. Among equal f, entries keep their
// insertion order, so the earliest inserted one is popped first.
type openSet []node

// insert places n after every entry whose f is <= n.f().
// Complexity: O(log n) search + O(n) shift.
func (s *openSet) insert(n node) {
	old := *s
	fn := n.f()
	i := sort.Search(len(old), func(i int) bool { return old[i].f() > fn })
	old = append(old, node{})
	copy(old[i+1:], old[i:])
	old[i] = n
	*s = old
}

// popFront removes and returns the entry with the lowest f.
func (s *openSet) popFront() node {
	old := *s
	n := old[0]
	*s = old[1:]

	return n
}

// find returns the position of the entry for p, or -1.
// Complexity: O(n)
func (s openSet) find(p core.PointID) int {
	for i := range s {
		if s[i].point == p {
			return i
		}
	}

	return -1
}

// remove deletes the entry at position i, preserving order.
func (s *openSet) remove(i int) {
	old := *s
	*s = append(old[:i], old[i+1:]...)
}
