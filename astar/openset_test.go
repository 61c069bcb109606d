package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/routeplan/core"
)

func points(s openSet) []core.PointID {
	out := make([]core.PointID, len(s))
	for i, n := range s {
		out[i] = n.point
	}

	return out
}

func TestOpenSet_InsertAfterEqualF(t *testing.T) {
	var s openSet
	s.insert(node{point: "#A", g: 2})
	s.insert(node{point: "#B", g: 1, h: 1})
	s.insert(node{point: "#C", g: 1})
	s.insert(node{point: "#D", g: 0, h: 2})
	s.insert(node{point: "#E", g: 3})

	assert.Equal(t, []core.PointID{"#C", "#A", "#B", "#D", "#E"}, points(s))
	assert.Equal(t, 2, s.find("#B"))
	assert.Equal(t, -1, s.find("#Z"))

	s.remove(2)
	assert.Equal(t, []core.PointID{"#C", "#A", "#D", "#E"}, points(s))
	assert.Equal(t, core.PointID("#C"), s.popFront().point)
	assert.Equal(t, core.PointID("#A"), s.popFront().point)
	assert.Len(t, s, 2)
}
