package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/bfs"
	"github.com/katalvlaran/routeplan/core"
)

// twoIslands builds #A–#B–#C (plus #A–#C) and #D–#E, with #F isolated.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []core.PointID{"#A", "#B", "#C", "#D", "#E", "#F"} {
		require.NoError(t, g.AddPoint(core.Point{ID: id}))
	}
	for _, r := range []core.Route{
		{ID: "&AB", Endpoints: [2]core.PointID{"#A", "#B"}, Length: 1},
		{ID: "&BC", Endpoints: [2]core.PointID{"#B", "#C"}, Length: 1},
		{ID: "&CA", Endpoints: [2]core.PointID{"#C", "#A"}, Length: 1},
		{ID: "&DE", Endpoints: [2]core.PointID{"#D", "#E"}, Length: 1},
	} {
		require.NoError(t, g.AddRoute(r))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "#A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := twoIslands(t)
	_, err = bfs.BFS(g, "#Z")
	assert.ErrorIs(t, err, bfs.ErrStartPointNotFound)

	_, err = bfs.BFS(g, "#A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(twoIslands(t), "#A")
	require.NoError(t, err)
	assert.Equal(t, []core.PointID{"#A", "#B", "#C"}, res.Order)
	assert.Equal(t, map[core.PointID]int{"#A": 0, "#B": 1, "#C": 1}, res.Depth)
	assert.Equal(t, core.RouteID("&AB"), res.Parent["#B"].ID)
	assert.Equal(t, core.RouteID("&CA"), res.Parent["#C"].ID)
}

func TestReachable(t *testing.T) {
	g := twoIslands(t)

	got, err := bfs.Reachable(g, "#E")
	require.NoError(t, err)
	assert.Equal(t, []core.PointID{"#E", "#D"}, got)

	got, err = bfs.Reachable(g, "#F")
	require.NoError(t, err)
	assert.Equal(t, []core.PointID{"#F"}, got)
}

func TestBFS_MaxDepthAndHooks(t *testing.T) {
	g := twoIslands(t)
	var seen []core.PointID
	res, err := bfs.BFS(g, "#B", bfs.WithMaxDepth(1), bfs.WithOnVisit(func(id core.PointID, _ int) error {
		seen = append(seen, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Order, seen)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "#A", bfs.WithOnVisit(func(id core.PointID, _ int) error {
		if id == "#B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(twoIslands(t), "#A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
