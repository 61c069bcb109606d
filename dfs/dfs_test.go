package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/builder"
	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/dfs"
)

// diamond builds A–B, A–C, B–D, C–D, D–E, D–F, plus an island G–H and a lone I.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []core.PointID{"#A", "#B", "#C", "#D", "#E", "#F", "#G", "#H", "#I"} {
		require.NoError(t, g.AddPoint(core.Point{ID: id}))
	}
	for _, e := range []struct {
		id   core.RouteID
		u, v core.PointID
	}{
		{"&AB", "#A", "#B"}, {"&AC", "#A", "#C"},
		{"&BD", "#B", "#D"}, {"&CD", "#C", "#D"},
		{"&DE", "#D", "#E"}, {"&DF", "#D", "#F"},
		{"&GH", "#G", "#H"},
	} {
		require.NoError(t, g.AddRoute(core.Route{ID: e.id, Endpoints: [2]core.PointID{e.u, e.v}, Length: 1}))
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	res, err := dfs.DFS(nil, "#A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	res, err = dfs.DFS(core.NewGraph(), "#X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartPointNotFound)
}

func TestDFS_SingleSource(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "#A")
	require.NoError(t, err)
	// A → B → D → C (back), E, F
	assert.Equal(t, []core.PointID{"#C", "#E", "#F", "#D", "#B", "#A"}, res.Order)
	assert.Equal(t, 3, res.Depth["#C"])
	assert.Equal(t, core.RouteID("&CD"), res.Parent["#C"].ID)
	assert.Equal(t, []core.PointID{"#A"}, res.Roots)
	_, ok := res.Tree["#G"]
	assert.False(t, ok)
}

func TestDFS_MaxDepthAndHooks(t *testing.T) {
	var pre, post []core.PointID
	res, err := dfs.DFS(diamond(t), "#A",
		dfs.WithMaxDepth(1),
		dfs.WithOnVisit(func(id core.PointID) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id core.PointID) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.PointID{"#A", "#B", "#C"}, pre)
	assert.Equal(t, res.Order, post)

	boom := errors.New("boom")
	res, err = dfs.DFS(diamond(t), "#A", dfs.WithOnVisit(func(id core.PointID) error {
		if id == "#D" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(diamond(t), "#A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	comps, err := dfs.Components(diamond(t))
	require.NoError(t, err)
	assert.Equal(t, [][]core.PointID{
		{"#A", "#B", "#C", "#D", "#E", "#F"},
		{"#G", "#H"},
		{"#I"},
	}, comps)

	comps, err = dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestComponents_GridIsOneComponent(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(4, 4))
	require.NoError(t, err)
	comps, err := dfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 16)
}
