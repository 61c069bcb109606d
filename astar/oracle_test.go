package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/builder"
	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/dijkstra"
)

// gridFixture is a rows×cols lattice with 1° spacing and routes 5–60%
// longer than the great-circle distance.
func gridFixture(t testing.TB, rows, cols int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSpacing(1),
		builder.WithSeed(seed),
		builder.WithDetourFn(builder.UniformDetour(1.05, 1.6)),
	}, builder.Grid(rows, cols))
	require.NoError(t, err)

	return g
}

// assertChain checks that every step's route exists and joins the previous
// point to this one, and that the lengths add up.
func assertChain(t *testing.T, g core.Store, res astar.Result, from, to core.PointID) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	assert.False(t, res.Path[0].Route.Valid())
	assert.Equal(t, from, res.Path[0].Point)
	assert.Equal(t, to, res.Path[len(res.Path)-1].Point)

	sum := 0.0
	for i := 1; i < len(res.Path); i++ {
		r, ok := g.Route(res.Path[i].Route)
		require.True(t, ok, "step %d route %q", i, res.Path[i].Route)
		assert.True(t, r.Touches(res.Path[i-1].Point))
		assert.Equal(t, res.Path[i].Point, r.Other(res.Path[i-1].Point))
		sum += r.Length
	}
	assert.InDelta(t, sum, res.Length, 1e-9)
}

// assertMatchesOracle runs FindPath between every ordered pair of points.
func assertMatchesOracle(t *testing.T, g *core.Graph) {
	t.Helper()
	points := g.Points()
	for _, src := range points {
		dist, err := dijkstra.Distances(g, src.ID)
		require.NoError(t, err)
		for _, dst := range points {
			res, err := astar.FindPath(g, src.ID, dst.ID)
			want, reachable := dist[dst.ID]
			if !reachable {
				assert.ErrorIs(t, err, astar.ErrNoPath, "%s→%s", src.ID, dst.ID)
				assert.Equal(t, -1.0, res.Length)
				assert.Zero(t, res.Open)
				continue
			}
			require.NoError(t, err, "%s→%s", src.ID, dst.ID)
			assert.InDelta(t, want, res.Length, 1e-6, "%s→%s", src.ID, dst.ID)
			assertChain(t, g, res, src.ID, dst.ID)
		}
	}
}

func TestFindPath_MatchesDijkstraOnGrids(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		assertMatchesOracle(t, gridFixture(t, 4, 5, seed))
	}
}

func TestFindPath_MatchesDijkstraOnRandomMaps(t *testing.T) {
	for _, seed := range []int64{11, 12, 13, 14} {
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithSpacing(0.5),
			builder.WithOrigin(-8, -36),
			builder.WithSeed(seed),
			builder.WithDetourFn(builder.UniformDetour(1, 2)),
		}, builder.RandomSparse(14, 0.2))
		require.NoError(t, err)
		assertMatchesOracle(t, g)
	}
}
