// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/core"
)

// TestConcurrentAddRoute ensures concurrent AddRoute calls from a hub are all indexed.
func TestConcurrentAddRoute(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddPoint(core.Point{ID: "#HUB"}))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddPoint(core.Point{ID: core.PointID(fmt.Sprintf("#P%d", i))}))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			err := g.AddRoute(core.Route{
				ID:        core.RouteID(fmt.Sprintf("&R%d", id)),
				Endpoints: [2]core.PointID{"#HUB", core.PointID(fmt.Sprintf("#P%d", id))},
				Length:    float64(id),
			})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.IncidentRoutes("#HUB"), num)
	require.Equal(t, num, g.RouteCount())
}

// TestConcurrentReadersAndClone validates concurrent lookups and clones do not race.
func TestConcurrentReadersAndClone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddPoint(core.Point{ID: "#A"}))
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddRoute(core.Route{
			ID:        core.RouteID(fmt.Sprintf("&L%d", i)),
			Endpoints: [2]core.PointID{"#A", "#A"},
			Length:    float64(i),
		}))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			require.Len(t, g.IncidentRoutes("#A"), 50)
			_, ok := g.Point("#A")
			require.True(t, ok)
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
