package astar_test

import (
	"testing"

	"github.com/katalvlaran/routeplan/astar"
)

// BenchmarkFindPath_Grid measures corner-to-corner searches on a 30×30 lattice.
func BenchmarkFindPath_Grid(b *testing.B) {
	g := gridFixture(b, 30, 30, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g, "#0,0", "#29,29"); err != nil {
			b.Fatal(err)
		}
	}
}
