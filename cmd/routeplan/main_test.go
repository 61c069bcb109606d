package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMap(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	pp := filepath.Join(dir, "pontos.csv")
	rp := filepath.Join(dir, "rotas.csv")
	require.NoError(t, os.WriteFile(pp, []byte("ID;Nome;Latitude;Longitude\n#A;Alpha;0;0\n#B;Bravo;0;1\n"), 0o600))
	require.NoError(t, os.WriteFile(rp, []byte("ID;Nome;Extremidade 1;Extremidade 2;Comprimento\n&AB;AB road;#A;#B;120\n"), 0o600))

	return pp, rp
}

func TestParseConfig(t *testing.T) {
	t.Setenv("ROUTEPLAN_POINTS", "env-points.csv")
	t.Setenv("ROUTEPLAN_ROUTES", "env-routes.csv")
	t.Setenv("ROUTEPLAN_ADDR", "")
	t.Setenv("ROUTEPLAN_MAX_EXPANSIONS", "50")

	cfg, err := parseConfig([]string{"-routes", "flag-routes.csv", "-list"})
	require.NoError(t, err)
	assert.Equal(t, "env-points.csv", cfg.points)
	assert.Equal(t, "flag-routes.csv", cfg.routes)
	assert.Equal(t, ":8080", cfg.addr)
	assert.Equal(t, 50, cfg.maxExpansions)
	assert.True(t, cfg.list)

	_, err = parseConfig([]string{"-from", "#A"})
	assert.Error(t, err)

	t.Setenv("ROUTEPLAN_MAX_EXPANSIONS", "lots")
	_, err = parseConfig(nil)
	assert.Error(t, err)
}

func TestParseConfig_RequiresFiles(t *testing.T) {
	t.Setenv("ROUTEPLAN_POINTS", "")
	t.Setenv("ROUTEPLAN_ROUTES", "")
	t.Setenv("ROUTEPLAN_MAX_EXPANSIONS", "")
	_, err := parseConfig(nil)
	assert.Error(t, err)
}

func TestRun_ListAndPath(t *testing.T) {
	pp, rp := writeMap(t)
	var out bytes.Buffer
	err := run(context.Background(), config{points: pp, routes: rp, list: true, from: "#A", to: "#B"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "#A\tAlpha (0,0)\n#B\tBravo (0,1)\n"+
		"&AB\tAB road\t120km [#A,#B]\n"+
		"from #A\n&AB -> #B\nlength: 120 km\nopen: 0 closed: 2\n", out.String())
}

func TestRun_InvalidPointIsAnError(t *testing.T) {
	pp, rp := writeMap(t)
	err := run(context.Background(), config{points: pp, routes: rp, from: "#A", to: "#Z"}, &bytes.Buffer{})
	assert.Error(t, err)
}
