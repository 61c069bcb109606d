package planner_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/loader"
	"github.com/katalvlaran/routeplan/planner"
)

const (
	points = `ID;Nome;Latitude;Longitude
#NAT;Natal;-5.79;-35.21
#JPA;Joao Pessoa;-7.12;-34.86
#REC;Recife;-8.05;-34.9
#FEN;Noronha;-3.85;-32.42
`
	routes = `ID;Nome;Extremidade 1;Extremidade 2;Comprimento
&BR101N;BR-101 Norte;#NAT;#JPA;185
&BR101S;BR-101 Sul;#JPA;#REC;120
&BR226;BR-226;#NAT;#REC;400
`
)

type PlannerSuite struct {
	suite.Suite
	p *planner.Planner
}

func (s *PlannerSuite) SetupTest() {
	s.p = planner.New()
	s.Require().True(s.p.IsEmpty())
	s.Require().NoError(s.p.LoadFrom(strings.NewReader(points), strings.NewReader(routes)))
}

func (s *PlannerSuite) TestPlan() {
	res, err := s.p.Plan("#NAT", "#REC")
	s.Require().NoError(err)
	s.Equal(305.0, res.Length)
	s.Equal([]core.PointID{"#NAT", "#JPA", "#REC"}, res.Path.Points())
}

func (s *PlannerSuite) TestPlan_MalformedIDIsInvalidInput() {
	res, err := s.p.Plan("NAT", "#REC")
	s.ErrorIs(err, astar.ErrInvalidInput)
	s.Equal(-1, res.Open)
}

func (s *PlannerSuite) TestPlan_NoPath() {
	res, err := s.p.Plan("#NAT", "#FEN")
	s.ErrorIs(err, astar.ErrNoPath)

	comp, cerr := s.p.Component("#NAT")
	s.Require().NoError(cerr)
	s.Equal(len(comp), res.Closed)
}

func (s *PlannerSuite) TestComponentAndDistances() {
	comp, err := s.p.Component("#FEN")
	s.Require().NoError(err)
	s.Equal([]core.PointID{"#FEN"}, comp)

	_, err = s.p.Component("#XXX")
	s.ErrorIs(err, planner.ErrUnknownPoint)

	dist, err := s.p.Distances("#NAT")
	s.Require().NoError(err)
	s.Equal(map[core.PointID]float64{"#NAT": 0, "#JPA": 185, "#REC": 305}, dist)

	islands, err := s.p.Islands()
	s.Require().NoError(err)
	s.Equal([][]core.PointID{{"#NAT", "#JPA", "#REC"}, {"#FEN"}}, islands)

	_, err = s.p.Distances("bad")
	s.ErrorIs(err, planner.ErrUnknownPoint)
}

func (s *PlannerSuite) TestFailedLoadKeepsMap() {
	err := s.p.LoadFrom(strings.NewReader("nope\n"), strings.NewReader(routes))
	s.ErrorIs(err, loader.ErrHeader)
	s.Equal(4, s.p.Graph().PointCount())

	err = s.p.Load("/nonexistent/pontos.csv", "/nonexistent/rotas.csv")
	s.ErrorIs(err, loader.ErrOpen)
	s.False(s.p.IsEmpty())
}

func (s *PlannerSuite) TestClear() {
	s.p.Clear()
	s.True(s.p.IsEmpty())
	_, err := s.p.Plan("#NAT", "#REC")
	s.ErrorIs(err, astar.ErrEmptyGraph)
}

func (s *PlannerSuite) TestWritePointsAndRoutes() {
	var buf bytes.Buffer
	s.Require().NoError(s.p.WritePoints(&buf))
	s.Equal("#NAT\tNatal (-5.79,-35.21)\n"+
		"#JPA\tJoao Pessoa (-7.12,-34.86)\n"+
		"#REC\tRecife (-8.05,-34.9)\n"+
		"#FEN\tNoronha (-3.85,-32.42)\n", buf.String())

	buf.Reset()
	s.Require().NoError(s.p.WriteRoutes(&buf))
	s.Equal("&BR101N\tBR-101 Norte\t185km [#NAT,#JPA]\n"+
		"&BR101S\tBR-101 Sul\t120km [#JPA,#REC]\n"+
		"&BR226\tBR-226\t400km [#NAT,#REC]\n", buf.String())
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}

func TestWritePath(t *testing.T) {
	var buf bytes.Buffer
	res := astar.Result{
		Length: 305,
		Path:   core.Path{{Point: "#NAT"}, {Route: "&BR101N", Point: "#JPA"}, {Route: "&BR101S", Point: "#REC"}},
		Open:   0,
		Closed: 3,
	}
	require.NoError(t, planner.WritePath(&buf, res))
	assert.Equal(t, "from #NAT\n&BR101N -> #JPA\n&BR101S -> #REC\nlength: 305 km\nopen: 0 closed: 3\n", buf.String())

	buf.Reset()
	require.NoError(t, planner.WritePath(&buf, astar.Result{Length: -1, Open: 0, Closed: 3}))
	assert.Equal(t, "no path\nopen: 0 closed: 3\n", buf.String())

	buf.Reset()
	require.NoError(t, planner.WritePath(&buf, astar.Result{Length: -1, Open: -1, Closed: -1}))
	assert.Equal(t, "invalid input\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePath_PropagatesWriteError(t *testing.T) {
	err := planner.WritePath(failingWriter{}, astar.Result{Length: -1, Open: 0, Closed: 1})
	assert.EqualError(t, err, "disk full")
}
