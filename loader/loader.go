// Package loader reads a map from two ';'-separated text files.
//
// Points file:
//
//	ID;Nome;Latitude;Longitude
//	#NAT;Natal;-5.79;-35.21
//
// Routes file:
//
//	ID;Nome;Extremidade 1;Extremidade 2;Comprimento
//	&BR101;BR-101;#NAT;#JPA;185
//
// Rows are validated with go-playground/validator struct tags plus the
// "pointid"/"routeid" rules backed by core.NewPointID/core.NewRouteID.
// The first failing row aborts the load; nothing partial is returned.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/routeplan/core"
)

// Expected header lines.
const (
	PointsHeader = "ID;Nome;Latitude;Longitude"
	RoutesHeader = "ID;Nome;Extremidade 1;Extremidade 2;Comprimento"
)

// Names used in ParseError.File when reading from io.Reader.
const (
	pointsName = "points"
	routesName = "routes"
)

const separator = ';'

type pointRecord struct {
	ID        string  `validate:"pointid"`
	Name      string  `validate:"min=2"`
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"gt=-180,lte=180"`
}

type routeRecord struct {
	ID     string  `validate:"routeid"`
	Name   string  `validate:"min=2"`
	From   string  `validate:"pointid"`
	To     string  `validate:"pointid"`
	Length float64 `validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("pointid", func(fl validator.FieldLevel) bool {
		return core.NewPointID(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("routeid", func(fl validator.FieldLevel) bool {
		return core.NewRouteID(fl.Field().String()).Valid()
	})

	return v
}

// Load reads the points file and then the routes file into a new graph.
// Errors are *ParseError values naming the offending file.
func Load(pointsPath, routesPath string) (*core.Graph, error) {
	pf, err := os.Open(pointsPath)
	if err != nil {
		return nil, &ParseError{File: pointsPath, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	defer pf.Close()

	rf, err := os.Open(routesPath)
	if err != nil {
		return nil, &ParseError{File: routesPath, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	defer rf.Close()

	g := core.NewGraph()
	if err = readPoints(g, pf, pointsPath); err != nil {
		return nil, err
	}
	if err = readRoutes(g, rf, routesPath); err != nil {
		return nil, err
	}

	return g, nil
}

// Read is Load over already opened inputs.
func Read(points, routes io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	if err := readPoints(g, points, pointsName); err != nil {
		return nil, err
	}
	if err := readRoutes(g, routes, routesName); err != nil {
		return nil, err
	}

	return g, nil
}

// table iterates the rows of one file after checking its header.
type table struct {
	name string
	r    *csv.Reader
}

func newTable(src io.Reader, name, header string) (*table, error) {
	r := csv.NewReader(src)
	r.Comma = separator
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	t := &table{name: name, r: r}
	rec, line, err := t.next()
	if err == io.EOF {
		return nil, &ParseError{File: name, Line: 1, Err: fmt.Errorf("%w: empty file", ErrHeader)}
	}
	if err != nil {
		return nil, err
	}
	if got := strings.Join(rec, string(separator)); got != header {
		return nil, &ParseError{File: name, Line: line, Err: fmt.Errorf("%w: %q", ErrHeader, got)}
	}
	r.FieldsPerRecord = strings.Count(header, string(separator)) + 1

	return t, nil
}

// next returns the following record and its line, io.EOF at the end, or a
// *ParseError wrapping ErrField.
func (t *table) next() ([]string, int, error) {
	rec, err := t.r.Read()
	if err == io.EOF {
		return nil, 0, io.EOF
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return nil, pe.Line, &ParseError{File: t.name, Line: pe.Line, Err: fmt.Errorf("%w: %w", ErrField, pe.Err)}
	}
	if err != nil {
		return nil, 0, &ParseError{File: t.name, Err: fmt.Errorf("%w: %w", ErrField, err)}
	}
	line, _ := t.r.FieldPos(0)

	return rec, line, nil
}

func (t *table) fail(line int, err error) error {
	return &ParseError{File: t.name, Line: line, Err: err}
}

func readPoints(g *core.Graph, src io.Reader, name string) error {
	t, err := newTable(src, name, PointsHeader)
	if err != nil {
		return err
	}
	for {
		rec, line, err := t.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		lat, err := parseFloat("latitude", rec[2])
		if err != nil {
			return t.fail(line, err)
		}
		lon, err := parseFloat("longitude", rec[3])
		if err != nil {
			return t.fail(line, err)
		}
		pr := pointRecord{ID: rec[0], Name: rec[1], Latitude: lat, Longitude: lon}
		if err = checkRecord(pr); err != nil {
			return t.fail(line, err)
		}

		err = g.AddPoint(core.Point{ID: core.PointID(pr.ID), Name: pr.Name, Latitude: lat, Longitude: lon})
		if errors.Is(err, core.ErrDuplicatePoint) {
			return t.fail(line, fmt.Errorf("%w: %w", ErrDuplicate, err))
		}
		if err != nil {
			return t.fail(line, fmt.Errorf("%w: %w", ErrInvalid, err))
		}
	}
}

func readRoutes(g *core.Graph, src io.Reader, name string) error {
	t, err := newTable(src, name, RoutesHeader)
	if err != nil {
		return err
	}
	for {
		rec, line, err := t.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		length, err := parseFloat("length", rec[4])
		if err != nil {
			return t.fail(line, err)
		}
		rr := routeRecord{ID: rec[0], Name: rec[1], From: rec[2], To: rec[3], Length: length}
		if err = checkRecord(rr); err != nil {
			return t.fail(line, err)
		}

		err = g.AddRoute(core.Route{
			ID:        core.RouteID(rr.ID),
			Name:      rr.Name,
			Endpoints: [2]core.PointID{core.PointID(rr.From), core.PointID(rr.To)},
			Length:    length,
		})
		switch {
		case err == nil:
		case errors.Is(err, core.ErrDuplicateRoute):
			return t.fail(line, fmt.Errorf("%w: %w", ErrDuplicate, err))
		case errors.Is(err, core.ErrPointNotFound):
			return t.fail(line, fmt.Errorf("%w: %w", ErrUnknownEndpoint, err))
		default:
			return t.fail(line, fmt.Errorf("%w: %w", ErrInvalid, err))
		}
	}
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrField, field, s)
	}

	return v, nil
}

// checkRecord runs the struct tags and reports the failing fields.
func checkRecord(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fmt.Sprintf("%s=%v (%s)", strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
}
