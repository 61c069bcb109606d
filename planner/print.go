package planner

import (
	"fmt"
	"io"

	"github.com/katalvlaran/routeplan/astar"
)

// printer keeps the first write error so the callers can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (pr *printer) printf(format string, args ...any) {
	if pr.err != nil {
		return
	}
	_, pr.err = fmt.Fprintf(pr.w, format, args...)
}

// WritePoints prints one point per line as "id<TAB>name (lat,lon)".
func (p *Planner) WritePoints(w io.Writer) error {
	pr := &printer{w: w}
	for _, pt := range p.Graph().Points() {
		pr.printf("%s\t%s (%g,%g)\n", pt.ID, pt.Name, pt.Latitude, pt.Longitude)
	}

	return pr.err
}

// WriteRoutes prints one route per line as "id<TAB>name<TAB>LENGTHkm [e1,e2]".
func (p *Planner) WriteRoutes(w io.Writer) error {
	pr := &printer{w: w}
	for _, r := range p.Graph().Routes() {
		pr.printf("%s\t%s\t%gkm [%s,%s]\n", r.ID, r.Name, r.Length, r.Endpoints[0], r.Endpoints[1])
	}

	return pr.err
}

// WritePath prints a search result:
//
//	from #NAT
//	&BR101N -> #JPA
//	length: 185 km
//	open: 0 closed: 2
//
// Results without a path print "no path" instead of the steps and length.
// Results of searches that never ran print only "invalid input".
func WritePath(w io.Writer, res astar.Result) error {
	pr := &printer{w: w}
	switch {
	case res.Open < 0:
		pr.printf("invalid input\n")
		return pr.err
	case !res.Found():
		pr.printf("no path\n")
	default:
		for i, st := range res.Path {
			if i == 0 {
				pr.printf("from %s\n", st.Point)
				continue
			}
			pr.printf("%s -> %s\n", st.Route, st.Point)
		}
		pr.printf("length: %g km\n", res.Length)
	}
	pr.printf("open: %d closed: %d\n", res.Open, res.Closed)

	return pr.err
}
