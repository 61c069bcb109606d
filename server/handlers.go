package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

type stepResponse struct {
	Route core.RouteID `json:"route,omitempty"`
	Point core.PointID `json:"point"`
}

type pathResponse struct {
	Length float64        `json:"length"`
	Open   int            `json:"open"`
	Closed int            `json:"closed"`
	Steps  []stepResponse `json:"steps"`
	Error  string         `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) listPoints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.p.Graph().Points())
}

func (s *Server) getPoint(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	pt, ok := s.p.Graph().Point(core.NewPointID(id))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("point "+id+" not found"))
		return
	}
	writeJSON(w, http.StatusOK, pt)
}

func (s *Server) listRoutes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.p.Graph().Routes())
}

func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rt, ok := s.p.Graph().Route(core.NewRouteID(id))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("route "+id+" not found"))
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (s *Server) component(w http.ResponseWriter, r *http.Request) {
	ids, err := s.p.Component(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

func (s *Server) components(w http.ResponseWriter, _ *http.Request) {
	comps, err := s.p.Islands()
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, comps)
}

func (s *Server) distances(w http.ResponseWriter, r *http.Request) {
	dist, err := s.p.Distances(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, dist)
}

func (s *Server) path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := time.Now()
	res, err := s.p.PlanContext(r.Context(), q.Get("from"), q.Get("to"))
	s.observe(res, err, time.Since(start))

	status := statusOf(err)
	if err == nil && q.Get("format") == "geojson" {
		body, gerr := pathGeoJSON(s.p.Graph(), res)
		if gerr != nil {
			writeError(w, http.StatusInternalServerError, gerr)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	resp := pathResponse{Length: res.Length, Open: res.Open, Closed: res.Closed, Steps: []stepResponse{}}
	for _, st := range res.Path {
		resp.Steps = append(resp.Steps, stepResponse{Route: st.Route, Point: st.Point})
	}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

func (s *Server) observe(res astar.Result, err error, took time.Duration) {
	result := resultFound
	switch {
	case err == nil:
	case errors.Is(err, astar.ErrNoPath):
		result = resultNoPath
	case errors.Is(err, astar.ErrInvalidInput), errors.Is(err, astar.ErrOptionViolation):
		result = resultInvalid
	default:
		result = resultAborted
	}
	s.metrics.searches.WithLabelValues(result).Inc()
	s.metrics.duration.Observe(took.Seconds())
	if res.Closed >= 0 {
		s.metrics.closed.Observe(float64(res.Closed))
	}
}

// statusOf maps planner and search errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, astar.ErrInvalidInput), errors.Is(err, astar.ErrOptionViolation):
		return http.StatusBadRequest
	case errors.Is(err, astar.ErrNoPath), errors.Is(err, planner.ErrUnknownPoint):
		return http.StatusNotFound
	case errors.Is(err, astar.ErrBudgetExceeded),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
