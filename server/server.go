// Package server exposes a planner.Planner over HTTP.
//
// Routes:
//
//	GET /points                    all points
//	GET /points/{id}               one point
//	GET /points/{id}/component     points reachable from id
//	GET /points/{id}/distances     shortest distance to every reachable point
//	GET /components                connected components of the map
//	GET /routes                    all routes
//	GET /routes/{id}               one route
//	GET /path?from=&to=[&format=geojson]
//	GET /metrics                   Prometheus exposition
//
// Identifiers carry their marker, so clients percent-encode '#' and '&'
// ("%23NAT", "%26BR101").
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/routeplan/planner"
)

const shutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry registers the metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// Server routes HTTP requests to a planner.
type Server struct {
	p       *planner.Planner
	router  *mux.Router
	reg     *prometheus.Registry
	metrics *metrics
	logger  *log.Logger
}

// New builds a Server for p.
func New(p *planner.Planner, opts ...Option) *Server {
	s := &Server{
		p:      p,
		router: mux.NewRouter(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.reg)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.Use(s.requestID)

	s.router.HandleFunc("/points", s.listPoints).Methods(http.MethodGet)
	s.router.HandleFunc("/points/{id}", s.getPoint).Methods(http.MethodGet)
	s.router.HandleFunc("/points/{id}/component", s.component).Methods(http.MethodGet)
	s.router.HandleFunc("/points/{id}/distances", s.distances).Methods(http.MethodGet)
	s.router.HandleFunc("/components", s.components).Methods(http.MethodGet)
	s.router.HandleFunc("/routes", s.listRoutes).Methods(http.MethodGet)
	s.router.HandleFunc("/routes/{id}", s.getRoute).Methods(http.MethodGet)
	s.router.HandleFunc("/path", s.path).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
