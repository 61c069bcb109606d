package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "result" label.
const (
	resultFound   = "found"
	resultNoPath  = "no_path"
	resultInvalid = "invalid"
	resultAborted = "aborted"
)

type metrics struct {
	searches *prometheus.CounterVec
	closed   prometheus.Histogram
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "routeplan_searches_total",
			Help: "Path searches by outcome.",
		}, []string{"result"}),
		closed: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeplan_search_closed_nodes",
			Help:    "Closed-set size of searches that ran.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14), // 1 to 8192
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeplan_search_duration_seconds",
			Help:    "Wall time of path searches.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}
