package detect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	detectDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "urlsift_detect_duration_seconds",
			Help:    "Duration of single-input detection runs in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	urlsFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlsift_urls_found_total",
			Help: "Total number of URLs detected across all runs",
		},
	)

	backtrackedRunes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlsift_backtracked_runes_total",
			Help: "Total number of input runes re-read due to backtracking",
		},
	)
)
