package bulkscan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlsift_documents_scanned_total",
			Help: "Total number of documents scanned",
		},
	)

	scansInflight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "urlsift_scans_inflight",
			Help: "Number of documents currently being scanned",
		},
	)
)
