package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	registry *prometheus.Registry

	// Feed fetches by feed name and outcome.
	FeedFetchesTotal *prometheus.CounterVec

	// Feed fetch latency, including parsing.
	FeedFetchDuration *prometheus.HistogramVec

	// Document builds by outcome.
	DocumentRendersTotal *prometheus.CounterVec

	// Output file writes by outcome.
	DocumentWritesTotal *prometheus.CounterVec

	// Forecasts missing an optional field, by field name.
	WeatherFieldsMissingTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	FeedFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fetches_total",
			Help: "Total number of feed fetches",
		},
		[]string{"feed", "status"},
	)
	FeedFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_fetch_duration_seconds",
			Help:    "Feed fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"feed"},
	)
	DocumentRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_renders_total",
			Help: "Total number of document renders",
		},
		[]string{"status"},
	)
	DocumentWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_writes_total",
			Help: "Total number of output file writes",
		},
		[]string{"status"},
	)
	WeatherFieldsMissingTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_fields_missing_total",
			Help: "Forecasts that lacked an optional field",
		},
		[]string{"field"},
	)

	registry.MustRegister(
		FeedFetchesTotal,
		FeedFetchDuration,
		DocumentRendersTotal,
		DocumentWritesTotal,
		WeatherFieldsMissingTotal,
	)
}

// Status maps an error to the status label.
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// Handler serves the registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
