// Package metrics exposes Prometheus collectors for the extraction engine.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesFetchedTotal     *prometheus.CounterVec
	fetchDurationSeconds  *prometheus.HistogramVec
	cacheLookupsTotal     *prometheus.CounterVec
	extractionsTotal      *prometheus.CounterVec
	headlessPromotedTotal prometheus.Counter

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		pagesFetchedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubelens_pages_fetched_total",
				Help: "Total number of pages fetched, labeled by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		)

		fetchDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tubelens_fetch_duration_seconds",
				Help:    "Histogram of page fetch latencies, labeled by kind.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"kind"},
		)

		cacheLookupsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubelens_cache_lookups_total",
				Help: "Total number of cache lookups, labeled by kind and result.",
			},
			[]string{"kind", "result"},
		)

		extractionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubelens_extractions_total",
				Help: "Total number of extraction attempts, labeled by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		)

		headlessPromotedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tubelens_headless_promotions_total",
				Help: "Total pages promoted to a headless render.",
			},
		)
	})
}

// ObservePageFetch records one fetch attempt.
func ObservePageFetch(kind string, outcome string, duration time.Duration) {
	if pagesFetchedTotal == nil {
		return
	}
	pagesFetchedTotal.WithLabelValues(kind, outcome).Inc()
	fetchDurationSeconds.WithLabelValues(kind).Observe(duration.Seconds())
}

// ObserveCacheLookup records a cache hit or miss.
func ObserveCacheLookup(kind string, hit bool) {
	if cacheLookupsTotal == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveExtraction records a schema resolution outcome.
func ObserveExtraction(kind string, outcome string) {
	if extractionsTotal == nil {
		return
	}
	extractionsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveHeadlessPromotion records one promotion to headless rendering.
func ObserveHeadlessPromotion() {
	if headlessPromotedTotal == nil {
		return
	}
	headlessPromotedTotal.Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
