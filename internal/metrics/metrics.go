package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Registry Metrics
var (
	ItemLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemLookups,
			Help: HelpTextItemLookups,
		},
		[]string{LabelMethod, LabelResult},
	)

	RegistryDefinitions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRegistryDefinitions,
			Help: HelpTextRegistryDefinitions,
		},
	)

	CatalogSyncItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncItems,
			Help: HelpTextCatalogSyncItems,
		},
		[]string{LabelAction},
	)
)

// RecordLookup counts one lookup. Not-found errors count as misses.
func RecordLookup(method string, err error) {
	result := ResultHit
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		result = ResultMiss
	default:
		result = ResultError
	}
	ItemLookups.WithLabelValues(method, result).Inc()
}

// RecordSync adds the per-action counts of one catalog sync
func RecordSync(inserted, updated, skipped int) {
	CatalogSyncItems.WithLabelValues(ActionInserted).Add(float64(inserted))
	CatalogSyncItems.WithLabelValues(ActionUpdated).Add(float64(updated))
	CatalogSyncItems.WithLabelValues(ActionSkipped).Add(float64(skipped))
}
