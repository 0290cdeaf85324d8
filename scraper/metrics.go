package scraper

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the price run.
type Metrics struct {
	Registry           *prometheus.Registry
	LookupsTotal       *prometheus.CounterVec
	LookupDuration     prometheus.Histogram
	RowsWrittenTotal   prometheus.Counter
	ProductErrorsTotal prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricelist_lookups_total",
			Help: "Total store price lookups by seller and outcome.",
		},
		[]string{"seller", "outcome"},
	)
	lookupDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pricelist_lookup_duration_seconds",
			Help:    "Latency of a single store price lookup.",
			Buckets: prometheus.DefBuckets,
		},
	)
	rowsWritten := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pricelist_rows_written_total",
			Help: "Total product rows written to the spreadsheet.",
		},
	)
	productErrors := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pricelist_product_errors_total",
			Help: "Total products skipped because their row could not be produced.",
		},
	)

	registry.MustRegister(lookups, lookupDuration, rowsWritten, productErrors)

	return &Metrics{
		Registry:           registry,
		LookupsTotal:       lookups,
		LookupDuration:     lookupDuration,
		RowsWrittenTotal:   rowsWritten,
		ProductErrorsTotal: productErrors,
	}
}

// IncLookup increments the lookup counter for a seller and outcome.
func (m *Metrics) IncLookup(seller, outcome string) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(seller, outcome).Inc()
}

// ObserveLookup records a store lookup duration.
func (m *Metrics) ObserveLookup(d time.Duration) {
	if m == nil {
		return
	}
	m.LookupDuration.Observe(d.Seconds())
}

// IncRowWritten increments the written-rows counter.
func (m *Metrics) IncRowWritten() {
	if m == nil {
		return
	}
	m.RowsWrittenTotal.Inc()
}

// IncProductError increments the skipped-products counter.
func (m *Metrics) IncProductError() {
	if m == nil {
		return
	}
	m.ProductErrorsTotal.Inc()
}
