// Package deboilermetrics exposes Prometheus instrumentation for the
// execution harness: pair comparisons, discarded near-duplicate pairs,
// the size of a learned boilerplate set, cleaned pages, and how long Fit
// and Transform take.
package deboilermetrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PairsCompared = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deboiler_pairs_compared_total",
		Help: "Total number of adjacent URL-sorted page pairs compared during Fit",
	})
	PairsDiscarded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deboiler_pairs_discarded_total",
		Help: "Total number of pairs discarded by the near-duplicate (IoU) safeguard",
	})
	BoilerplateSignatures = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deboiler_boilerplate_signatures",
		Help: "Number of signatures in the most recently learned boilerplate set",
	})
	PagesCleaned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deboiler_pages_cleaned_total",
		Help: "Total number of pages processed by Transform",
	})
	PageParseFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deboiler_page_parse_failures_total",
		Help: "Total number of pages that failed to parse during Fit or Transform",
	})
	FitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deboiler_fit_duration_seconds",
		Help:    "Wall-clock duration of Fit calls",
		Buckets: prometheus.DefBuckets,
	})
	TransformDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deboiler_transform_duration_seconds",
		Help:    "Wall-clock duration of Transform calls",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		PairsCompared,
		PairsDiscarded,
		BoilerplateSignatures,
		PagesCleaned,
		PageParseFailures,
		FitDuration,
		TransformDuration,
	)
}
