// Package metrics exposes prometheus instruments for report runs.
package metrics

import (
	"time"

	"orderaudit/internal/core/domain/model/report"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orderaudit"

const (
	OutcomeSuccess     = "success"
	OutcomeLoadFailure = "load_failure"
	OutcomeBuildFailed = "build_failure"
)

// Recorder tracks the outcome of every report run, labelled by source.
type Recorder struct {
	runs          *prometheus.CounterVec
	orders        *prometheus.GaugeVec
	lineItems     *prometheus.GaugeVec
	invalidOrders *prometheus.GaugeVec
	duration      *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_runs_total",
			Help:      "Report runs by source and outcome.",
		}, []string{"source", "outcome"}),
		orders: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_orders",
			Help:      "Orders in the last report of a source.",
		}, []string{"source"}),
		lineItems: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_line_items",
			Help:      "Line items in the last report of a source.",
		}, []string{"source"}),
		invalidOrders: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_invalid_orders",
			Help:      "Orders with at least one finding in the last report of a source.",
		}, []string{"source"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_build_seconds",
			Help:      "Time spent building a report.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}
}

// ObserveReport records a successful run.
func (r *Recorder) ObserveReport(source string, rep *report.Report, elapsed time.Duration) {
	r.runs.WithLabelValues(source, OutcomeSuccess).Inc()
	r.orders.WithLabelValues(source).Set(float64(rep.TotalOrders()))
	r.lineItems.WithLabelValues(source).Set(float64(rep.TotalLineItems()))
	r.invalidOrders.WithLabelValues(source).Set(float64(rep.InvalidOrders()))
	r.duration.WithLabelValues(source).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveFailure(source, outcome string) {
	r.runs.WithLabelValues(source, outcome).Inc()
}
