package metrics_test

import (
	"strings"
	"testing"
	"time"

	"orderaudit/internal/adapters/out/metrics"
	"orderaudit/internal/core/domain/model/report"
	"orderaudit/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveReport(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rep := report.NewReport(3, 7, []report.Problem{
		report.NewProblem("A-2", []error{errs.NewStructuralError("id", "missing order id")}),
	}, report.Options{})

	rec.ObserveReport("orders.json", rep, 150*time.Millisecond)
	rec.ObserveReport("orders.json", rep, 50*time.Millisecond)

	expected := `
# HELP orderaudit_report_invalid_orders Orders with at least one finding in the last report of a source.
# TYPE orderaudit_report_invalid_orders gauge
orderaudit_report_invalid_orders{source="orders.json"} 1
# HELP orderaudit_report_line_items Line items in the last report of a source.
# TYPE orderaudit_report_line_items gauge
orderaudit_report_line_items{source="orders.json"} 7
# HELP orderaudit_report_orders Orders in the last report of a source.
# TYPE orderaudit_report_orders gauge
orderaudit_report_orders{source="orders.json"} 3
# HELP orderaudit_report_runs_total Report runs by source and outcome.
# TYPE orderaudit_report_runs_total counter
orderaudit_report_runs_total{outcome="success",source="orders.json"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"orderaudit_report_invalid_orders",
		"orderaudit_report_line_items",
		"orderaudit_report_orders",
		"orderaudit_report_runs_total",
	))

	count, err := testutil.GatherAndCount(reg, "orderaudit_report_build_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_ObserveFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.ObserveFailure("s3://bucket/orders.json", metrics.OutcomeLoadFailure)

	count, err := testutil.GatherAndCount(reg, "orderaudit_report_orders")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = testutil.GatherAndCount(reg, "orderaudit_report_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)

	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
