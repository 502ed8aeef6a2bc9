package report_test

import (
	"encoding/json"
	"testing"

	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/report"
	"orderaudit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(opts report.Options) *report.Report {
	problems := []report.Problem{
		report.NewProblem("A-1002", []error{
			errs.NewBusinessRuleError("missing required line items", "lines"),
			errs.NewFormatError("customer.email", "bob[at]example.com", "local@domain.tld"),
		}),
		report.NewProblem("A-1003", []error{
			errs.NewBusinessRuleError("negative price", "lines[0].unitPrice"),
		}),
	}
	return report.NewReport(5, 8, problems, opts)
}

func TestReport_Counts(t *testing.T) {
	r := sampleReport(report.Options{})

	assert.Equal(t, 5, r.TotalOrders())
	assert.Equal(t, 8, r.TotalLineItems())
	assert.Equal(t, 2, r.InvalidOrders())
	assert.False(t, r.IsClean())
	assert.Nil(t, r.GMVByOrder())
	assert.Nil(t, r.TopSKUs())

	p, ok := r.ProblemFor("A-1003")
	require.True(t, ok)
	assert.Len(t, p.Findings(), 1)

	_, ok = r.ProblemFor("A-1001")
	assert.False(t, ok)
}

func TestReport_Summary(t *testing.T) {
	t.Run("core counts and every finding", func(t *testing.T) {
		summary := sampleReport(report.Options{}).Summary()

		assert.Equal(t,
			"Orders: 5, Lines: 8, Invalid: 2, Problems: ["+
				"A-1002 => business rule violated: missing required line items (lines); "+
				`format error: customer.email: "bob[at]example.com" does not match local@domain.tld, `+
				"A-1003 => business rule violated: negative price (lines[0].unitPrice)]",
			summary,
		)
	})

	t.Run("clean report", func(t *testing.T) {
		r := report.NewReport(0, 0, nil, report.Options{})

		assert.True(t, r.IsClean())
		assert.Equal(t, "Orders: 0, Lines: 0, Invalid: 0, Problems: []", r.Summary())
	})

	t.Run("optional aggregates", func(t *testing.T) {
		r := report.NewReport(2, 3, nil, report.Options{
			GMVByOrder: []report.OrderGMV{
				report.NewOrderGMV("A-1001", kernel.MoneyFromFloat(70)),
				report.NewOrderGMV("A-1002", kernel.ZeroMoney()),
			},
			TopSKUs: []report.SKUQuantity{
				report.NewSKUQuantity("PEN-RED", 5),
				report.NewSKUQuantity("USB-32GB", 2),
			},
		})

		assert.Equal(t,
			"Orders: 2, Lines: 3, Invalid: 0, Problems: [], "+
				"GMV: {A-1001: 70.00, A-1002: 0.00}, Top SKUs: [PEN-RED x5, USB-32GB x2]",
			r.Summary(),
		)
	})

	t.Run("deterministic", func(t *testing.T) {
		r := sampleReport(report.Options{})

		assert.Equal(t, r.Summary(), r.String())
		assert.Equal(t, r.Summary(), sampleReport(report.Options{}).Summary())
	})
}

func TestReport_MarshalJSON(t *testing.T) {
	t.Run("omits aggregates that were not requested", func(t *testing.T) {
		data, err := json.Marshal(sampleReport(report.Options{}))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))

		assert.InDelta(t, 5, got["totalOrders"], 0)
		assert.InDelta(t, 8, got["totalLineItems"], 0)
		assert.InDelta(t, 2, got["invalidOrders"], 0)
		assert.NotContains(t, got, "gmvByOrder")
		assert.NotContains(t, got, "topSkus")
		assert.Equal(t, []any{}, got["correctlyRefunded"])
		assert.Equal(t, []any{}, got["orderIds"])

		problems, ok := got["problems"].([]any)
		require.True(t, ok)
		require.Len(t, problems, 2)
		first, ok := problems[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "A-1002", first["orderId"])
		assert.Len(t, first["issues"], 2)
	})

	t.Run("renders requested aggregates even when empty", func(t *testing.T) {
		r := report.NewReport(1, 0, nil, report.Options{
			GMVByOrder: []report.OrderGMV{
				report.NewOrderGMV("A-1", kernel.MoneyFromFloat(12.5)),
				report.NewOrderGMV("A-1", kernel.MoneyFromFloat(99)),
			},
			TopSKUs:  []report.SKUQuantity{},
			OrderIDs: []string{"A-1"},
		})

		data, err := json.Marshal(r)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"gmvByOrder":{"A-1":12.5}`)
		assert.Contains(t, string(data), `"topSkus":[]`)
		assert.Contains(t, string(data), `"orderIds":["A-1"]`)
	})
}
