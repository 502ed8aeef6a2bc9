package services_test

import (
	"errors"
	"testing"

	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/core/domain/services"
	"orderaudit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(status order.Status, lines order.Lines, payment *order.Payment, refund *order.Refund) *order.Order {
	return order.NewOrder("A-1", status, order.NewCustomer("C"), order.NewShipping(money(0)), lines, payment, refund)
}

func TestCheckLinesRequired(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		lines   order.Lines
		finding bool
	}{
		{"paid with lines", order.Paid, order.NewLines(line("A", 1, 1)), false},
		{"paid with empty lines", order.Paid, order.NewLines(), true},
		{"paid with absent lines", order.Paid, order.AbsentLines(), true},
		{"pending with empty lines", order.Pending, order.NewLines(), true},
		{"pending with absent lines", order.Pending, order.AbsentLines(), true},
		{"cancelled with absent lines", order.Cancelled, order.AbsentLines(), false},
		{"unknown status with absent lines", order.Status("X"), order.AbsentLines(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.CheckLinesRequired(newOrder(tt.status, tt.lines, nil, nil))

			if !tt.finding {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), services.RuleMissingLines)
		})
	}
}

func TestCheckPaymentCaptured(t *testing.T) {
	lines := order.NewLines(line("A", 1, 1))

	t.Run("paid and captured", func(t *testing.T) {
		assert.NoError(t, services.CheckPaymentCaptured(newOrder(order.Paid, lines, captured(true), nil)))
	})

	t.Run("paid but not captured", func(t *testing.T) {
		err := services.CheckPaymentCaptured(newOrder(order.Paid, lines, captured(false), nil))

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrBusinessRule))
		assert.Contains(t, err.Error(), services.RuleNotCaptured)
	})

	t.Run("paid without payment", func(t *testing.T) {
		err := services.CheckPaymentCaptured(newOrder(order.Paid, lines, nil, nil))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment is absent")
	})

	t.Run("pending without capture is fine", func(t *testing.T) {
		assert.NoError(t, services.CheckPaymentCaptured(newOrder(order.Pending, lines, captured(false), nil)))
	})
}

func TestCheckRefundConsistency(t *testing.T) {
	lines := order.NewLines(line("NOTEBOOK", 1, 10), line("STICKER-PACK", 1, 6))

	t.Run("exact refund", func(t *testing.T) {
		assert.NoError(t, services.CheckRefundConsistency(newOrder(order.Cancelled, lines, nil, refunded(16))))
	})

	t.Run("difference inside tolerance", func(t *testing.T) {
		assert.NoError(t, services.CheckRefundConsistency(newOrder(order.Cancelled, lines, nil, refunded(16.0005))))
	})

	t.Run("difference equal to tolerance", func(t *testing.T) {
		assert.NoError(t, services.CheckRefundConsistency(newOrder(order.Cancelled, lines, nil, refunded(16.001))))
		assert.NoError(t, services.CheckRefundConsistency(newOrder(order.Cancelled, lines, nil, refunded(15.999))))
	})

	t.Run("difference above tolerance", func(t *testing.T) {
		err := services.CheckRefundConsistency(newOrder(order.Cancelled, lines, nil, refunded(16.002)))

		require.Error(t, err)
		var rule *errs.BusinessRuleError
		require.ErrorAs(t, err, &rule)
		assert.Equal(t, services.RuleRefundMismatch, rule.Rule)
		assert.Contains(t, err.Error(), "expected 16, actual 16.002")
	})

	t.Run("invalid lines count toward the total", func(t *testing.T) {
		o := newOrder(order.Cancelled, order.NewLines(line("X", 3, -5)), nil, refunded(-15))

		assert.NoError(t, services.CheckRefundConsistency(o))
	})

	t.Run("missing refund is a mismatch", func(t *testing.T) {
		err := services.CheckRefundConsistency(newOrder(order.Cancelled, lines, nil, nil))

		require.Error(t, err)
		assert.Contains(t, err.Error(), services.RuleRefundMismatch)
		assert.Contains(t, err.Error(), "refund is absent")
	})

	t.Run("not applicable without lines", func(t *testing.T) {
		assert.NoError(t, services.CheckRefundConsistency(newOrder(order.Cancelled, order.NewLines(), nil, refunded(5))))
		assert.NoError(t, services.CheckRefundConsistency(newOrder(order.Cancelled, order.AbsentLines(), nil, nil)))
	})

	t.Run("not applicable to other statuses", func(t *testing.T) {
		assert.NoError(t, services.CheckRefundConsistency(newOrder(order.Paid, lines, captured(true), refunded(1))))
	})
}

func TestOrderInspector_Inspect(t *testing.T) {
	inspector := services.NewOrderInspector()

	t.Run("clean order", func(t *testing.T) {
		assert.Empty(t, inspector.Inspect(fixtureOrders()[0]))
	})

	t.Run("does not stop at the first finding", func(t *testing.T) {
		o := order.NewOrder(
			"", order.Paid,
			order.NewCustomerWithEmail("C", "nope"),
			order.NewShipping(money(-1)),
			order.NewLines(line("", 0, 1)),
			captured(false), nil,
		)

		findings := inspector.Inspect(o)

		require.Len(t, findings, 6)
		assert.Contains(t, findings[0].Error(), services.RuleMissingID)
		assert.True(t, errors.Is(findings[1], errs.ErrFormat))
		assert.Contains(t, findings[2].Error(), services.RuleNonPositiveQuantity)
		assert.Contains(t, findings[3].Error(), services.RuleMissingSKU)
		assert.Contains(t, findings[4].Error(), services.RuleNegativeShippingFee)
		assert.Contains(t, findings[5].Error(), services.RuleNotCaptured)
	})

	t.Run("invalid status still runs the other rules", func(t *testing.T) {
		o := order.NewOrder("A-9", order.Status("LOST"), order.NewCustomer("C"), order.NewShipping(money(-2)), order.AbsentLines(), nil, nil)

		findings := inspector.Inspect(o)

		require.Len(t, findings, 2)
		assert.True(t, errors.Is(findings[0], errs.ErrStructural))
		assert.Contains(t, findings[1].Error(), services.RuleNegativeShippingFee)
	})
}
