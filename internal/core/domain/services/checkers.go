package services

import (
	"errors"

	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/pkg/errs"
)

var (
	errPaymentAbsent = errors.New("payment is absent")
	errRefundAbsent  = errors.New("refund is absent")
)

// CheckLinesRequired fails when a PAID or PENDING order has absent or empty lines.
func CheckLinesRequired(o *order.Order) error {
	if o.Status().RequiresLines() && o.Lines().IsEmpty() {
		return errs.NewBusinessRuleError(RuleMissingLines, "lines")
	}
	return nil
}

// CheckPaymentCaptured fails when a PAID order has no payment or an uncaptured one.
func CheckPaymentCaptured(o *order.Order) error {
	if !o.Status().RequiresCapture() {
		return nil
	}
	payment, ok := o.Payment()
	if !ok {
		return errs.NewBusinessRuleErrorWithCause(RuleNotCaptured, "payment.captured", errPaymentAbsent)
	}
	if !payment.Captured() {
		return errs.NewBusinessRuleError(RuleNotCaptured, "payment.captured")
	}
	return nil
}

// CheckRefundConsistency fails when a CANCELLED order with lines was refunded an amount
// that differs from the sum of all line totals by more than RefundTolerance. Invalid
// lines are included in the sum. A missing refund is a mismatch.
func CheckRefundConsistency(o *order.Order) error {
	if !o.Status().IsCancelled() || o.Lines().IsEmpty() {
		return nil
	}

	expected := o.Lines().Total()
	refund, ok := o.Refund()
	if !ok {
		return errs.NewBusinessRuleErrorWithCause(RuleRefundMismatch, "refund.amount", errRefundAbsent)
	}

	if !refund.Amount().WithinTolerance(expected, RefundTolerance) {
		return errs.NewBusinessRuleErrorWithValues(RuleRefundMismatch, "refund.amount", expected, refund.Amount())
	}
	return nil
}

// IsCorrectlyRefunded reports whether a CANCELLED order with lines carries a refund equal
// to its line total within RefundTolerance.
func IsCorrectlyRefunded(o *order.Order) bool {
	if !o.Status().IsCancelled() || o.Lines().IsEmpty() {
		return false
	}
	if _, ok := o.Refund(); !ok {
		return false
	}
	return CheckRefundConsistency(o) == nil
}
