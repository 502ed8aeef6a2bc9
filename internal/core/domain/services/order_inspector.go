package services

import "orderaudit/internal/core/domain/model/order"

// OrderInspector runs every field validator and cross-field checker on a single order.
type OrderInspector struct{}

func NewOrderInspector() OrderInspector {
	return OrderInspector{}
}

// Inspect returns the findings for o in a fixed rule order. Every rule runs even when an
// earlier one failed; an empty result means the order is clean.
func (OrderInspector) Inspect(o *order.Order) []error {
	var findings []error
	add := func(err error) {
		if err != nil {
			findings = append(findings, err)
		}
	}

	add(ValidateID(o))
	add(ValidateStatus(o))
	add(ValidateEmail(o.Customer()))
	for i, line := range o.Lines().All() {
		findings = append(findings, ValidateLine(i, line)...)
	}
	add(ValidateShippingFee(o.Shipping()))

	add(CheckLinesRequired(o))
	add(CheckPaymentCaptured(o))
	add(CheckRefundConsistency(o))

	return findings
}
