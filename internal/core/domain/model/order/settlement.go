package order

import "orderaudit/internal/core/domain/model/kernel"

// Payment records whether the charge for an order was captured.
type Payment struct {
	captured bool
}

// NewPayment creates a payment.
func NewPayment(captured bool) Payment {
	return Payment{captured: captured}
}

// Captured reports whether the payment was captured.
func (p Payment) Captured() bool {
	return p.captured
}

// Refund is money returned to the customer for a cancelled order.
type Refund struct {
	amount kernel.Money
}

// NewRefund creates a refund.
func NewRefund(amount kernel.Money) Refund {
	return Refund{amount: amount}
}

// Amount returns the refunded amount.
func (r Refund) Amount() kernel.Money {
	return r.amount
}

// Shipping holds the delivery charge of an order.
type Shipping struct {
	fee kernel.Money
}

// NewShipping creates a shipping record.
func NewShipping(fee kernel.Money) Shipping {
	return Shipping{fee: fee}
}

// Fee returns the shipping fee.
func (s Shipping) Fee() kernel.Money {
	return s.fee
}
