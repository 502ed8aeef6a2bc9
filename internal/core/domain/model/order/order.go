package order

// Order is one record of the audited set.
//
// Payment and refund are optional; use the comma-ok getters to tell an absent value
// from a present one. Lines keep their own present/absent state.
//
// Example:
//
//	o := order.NewOrder(
//	    "A-1004",
//	    order.Cancelled,
//	    order.NewCustomerWithEmail("C-4", "dave@example.com"),
//	    order.NewShipping(kernel.MoneyFromFloat(4.99)),
//	    order.NewLines(order.NewLine("NOTEBOOK", 1, kernel.MoneyFromFloat(10))),
//	    nil,
//	    &refund,
//	)
type Order struct {
	id       string
	status   Status
	customer Customer
	shipping Shipping
	lines    Lines
	payment  *Payment
	refund   *Refund
}

// NewOrder builds an order. payment and refund may be nil when absent; they are copied
// so later changes to the arguments do not leak into the order.
func NewOrder(
	id string,
	status Status,
	customer Customer,
	shipping Shipping,
	lines Lines,
	payment *Payment,
	refund *Refund,
) *Order {
	o := &Order{
		id:       id,
		status:   status,
		customer: customer,
		shipping: shipping,
		lines:    NewLinesFrom(lines),
	}
	if payment != nil {
		p := *payment
		o.payment = &p
	}
	if refund != nil {
		r := *refund
		o.refund = &r
	}
	return o
}

// NewLinesFrom returns an independent copy of lines, keeping its present state.
func NewLinesFrom(lines Lines) Lines {
	if !lines.present {
		return AbsentLines()
	}
	return NewLines(lines.items...)
}

// ID returns the order identifier as supplied, possibly blank.
func (o *Order) ID() string {
	return o.id
}

// Status returns the raw order status.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the buyer.
func (o *Order) Customer() Customer {
	return o.customer
}

// Shipping returns the shipping record.
func (o *Order) Shipping() Shipping {
	return o.shipping
}

// Lines returns the line list.
func (o *Order) Lines() Lines {
	return o.lines
}

// Payment returns the payment and whether one is present.
func (o *Order) Payment() (Payment, bool) {
	if o.payment == nil {
		return Payment{}, false
	}
	return *o.payment, true
}

// Refund returns the refund and whether one is present.
func (o *Order) Refund() (Refund, bool) {
	if o.refund == nil {
		return Refund{}, false
	}
	return *o.refund, true
}
