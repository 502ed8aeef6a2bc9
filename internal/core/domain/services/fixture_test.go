package services_test

import (
	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/order"
)

func money(v float64) kernel.Money {
	return kernel.MoneyFromFloat(v)
}

func line(sku string, qty int, price float64) order.Line {
	return order.NewLine(sku, qty, money(price))
}

func captured(ok bool) *order.Payment {
	p := order.NewPayment(ok)
	return &p
}

func refunded(amount float64) *order.Refund {
	r := order.NewRefund(money(amount))
	return &r
}

// fixtureOrders returns five orders with eight lines in total:
//
//	A-1001 PAID, captured, GMV 70
//	A-1002 PENDING, malformed email, no lines
//	A-1003 CANCELLED, negative price, refund equals the -15 total, no email
//	A-1004 CANCELLED, refund equals the 16 total
//	A-1005 PAID, captured, GMV 55
func fixtureOrders() []*order.Order {
	shipping := order.NewShipping(money(4.99))

	return []*order.Order{
		order.NewOrder(
			"A-1001", order.Paid,
			order.NewCustomerWithEmail("C-1", "alice@example.com"),
			shipping,
			order.NewLines(line("PEN-RED", 2, 20.0), line("USB-32GB", 1, 30.0)),
			captured(true), nil,
		),
		order.NewOrder(
			"A-1002", order.Pending,
			order.NewCustomerWithEmail("C-2", "bob[at]example.com"),
			shipping,
			order.NewLines(),
			nil, nil,
		),
		order.NewOrder(
			"A-1003", order.Cancelled,
			order.NewCustomer("C-3"),
			order.NewShipping(kernel.ZeroMoney()),
			order.NewLines(line("PEN-RED", 3, -5.0)),
			nil, refunded(-15.0),
		),
		order.NewOrder(
			"A-1004", order.Cancelled,
			order.NewCustomerWithEmail("C-4", "dave@example.com"),
			shipping,
			order.NewLines(line("NOTEBOOK", 1, 10.0), line("STICKER-PACK", 1, 6.0)),
			nil, refunded(16.0),
		),
		order.NewOrder(
			"A-1005", order.Paid,
			order.NewCustomerWithEmail("C-5", "eve@example.org"),
			shipping,
			order.NewLines(line("USB-32GB", 1, 25.0), line("MOUSE", 1, 20.0), line("CABLE", 1, 10.0)),
			captured(true), nil,
		),
	}
}
