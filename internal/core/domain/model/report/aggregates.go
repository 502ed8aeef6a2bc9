package report

import "orderaudit/internal/core/domain/model/kernel"

// SKUQuantity is one entry of the SKU ranking.
type SKUQuantity struct {
	sku      string
	quantity int
}

func NewSKUQuantity(sku string, quantity int) SKUQuantity {
	return SKUQuantity{sku: sku, quantity: quantity}
}

func (s SKUQuantity) SKU() string {
	return s.sku
}

func (s SKUQuantity) Quantity() int {
	return s.quantity
}

// OrderGMV is the gross merchandise value of one order.
type OrderGMV struct {
	orderID string
	gmv     kernel.Money
}

func NewOrderGMV(orderID string, gmv kernel.Money) OrderGMV {
	return OrderGMV{orderID: orderID, gmv: gmv}
}

func (g OrderGMV) OrderID() string {
	return g.orderID
}

func (g OrderGMV) GMV() kernel.Money {
	return g.gmv
}
