package order

import "orderaudit/internal/core/domain/model/kernel"

// Line is a single order line. Quantity and unit price are stored as supplied, valid
// or not.
type Line struct {
	sku       string
	quantity  int
	unitPrice kernel.Money
}

// NewLine creates a line. An empty sku stands for a missing one.
func NewLine(sku string, quantity int, unitPrice kernel.Money) Line {
	return Line{
		sku:       sku,
		quantity:  quantity,
		unitPrice: unitPrice,
	}
}

// SKU returns the stock keeping unit, empty when missing.
func (l Line) SKU() string {
	return l.sku
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price of a single unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns quantity x unit price. It is computed for invalid lines too, since
// refund and GMV figures are diagnostic totals over every line.
func (l Line) Total() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}

// Lines is the ordered line list of an order. The zero value is an absent list.
type Lines struct {
	items   []Line
	present bool
}

// AbsentLines returns a list that was not present in the source.
func AbsentLines() Lines {
	return Lines{}
}

// NewLines returns a present list holding a copy of items. NewLines() is a present,
// empty list.
func NewLines(items ...Line) Lines {
	copied := make([]Line, len(items))
	copy(copied, items)
	return Lines{
		items:   copied,
		present: true,
	}
}

// Present reports whether the list was present in the source.
func (l Lines) Present() bool {
	return l.present
}

// Len returns the number of lines; an absent list has none.
func (l Lines) Len() int {
	return len(l.items)
}

// IsEmpty reports whether there are no lines, either because the list is absent or empty.
func (l Lines) IsEmpty() bool {
	return len(l.items) == 0
}

// All returns a copy of the lines in source order.
func (l Lines) All() []Line {
	copied := make([]Line, len(l.items))
	copy(copied, l.items)
	return copied
}

// Total sums Line.Total over every line. An absent or empty list totals zero.
func (l Lines) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range l.items {
		total = total.Add(line.Total())
	}
	return total
}
