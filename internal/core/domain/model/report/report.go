package report

import (
	"fmt"
	"strings"
)

// Report is the outcome of one run over an order set.
//
// GMV and top SKUs are optional: a nil slice means the aggregate was not requested,
// while an empty slice means it was requested and produced nothing.
type Report struct {
	totalOrders       int
	totalLineItems    int
	orderIDs          []string
	problems          []Problem
	gmvByOrder        []OrderGMV
	topSKUs           []SKUQuantity
	correctlyRefunded []string
	contactIssues     []string
	uncaptured        []string
}

// Options carries the optional parts of a report.
type Options struct {
	OrderIDs          []string
	GMVByOrder        []OrderGMV
	TopSKUs           []SKUQuantity
	CorrectlyRefunded []string
	ContactIssues     []string
	Uncaptured        []string
}

// NewReport assembles a report. Slices are copied, nil slices stay nil.
func NewReport(totalOrders, totalLineItems int, problems []Problem, opts Options) *Report {
	return &Report{
		totalOrders:       totalOrders,
		totalLineItems:    totalLineItems,
		orderIDs:          cloneSlice(opts.OrderIDs),
		problems:          cloneSlice(problems),
		gmvByOrder:        cloneSlice(opts.GMVByOrder),
		topSKUs:           cloneSlice(opts.TopSKUs),
		correctlyRefunded: cloneSlice(opts.CorrectlyRefunded),
		contactIssues:     cloneSlice(opts.ContactIssues),
		uncaptured:        cloneSlice(opts.Uncaptured),
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	copied := make([]T, len(s))
	copy(copied, s)
	return copied
}

func (r *Report) TotalOrders() int {
	return r.totalOrders
}

func (r *Report) TotalLineItems() int {
	return r.totalLineItems
}

// OrderIDs returns the ids of the inspected orders in input order.
func (r *Report) OrderIDs() []string {
	return cloneSlice(r.orderIDs)
}

// InvalidOrders returns the number of orders with at least one finding.
func (r *Report) InvalidOrders() int {
	return len(r.problems)
}

// Problems returns the problems in input order of the orders.
func (r *Report) Problems() []Problem {
	return cloneSlice(r.problems)
}

// ProblemFor returns the problem recorded for orderID, if any.
func (r *Report) ProblemFor(orderID string) (Problem, bool) {
	for _, p := range r.problems {
		if p.orderID == orderID {
			return p, true
		}
	}
	return Problem{}, false
}

// IsClean reports whether no order has findings.
func (r *Report) IsClean() bool {
	return len(r.problems) == 0
}

// GMVByOrder returns the GMV aggregate, or nil when it was not requested.
func (r *Report) GMVByOrder() []OrderGMV {
	return cloneSlice(r.gmvByOrder)
}

// TopSKUs returns the SKU ranking, or nil when it was not requested.
func (r *Report) TopSKUs() []SKUQuantity {
	return cloneSlice(r.topSKUs)
}

func (r *Report) CorrectlyRefunded() []string {
	return cloneSlice(r.correctlyRefunded)
}

func (r *Report) ContactIssues() []string {
	return cloneSlice(r.contactIssues)
}

func (r *Report) Uncaptured() []string {
	return cloneSlice(r.uncaptured)
}

// Summary renders the report as one line:
//
//	Orders: 5, Lines: 8, Invalid: 2, Problems: [A-1002 => issue; issue, A-1003 => issue]
//
// followed by the GMV and top SKU sections when they were requested.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Orders: %d, Lines: %d, Invalid: %d, Problems: [",
		r.totalOrders, r.totalLineItems, r.InvalidOrders())
	for i, p := range r.problems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.orderID)
		b.WriteString(" => ")
		b.WriteString(strings.Join(p.Issues(), "; "))
	}
	b.WriteString("]")

	if r.gmvByOrder != nil {
		b.WriteString(", GMV: {")
		for i, g := range r.gmvByOrder {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", g.orderID, g.gmv.Decimal().StringFixed(2))
		}
		b.WriteString("}")
	}

	if r.topSKUs != nil {
		b.WriteString(", Top SKUs: [")
		for i, s := range r.topSKUs {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s x%d", s.sku, s.quantity)
		}
		b.WriteString("]")
	}

	return b.String()
}

// String implements fmt.Stringer.
func (r *Report) String() string {
	return r.Summary()
}
