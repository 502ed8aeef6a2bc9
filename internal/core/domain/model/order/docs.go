// Package order provides the record model for audited orders.
//
// The package includes:
//   - Order: an order as supplied by an external source, with its customer, lines,
//     payment, refund and shipping
//   - Status: the PAID / PENDING / CANCELLED classification
//   - Lines: the line items of an order, distinguishing an absent list from an empty one
//
// Unlike an aggregate, an Order never rejects its input: a blank id, an unknown status or
// a negative quantity are all representable, because the validation engine must report
// them as findings. Every value is immutable once constructed and safe to share between
// goroutines.
package order
