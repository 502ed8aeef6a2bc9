package order

import (
	"fmt"

	"orderaudit/internal/pkg/errs"
)

// Status is the order classification exactly as read from the source. Values outside
// the allowed set are kept verbatim so they can be reported.
type Status string

const (
	Paid      Status = "PAID"
	Pending   Status = "PENDING"
	Cancelled Status = "CANCELLED"
)

// getValidStatuses returns the allowed statuses in their canonical order.
func getValidStatuses() []Status {
	return []Status{Paid, Pending, Cancelled}
}

// Validate returns a StructuralError when the status is not one of PAID, PENDING or
// CANCELLED. Matching is case sensitive.
func (s Status) Validate() error {
	for _, valid := range getValidStatuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewStructuralErrorWithCause(
		"status",
		"invalid status",
		fmt.Errorf("%q is not one of PAID, PENDING, CANCELLED", string(s)),
	)
}

// String returns the raw status text.
func (s Status) String() string {
	return string(s)
}

// RequiresLines reports whether orders in this status must carry at least one line.
func (s Status) RequiresLines() bool {
	return s == Paid || s == Pending
}

// RequiresCapture reports whether orders in this status must have a captured payment.
func (s Status) RequiresCapture() bool {
	return s == Paid
}

// IsCancelled reports whether the order was cancelled.
func (s Status) IsCancelled() bool {
	return s == Cancelled
}
