package batch

import (
	"errors"
	"strings"
	"time"

	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/pkg/errs"
)

var (
	ErrSourceIsRequired = errs.NewValueIsRequiredError("source")
	ErrOrdersIsRequired = errs.NewValueIsRequiredError("orders")
)

// Batch groups the orders of one import. Orders keep the order they had in the source,
// since reports list problems in input order.
//
// A batch only checks that it is well formed (id, source, non-nil order list). The
// orders themselves are stored as supplied, findings included.
type Batch struct {
	id        kernel.UUID
	source    string
	orders    []*order.Order
	createdAt time.Time
}

// NewBatch creates a batch stamped with the current time.
func NewBatch(id kernel.UUID, source string, orders []*order.Order) (*Batch, error) {
	return RestoreBatch(id, source, orders, time.Now().UTC())
}

// RestoreBatch rebuilds a batch read from storage.
func RestoreBatch(id kernel.UUID, source string, orders []*order.Order, createdAt time.Time) (*Batch, error) {
	b := &Batch{createdAt: createdAt}

	if err := errors.Join(
		b.setID(id),
		b.setSource(source),
		b.setOrders(orders),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks the invariants of a batch built outside the constructors.
func (b *Batch) Validate() error {
	return errors.Join(
		b.id.Validate(),
		validateSource(b.source),
		validateOrders(b.orders),
	)
}

func (b *Batch) ID() kernel.UUID {
	return b.id
}

func (b *Batch) Source() string {
	return b.source
}

// Orders returns the orders in source order.
func (b *Batch) Orders() []*order.Order {
	copied := make([]*order.Order, len(b.orders))
	copy(copied, b.orders)
	return copied
}

// OrderIDs returns the raw ids of the orders in source order.
func (b *Batch) OrderIDs() []string {
	ids := make([]string, 0, len(b.orders))
	for _, o := range b.orders {
		ids = append(ids, o.ID())
	}
	return ids
}

func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setSource(source string) error {
	if err := validateSource(source); err != nil {
		return err
	}
	b.source = source
	return nil
}

func (b *Batch) setOrders(orders []*order.Order) error {
	if err := validateOrders(orders); err != nil {
		return err
	}
	b.orders = make([]*order.Order, len(orders))
	copy(b.orders, orders)
	return nil
}

func validateSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return ErrSourceIsRequired
	}
	return nil
}

func validateOrders(orders []*order.Order) error {
	if orders == nil {
		return ErrOrdersIsRequired
	}
	for _, o := range orders {
		if o == nil {
			return errs.NewValueIsInvalidErrorWithCause("orders", errors.New("nil order in batch"))
		}
	}
	return nil
}
