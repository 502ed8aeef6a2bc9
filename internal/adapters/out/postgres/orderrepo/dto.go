// Package orderrepo persists imported order batches with GORM.
//
// A batch is stored as one row in "batches", one row per order in "orders" and one row
// per line in "order_lines". Positions keep the source order. Optional parts of an order
// are nullable columns, so an absent email, payment or refund survives the round trip.
package orderrepo

import (
	"time"

	"orderaudit/internal/core/domain/model/batch"
	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// BatchDTO is the stored form of a batch. OrderIDs duplicates the raw order ids in
// source order so batch listings need no join.
type BatchDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Source    string         `gorm:"not null"`
	OrderIDs  pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"not null;index"`
	Orders    []OrderDTO     `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}

func (BatchDTO) TableName() string {
	return "batches"
}

// OrderDTO is one stored order. ExternalID is the id as supplied by the source, which
// may be blank or repeated.
type OrderDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	BatchID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	Position        int                 `gorm:"not null"`
	ExternalID      string              `gorm:"not null"`
	Status          string              `gorm:"not null"`
	CustomerID      string              `gorm:"not null"`
	CustomerEmail   *string
	LinesPresent    bool                `gorm:"not null"`
	PaymentCaptured *bool
	RefundAmount    decimal.NullDecimal `gorm:"type:numeric"`
	ShippingFee     decimal.Decimal     `gorm:"type:numeric;not null"`
	Lines           []LineDTO           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one stored order line.
type LineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	SKU       string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// Models lists every table of the package in migration order.
func Models() []any {
	return []any{&BatchDTO{}, &OrderDTO{}, &LineDTO{}}
}

// fromDomain converts a batch aggregate to its stored form.
func fromDomain(b *batch.Batch) BatchDTO {
	orders := b.Orders()
	dto := BatchDTO{
		ID:        b.ID().Bytes(),
		Source:    b.Source(),
		OrderIDs:  pq.StringArray(b.OrderIDs()),
		CreatedAt: b.CreatedAt(),
		Orders:    make([]OrderDTO, 0, len(orders)),
	}

	for position, o := range orders {
		dto.Orders = append(dto.Orders, orderFromDomain(dto.ID, position, o))
	}

	return dto
}

func orderFromDomain(batchID uuid.UUID, position int, o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           uuid.New(),
		BatchID:      batchID,
		Position:     position,
		ExternalID:   o.ID(),
		Status:       o.Status().String(),
		CustomerID:   o.Customer().ID(),
		LinesPresent: o.Lines().Present(),
		ShippingFee:  o.Shipping().Fee().Decimal(),
	}

	if email, ok := o.Customer().Email(); ok {
		dto.CustomerEmail = &email
	}
	if payment, ok := o.Payment(); ok {
		captured := payment.Captured()
		dto.PaymentCaptured = &captured
	}
	if refund, ok := o.Refund(); ok {
		dto.RefundAmount = decimal.NewNullDecimal(refund.Amount().Decimal())
	}

	lines := o.Lines().All()
	dto.Lines = make([]LineDTO, 0, len(lines))
	for position, line := range lines {
		dto.Lines = append(dto.Lines, LineDTO{
			ID:        uuid.New(),
			OrderID:   dto.ID,
			Position:  position,
			SKU:       line.SKU(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		})
	}

	return dto
}

// toDomain rebuilds a batch. Orders and lines must already be sorted by position.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		orders = append(orders, orderToDomain(o))
	}

	return batch.RestoreBatch(id, dto.Source, orders, dto.CreatedAt)
}

func orderToDomain(dto OrderDTO) *order.Order {
	customer := order.NewCustomer(dto.CustomerID)
	if dto.CustomerEmail != nil {
		customer = order.NewCustomerWithEmail(dto.CustomerID, *dto.CustomerEmail)
	}

	lines := order.AbsentLines()
	if dto.LinesPresent {
		items := make([]order.Line, 0, len(dto.Lines))
		for _, l := range dto.Lines {
			items = append(items, order.NewLine(l.SKU, l.Quantity, kernel.MoneyFromDecimal(l.UnitPrice)))
		}
		lines = order.NewLines(items...)
	}

	var payment *order.Payment
	if dto.PaymentCaptured != nil {
		p := order.NewPayment(*dto.PaymentCaptured)
		payment = &p
	}

	var refund *order.Refund
	if dto.RefundAmount.Valid {
		r := order.NewRefund(kernel.MoneyFromDecimal(dto.RefundAmount.Decimal))
		refund = &r
	}

	return order.NewOrder(
		dto.ExternalID,
		order.Status(dto.Status),
		customer,
		order.NewShipping(kernel.MoneyFromDecimal(dto.ShippingFee)),
		lines,
		payment,
		refund,
	)
}
