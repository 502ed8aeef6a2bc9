package orderrepo

import (
	"context"
	"errors"

	"orderaudit/internal/core/domain/model/batch"
	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// insertBatchSize bounds the rows of one INSERT. Postgres accepts at most 65535 bind
// parameters per statement and an order row carries 11 columns.
const insertBatchSize = 500

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch saves a batch with its orders and lines.
func (r *GormOrderRepository) AddBatch(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	session := r.db.WithContext(ctx).Session(&gorm.Session{CreateBatchSize: insertBatchSize})
	if err := session.Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetBatch retrieves a batch by ID with orders and lines in source order.
func (r *GormOrderRepository) GetBatch(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto BatchDTO
	err := db.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	// Lines are selected by batch rather than preloaded, which would bind one
	// parameter per order.
	var lines []LineDTO
	err = db.
		Where("order_id IN (?)", db.Model(&OrderDTO{}).Select("id").Where("batch_id = ?", dto.ID)).
		Order("position").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]LineDTO, len(dto.Orders))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	for i := range dto.Orders {
		dto.Orders[i].Lines = byOrder[dto.Orders[i].ID]
	}

	return toDomain(dto)
}
