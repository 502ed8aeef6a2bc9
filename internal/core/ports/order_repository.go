// Package ports defines the contracts between the core and its adapters: persistence of
// imported order batches and loading of order sets from external sources.
package ports

import (
	"context"

	"orderaudit/internal/core/domain/model/batch"
	"orderaudit/internal/core/domain/model/kernel"
)

// OrderRepository persists batches of imported orders.
type OrderRepository interface {
	// AddBatch stores a batch with all of its orders and lines.
	AddBatch(ctx context.Context, aggregate *batch.Batch) error

	// GetBatch loads a batch with its orders in source order.
	// Returns errs.ObjectNotFoundError when no batch has the id.
	GetBatch(ctx context.Context, id kernel.UUID) (*batch.Batch, error)
}
