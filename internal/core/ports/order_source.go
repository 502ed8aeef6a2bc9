package ports

import (
	"context"

	"orderaudit/internal/core/domain/model/order"
)

// OrderSource loads an order set from outside the process. A malformed document is a
// load failure returned as an error; the engine never sees it.
type OrderSource interface {
	// Name identifies the source in logs, metrics and stored batches.
	Name() string

	// Load reads the full order set in document order.
	Load(ctx context.Context) ([]*order.Order, error)
}
