package queries

import (
	"errors"
	"time"

	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/pkg/guard"
)

var (
	ErrGetBatchesQueryIsNotConstructed = errors.New(
		"GetBatchesQuery must be created via NewGetBatchesQuery constructor",
	)
)

// GetBatchesQuery lists every stored batch, newest first.
type GetBatchesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBatchesQuery() GetBatchesQuery {
	return GetBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchesQueryIsNotConstructed)
}

// GetBatchesQueryResponse describes one stored batch without its orders.
type GetBatchesQueryResponse struct {
	ID        kernel.UUID
	Source    string
	OrderIDs  []string
	CreatedAt time.Time
}
