package queries

import (
	"context"
	"time"

	"orderaudit/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetBatchesQueryHandler reads the batch listing straight from the batches table.
type GetBatchesQueryHandler struct {
	db *gorm.DB
}

func NewGetBatchesQueryHandler(db *gorm.DB) GetBatchesQueryHandler {
	return GetBatchesQueryHandler{db: db}
}

// Handle returns batches ordered by creation time descending, then by id.
func (h GetBatchesQueryHandler) Handle(ctx context.Context, query GetBatchesQuery) ([]GetBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	batches := make([]GetBatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			source,
			order_ids,
			created_at
		FROM batches
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			source    string
			orderIDs  pq.StringArray
			createdAt time.Time
		)

		if err = rows.Scan(&id, &source, &orderIDs, &createdAt); err != nil {
			return nil, err
		}

		batchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ids := []string(orderIDs)
		if ids == nil {
			ids = []string{}
		}

		batches = append(batches, GetBatchesQueryResponse{
			ID:        batchID,
			Source:    source,
			OrderIDs:  ids,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
