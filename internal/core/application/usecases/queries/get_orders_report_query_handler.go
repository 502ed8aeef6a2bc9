package queries

import (
	"context"
	"time"

	"orderaudit/internal/core/domain/model/batch"
	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/report"
	"orderaudit/internal/core/domain/services"
)

// BatchReader loads stored batches; ports.OrderRepository satisfies it.
type BatchReader interface {
	GetBatch(ctx context.Context, id kernel.UUID) (*batch.Batch, error)
}

// GetOrdersReportQueryResponse is the report of one stored batch.
type GetOrdersReportQueryResponse struct {
	BatchID   kernel.UUID
	Source    string
	CreatedAt time.Time
	Report    *report.Report
}

// GetOrdersReportQueryHandler loads a batch and runs the engine over its orders.
type GetOrdersReportQueryHandler struct {
	reader  BatchReader
	builder *services.ReportBuilder
}

func NewGetOrdersReportQueryHandler(reader BatchReader, builder *services.ReportBuilder) GetOrdersReportQueryHandler {
	return GetOrdersReportQueryHandler{
		reader:  reader,
		builder: builder,
	}
}

// Handle returns errs.ObjectNotFoundError, unwrapped from the reader, for an unknown
// batch.
func (h GetOrdersReportQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersReportQuery,
) (GetOrdersReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersReportQueryResponse{}, err
	}

	stored, err := h.reader.GetBatch(ctx, query.BatchID())
	if err != nil {
		return GetOrdersReportQueryResponse{}, err
	}

	r, err := h.builder.Build(ctx, stored.Orders(), query.Options())
	if err != nil {
		return GetOrdersReportQueryResponse{}, err
	}

	return GetOrdersReportQueryResponse{
		BatchID:   stored.ID(),
		Source:    stored.Source(),
		CreatedAt: stored.CreatedAt(),
		Report:    r,
	}, nil
}
