// Package queries contains read operations: reports over stored batches and batch listings.
package queries

import (
	"errors"

	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/services"
	"orderaudit/internal/pkg/guard"
)

var (
	ErrGetOrdersReportQueryIsNotConstructed = errors.New(
		"GetOrdersReportQuery must be created via NewGetOrdersReportQuery constructor",
	)
)

// GetOrdersReportQuery asks for the validation report of a stored batch.
//
// Example:
//
//	query, err := NewGetOrdersReportQuery(batchID, services.ReportOptions{
//	    IncludeTopSKUs: true,
//	    TopK:           2,
//	    IncludeGMV:     true,
//	})
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrdersReportQuery struct {
	batchID kernel.UUID
	options services.ReportOptions

	guard guard.ConstructorGuard
}

// NewGetOrdersReportQuery creates a report query for batchID.
func NewGetOrdersReportQuery(batchID kernel.UUID, options services.ReportOptions) (GetOrdersReportQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetOrdersReportQuery{}, err
	}

	return GetOrdersReportQuery{
		batchID: batchID,
		options: options,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersReportQueryIsNotConstructed)
}

func (q GetOrdersReportQuery) BatchID() kernel.UUID {
	return q.batchID
}

func (q GetOrdersReportQuery) Options() services.ReportOptions {
	return q.options
}
