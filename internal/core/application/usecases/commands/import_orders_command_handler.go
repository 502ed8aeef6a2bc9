package commands

import (
	"context"

	"orderaudit/internal/core/domain/model/batch"
)

// ImportOrdersCommandHandler persists an imported order set as a batch.
type ImportOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewImportOrdersCommandHandler creates a handler for batch imports.
func NewImportOrdersCommandHandler(uowFactory OrderUoWFactory) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the batch inside one transaction; nothing is stored when any order fails
// to persist.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := batch.NewBatch(cmd.BatchID(), cmd.Source(), cmd.Orders())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().AddBatch(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
