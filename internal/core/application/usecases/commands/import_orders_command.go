package commands

import (
	"errors"
	"strings"

	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrSourceIsRequired = errors.New("source is required")
	ErrOrdersIsRequired = errors.New("orders are required")
)

// ImportOrdersCommand stores a loaded order set as a new batch.
//
// Example:
//
//	batchID := kernel.NewUUID()
//	cmd, err := NewImportOrdersCommand(batchID, "orders.json", orders)
//	if err != nil {
//	    return fmt.Errorf("invalid import: %w", err)
//	}
//
//	handler := NewImportOrdersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to import orders: %w", err)
//	}
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	source  string
	orders  []*order.Order

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command to import orders under batchID.
// Orders may carry findings; an empty set is allowed but nil is not.
func NewImportOrdersCommand(batchID kernel.UUID, source string, orders []*order.Order) (ImportOrdersCommand, error) {
	cmd := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setSource(source),
		cmd.setOrders(orders),
	); err != nil {
		return ImportOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

func (c ImportOrdersCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c ImportOrdersCommand) Source() string {
	return c.source
}

func (c ImportOrdersCommand) Orders() []*order.Order {
	return c.orders
}

func (c *ImportOrdersCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ImportOrdersCommand) setSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return ErrSourceIsRequired
	}

	c.source = source
	return nil
}

func (c *ImportOrdersCommand) setOrders(orders []*order.Order) error {
	if orders == nil {
		return ErrOrdersIsRequired
	}

	c.orders = orders
	return nil
}
