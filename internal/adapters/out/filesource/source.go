// Package filesource loads an order document from the local filesystem.
package filesource

import (
	"context"
	"fmt"
	"os"

	"orderaudit/internal/adapters/out/orderdoc"
	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/core/ports"
)

var _ ports.OrderSource = (*Source)(nil)

// Source reads a .json, .yaml or .yml file on every Load.
type Source struct {
	path   string
	format orderdoc.Format
}

func New(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("order file path required")
	}

	format, err := orderdoc.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return &Source{path: path, format: format}, nil
}

func (s *Source) Name() string {
	return s.path
}

func (s *Source) Load(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open order file: %w", err)
	}
	defer f.Close()

	orders, err := orderdoc.Decode(f, s.format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return orders, nil
}
