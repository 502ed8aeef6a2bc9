package services

import (
	"context"
	"runtime"

	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/core/domain/model/report"
	"orderaudit/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// ReportOptions selects the optional aggregates of a report.
type ReportOptions struct {
	// IncludeTopSKUs adds a ranking of TopK SKUs.
	IncludeTopSKUs bool
	TopK           int
	IncludeGMV     bool
}

// ReportBuilder inspects every order and assembles the report.
type ReportBuilder struct {
	inspector   OrderInspector
	aggregator  Aggregator
	parallelism int
}

// NewReportBuilder creates a builder inspecting up to GOMAXPROCS orders at once.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		inspector:   NewOrderInspector(),
		aggregator:  NewAggregator(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithParallelism returns a copy of the builder limited to n concurrent inspections.
// n < 1 is treated as 1.
func (b *ReportBuilder) WithParallelism(n int) *ReportBuilder {
	if n < 1 {
		n = 1
	}
	clone := *b
	clone.parallelism = n
	return &clone
}

// Build runs the engine over orders. Findings never cause an error; the only error is
// ctx cancellation, in which case no report is returned. Problems keep the input order
// of the orders regardless of which inspection finishes first.
func (b *ReportBuilder) Build(ctx context.Context, orders []*order.Order, opts ReportOptions) (*report.Report, error) {
	findings := make([][]error, len(orders))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)
	for i, o := range orders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			findings[i] = b.inspector.Inspect(o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markDuplicates(orders, findings)

	problems := make([]report.Problem, 0)
	for i, o := range orders {
		if len(findings[i]) > 0 {
			problems = append(problems, report.NewProblem(o.ID(), findings[i]))
		}
	}

	reportOpts := report.Options{
		OrderIDs:          b.aggregator.OrderIDs(orders),
		CorrectlyRefunded: b.aggregator.CorrectlyRefunded(orders),
		ContactIssues:     b.aggregator.ContactIssues(orders),
		Uncaptured:        b.aggregator.Uncaptured(orders),
	}
	if opts.IncludeGMV {
		reportOpts.GMVByOrder = b.aggregator.GMVByOrder(orders)
	}
	if opts.IncludeTopSKUs {
		reportOpts.TopSKUs = b.aggregator.TopSKUs(orders, opts.TopK)
	}

	return report.NewReport(len(orders), b.aggregator.LineCount(orders), problems, reportOpts), nil
}

// markDuplicates appends a finding to every order after the first that reuses an id.
// Blank ids are already reported by ValidateID.
func markDuplicates(orders []*order.Order, findings [][]error) {
	seen := make(map[string]struct{}, len(orders))
	for i, o := range orders {
		if ValidateID(o) != nil {
			continue
		}
		if _, dup := seen[o.ID()]; dup {
			findings[i] = append(findings[i], errs.NewStructuralError("id", RuleDuplicateID))
			continue
		}
		seen[o.ID()] = struct{}{}
	}
}
