package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderaudit/internal/adapters/out/metrics"
	"orderaudit/internal/core/domain/model/report"
	"orderaudit/internal/core/domain/services"
	"orderaudit/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// RunRecorder receives the outcome of every run.
type RunRecorder interface {
	ObserveReport(source string, rep *report.Report, elapsed time.Duration)
	ObserveFailure(source, outcome string)
}

// ReportJob periodically reports on one order source.
type ReportJob struct {
	source   ports.OrderSource
	builder  *services.ReportBuilder
	recorder RunRecorder
	schedule string
	options  services.ReportOptions
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReportJob creates a job that runs on schedule, a six-field cron spec with seconds.
func NewReportJob(
	source ports.OrderSource,
	builder *services.ReportBuilder,
	recorder RunRecorder,
	schedule string,
	options services.ReportOptions,
	logger *slog.Logger,
) *ReportJob {
	return &ReportJob{
		source:   source,
		builder:  builder,
		recorder: recorder,
		schedule: schedule,
		options:  options,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "report_job", "source", source.Name()),
	}
}

// Start registers the run on the schedule and starts the scheduler.
func (j *ReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Report job stopped")
}

// Run performs a single load and report.
func (j *ReportJob) Run(ctx context.Context) (*report.Report, error) {
	orders, err := j.source.Load(ctx)
	if err != nil {
		j.recorder.ObserveFailure(j.source.Name(), metrics.OutcomeLoadFailure)
		j.logger.ErrorContext(ctx, "Report job failed to load orders", "error", err)
		return nil, err
	}

	started := time.Now()
	rep, err := j.builder.Build(ctx, orders, j.options)
	if err != nil {
		j.recorder.ObserveFailure(j.source.Name(), metrics.OutcomeBuildFailed)
		j.logger.ErrorContext(ctx, "Report job failed to build report", "error", err)
		return nil, err
	}
	j.recorder.ObserveReport(j.source.Name(), rep, time.Since(started))

	level := slog.LevelInfo
	if !rep.IsClean() {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Order report",
		"orders", rep.TotalOrders(),
		"line_items", rep.TotalLineItems(),
		"invalid_orders", rep.InvalidOrders(),
		"summary", rep.Summary(),
	)

	return rep, nil
}
