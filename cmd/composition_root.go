package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "orderaudit/internal/adapters/in/http"
	"orderaudit/internal/adapters/out/filesource"
	"orderaudit/internal/adapters/out/metrics"
	"orderaudit/internal/adapters/out/postgres"
	"orderaudit/internal/adapters/out/s3source"
	"orderaudit/internal/core/application/usecases/commands"
	"orderaudit/internal/core/application/usecases/queries"
	"orderaudit/internal/core/domain/services"
	"orderaudit/internal/core/ports"
	"orderaudit/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	builder    *services.ReportBuilder
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		recorder:   metrics.NewRecorder(registry),
		builder:    services.NewReportBuilder(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersReportQueryHandler() queries.GetOrdersReportQueryHandler {
	return queries.NewGetOrdersReportQueryHandler(c.uowFactory.Create().OrderRepository(), c.builder)
}

func (c *CompositionRoot) CreateGetBatchesQueryHandler() queries.GetBatchesQueryHandler {
	return queries.NewGetBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPRouter(ctx context.Context) (*echo.Echo, error) {
	importHandler := c.CreateImportOrdersCommandHandler()

	server := httpin.NewServer(
		c.builder,
		c.recorder,
		&importHandler,
		c.CreateGetOrdersReportQueryHandler(),
		c.CreateGetBatchesQueryHandler(),
	)

	return httpin.NewRouter(ctx, server, c.registry, c.logger)
}

// CreateOrderSource returns nil when no scheduled source is configured.
func (c *CompositionRoot) CreateOrderSource(ctx context.Context) (ports.OrderSource, error) {
	switch c.config.OrdersSource {
	case "":
		return nil, nil
	case OrdersSourceFile:
		return filesource.New(c.config.OrdersFile)
	case OrdersSourceS3:
		return s3source.New(ctx, c.config.S3Source())
	default:
		return nil, fmt.Errorf("unknown orders source %q", c.config.OrdersSource)
	}
}

// CreateJobManager returns nil when no scheduled source is configured.
func (c *CompositionRoot) CreateJobManager(ctx context.Context) (*jobs.JobManager, error) {
	source, err := c.CreateOrderSource(ctx)
	if err != nil || source == nil {
		return nil, err
	}

	options := services.ReportOptions{
		IncludeTopSKUs: c.config.ReportTopSKUs > 0,
		TopK:           c.config.ReportTopSKUs,
		IncludeGMV:     true,
	}

	reportJob := jobs.NewReportJob(source, c.builder, c.recorder, c.config.ReportSchedule, options, c.logger)
	return jobs.NewJobManager(reportJob), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
