package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"orderaudit/internal/adapters/out/orderdoc"
	"orderaudit/internal/core/application/usecases/commands"
	"orderaudit/internal/core/application/usecases/queries"
	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/core/domain/model/report"
	"orderaudit/internal/core/domain/services"
	"orderaudit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// DefaultSource names batches posted without a source query parameter.
const DefaultSource = "http"

type ImportOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ImportOrdersCommand) error
}

type GetOrdersReportHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersReportQuery) (queries.GetOrdersReportQueryResponse, error)
}

type GetBatchesHandler interface {
	Handle(ctx context.Context, query queries.GetBatchesQuery) ([]queries.GetBatchesQueryResponse, error)
}

// ReportRecorder receives every report built over HTTP.
type ReportRecorder interface {
	ObserveReport(source string, rep *report.Report, elapsed time.Duration)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	builder  *services.ReportBuilder
	recorder ReportRecorder

	// Command handlers
	importOrdersHandler ImportOrdersHandler

	// Query handlers
	getOrdersReportHandler GetOrdersReportHandler
	getBatchesHandler      GetBatchesHandler
}

func NewServer(
	builder *services.ReportBuilder,
	recorder ReportRecorder,
	importOrdersHandler ImportOrdersHandler,
	getOrdersReportHandler GetOrdersReportHandler,
	getBatchesHandler GetBatchesHandler,
) *Server {
	return &Server{
		builder:                builder,
		recorder:               recorder,
		importOrdersHandler:    importOrdersHandler,
		getOrdersReportHandler: getOrdersReportHandler,
		getBatchesHandler:      getBatchesHandler,
	}
}

// CreateReport handles POST /api/v1/reports - reports on the posted document without storing it.
func (s *Server) CreateReport(ctx echo.Context) error {
	opts, err := bindReportOptions(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewError(http.StatusBadRequest, err.Error()))
	}

	orders, status, err := decodeOrders(ctx)
	if err != nil {
		return ctx.JSON(status, NewError(status, err.Error()))
	}

	started := time.Now()
	rep, err := s.builder.Build(ctx.Request().Context(), orders, opts)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, NewError(
			http.StatusInternalServerError,
			"Failed to build report",
		))
	}
	s.recorder.ObserveReport(DefaultSource, rep, time.Since(started))

	return ctx.JSON(http.StatusOK, rep)
}

// CreateBatch handles POST /api/v1/batches - stores the posted document as a batch.
func (s *Server) CreateBatch(ctx echo.Context) error {
	source := ctx.QueryParam("source")
	if source == "" {
		source = DefaultSource
	}

	orders, status, err := decodeOrders(ctx)
	if err != nil {
		return ctx.JSON(status, NewError(status, err.Error()))
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewImportOrdersCommand(batchID, source, orders)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewError(
			http.StatusBadRequest,
			"Invalid batch: "+err.Error(),
		))
	}

	if handleErr := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, NewError(
			http.StatusInternalServerError,
			"Failed to store batch",
		))
	}

	return ctx.JSON(http.StatusCreated, BatchCreated{BatchID: batchID.String()})
}

// GetBatches handles GET /api/v1/batches - lists stored batches.
func (s *Server) GetBatches(ctx echo.Context) error {
	batches, err := s.getBatchesHandler.Handle(ctx.Request().Context(), queries.NewGetBatchesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, NewError(
			http.StatusInternalServerError,
			"Failed to retrieve batches",
		))
	}

	response := make([]Batch, len(batches))
	for i, b := range batches {
		response[i] = Batch{
			ID:        b.ID.String(),
			Source:    b.Source,
			OrderIDs:  b.OrderIDs,
			CreatedAt: b.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBatchReport handles GET /api/v1/batches/{batchId}/report - reports on a stored batch.
func (s *Server) GetBatchReport(ctx echo.Context) error {
	var rawID string
	if err := runtime.BindStyledParameterWithLocation(
		"simple", false, "batchId", runtime.ParamLocationPath, ctx.Param("batchId"), &rawID,
	); err != nil {
		return ctx.JSON(http.StatusBadRequest, NewError(http.StatusBadRequest, err.Error()))
	}

	batchID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewError(
			http.StatusBadRequest,
			"Invalid batch id: "+err.Error(),
		))
	}

	opts, err := bindReportOptions(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewError(http.StatusBadRequest, err.Error()))
	}

	query, err := queries.NewGetOrdersReportQuery(batchID, opts)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewError(http.StatusBadRequest, err.Error()))
	}

	resp, err := s.getOrdersReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, NewError(http.StatusNotFound, err.Error()))
		}
		return ctx.JSON(http.StatusInternalServerError, NewError(
			http.StatusInternalServerError,
			"Failed to build report",
		))
	}

	return ctx.JSON(http.StatusOK, BatchReport{
		BatchID:   resp.BatchID.String(),
		Source:    resp.Source,
		CreatedAt: resp.CreatedAt,
		Report:    resp.Report,
	})
}

// Health handles GET /health.
func Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

var errNegativeTop = errors.New("top must not be negative")

// bindReportOptions reads top and gmv. An absent top leaves the ranking out of the
// report; an absent gmv leaves GMV out.
func bindReportOptions(ctx echo.Context) (services.ReportOptions, error) {
	var (
		top  *int
		gmv  *bool
		opts services.ReportOptions
	)

	if err := runtime.BindQueryParameter("form", true, false, "top", ctx.QueryParams(), &top); err != nil {
		return opts, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "gmv", ctx.QueryParams(), &gmv); err != nil {
		return opts, err
	}

	if top != nil {
		if *top < 0 {
			return opts, errNegativeTop
		}
		opts.IncludeTopSKUs = true
		opts.TopK = *top
	}
	if gmv != nil {
		opts.IncludeGMV = *gmv
	}

	return opts, nil
}

func decodeOrders(ctx echo.Context) ([]*order.Order, int, error) {
	format, err := orderdoc.FormatFromContentType(ctx.Request().Header.Get(echo.HeaderContentType))
	if err != nil {
		return nil, http.StatusUnsupportedMediaType, err
	}

	orders, err := orderdoc.Decode(ctx.Request().Body, format)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return orders, http.StatusOK, nil
}
