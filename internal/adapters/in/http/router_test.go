package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "orderaudit/internal/adapters/in/http"
	"orderaudit/internal/adapters/out/metrics"
	"orderaudit/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*echo.Echo, *MockImportOrdersHandler) {
	t.Helper()
	reg := prometheus.NewRegistry()
	importer := new(MockImportOrdersHandler)
	server := httpin.NewServer(
		services.NewReportBuilder(),
		metrics.NewRecorder(reg),
		importer,
		new(MockGetOrdersReportHandler),
		new(MockGetBatchesHandler),
	)

	e, err := httpin.NewRouter(context.Background(), server, reg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return e, importer
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := httpin.LoadOpenAPI(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/reports"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/batches/{batchId}/report"))
}

func TestRouter_Health(t *testing.T) {
	e, _ := newRouter(t)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_ReportAndMetrics(t *testing.T) {
	e, _ := newRouter(t)

	rec := serve(e, http.MethodPost, "/api/v1/reports?top=2", document)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `orderaudit_report_runs_total{outcome="success",source="http"} 1`)
}

func TestRouter_RequestValidation(t *testing.T) {
	e, importer := newRouter(t)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"top below minimum", http.MethodPost, "/api/v1/reports?top=-1"},
		{"gmv not boolean", http.MethodPost, "/api/v1/reports?gmv=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, document)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	importer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRouter_MalformedDocument(t *testing.T) {
	e, _ := newRouter(t)

	rec := serve(e, http.MethodPost, "/api/v1/reports", `{"customers": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "orders collection")
}

func TestRouter_SwaggerDoc(t *testing.T) {
	e, _ := newRouter(t)

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
}
