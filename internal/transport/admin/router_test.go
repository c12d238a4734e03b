package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/metrics"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	healthy := NewRouter("test", logger.Nop(), pingerFunc(func(context.Context) error { return nil }), prometheus.NewRegistry())

	rec := serve(t, healthy, "/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-Storefront-Env"))
	assert.JSONEq(t, `{"status":"live"}`, rec.Body.String())

	rec = serve(t, healthy, "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	down := NewRouter("test", logger.Nop(), pingerFunc(func(context.Context) error { return errors.New("no session") }), prometheus.NewRegistry())
	rec = serve(t, down, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	ledger := metrics.NewLedger(reg)
	ledger.SaleCreated(550)
	ledger.SaleRejected("unknown_product")

	rec := serve(t, NewRouter("test", logger.Nop(), nil, reg), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "storefront_sales_created_total 1")
	assert.Contains(t, body, "storefront_sale_amount_total 550")
	assert.Contains(t, body, `storefront_sale_rejections_total{reason="unknown_product"} 1`)
}
