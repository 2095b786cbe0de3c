package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outbound/internal/observability"
	"github.com/ib-77/outbound/internal/service"
	"github.com/ib-77/outbound/pkg/outbound"
	"github.com/ib-77/outbound/pkg/rop"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	store, err := outbound.NewStore(outbound.DemoShipments()...)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	svc := service.New(outbound.NewCanceller(store), zerolog.Nop(), observability.NewMetricsWithRegistry(reg))
	return NewRouter(NewHandler(svc, zerolog.Nop()), reg), reg
}

func doCancel(t *testing.T, r http.Handler, id string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/shipments/"+id+"/cancel", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCancel_PickCompleteReturnsEvents(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := doCancel(t, r, "3")
	require.Equal(t, http.StatusOK, w.Code)

	var body cancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.CorrelationID)
	assert.Equal(t, int64(3), body.ShipmentID)
	assert.Equal(t, []eventDTO{
		{Type: outbound.TypeShipmentCancelled, ShipmentID: 3},
		{Type: outbound.TypeRestoreInstructionCreated, ShipmentID: 3, Items: []outbound.LineItem{{ProductID: 200, Quantity: 3, LocationID: 2}}},
	}, body.Events)
}

func TestCancel_StatusMapping(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	tests := []struct {
		id   string
		code int
		kind string
	}{
		{"-1", http.StatusBadRequest, "InvalidIdentifier"},
		{"0", http.StatusBadRequest, "InvalidIdentifier"},
		{"abc", http.StatusBadRequest, "InvalidIdentifier"},
		{"999", http.StatusNotFound, "NotFound"},
		{"4", http.StatusConflict, "AlreadyShipped"},
	}

	for _, tt := range tests {
		w := doCancel(t, r, tt.id)
		assert.Equal(t, tt.code, w.Code, "id %s", tt.id)

		var body errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.kind, body.Kind, "id %s", tt.id)
		assert.NotEmpty(t, body.Error)
	}
}

type failingCanceller struct{}

func (failingCanceller) CancelRaw(_ context.Context, _ string) service.Outcome {
	return service.Outcome{ShipmentID: 1, Result: rop.Fail[[]outbound.Event](errors.New("lookup backend down"))}
}

func TestCancel_UnknownFailureIsInternal(t *testing.T) {
	t.Parallel()
	r := NewRouter(NewHandler(failingCanceller{}, zerolog.Nop()), nil)

	w := doCancel(t, r, "1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "lookup backend down")
}

func TestHealthzAndMetrics(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)
	doCancel(t, r, "2")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `outbound_cancellations_total{outcome="cancelled"} 1`)
}

func TestCancel_MalformedIDIsObserved(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := doCancel(t, r, "abc")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.CorrelationID)
	assert.Equal(t, "InvalidIdentifier", body.Kind)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `outbound_cancellations_total{outcome="invalid_identifier"} 1`)
}
