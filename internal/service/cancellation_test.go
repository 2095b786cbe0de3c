package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outbound/internal/observability"
	"github.com/ib-77/outbound/pkg/outbound"
)

type testServiceSetup struct {
	service *Service
	metrics *observability.Metrics
	logs    *bytes.Buffer
}

func setupTestService(t *testing.T) *testServiceSetup {
	t.Helper()
	store, err := outbound.NewStore(outbound.DemoShipments()...)
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	metrics := observability.NewMetricsWithRegistry(prometheus.NewRegistry())
	svc := New(outbound.NewCanceller(store), zerolog.New(logs), metrics)

	return &testServiceSetup{service: svc, metrics: metrics, logs: logs}
}

func TestService_Cancel_Success(t *testing.T) {
	t.Parallel()
	setup := setupTestService(t)
	fixed := uuid.MustParse("6f1c2a8e-0d0b-4c8e-9f43-7c1a7a0c2b11")
	setup.service.newID = func() uuid.UUID { return fixed }

	out := setup.service.Cancel(context.Background(), 2)

	require.True(t, out.Result.IsSuccess())
	assert.Equal(t, fixed, out.CorrelationID)
	assert.Equal(t, int64(2), out.ShipmentID)
	assert.Len(t, out.Result.Result(), 2)

	assert.Contains(t, setup.logs.String(), fixed.String())
	assert.Contains(t, setup.logs.String(), "shipment cancelled")
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.CancellationsTotal.WithLabelValues("cancelled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.EventsTotal.WithLabelValues("ShipmentCancelled")))
}

func TestService_Cancel_FailuresAreCountedByKind(t *testing.T) {
	t.Parallel()
	setup := setupTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, setup.service.Cancel(ctx, -1).Result.Err(), outbound.ErrInvalidIdentifier)
	assert.ErrorIs(t, setup.service.Cancel(ctx, 404).Result.Err(), outbound.ErrNotFound)
	assert.ErrorIs(t, setup.service.Cancel(ctx, 4).Result.Err(), outbound.ErrAlreadyShipped)

	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.CancellationsTotal.WithLabelValues("invalid_identifier")))
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.CancellationsTotal.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.CancellationsTotal.WithLabelValues("already_shipped")))
	assert.Contains(t, setup.logs.String(), `"kind":"AlreadyShipped"`)
}

func TestService_Cancel_DistinctCorrelationIDs(t *testing.T) {
	t.Parallel()
	setup := setupTestService(t)

	a := setup.service.Cancel(context.Background(), 1)
	b := setup.service.Cancel(context.Background(), 1)

	assert.NotEqual(t, a.CorrelationID, b.CorrelationID)
	assert.Equal(t, a.Result, b.Result)
}

func TestService_Cancel_WithoutMetrics(t *testing.T) {
	t.Parallel()
	store, err := outbound.NewStore(outbound.DemoShipments()...)
	require.NoError(t, err)

	svc := New(outbound.NewCanceller(store), zerolog.Nop(), nil)
	assert.True(t, svc.Cancel(context.Background(), 3).Result.IsSuccess())
}

func TestService_CancelRaw(t *testing.T) {
	t.Parallel()
	setup := setupTestService(t)
	ctx := context.Background()

	ok := setup.service.CancelRaw(ctx, "3")
	require.True(t, ok.Result.IsSuccess())
	assert.Equal(t, int64(3), ok.ShipmentID)

	bad := setup.service.CancelRaw(ctx, "abc")
	assert.ErrorIs(t, bad.Result.Err(), outbound.ErrInvalidIdentifier)
	assert.NotEqual(t, uuid.Nil, bad.CorrelationID)
	assert.Equal(t, int64(0), bad.ShipmentID)

	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.CancellationsTotal.WithLabelValues("cancelled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.CancellationsTotal.WithLabelValues("invalid_identifier")))
	assert.Contains(t, setup.logs.String(), `"raw_id":"abc"`)
	assert.Contains(t, setup.logs.String(), bad.CorrelationID.String())
}
