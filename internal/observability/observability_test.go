package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outbound/pkg/outbound"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: "warn", Format: "json", Service: "svc", Out: &buf})

	log.Info().Msg("hidden")
	log.Warn().Int64("shipment_id", 3).Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "svc", entry["service"])
	assert.Equal(t, "warn", entry["level"])
	assert.EqualValues(t, 3, entry["shipment_id"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: "debug", Format: "console", Out: &buf})

	log.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "service=")
}

func TestParseLogLevel_Default(t *testing.T) {
	assert.Equal(t, "info", parseLogLevel("nonsense").String())
	assert.Equal(t, "warn", parseLogLevel("WARNING").String())
}

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.RecordCancelled([]outbound.Event{
		outbound.ShipmentCancelled{ShipmentID: 2},
		outbound.InventoryTransferCancelled{ShipmentID: 2},
	})
	m.RecordRejected(outbound.KindAlreadyShipped)
	m.RecordRejected(outbound.KindAlreadyShipped)
	m.RecordRejected(outbound.KindUnknown)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("cancelled")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("already_shipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("InventoryTransferCancelled")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordCancelled([]outbound.Event{outbound.ShipmentCancelled{ShipmentID: 1}})
		m.RecordRejected(outbound.KindNotFound)
	})
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "invalid_identifier", OutcomeLabel(outbound.KindInvalidIdentifier))
	assert.Equal(t, "not_found", OutcomeLabel(outbound.KindNotFound))
}
