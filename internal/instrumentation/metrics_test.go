package instrumentation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) []metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, scope := range rm.ScopeMetrics {
		for _, metric := range scope.Metrics {
			if metric.Name != name {
				continue
			}
			sum, ok := metric.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			return sum.DataPoints
		}
	}
	return nil
}

func TestRecordToolInvocation(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordToolInvocation(ctx, "im_v1_message_create", nil, 50*time.Millisecond)
	m.RecordToolInvocation(ctx, "im_v1_message_create", errors.New("boom"), 10*time.Millisecond)

	points := collectSum(t, reader, "tool_invocations_total")
	require.Len(t, points, 2)
	var total int64
	for _, p := range points {
		total += p.Value
		tool, ok := p.Attributes.Value(attribute.Key("tool"))
		require.True(t, ok)
		assert.Equal(t, "im_v1_message_create", tool.AsString())
	}
	assert.Equal(t, int64(2), total)
}

func TestRecordAuthOperation(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordAuthOperation(ctx, "tenant_token_fetch", nil)
	m.RecordAuthOperation(ctx, "stored_token_lookup", errors.New("expired"))

	points := collectSum(t, reader, "auth_operations_total")
	require.Len(t, points, 2)

	byOperation := map[string]string{}
	for _, p := range points {
		assert.Equal(t, int64(1), p.Value)
		op, ok := p.Attributes.Value(attribute.Key("operation"))
		require.True(t, ok)
		result, ok := p.Attributes.Value(attribute.Key("result"))
		require.True(t, ok)
		byOperation[op.AsString()] = result.AsString()
	}
	assert.Equal(t, map[string]string{
		"tenant_token_fetch":  "success",
		"stored_token_lookup": "error",
	}, byOperation)
}

func TestZeroValueMetricsIsNoOp(t *testing.T) {
	var m Metrics
	m.RecordToolInvocation(context.Background(), "x", nil, time.Second)
	m.RecordAuthOperation(context.Background(), "login", nil)
}
