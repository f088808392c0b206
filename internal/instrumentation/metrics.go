package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrTool      = "tool"
	attrResult    = "result"
	attrOperation = "operation"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Metrics records tool and auth metrics. The zero value is a no-op
// recorder; instruments are only populated by NewMetrics.
type Metrics struct {
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram
	authOperationsTotal  metric.Int64Counter
}

// NewMetrics creates a Metrics instance with all instruments registered
// on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total number of tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"tool_invocation_duration_seconds",
		metric.WithDescription("Tool invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool_invocation_duration_seconds histogram: %w", err)
	}

	m.authOperationsTotal, err = meter.Int64Counter(
		"auth_operations_total",
		metric.WithDescription("Total number of credential store operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth_operations_total counter: %w", err)
	}

	return m, nil
}

// RecordToolInvocation records one tool call with its outcome and
// duration.
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool string, err error, duration time.Duration) {
	if m.toolInvocationsTotal == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	attrs := metric.WithAttributes(
		attribute.String(attrTool, tool),
		attribute.String(attrResult, result),
	)
	m.toolInvocationsTotal.Add(ctx, 1, attrs)
	m.toolDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordAuthOperation records one credential store operation (login,
// logout) with its outcome.
func (m *Metrics) RecordAuthOperation(ctx context.Context, operation string, err error) {
	if m.authOperationsTotal == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	m.authOperationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrOperation, operation),
		attribute.String(attrResult, result),
	))
}
