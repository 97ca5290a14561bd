package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	res, err := newResource("moneroscan", "1.2.3")
	require.NoError(t, err)
	require.NotNil(t, res)

	values := map[string]string{}
	for _, attr := range res.Attributes() {
		values[string(attr.Key)] = attr.Value.Emit()
	}

	assert.Equal(t, "moneroscan", values[string(semconv.ServiceNameKey)])
	assert.Equal(t, "1.2.3", values[string(semconv.ServiceVersionKey)])
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop(t.Context()))
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	defer func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
	}()

	// Exporters connect lazily, so Init succeeds without a collector.
	shutdown, err := Init(context.Background(), "moneroscan", "test")
	if err != nil {
		t.Logf("Init() failed: %v", err)
		return
	}
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		// Export to a missing collector may time out.
		t.Logf("shutdown returned error: %v", err)
	}
}
