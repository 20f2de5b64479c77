package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/FACorreiaa/go-tourism-filter/app/observability/metrics"
)

func TestInitTracingAndMetrics(t *testing.T) {
	p, err := InitTracingAndMetrics("tourism-filter-test", "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	assert.Same(t, p.Tracer, otel.GetTracerProvider())

	m, err := metrics.New(otel.GetMeterProvider().Meter("test"))
	require.NoError(t, err)
	m.RecordFilter(context.Background(), 0.01, 3, "ok")
}
