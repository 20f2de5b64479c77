package metrics

import (
	"context"
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	FilterRequestsTotal      metric.Int64Counter
	FilterDurationSeconds    metric.Float64Histogram
	CategoriesExcludedTotal  metric.Int64Counter
	FallbackInjectionsTotal  metric.Int64Counter
	DestinationResolutions   metric.Int64Counter
	InferenceCallsTotal      metric.Int64Counter
	InferenceDurationSeconds metric.Float64Histogram
	DbQueryDurationSeconds   metric.Float64Histogram
	DbQueryErrorsTotal       metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// New creates the instruments on the given meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.FilterRequestsTotal, err = meter.Int64Counter(
		"filter_requests_total",
		metric.WithDescription("Total number of category filter runs"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("filter_requests_total: %w", err)
	}

	m.FilterDurationSeconds, err = meter.Float64Histogram(
		"filter_duration_seconds",
		metric.WithDescription("Duration of category filter runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("filter_duration_seconds: %w", err)
	}

	m.CategoriesExcludedTotal, err = meter.Int64Counter(
		"categories_excluded_total",
		metric.WithDescription("Total number of categories rejected by the hard filter"),
		metric.WithUnit("{category}"),
	)
	if err != nil {
		return nil, fmt.Errorf("categories_excluded_total: %w", err)
	}

	m.FallbackInjectionsTotal, err = meter.Int64Counter(
		"fallback_injections_total",
		metric.WithDescription("Total number of empty lists filled with generic categories"),
		metric.WithUnit("{list}"),
	)
	if err != nil {
		return nil, fmt.Errorf("fallback_injections_total: %w", err)
	}

	m.DestinationResolutions, err = meter.Int64Counter(
		"destination_resolutions_total",
		metric.WithDescription("Destination resolutions by outcome"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, fmt.Errorf("destination_resolutions_total: %w", err)
	}

	m.InferenceCallsTotal, err = meter.Int64Counter(
		"inference_calls_total",
		metric.WithDescription("Calls to the destination inference provider by outcome"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("inference_calls_total: %w", err)
	}

	m.InferenceDurationSeconds, err = meter.Float64Histogram(
		"inference_duration_seconds",
		metric.WithDescription("Duration of destination inference calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("inference_duration_seconds: %w", err)
	}

	m.DbQueryDurationSeconds, err = meter.Float64Histogram(
		"db_query_duration_seconds",
		metric.WithDescription("Duration of database queries in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("db_query_duration_seconds: %w", err)
	}

	m.DbQueryErrorsTotal, err = meter.Int64Counter(
		"db_query_errors_total",
		metric.WithDescription("Total number of database query errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("db_query_errors_total: %w", err)
	}

	return m, nil
}

// InitAppMetrics initializes the global metrics instruments ONLY ONCE,
// using the meter of the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		m, err := New(otel.GetMeterProvider().Meter("TourismFilter"))
		if err != nil {
			log.Fatalf("Metrics: %v", err)
		}
		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// The helpers below are nil-safe so components can run without instruments.

func (m *AppMetrics) RecordFilter(ctx context.Context, seconds float64, excluded int, outcome string) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.FilterRequestsTotal.Add(ctx, 1, attrs)
	m.FilterDurationSeconds.Record(ctx, seconds, attrs)
	m.CategoriesExcludedTotal.Add(ctx, int64(excluded))
}

func (m *AppMetrics) RecordFallbackInjection(ctx context.Context, list string) {
	if m == nil {
		return
	}
	m.FallbackInjectionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("list", list)))
}

func (m *AppMetrics) RecordResolution(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.DestinationResolutions.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *AppMetrics) RecordInference(ctx context.Context, seconds float64, outcome string) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.InferenceCallsTotal.Add(ctx, 1, attrs)
	m.InferenceDurationSeconds.Record(ctx, seconds, attrs)
}

func (m *AppMetrics) RecordDbQuery(ctx context.Context, query string, seconds float64, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("query", query))
	m.DbQueryDurationSeconds.Record(ctx, seconds, attrs)
	if err != nil {
		m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}
