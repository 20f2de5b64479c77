package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FACorreiaa/go-tourism-filter/config"
	"github.com/FACorreiaa/go-tourism-filter/internal/container"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

func benchmarkContainer(b *testing.B) *container.Container {
	b.Helper()
	var cfg config.Config
	cfg.Filter.FuzzyThreshold = 80
	cfg.Filter.ExcludedSample = 50
	cfg.Filter.FallbackSize = 10
	c, err := container.NewContainer(context.Background(), &cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(c.Close)
	return c
}

func BenchmarkFilterService_Prague(b *testing.B) {
	c := benchmarkContainer(b)
	dates, err := types.ParseDateRange("2025-12-18", "2025-12-25")
	if err != nil {
		b.Fatal(err)
	}
	prefs := types.UserPreferences{TripType: types.TripType("romantic_couple"), Budget: types.Budget("mid_range"), DateRange: dates}
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.FilterService.Filter(ctx, "Prague", "Czech Republic", prefs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterService_Fuzzy(b *testing.B) {
	c := benchmarkContainer(b)
	dates, err := types.ParseDateRange("2026-07-01", "2026-07-10")
	if err != nil {
		b.Fatal(err)
	}
	prefs := types.UserPreferences{TripType: types.TripSolo, Budget: types.BudgetLow, DateRange: dates}
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.FilterService.Filter(ctx, "Barcelonaa", "Spain", prefs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterEndpoint(b *testing.B) {
	c := benchmarkContainer(b)
	h := newHTTPHandler(c, slog.New(slog.NewTextHandler(io.Discard, nil)))
	body := []byte(`{"city":"Prague","country":"Czech Republic","trip_type":"romantic_couple","budget":"mid_range","dates":{"start":"2025-12-18","end":"2025-12-25"}}`)

	b.ReportAllocs()
	for b.Loop() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/filter", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			b.Fatalf("status %d: %s", rr.Code, rr.Body.String())
		}
	}
}
