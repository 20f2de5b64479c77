package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tourism-filter/config"
	"github.com/FACorreiaa/go-tourism-filter/internal/container"
)

func newTestRouter(t *testing.T, rateLimit int) http.Handler {
	t.Helper()
	var cfg config.Config
	cfg.Filter.FuzzyThreshold = 80
	cfg.Filter.ExcludedSample = 50
	cfg.Filter.FallbackSize = 10
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := container.NewContainer(context.Background(), &cfg, logger, nil)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return SetupRouter(&Config{
		FilterHandler:      c.FilterHandler,
		DestinationHandler: c.DestinationHandler,
		CatalogHandler:     c.CatalogHandler,
		HealthHandler:      c.HealthHandler,
		Logger:             logger,
		RateLimit:          rateLimit,
	})
}

func TestSetupRouter_Routes(t *testing.T) {
	r := newTestRouter(t, 0)

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodGet, "/api/v1/destinations", http.StatusOK},
		{http.MethodGet, "/api/v1/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/filter", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestSetupRouter_RateLimitsFilter(t *testing.T) {
	r := newTestRouter(t, 2)
	body := `{"city":"Prague","country":"Czech Republic","trip_type":"romantic_couple","budget":"mid_range","dates":{"start":"2025-12-18","end":"2025-12-25"}}`

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/filter", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.7:4000"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// read-only routes are not limited
	for range 3 {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
