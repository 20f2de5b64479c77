package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"

	"github.com/FACorreiaa/go-tourism-filter/config"
	"github.com/FACorreiaa/go-tourism-filter/internal/api"
	"github.com/FACorreiaa/go-tourism-filter/internal/container"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// E2ETestSuite runs full HTTP round trips against the embedded data set.
type E2ETestSuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	container *container.Container
}

func (suite *E2ETestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var cfg config.Config
	cfg.Server.Timeout = 10 * time.Second
	cfg.Filter.FuzzyThreshold = 80
	cfg.Filter.ExcludedSample = 50
	cfg.Filter.FallbackSize = 10
	cfg.Filter.DefaultLimit = 20
	cfg.Filter.MinLimit = 10

	c, err := container.NewContainer(context.Background(), &cfg, logger, nil)
	suite.Require().NoError(err)
	suite.container = c
	suite.server = httptest.NewServer(newHTTPHandler(c, logger))
	suite.client = &http.Client{Timeout: 10 * time.Second}
}

func (suite *E2ETestSuite) TearDownSuite() {
	suite.server.Close()
	suite.container.Close()
}

func (suite *E2ETestSuite) filter(req api.FilterRequest) (*http.Response, []byte) {
	body, err := json.Marshal(req)
	suite.Require().NoError(err)
	resp, err := suite.client.Post(suite.server.URL+"/api/v1/filter", "application/json", bytes.NewReader(body))
	suite.Require().NoError(err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	return resp, raw
}

func (suite *E2ETestSuite) TestPragueChristmas() {
	resp, raw := suite.filter(api.FilterRequest{
		City: "Prague", Country: "Czech Republic",
		Dates:    api.DatesRequest{Start: "2025-12-18", End: "2025-12-25"},
		TripType: "romantic_couple", Budget: "mid_range",
	})
	suite.Require().Equal(http.StatusOK, resp.StatusCode, string(raw))

	var result types.FilterResult
	suite.Require().NoError(json.Unmarshal(raw, &result))
	suite.Equal(types.ResolvedExact, result.Destination.Resolution)
	suite.Equal(types.SeasonWinter, result.TemporalContext.AdjustedSeason)
	suite.True(result.TemporalContext.SpecialPeriods.Has(types.PeriodChristmas))

	var found bool
	for _, c := range result.Places {
		if c.CategoryName == "Christmas Markets" {
			found = true
			suite.GreaterOrEqual(c.Score, 50)
		}
	}
	suite.True(found, "Christmas Markets should be ranked for Prague in December")
	suite.Positive(result.ExcludedCount)
}

func (suite *E2ETestSuite) TestSydneySummer() {
	resp, raw := suite.filter(api.FilterRequest{
		City: "sydney", Country: "australia",
		Dates:    api.DatesRequest{Start: "2026-01-05", End: "2026-01-12"},
		TripType: "family_young_children", Budget: "mid_range",
	})
	suite.Require().Equal(http.StatusOK, resp.StatusCode, string(raw))

	var result types.FilterResult
	suite.Require().NoError(json.Unmarshal(raw, &result))
	suite.Equal(types.Southern, result.TemporalContext.Hemisphere)
	suite.Equal(types.SeasonSummer, result.TemporalContext.AdjustedSeason)
	for _, c := range result.Activities {
		suite.NotEqual("Skiing & Snowboarding", c.CategoryName)
	}
}

func (suite *E2ETestSuite) TestInvalidRequests() {
	tests := []struct {
		name string
		req  api.FilterRequest
	}{
		{"unknown budget", api.FilterRequest{City: "Rome", Country: "Italy", Dates: api.DatesRequest{Start: "2026-05-01", End: "2026-05-03"}, TripType: "solo_trip", Budget: "cheapish"}},
		{"reversed dates", api.FilterRequest{City: "Rome", Country: "Italy", Dates: api.DatesRequest{Start: "2026-05-03", End: "2026-05-01"}, TripType: "solo_trip", Budget: "budget"}},
		{"missing city", api.FilterRequest{Country: "Italy", Dates: api.DatesRequest{Start: "2026-05-01", End: "2026-05-03"}, TripType: "solo_trip", Budget: "budget"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			resp, raw := suite.filter(tt.req)
			suite.Equal(http.StatusBadRequest, resp.StatusCode, string(raw))
		})
	}
}

func (suite *E2ETestSuite) TestReadEndpoints() {
	for _, path := range []string{"/ping", "/api/v1/health", "/api/v1/destinations", "/api/v1/categories", "/metrics"} {
		suite.Run(path, func() {
			resp, err := suite.client.Get(suite.server.URL + path)
			suite.Require().NoError(err)
			resp.Body.Close()
			suite.Equal(http.StatusOK, resp.StatusCode)
		})
	}

	resp, err := suite.client.Get(suite.server.URL + "/api/v1/health")
	suite.Require().NoError(err)
	defer resp.Body.Close()
	var health api.HealthResponse
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&health))
	suite.Equal("healthy", health.Status)
	suite.Equal("disabled", health.InferenceState)
	suite.Equal(suite.container.CategoriesLoaded(), health.CategoriesLoaded)
}

func TestE2ETestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end tests in short mode")
	}
	suite.Run(t, new(E2ETestSuite))
}
