package health

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tourism-filter/internal/api"
)

type fixedStatus struct {
	destinations, categories, cached int
	state                            string
}

func (s fixedStatus) DestinationsLoaded() int     { return s.destinations }
func (s fixedStatus) CategoriesLoaded() int       { return s.categories }
func (s fixedStatus) CachedInferredProfiles() int { return s.cached }
func (s fixedStatus) InferenceState() string      { return s.state }

func TestHandler_Health(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tests := []struct {
		name   string
		status fixedStatus
		want   string
	}{
		{"healthy", fixedStatus{34, 138, 2, "closed"}, "healthy"},
		{"empty catalog", fixedStatus{34, 0, 0, "disabled"}, "degraded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewHealthHandler(tt.status, logger).Health(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			require.Equal(t, http.StatusOK, rr.Code)

			var resp api.HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, tt.status.destinations, resp.DestinationsLoaded)
			assert.Equal(t, tt.status.state, resp.InferenceState)
			assert.Equal(t, "2025.1", resp.VocabularyVersion)
		})
	}
}
