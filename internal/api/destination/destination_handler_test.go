package destination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

func TestHandler_ListDestinations(t *testing.T) {
	table, err := NewTable(testRecords())
	require.NoError(t, err)
	h := NewDestinationHandler(table, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations", nil)
	rr := httptest.NewRecorder()
	h.ListDestinations(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var groups []CountryGroup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &groups))
	require.Len(t, groups, 3)
	assert.Equal(t, "Australia", groups[0].Country)
	assert.Equal(t, "Sydney", groups[0].Cities[0].City)
	assert.Equal(t, "oceania", groups[0].Cities[0].Region)
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	_, ok := c.Get("nowhere_none")
	assert.False(t, ok)

	p := types.FallbackProfile("Nowhere", "None", "nowhere_none", "test")
	c.Set(p.Key, p)
	got, ok := c.Get(p.Key)
	require.True(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, 1, c.Len())

	// last writer wins
	c.Set(p.Key, p.WithResolution(types.Inferred{Confidence: types.ConfidenceLow}))
	got, _ = c.Get(p.Key)
	assert.Equal(t, types.ResolvedInferred, got.Resolution.Kind())
	assert.Equal(t, 1, c.Len())
}
