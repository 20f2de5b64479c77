package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

func decode(body string) (FilterRequest, error) {
	var req FilterRequest
	r := httptest.NewRequest(http.MethodPost, "/api/v1/filter", strings.NewReader(body))
	err := DecodeJSONBody(httptest.NewRecorder(), r, &req)
	return req, err
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"city":"Rome","country":"Italy","dates":{"start":"2026-05-01","end":"2026-05-03"},"trip_type":"solo_trip","budget":"budget"}`, ""},
		{"empty", ``, "body must not be empty"},
		{"malformed", `{"city":`, "JSON"},
		{"unknown key", `{"town":"Rome"}`, "unknown key"},
		{"wrong type", `{"limit":"ten"}`, "incorrect JSON type"},
		{"two values", `{} {}`, "single JSON value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(tt.body)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	req := FilterRequest{City: "Rome", Country: "Italy", Dates: DatesRequest{Start: "2026-05-01", End: "2026-05-03"}, TripType: "solo_trip", Budget: "budget"}
	assert.NoError(t, ValidateRequest(req))

	req.City = ""
	req.Limit = 900
	err := ValidateRequest(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FilterRequest.City failed on 'required'")
	assert.Contains(t, err.Error(), "FilterRequest.Limit failed on 'max'=500")
}

func TestFilterRequest_Preferences(t *testing.T) {
	req := FilterRequest{City: "Rome", Country: "Italy", Dates: DatesRequest{Start: "2026-05-01", End: "2026-05-03"}, TripType: "Family-Teens", Budget: "luxury"}
	prefs, err := req.Preferences()
	require.NoError(t, err)
	assert.Equal(t, types.TripFamilyTeens, prefs.TripType)
	assert.Equal(t, types.BudgetLuxury, prefs.Budget)
	assert.Equal(t, 3, prefs.DateRange.Days())

	req.Budget = "free"
	_, err = req.Preferences()
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorResponse(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, "nope")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "nope", body["error"])
}
