package api

import (
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// DatesRequest is the inclusive trip window, formatted YYYY-MM-DD.
type DatesRequest struct {
	Start string `json:"start" validate:"required" example:"2025-12-18"`
	End   string `json:"end" validate:"required" example:"2025-12-25"`
}

// FilterRequest represents the expected JSON body of POST /api/v1/filter.
type FilterRequest struct {
	City     string       `json:"city" validate:"required,max=120" example:"Prague"`
	Country  string       `json:"country" validate:"required,max=120" example:"Czech Republic"`
	Dates    DatesRequest `json:"dates" validate:"required"`
	TripType string       `json:"trip_type" validate:"required" example:"romantic_couple"`
	Budget   string       `json:"budget" validate:"required" example:"mid_range"`
	Limit    int          `json:"limit,omitempty" validate:"omitempty,min=0,max=500" example:"20"` // Max parent categories per list (default 20, minimum 10).
}

// Preferences parses the enum and date fields, returning a types.InvalidInputError on bad input.
func (r FilterRequest) Preferences() (types.UserPreferences, error) {
	tripType, err := types.ParseTripType(r.TripType)
	if err != nil {
		return types.UserPreferences{}, err
	}
	budget, err := types.ParseBudget(r.Budget)
	if err != nil {
		return types.UserPreferences{}, err
	}
	dates, err := types.ParseDateRange(r.Dates.Start, r.Dates.End)
	if err != nil {
		return types.UserPreferences{}, err
	}
	return types.UserPreferences{TripType: tripType, Budget: budget, DateRange: dates}, nil
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status                 string `json:"status" example:"healthy"`
	VocabularyVersion      string `json:"vocabulary_version" example:"2025.1"`
	DestinationsLoaded     int    `json:"destinations_loaded" example:"32"`
	CategoriesLoaded       int    `json:"categories_loaded" example:"234"`
	CachedInferredProfiles int    `json:"cached_inferred_profiles" example:"0"`
	InferenceState         string `json:"inference_state" example:"closed"`
}
