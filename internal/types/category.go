package types

import (
	"fmt"
	"strings"
)

// ListKind identifies one of the five catalog lists.
type ListKind string

const (
	ListPlaces        ListKind = "places"
	ListActivities    ListKind = "activities"
	ListCuisines      ListKind = "cuisines"
	ListDiningFormats ListKind = "dining_formats"
	ListDietary       ListKind = "dietary"
)

// ListKinds is the fixed output order of the catalog lists.
var ListKinds = []ListKind{ListPlaces, ListActivities, ListCuisines, ListDiningFormats, ListDietary}

// CategoryTags are the requirement tags a category imposes on a trip.
type CategoryTags struct {
	GeoType                   Set[GeoType]               `json:"geo_type"`
	GeoRegion                 Set[GeoRegion]             `json:"geo_region"`
	Season                    Set[Season]                `json:"season"`
	WeatherRequirement        Set[WeatherRequirement]    `json:"weather_requirement"`
	TripIdeal                 Set[TripType]              `json:"trip_ideal"`
	TripExclude               Set[TripType]              `json:"trip_exclude"`
	BudgetLevel               Set[Budget]                `json:"budget_level"`
	InfrastructureRequirement Set[Infrastructure]        `json:"infrastructure_requirement"`
	TourismCharacteristics    Set[TourismCharacteristic] `json:"tourism_characteristics"`
	SpecialFeaturesRequired   Set[SpecialFeature]        `json:"special_features_required"`
	Vibe                      Set[Vibe]                  `json:"vibe"`
	SpecialPeriodMatch        Set[SeasonalFeature]       `json:"special_period_match"`
	HomeRegion                GeoRegion                  `json:"home_region,omitempty"`
	Generic                   bool                       `json:"generic,omitempty"`
}

// Normalize replaces missing dimensions with empty sets so every dimension
// is present and encodes as an array.
func (t CategoryTags) Normalize() CategoryTags {
	t.GeoType = orEmpty(t.GeoType)
	t.GeoRegion = orEmpty(t.GeoRegion)
	t.Season = orEmpty(t.Season)
	t.WeatherRequirement = orEmpty(t.WeatherRequirement)
	t.TripIdeal = orEmpty(t.TripIdeal)
	t.TripExclude = orEmpty(t.TripExclude)
	t.BudgetLevel = orEmpty(t.BudgetLevel)
	t.InfrastructureRequirement = orEmpty(t.InfrastructureRequirement)
	t.TourismCharacteristics = orEmpty(t.TourismCharacteristics)
	t.SpecialFeaturesRequired = orEmpty(t.SpecialFeaturesRequired)
	t.Vibe = orEmpty(t.Vibe)
	t.SpecialPeriodMatch = orEmpty(t.SpecialPeriodMatch)
	return t
}

func orEmpty[T ~string](s Set[T]) Set[T] {
	if s == nil {
		return Set[T]{}
	}
	return s
}

// Validate fails when any tag lies outside the vocabulary.
func (t CategoryTags) Validate() error {
	var bad []string
	bad = collectUnknown(t.GeoType, GeoTypes, "geo_type", bad)
	bad = collectUnknown(t.GeoRegion, GeoRegions, "geo_region", bad)
	bad = collectUnknown(t.Season, Seasons, "season", bad)
	bad = collectUnknown(t.WeatherRequirement, WeatherRequirements, "weather_requirement", bad)
	bad = collectUnknown(t.TripIdeal, TripTypes, "trip_ideal", bad)
	bad = collectUnknown(t.TripExclude, TripTypes, "trip_exclude", bad)
	bad = collectUnknown(t.BudgetLevel, Budgets, "budget_level", bad)
	bad = collectUnknown(t.InfrastructureRequirement, Infrastructures, "infrastructure_requirement", bad)
	bad = collectUnknown(t.TourismCharacteristics, TourismCharacteristics, "tourism_characteristics", bad)
	bad = collectUnknown(t.SpecialFeaturesRequired, SpecialFeatures, "special_features_required", bad)
	bad = collectUnknown(t.Vibe, Vibes, "vibe", bad)
	bad = collectUnknown(t.SpecialPeriodMatch, SeasonalFeatures, "special_period_match", bad)
	if t.HomeRegion != "" && t.HomeRegion != RegionGlobal && !GeoRegions.Has(t.HomeRegion) {
		bad = append(bad, "home_region:"+string(t.HomeRegion))
	}
	if len(bad) > 0 {
		return fmt.Errorf("unknown category tags: %s", strings.Join(bad, ", "))
	}
	return nil
}

func collectUnknown[T ~string](s, allowed Set[T], dim string, bad []string) []string {
	_, dropped := s.Restrict(allowed)
	for _, v := range dropped {
		bad = append(bad, dim+":"+string(v))
	}
	return bad
}

// CategoryRecord is one catalog entry. Records are immutable once loaded.
type CategoryRecord struct {
	Name                string       `json:"name"`
	ParentCategory      string       `json:"parent_category"`
	List                ListKind     `json:"list"`
	Description         string       `json:"description"`
	SearchQueryTemplate string       `json:"search_query_template"`
	Tags                CategoryTags `json:"tags"`
	Position            int          `json:"-"` // catalog order, used to break score ties
}

// SearchQuery fills the {city} placeholder of the template.
func (c CategoryRecord) SearchQuery(city string) string {
	return strings.ReplaceAll(c.SearchQueryTemplate, "{city}", city)
}

// IsFallbackCandidate reports whether the record may be injected into an empty list.
func (c CategoryRecord) IsFallbackCandidate() bool {
	return c.Tags.Generic && c.Tags.Season.Has(SeasonAllSeason) && c.Tags.BudgetLevel.IsEmpty()
}
