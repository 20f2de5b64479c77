package filter

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

var warmClimates = types.NewSet(
	types.ClimateTropical,
	types.ClimateSubtropical,
	types.ClimateMediterranean,
	types.ClimateDesert,
	types.ClimateMonsoon,
)

var coldClimates = types.NewSet(types.ClimateArctic, types.ClimateSubarctic)

// Passes runs the hard filter checks in a fixed order. The first failing check
// decides the reason, so rejections are reproducible.
func Passes(c types.CategoryRecord, p types.DestinationProfile, tc types.TemporalContext, prefs types.UserPreferences) (bool, string) {
	tags := c.Tags

	if tags.TripExclude.Has(prefs.TripType) {
		return false, fmt.Sprintf("trip_type '%s' is excluded", prefs.TripType)
	}

	if !tags.BudgetLevel.IsEmpty() && !tags.BudgetLevel.Has(prefs.Budget) {
		return false, fmt.Sprintf("budget '%s' not in %s", prefs.Budget, list(tags.BudgetLevel))
	}

	if !tags.GeoType.IsEmpty() && !tags.GeoType.Intersects(p.Tags.GeoType) {
		return false, fmt.Sprintf("geo_type mismatch: requires %s, city has %s", list(tags.GeoType), list(p.Tags.GeoType))
	}

	if !tags.GeoRegion.IsEmpty() && !tags.GeoRegion.Intersects(p.Tags.GeoRegion) {
		return false, fmt.Sprintf("geo_region mismatch: requires %s, city has %s", list(tags.GeoRegion), list(p.Tags.GeoRegion))
	}

	if !tags.InfrastructureRequirement.IsEmpty() && !tags.InfrastructureRequirement.Intersects(p.Tags.Infrastructure) {
		return false, fmt.Sprintf("infrastructure mismatch: requires %s, city has %s",
			list(tags.InfrastructureRequirement), list(p.Tags.Infrastructure))
	}

	season := tc.AdjustedSeason
	if !tags.Season.IsEmpty() && !tags.Season.Has(types.SeasonAllSeason) && !tags.Season.Has(season) {
		return false, fmt.Sprintf("season mismatch: requires %s, visiting in %s", list(tags.Season), season)
	}

	if tags.WeatherRequirement.Has(types.WarmWeatherRequired) && season != types.SeasonSummer && !warmDestination(p) {
		return false, fmt.Sprintf("warm weather required but visiting in %s", season)
	}

	if tags.WeatherRequirement.Has(types.ColdWeatherRequired) &&
		(season == types.SeasonSummer || season == types.SeasonSpring) &&
		!p.Tags.ClimateType.Intersects(coldClimates) {
		return false, fmt.Sprintf("cold weather required but visiting in %s", season)
	}

	return true, ""
}

func warmDestination(p types.DestinationProfile) bool {
	return p.Tags.ClimateType.Intersects(warmClimates) || p.Tags.GeoType.Has(types.GeoTropical)
}

func list[T ~string](s types.Set[T]) string {
	values := s.Sorted()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
