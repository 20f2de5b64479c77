package filter

import "github.com/FACorreiaa/go-tourism-filter/internal/types"

const (
	pointsTripIdeal        = 15
	pointsBudget           = 10
	pointsExactSeason      = 20
	pointsAllSeason        = 10
	pointsSpecialPeriod    = 15
	pointsPerTourism       = 5
	capTourism             = 20
	pointsPerFeature       = 10
	capFeatures            = 20
	pointsBucketList       = 5
	pointsInstagram        = 3
	pointsGlobalCuisine    = 10
	pointsLocalCuisine     = 20
	pointsNeighbourCuisine = 12

	maxScore = 100
)

// Score is the per-criterion breakdown of a relevance score.
type Score struct {
	TripIdeal     int `json:"trip_ideal"`
	Budget        int `json:"budget"`
	Season        int `json:"season"`
	SpecialPeriod int `json:"special_period"`
	Tourism       int `json:"tourism"`
	Features      int `json:"features"`
	Vibe          int `json:"vibe"`
	HomeRegion    int `json:"home_region"`
}

// Sum is the unclamped total.
func (s Score) Sum() int {
	return s.TripIdeal + s.Budget + s.Season + s.SpecialPeriod + s.Tourism + s.Features + s.Vibe + s.HomeRegion
}

// Total is the sum clamped to [0, 100].
func (s Score) Total() int {
	return max(0, min(s.Sum(), maxScore))
}

// ScoreCategory computes the relevance of a category that passed the hard filter.
func ScoreCategory(c types.CategoryRecord, p types.DestinationProfile, tc types.TemporalContext, prefs types.UserPreferences) Score {
	tags := c.Tags
	var s Score

	if tags.TripIdeal.Has(prefs.TripType) {
		s.TripIdeal = pointsTripIdeal
	}
	if tags.BudgetLevel.IsEmpty() || tags.BudgetLevel.Has(prefs.Budget) {
		s.Budget = pointsBudget
	}

	switch {
	case tags.Season.Has(tc.AdjustedSeason):
		s.Season = pointsExactSeason
	case tags.Season.Has(types.SeasonAllSeason):
		s.Season = pointsAllSeason
	}

	if tags.SpecialPeriodMatch.Intersects(tc.SpecialPeriods) {
		s.SpecialPeriod = pointsSpecialPeriod
	}

	s.Tourism = min(tags.TourismCharacteristics.Overlap(p.Tags.TourismCharacteristics)*pointsPerTourism, capTourism)
	s.Features = min(tags.SpecialFeaturesRequired.Overlap(p.Tags.SpecialFeatures)*pointsPerFeature, capFeatures)

	if tags.Vibe.Has(types.VibeBucketList) {
		s.Vibe += pointsBucketList
	}
	if tags.Vibe.Has(types.VibeInstagramWorthy) {
		s.Vibe += pointsInstagram
	}

	s.HomeRegion = homeRegionPoints(tags.HomeRegion, p.Tags.GeoRegion)
	return s
}

// homeRegionPoints rewards cuisines from, or next to, any of the destination's regions.
func homeRegionPoints(home types.GeoRegion, regions types.Set[types.GeoRegion]) int {
	switch {
	case home == "":
		return 0
	case home == types.RegionGlobal:
		return pointsGlobalCuisine
	case regions.Has(home):
		return pointsLocalCuisine
	}
	for r := range regions {
		if Neighbours(home, r) {
			return pointsNeighbourCuisine
		}
	}
	return 0
}
