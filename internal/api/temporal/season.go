package temporal

import (
	"time"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// southernRegions sit mostly below the equator. Straddling regions default to northern.
var southernRegions = types.NewSet(
	types.RegionOceania,
	types.RegionPacificIslands,
	types.RegionSouthAmerica,
	types.RegionSubSaharaAfrica,
)

// HemisphereFor derives the hemisphere from a destination's regions. A non-empty
// override wins over the region mapping.
func HemisphereFor(regions types.Set[types.GeoRegion], override types.Hemisphere) types.Hemisphere {
	switch override {
	case types.Northern, types.Southern:
		return override
	}
	for _, r := range regions.Sorted() {
		if southernRegions.Has(r) {
			return types.Southern
		}
	}
	return types.Northern
}

// SeasonOf returns the northern-hemisphere meteorological season of a month.
func SeasonOf(m time.Month) types.Season {
	switch m {
	case time.March, time.April, time.May:
		return types.SeasonSpring
	case time.June, time.July, time.August:
		return types.SeasonSummer
	case time.September, time.October, time.November:
		return types.SeasonAutumn
	default:
		return types.SeasonWinter
	}
}

// AdjustSeason flips a northern season for the southern hemisphere.
func AdjustSeason(s types.Season, h types.Hemisphere) types.Season {
	if h == types.Southern {
		return s.Opposite()
	}
	return s
}
