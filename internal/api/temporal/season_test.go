package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  types.Season
	}{
		{time.January, types.SeasonWinter},
		{time.February, types.SeasonWinter},
		{time.March, types.SeasonSpring},
		{time.May, types.SeasonSpring},
		{time.June, types.SeasonSummer},
		{time.August, types.SeasonSummer},
		{time.September, types.SeasonAutumn},
		{time.November, types.SeasonAutumn},
		{time.December, types.SeasonWinter},
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SeasonOf(tt.month))
		})
	}
}

func TestAdjustSeason(t *testing.T) {
	for s := range types.Seasons {
		assert.Equal(t, s, AdjustSeason(s, types.Northern), "northern keeps %s", s)
	}
	assert.Equal(t, types.SeasonSummer, AdjustSeason(types.SeasonWinter, types.Southern))
	assert.Equal(t, types.SeasonWinter, AdjustSeason(types.SeasonSummer, types.Southern))
	assert.Equal(t, types.SeasonAutumn, AdjustSeason(types.SeasonSpring, types.Southern))
	assert.Equal(t, types.SeasonSpring, AdjustSeason(types.SeasonAutumn, types.Southern))
}

func TestHemisphereFor(t *testing.T) {
	t.Run("northern regions", func(t *testing.T) {
		assert.Equal(t, types.Northern, HemisphereFor(types.NewSet(types.RegionWesternEurope), ""))
		assert.Equal(t, types.Northern, HemisphereFor(types.NewSet(types.RegionNorthAmerica), ""))
		assert.Equal(t, types.Northern, HemisphereFor(types.NewSet(types.RegionSoutheastAsia), ""))
	})

	t.Run("southern regions", func(t *testing.T) {
		assert.Equal(t, types.Southern, HemisphereFor(types.NewSet(types.RegionOceania), ""))
		assert.Equal(t, types.Southern, HemisphereFor(types.NewSet(types.RegionSouthAmerica), ""))
		assert.Equal(t, types.Southern, HemisphereFor(types.NewSet(types.RegionSubSaharaAfrica), ""))
		assert.Equal(t, types.Southern, HemisphereFor(types.NewSet(types.RegionPacificIslands), ""))
	})

	t.Run("empty region defaults to northern", func(t *testing.T) {
		assert.Equal(t, types.Northern, HemisphereFor(nil, ""))
	})

	t.Run("explicit override wins", func(t *testing.T) {
		// Bali is tagged southeast_asia but lies south of the equator
		assert.Equal(t, types.Southern, HemisphereFor(types.NewSet(types.RegionSoutheastAsia), types.Southern))
		assert.Equal(t, types.Northern, HemisphereFor(types.NewSet(types.RegionSouthAmerica), types.Northern))
	})
}
