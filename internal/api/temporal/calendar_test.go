package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

func trip(t *testing.T, start, end string) types.DateRange {
	t.Helper()
	r, err := types.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestEaster(t *testing.T) {
	tests := map[int]time.Time{
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
		2026: date(2026, time.April, 5),
		2027: date(2027, time.March, 28),
		2030: date(2030, time.April, 21),
	}
	for year, want := range tests {
		assert.Equal(t, want, Easter(year), "easter %d", year)
	}
}

func TestCalendarActive(t *testing.T) {
	cal := DefaultCalendar()

	t.Run("christmas window is inclusive", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2025-12-01", "2025-12-01"), types.Northern).Has(types.PeriodChristmas))
		assert.True(t, cal.Active(trip(t, "2025-12-26", "2025-12-26"), types.Northern).Has(types.PeriodChristmas))
		assert.False(t, cal.Active(trip(t, "2025-12-27", "2025-12-31"), types.Northern).Has(types.PeriodChristmas))
		assert.False(t, cal.Active(trip(t, "2025-11-20", "2025-11-30"), types.Northern).Has(types.PeriodChristmas))
	})

	t.Run("any day of the range intersecting counts", func(t *testing.T) {
		got := cal.Active(trip(t, "2025-11-25", "2025-12-02"), types.Northern)
		assert.True(t, got.Has(types.PeriodChristmas))
	})

	t.Run("christmas applies in the southern hemisphere", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2025-12-20", "2025-12-27"), types.Southern).Has(types.PeriodChristmas))
	})

	t.Run("easter follows the computed date", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2025-04-13", "2025-04-13"), types.Northern).Has(types.PeriodEaster))
		assert.True(t, cal.Active(trip(t, "2025-04-21", "2025-04-21"), types.Northern).Has(types.PeriodEaster))
		assert.False(t, cal.Active(trip(t, "2025-04-22", "2025-04-30"), types.Northern).Has(types.PeriodEaster))
		assert.True(t, cal.Active(trip(t, "2024-03-30", "2024-03-30"), types.Northern).Has(types.PeriodEaster))
	})

	t.Run("halloween", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2025-10-31", "2025-11-02"), types.Northern).Has(types.PeriodHalloween))
		assert.False(t, cal.Active(trip(t, "2025-10-10", "2025-10-24"), types.Northern).Has(types.PeriodHalloween))
	})

	t.Run("summer holidays depend on hemisphere", func(t *testing.T) {
		july := trip(t, "2025-07-15", "2025-07-20")
		assert.True(t, cal.Active(july, types.Northern).Has(types.PeriodSummerHolidays))
		assert.False(t, cal.Active(july, types.Southern).Has(types.PeriodSummerHolidays))
		assert.True(t, cal.Active(july, types.Southern).Has(types.PeriodWinterHolidays))

		january := trip(t, "2026-01-10", "2026-01-12")
		assert.True(t, cal.Active(january, types.Southern).Has(types.PeriodSummerHolidays))
		assert.False(t, cal.Active(january, types.Northern).Has(types.PeriodSummerHolidays))
	})

	t.Run("windows wrapping the new year match from either side", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2026-01-03", "2026-01-04"), types.Northern).Has(types.PeriodWinterHolidays))
		assert.True(t, cal.Active(trip(t, "2025-12-31", "2026-01-01"), types.Northern).Has(types.PeriodWinterHolidays))
		assert.True(t, cal.Active(trip(t, "2026-02-10", "2026-02-10"), types.Northern).Has(types.PeriodNorthernLights))
	})

	t.Run("lunar new year from the date table", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2026-02-17", "2026-02-18"), types.Northern).Has(types.PeriodLunarNewYear))
		assert.False(t, cal.Active(trip(t, "2026-01-20", "2026-01-25"), types.Northern).Has(types.PeriodLunarNewYear))
	})

	t.Run("ramadan from the date table", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2025-03-15", "2025-03-16"), types.Northern).Has(types.PeriodRamadan))
		assert.False(t, cal.Active(trip(t, "2025-05-01", "2025-05-05"), types.Northern).Has(types.PeriodRamadan))
	})

	t.Run("oktoberfest", func(t *testing.T) {
		assert.True(t, cal.Active(trip(t, "2025-09-20", "2025-09-20"), types.Northern).Has(types.PeriodOktoberfest))
		assert.True(t, cal.Active(trip(t, "2025-10-05", "2025-10-05"), types.Northern).Has(types.PeriodOktoberfest))
		assert.False(t, cal.Active(trip(t, "2025-10-06", "2025-10-10"), types.Northern).Has(types.PeriodOktoberfest))
	})

	t.Run("northern only periods never match in the south", func(t *testing.T) {
		june := trip(t, "2025-06-10", "2025-06-20")
		assert.True(t, cal.Active(june, types.Northern).Has(types.PeriodMidnightSun))
		assert.False(t, cal.Active(june, types.Southern).Has(types.PeriodMidnightSun))
	})
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(nil)

	t.Run("winter dates in the north stay winter", func(t *testing.T) {
		for _, d := range []string{"2025-12-01", "2026-01-15", "2026-02-28", "2028-02-29"} {
			ctx := r.Resolve(trip(t, d, d), types.Northern, nil)
			assert.Equal(t, types.SeasonWinter, ctx.RawSeason, d)
			assert.Equal(t, types.SeasonWinter, ctx.AdjustedSeason, d)
		}
	})

	t.Run("winter dates in the south become summer", func(t *testing.T) {
		for _, d := range []string{"2025-12-01", "2026-01-15", "2026-02-28"} {
			ctx := r.Resolve(trip(t, d, d), types.Southern, nil)
			assert.Equal(t, types.SeasonWinter, ctx.RawSeason, d)
			assert.Equal(t, types.SeasonSummer, ctx.AdjustedSeason, d)
		}
	})

	t.Run("season comes from the start month", func(t *testing.T) {
		ctx := r.Resolve(trip(t, "2025-05-28", "2025-06-10"), types.Northern, nil)
		assert.Equal(t, 5, ctx.Month)
		assert.Equal(t, types.SeasonSpring, ctx.AdjustedSeason)
	})

	t.Run("special periods are limited to destination features", func(t *testing.T) {
		features := types.NewSet(types.PeriodChristmas, types.PeriodSkiSeason)
		ctx := r.Resolve(trip(t, "2025-12-18", "2025-12-25"), types.Northern, features)
		assert.Equal(t, []types.SeasonalFeature{types.PeriodChristmas, types.PeriodSkiSeason}, ctx.SpecialPeriods.Sorted())
	})

	t.Run("no features means no special periods", func(t *testing.T) {
		ctx := r.Resolve(trip(t, "2025-12-18", "2025-12-25"), types.Northern, nil)
		assert.True(t, ctx.SpecialPeriods.IsEmpty())
		assert.NotNil(t, ctx.SpecialPeriods)
	})

	t.Run("custom calendar", func(t *testing.T) {
		cal := Calendar{{Tag: types.PeriodTulipSeason, Windows: everywhere(yearly(time.January, 1, time.January, 2))}}
		ctx := NewResolver(cal).Resolve(trip(t, "2025-01-02", "2025-01-03"), types.Northern, types.NewSet(types.PeriodTulipSeason))
		assert.True(t, ctx.SpecialPeriods.Has(types.PeriodTulipSeason))
	})
}
