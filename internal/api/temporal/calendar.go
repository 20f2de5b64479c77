package temporal

import (
	"time"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// WindowFunc returns the date windows of a period that start in the given year.
type WindowFunc func(year int, h types.Hemisphere) []types.DateRange

// Period is a named, date-bounded cultural or seasonal window.
type Period struct {
	Tag     types.SeasonalFeature
	Windows WindowFunc
}

// Calendar is the table of special periods checked for every trip.
type Calendar []Period

// Active returns every period whose window intersects any day of r.
func (c Calendar) Active(r types.DateRange, h types.Hemisphere) types.Set[types.SeasonalFeature] {
	active := types.NewSet[types.SeasonalFeature]()
	// a window starting the year before can wrap into the range
	for year := r.Start.Year() - 1; year <= r.End.Year(); year++ {
		for _, p := range c {
			if active.Has(p.Tag) {
				continue
			}
			for _, w := range p.Windows(year, h) {
				if overlaps(r, w) {
					active[p.Tag] = struct{}{}
					break
				}
			}
		}
	}
	return active
}

func overlaps(a, b types.DateRange) bool {
	return !a.End.Before(b.Start) && !b.End.Before(a.Start)
}

func date(year int, m time.Month, d int) time.Time {
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

// span is a yearly month/day window. When end precedes start it wraps into the next year.
type span struct {
	fromMonth time.Month
	fromDay   int
	toMonth   time.Month
	toDay     int
}

func (s span) in(year int) types.DateRange {
	start := date(year, s.fromMonth, s.fromDay)
	end := date(year, s.toMonth, s.toDay)
	if end.Before(start) {
		end = date(year+1, s.toMonth, s.toDay)
	}
	return types.DateRange{Start: start, End: end}
}

func yearly(from time.Month, fromDay int, to time.Month, toDay int) *span {
	return &span{fromMonth: from, fromDay: fromDay, toMonth: to, toDay: toDay}
}

// everywhere applies the same yearly window in both hemispheres.
func everywhere(s *span) WindowFunc {
	return func(year int, _ types.Hemisphere) []types.DateRange {
		return []types.DateRange{s.in(year)}
	}
}

// hemispheric picks the window for the trip's hemisphere. A nil window means the
// period does not occur there.
func hemispheric(north, south *span) WindowFunc {
	return func(year int, h types.Hemisphere) []types.DateRange {
		s := north
		if h == types.Southern {
			s = south
		}
		if s == nil {
			return nil
		}
		return []types.DateRange{s.in(year)}
	}
}

// table returns the listed windows that start in the requested year.
func table(windows ...types.DateRange) WindowFunc {
	return func(year int, _ types.Hemisphere) []types.DateRange {
		var out []types.DateRange
		for _, w := range windows {
			if w.Start.Year() == year {
				out = append(out, w)
			}
		}
		return out
	}
}

// Easter returns Easter Sunday of the Gregorian calendar (anonymous Gregorian algorithm).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}

// easterWeek runs from Palm Sunday to Easter Monday.
func easterWeek(year int, _ types.Hemisphere) []types.DateRange {
	sunday := Easter(year)
	return []types.DateRange{{Start: sunday.AddDate(0, 0, -7), End: sunday.AddDate(0, 0, 1)}}
}

// oktoberfest ends on the first Sunday of October, or on October 3 when that
// Sunday falls earlier, and opens on the Saturday fifteen days before that Sunday.
func oktoberfest(year int, _ types.Hemisphere) []types.DateRange {
	sunday := date(year, time.October, 1)
	for sunday.Weekday() != time.Sunday {
		sunday = sunday.AddDate(0, 0, 1)
	}
	end := sunday
	if unity := date(year, time.October, 3); end.Before(unity) {
		end = unity
	}
	return []types.DateRange{{Start: sunday.AddDate(0, 0, -15), End: end}}
}

func days(start time.Time, n int) types.DateRange {
	return types.DateRange{Start: start, End: start.AddDate(0, 0, n-1)}
}

// Lunar New Year through the Lantern Festival.
var lunarNewYear = table(
	days(date(2023, time.January, 22), 15),
	days(date(2024, time.February, 10), 15),
	days(date(2025, time.January, 29), 15),
	days(date(2026, time.February, 17), 15),
	days(date(2027, time.February, 6), 15),
	days(date(2028, time.January, 26), 15),
	days(date(2029, time.February, 13), 15),
	days(date(2030, time.February, 3), 15),
	days(date(2031, time.January, 23), 15),
)

// Ramadan start dates as commonly announced; actual dates depend on moon sighting.
var ramadan = table(
	days(date(2023, time.March, 23), 30),
	days(date(2024, time.March, 11), 30),
	days(date(2025, time.March, 1), 30),
	days(date(2026, time.February, 18), 30),
	days(date(2027, time.February, 8), 30),
	days(date(2028, time.January, 28), 30),
	days(date(2029, time.January, 16), 30),
	days(date(2030, time.January, 6), 30),
	days(date(2030, time.December, 26), 30),
)

// DefaultCalendar is the built-in special period table.
func DefaultCalendar() Calendar {
	return Calendar{
		{Tag: types.PeriodChristmas, Windows: everywhere(yearly(time.December, 1, time.December, 26))},
		{Tag: types.PeriodEaster, Windows: easterWeek},
		{Tag: types.PeriodHalloween, Windows: everywhere(yearly(time.October, 25, time.October, 31))},
		{Tag: types.PeriodLunarNewYear, Windows: lunarNewYear},
		{Tag: types.PeriodRamadan, Windows: ramadan},
		{Tag: types.PeriodOktoberfest, Windows: oktoberfest},
		{Tag: types.PeriodSummerHolidays, Windows: hemispheric(
			yearly(time.July, 1, time.August, 31),
			yearly(time.December, 15, time.February, 15),
		)},
		{Tag: types.PeriodWinterHolidays, Windows: hemispheric(
			yearly(time.December, 20, time.January, 6),
			yearly(time.June, 25, time.July, 20),
		)},
		{Tag: types.PeriodCherryBlossom, Windows: hemispheric(
			yearly(time.March, 20, time.April, 20),
			yearly(time.September, 20, time.October, 15),
		)},
		{Tag: types.PeriodTulipSeason, Windows: hemispheric(
			yearly(time.March, 20, time.May, 15),
			yearly(time.September, 15, time.October, 31),
		)},
		{Tag: types.PeriodSpringFestivals, Windows: hemispheric(
			yearly(time.March, 15, time.May, 31),
			yearly(time.September, 15, time.November, 30),
		)},
		{Tag: types.PeriodBeachSeason, Windows: hemispheric(
			yearly(time.June, 1, time.September, 15),
			yearly(time.December, 1, time.March, 15),
		)},
		{Tag: types.PeriodSummerFestivals, Windows: hemispheric(
			yearly(time.June, 1, time.August, 31),
			yearly(time.December, 1, time.February, 28),
		)},
		{Tag: types.PeriodOutdoorConcerts, Windows: hemispheric(
			yearly(time.May, 15, time.September, 15),
			yearly(time.November, 15, time.March, 15),
		)},
		{Tag: types.PeriodMidnightSun, Windows: hemispheric(
			yearly(time.May, 20, time.July, 25),
			nil,
		)},
		{Tag: types.PeriodNorthernLights, Windows: hemispheric(
			yearly(time.September, 15, time.March, 31),
			nil,
		)},
		{Tag: types.PeriodMonsoonAvoid, Windows: hemispheric(
			yearly(time.June, 1, time.September, 30),
			yearly(time.December, 1, time.March, 31),
		)},
		{Tag: types.PeriodAutumnFoliage, Windows: hemispheric(
			yearly(time.September, 25, time.November, 20),
			yearly(time.April, 1, time.May, 20),
		)},
		{Tag: types.PeriodWineHarvest, Windows: hemispheric(
			yearly(time.September, 1, time.October, 31),
			yearly(time.February, 15, time.April, 30),
		)},
		{Tag: types.PeriodHarvestFestivals, Windows: hemispheric(
			yearly(time.September, 1, time.November, 10),
			yearly(time.March, 1, time.May, 10),
		)},
		{Tag: types.PeriodSkiSeason, Windows: hemispheric(
			yearly(time.December, 1, time.April, 15),
			yearly(time.June, 15, time.October, 15),
		)},
		{Tag: types.PeriodWinterFestivals, Windows: hemispheric(
			yearly(time.December, 1, time.February, 28),
			yearly(time.June, 1, time.August, 31),
		)},
		{Tag: types.PeriodSnowyLandscapes, Windows: hemispheric(
			yearly(time.December, 1, time.March, 15),
			yearly(time.June, 15, time.September, 15),
		)},
		{Tag: types.PeriodIceHotels, Windows: hemispheric(
			yearly(time.December, 10, time.April, 10),
			nil,
		)},
	}
}
