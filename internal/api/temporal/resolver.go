package temporal

import (
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// Resolver derives the temporal context of a trip.
type Resolver struct {
	calendar Calendar
}

// NewResolver builds a resolver over the given calendar; nil selects DefaultCalendar.
func NewResolver(calendar Calendar) *Resolver {
	if calendar == nil {
		calendar = DefaultCalendar()
	}
	return &Resolver{calendar: calendar}
}

// Resolve computes the season from the start month and keeps only the special
// periods the destination actually exhibits.
func (r *Resolver) Resolve(dates types.DateRange, h types.Hemisphere, features types.Set[types.SeasonalFeature]) types.TemporalContext {
	if h == "" {
		h = types.Northern
	}
	raw := SeasonOf(dates.Start.Month())
	periods := types.NewSet[types.SeasonalFeature]()
	for tag := range r.calendar.Active(dates, h) {
		if features.Has(tag) {
			periods[tag] = struct{}{}
		}
	}
	return types.TemporalContext{
		Month:          int(dates.Start.Month()),
		RawSeason:      raw,
		AdjustedSeason: AdjustSeason(raw, h),
		Hemisphere:     h,
		SpecialPeriods: periods,
	}
}
