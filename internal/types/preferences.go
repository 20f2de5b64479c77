package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInput marks malformed dates and unrecognized enum values.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries the offending field. It matches ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

type TripType string

const (
	TripSolo                TripType = "solo_trip"
	TripRomanticCouple      TripType = "romantic_couple"
	TripCouple              TripType = "couple_travel"
	TripFamilyYoungChildren TripType = "family_young_children"
	TripFamilyTeens         TripType = "family_teens"
	TripGroupFriends        TripType = "group_friends"
	TripBusiness            TripType = "business_travel"
)

var TripTypes = NewSet(
	TripSolo, TripRomanticCouple, TripCouple, TripFamilyYoungChildren,
	TripFamilyTeens, TripGroupFriends, TripBusiness,
)

func ParseTripType(s string) (TripType, error) {
	t := TripType(normalizeEnum(s))
	if !TripTypes.Has(t) {
		return "", &InvalidInputError{Field: "trip_type", Reason: fmt.Sprintf("unknown trip type %q", s)}
	}
	return t, nil
}

type Budget string

const (
	BudgetLow    Budget = "budget"
	BudgetMid    Budget = "mid_range"
	BudgetLuxury Budget = "luxury"
)

var Budgets = NewSet(BudgetLow, BudgetMid, BudgetLuxury)

// ParseBudget accepts "mid-range" as well as "mid_range".
func ParseBudget(s string) (Budget, error) {
	b := Budget(normalizeEnum(s))
	if !Budgets.Has(b) {
		return "", &InvalidInputError{Field: "budget", Reason: fmt.Sprintf("unknown budget %q", s)}
	}
	return b, nil
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// DateLayout is the wire format of trip dates.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days, stored at UTC midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two calendar days.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: day(start), End: day(end)}
}

// ParseDateRange parses YYYY-MM-DD bounds; end must not precede start.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, strings.TrimSpace(start))
	if err != nil {
		return DateRange{}, &InvalidInputError{Field: "dates.start", Reason: err.Error()}
	}
	e, err := time.Parse(DateLayout, strings.TrimSpace(end))
	if err != nil {
		return DateRange{}, &InvalidInputError{Field: "dates.end", Reason: err.Error()}
	}
	if e.Before(s) {
		return DateRange{}, &InvalidInputError{Field: "dates", Reason: "end date precedes start date"}
	}
	return NewDateRange(s, e), nil
}

// Days returns the number of calendar days in the range, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UserPreferences describes the trip being planned.
type UserPreferences struct {
	TripType  TripType
	Budget    Budget
	DateRange DateRange
}

// Validate rejects preferences built without the Parse helpers.
func (p UserPreferences) Validate() error {
	if !TripTypes.Has(p.TripType) {
		return &InvalidInputError{Field: "trip_type", Reason: fmt.Sprintf("unknown trip type %q", p.TripType)}
	}
	if !Budgets.Has(p.Budget) {
		return &InvalidInputError{Field: "budget", Reason: fmt.Sprintf("unknown budget %q", p.Budget)}
	}
	if p.DateRange.Start.IsZero() || p.DateRange.End.IsZero() {
		return &InvalidInputError{Field: "dates", Reason: "start and end are required"}
	}
	if p.DateRange.End.Before(p.DateRange.Start) {
		return &InvalidInputError{Field: "dates", Reason: "end date precedes start date"}
	}
	return nil
}
