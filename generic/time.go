package generic

import (
	"time"

	"cloud.google.com/go/civil"
)

// =============================================================================
// TIME POINT - A calendar day (no clock, no time zone)
// =============================================================================

// TimePoint is a single calendar day. Payroll dates carry no time of day and
// no location, so the value is a civil date rather than a time.Time.
type TimePoint struct {
	Date civil.Date
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Date: civil.Date{Year: year, Month: month, Day: day}}
}

func TimePointOf(t time.Time) TimePoint { return TimePoint{Date: civil.DateOf(t)} }

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.Date.Before(other.Date) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.Date.After(other.Date) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return !tp.Before(other) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint { return TimePoint{Date: tp.Date.AddDays(n)} }

// Properties
func (tp TimePoint) Year() int             { return tp.Date.Year }
func (tp TimePoint) Weekday() time.Weekday { return tp.Date.In(time.UTC).Weekday() }

func (tp TimePoint) String() string { return tp.Date.String() }

// =============================================================================
// WEEKDAY SET - Days of the week on which nothing is paid
// =============================================================================

// WeekdaySet is an immutable set of weekdays stored as a bitmask
// (bit n = time.Weekday(n), Sunday = 0 ... Saturday = 6).
type WeekdaySet uint8

const allWeekdays WeekdaySet = 1<<7 - 1

// Weekend is the default forbidden set: Sunday and Saturday.
var Weekend = NewWeekdaySet(time.Sunday, time.Saturday)

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		if ValidWeekday(d) {
			s |= 1 << uint(d)
		}
	}
	return s
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return ValidWeekday(d) && s&(1<<uint(d)) != 0
}

// Full reports whether every day of the week is in the set.
func (s WeekdaySet) Full() bool { return s&allWeekdays == allWeekdays }

// Days lists the members in weekday order.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	out := "["
	for i, d := range s.Days() {
		if i > 0 {
			out += ", "
		}
		out += d.String()
	}
	return out + "]"
}

func ValidWeekday(d time.Weekday) bool { return d >= time.Sunday && d <= time.Saturday }

// =============================================================================
// TIME UTILITIES
// =============================================================================

func StartOfMonth(year int, month time.Month) TimePoint {
	return NewTimePoint(year, month, 1)
}

// EndOfMonth returns the last calendar day of the month, leap years included.
func EndOfMonth(year int, month time.Month) TimePoint {
	return TimePointOf(time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1))
}

// ValidateMonth returns ErrInvalidMonth unless month is January..December.
func ValidateMonth(month time.Month) error {
	if month < time.January || month > time.December {
		return ErrInvalidMonth
	}
	return nil
}

// ValidateYear returns ErrInvalidYear unless year fits a four digit YYYY.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return ErrInvalidYear
	}
	return nil
}

const (
	MinYear = 1
	MaxYear = 9999
)
