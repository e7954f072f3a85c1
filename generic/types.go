/*
Package generic provides the calendar primitives the payroll rules are built on.

PURPOSE:
  This package contains domain-agnostic date types and helpers. It knows
  nothing about salaries or bonuses: only days, months, weekdays and ranges.

KEY CONCEPTS:
  - TimePoint: A calendar day with no time of day and no time zone
  - WeekdaySet: Days of the week treated as non-payable
  - Period: An inclusive range of days
  - Clock: Source of "now", swappable in tests

DESIGN PRINCIPLES:
  1. Immutability: Every type is a value; operations return new values
  2. No time zones: Dates are civil dates, never instants
  3. Explicit errors: Invalid months and years are sentinel errors

USAGE:
  last := generic.EndOfMonth(2024, time.February) // 2024-02-29
  for generic.Weekend.Contains(last.Weekday()) {
      last = last.AddDays(-1)
  }

SEE ALSO:
  - time.go: TimePoint and WeekdaySet
  - period.go: Period
  - errors.go: Sentinel errors
*/
package generic

import "time"

// =============================================================================
// CLOCK - Source of the current instant
// =============================================================================

type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Use in tests.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
