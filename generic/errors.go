/*
errors.go - Centralized error types for the calendar primitives

PURPOSE:
  All error types in one place for consistency and discoverability.
  The payroll package wraps these errors with the year and month involved.

ERROR CATEGORIES:
  1. Date errors - Month or year outside the supported range
  2. Rule errors - Rule sets that cannot place a payable day in the month

USAGE:
  if errors.Is(err, generic.ErrInvalidMonth) {
      // client asked for month 13
  }

SEE ALSO:
  - time.go: ValidateMonth, ValidateYear
  - payroll/rules.go: Rules.Validate
*/
package generic

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidMonth is returned for month numbers outside 1..12.
	ErrInvalidMonth = errors.New("invalid month: must be 1-12")

	// ErrInvalidYear is returned for years that cannot be written as YYYY.
	ErrInvalidYear = errors.New("invalid year: must be 1-9999")

	// ErrNoWorkdays is returned when every weekday is forbidden.
	// A backward search for a payable day would never stop.
	ErrNoWorkdays = errors.New("every weekday is forbidden")

	// ErrInvalidBonusDay is returned when the bonus day is not 1..28.
	ErrInvalidBonusDay = errors.New("invalid bonus day: must be 1-28")

	// ErrInvalidWeekday is returned for weekday values outside Sunday..Saturday.
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrOutsideMonth is returned when the rules move a payment date out of
	// the month it belongs to, e.g. a bonus on the 28th walked into March.
	ErrOutsideMonth = errors.New("payment date falls outside its month")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateError records which year/month a date computation was asked for.
type DateError struct {
	Op    string // e.g., "salary date", "bonus date"
	Year  int
	Month time.Month
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s for %d-%02d: %v", e.Op, e.Year, int(e.Month), e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrInvalidYear)
}

// IsRuleError returns true if the error comes from an unusable rule set.
func IsRuleError(err error) bool {
	return errors.Is(err, ErrNoWorkdays) ||
		errors.Is(err, ErrInvalidBonusDay) ||
		errors.Is(err, ErrInvalidWeekday) ||
		errors.Is(err, ErrOutsideMonth)
}
