// Package payroll implements the yearly payroll calendar.
// It uses the generic calendar primitives to place one salary date and one
// bonus date in every month of a year.
package payroll

import (
	"fmt"
	"time"

	"github.com/warp/payroll-schedule/generic"
)

// MonthsPerYear is the number of rows in a schedule.
const MonthsPerYear = 12

// =============================================================================
// ROW - One month of the schedule
// =============================================================================

// Row holds the payment dates of a single month.
type Row struct {
	Month  time.Month
	Salary generic.TimePoint
	Bonus  generic.TimePoint
}

// MonthName is the display name of the row's month.
func (r Row) MonthName() string { return MonthName(r.Month) }

// Fields returns the row as text: month name, salary date, bonus date.
func (r Row) Fields() []string {
	return []string{r.MonthName(), r.Salary.String(), r.Bonus.String()}
}

// =============================================================================
// SCHEDULE - Twelve rows for one year
// =============================================================================

// Schedule is the payroll calendar of one year. Rows are in month order,
// January first.
type Schedule struct {
	Year int
	Rows []Row
}

// Row returns the entry for month.
func (s Schedule) Row(month time.Month) (Row, error) {
	if err := generic.ValidateMonth(month); err != nil {
		return Row{}, &generic.DateError{Op: "schedule row", Year: s.Year, Month: month, Err: err}
	}
	for _, r := range s.Rows {
		if r.Month == month {
			return r, nil
		}
	}
	return Row{}, fmt.Errorf("schedule %d has no row for %s", s.Year, MonthName(month))
}

// Complete reports whether the schedule has exactly one row per month,
// in ascending order.
func (s Schedule) Complete() bool {
	if len(s.Rows) != MonthsPerYear {
		return false
	}
	for i, r := range s.Rows {
		if r.Month != time.Month(i+1) {
			return false
		}
	}
	return true
}
