package payroll

import (
	"fmt"
	"time"

	"github.com/warp/payroll-schedule/generic"
)

// =============================================================================
// ENGINE - Salary and bonus date rules
// =============================================================================

// Engine places salary and bonus dates. It holds no state besides its rules
// and is safe to share.
type Engine struct {
	rules Rules
}

// NewEngine validates rules and returns an engine bound to them.
func NewEngine(rules Rules) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid payroll rules: %w", err)
	}
	return &Engine{rules: rules}, nil
}

// Rules returns a copy of the engine's rules.
func (e *Engine) Rules() Rules { return e.rules }

// SalaryDate is the last payable day of the month: the month's last calendar
// day, moved back one day at a time while it falls on a forbidden weekday.
func (e *Engine) SalaryDate(year int, month time.Month) (generic.TimePoint, error) {
	if err := validate(year, month); err != nil {
		return generic.TimePoint{}, &generic.DateError{Op: "salary date", Year: year, Month: month, Err: err}
	}

	day := generic.EndOfMonth(year, month)
	for !e.rules.Payable(day) {
		day = day.AddDays(-1)
	}
	return inMonth("salary date", year, month, day)
}

// BonusDate is the bonus day of the month when that day is payable.
// Otherwise it walks forward until the weekday equals BonusWeekday, even
// past payable days: a Saturday 15th becomes Wednesday the 19th, not
// Monday the 17th. A walk that ends in the next month, which a late
// BonusDay can cause, fails with ErrOutsideMonth.
func (e *Engine) BonusDate(year int, month time.Month) (generic.TimePoint, error) {
	if err := validate(year, month); err != nil {
		return generic.TimePoint{}, &generic.DateError{Op: "bonus date", Year: year, Month: month, Err: err}
	}

	day := generic.NewTimePoint(year, month, e.rules.BonusDay)
	if e.rules.Payable(day) {
		return day, nil
	}
	for day.Weekday() != e.rules.BonusWeekday {
		day = day.AddDays(1)
	}
	return inMonth("bonus date", year, month, day)
}

// MonthName returns the English name of month. The year does not affect it
// and is only validated.
func (e *Engine) MonthName(year int, month time.Month) (string, error) {
	if err := validate(year, month); err != nil {
		return "", &generic.DateError{Op: "month name", Year: year, Month: month, Err: err}
	}
	return MonthName(month), nil
}

// Schedule computes every month of year, January through December.
func (e *Engine) Schedule(year int) (Schedule, error) {
	if err := generic.ValidateYear(year); err != nil {
		return Schedule{}, fmt.Errorf("schedule %d: %w", year, err)
	}

	s := Schedule{Year: year, Rows: make([]Row, 0, MonthsPerYear)}
	for month := time.January; month <= time.December; month++ {
		salary, err := e.SalaryDate(year, month)
		if err != nil {
			return Schedule{}, err
		}
		bonus, err := e.BonusDate(year, month)
		if err != nil {
			return Schedule{}, err
		}
		s.Rows = append(s.Rows, Row{Month: month, Salary: salary, Bonus: bonus})
	}
	return s, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// MonthName is the full English month name, e.g. "January".
// Out of range months render as "%!Month(13)".
func MonthName(month time.Month) string {
	return month.String()
}

// ResolveYear returns the current calendar year. Call it once per run and
// pass the result along.
func ResolveYear(clock generic.Clock) int {
	return generic.TimePointOf(clock.Now()).Year()
}

func validate(year int, month time.Month) error {
	if err := generic.ValidateYear(year); err != nil {
		return err
	}
	return generic.ValidateMonth(month)
}

// inMonth returns day unless it left the month it was computed for.
func inMonth(op string, year int, month time.Month, day generic.TimePoint) (generic.TimePoint, error) {
	if p := generic.MonthPeriod(year, month); !p.Contains(day) {
		err := fmt.Errorf("%w: %s not in %s", generic.ErrOutsideMonth, day, p)
		return generic.TimePoint{}, &generic.DateError{Op: op, Year: year, Month: month, Err: err}
	}
	return day, nil
}
