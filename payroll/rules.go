package payroll

import (
	"fmt"
	"time"

	"github.com/warp/payroll-schedule/generic"
)

// =============================================================================
// RULES - When salary and bonus may be paid
// =============================================================================

const (
	// DefaultBonusDay is the day of the month the bonus is paid on.
	DefaultBonusDay = 15

	// DefaultBonusWeekday is where a bonus lands when the bonus day is not payable.
	DefaultBonusWeekday = time.Wednesday
)

// Rules configures the two date adjustments. Rules is a value: the engine
// keeps its own copy and nothing mutates it after construction.
type Rules struct {
	// ForbiddenDays are weekdays on which nothing is paid.
	ForbiddenDays generic.WeekdaySet

	// BonusDay is the nominal day of the month for the bonus (1-28).
	BonusDay int

	// BonusWeekday is the weekday a forbidden bonus day is moved forward to.
	BonusWeekday time.Weekday
}

// DefaultRules: no payments on Saturday or Sunday, bonus on the 15th,
// weekend bonuses moved to the following Wednesday.
func DefaultRules() Rules {
	return Rules{
		ForbiddenDays: generic.Weekend,
		BonusDay:      DefaultBonusDay,
		BonusWeekday:  DefaultBonusWeekday,
	}
}

// Validate rejects rule sets under which the salary search could not
// terminate or the bonus day does not exist in every month.
func (r Rules) Validate() error {
	if r.ForbiddenDays.Full() {
		return fmt.Errorf("%w: %s", generic.ErrNoWorkdays, r.ForbiddenDays)
	}
	if r.BonusDay < 1 || r.BonusDay > 28 {
		return fmt.Errorf("%w: got %d", generic.ErrInvalidBonusDay, r.BonusDay)
	}
	if !generic.ValidWeekday(r.BonusWeekday) {
		return fmt.Errorf("%w: %d", generic.ErrInvalidWeekday, int(r.BonusWeekday))
	}
	return nil
}

// Payable reports whether money may be paid on day.
func (r Rules) Payable(day generic.TimePoint) bool {
	return !r.ForbiddenDays.Contains(day.Weekday())
}
