/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the payroll model from the external API contract: dates are rendered as
  YYYY-MM-DD strings and months by name, exactly as in the CSV file.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Error and wrapper types

SEE ALSO:
  - handlers.go: Uses these types
  - export/csv.go: Same fields, CSV encoding
*/
package api

import (
	"github.com/warp/payroll-schedule/payroll"
)

// RowDTO is one month of the schedule.
type RowDTO struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"month_number"`
	Salary      string `json:"salary"`
	Bonus       string `json:"bonus"`
}

// ScheduleDTO is a full year.
type ScheduleDTO struct {
	Year int      `json:"year"`
	Rows []RowDTO `json:"rows"`
}

// RulesDTO describes the active payment rules.
type RulesDTO struct {
	ForbiddenDays []string `json:"forbidden_days"`
	BonusDay      int      `json:"bonus_day"`
	BonusWeekday  string   `json:"bonus_weekday"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toRowDTO(r payroll.Row) RowDTO {
	return RowDTO{
		Month:       r.MonthName(),
		MonthNumber: int(r.Month),
		Salary:      r.Salary.String(),
		Bonus:       r.Bonus.String(),
	}
}

func toScheduleDTO(s payroll.Schedule) ScheduleDTO {
	rows := make([]RowDTO, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, toRowDTO(r))
	}
	return ScheduleDTO{Year: s.Year, Rows: rows}
}

func toRulesDTO(r payroll.Rules) RulesDTO {
	days := r.ForbiddenDays.Days()
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return RulesDTO{
		ForbiddenDays: names,
		BonusDay:      r.BonusDay,
		BonusWeekday:  r.BonusWeekday.String(),
	}
}
