/*
handlers.go - HTTP API handlers for the payroll schedule

PURPOSE:
  Exposes the schedule of the configured year over HTTP. Handlers only
  read: the year and the rules are fixed when the server starts, and each
  request recomputes from them.

ENDPOINTS:
  GET /api/schedule          Full year as JSON
  GET /api/schedule.csv      Full year as CSV (same bytes as the CLI file)
  GET /api/schedule/{month}  One month as JSON (month is 1-12)
  GET /api/rules             Active payment rules

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Month not a number or outside 1-12
  - 500: Rules that cannot place a date in the month, internal errors

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/warp/payroll-schedule/export"
	"github.com/warp/payroll-schedule/generic"
	"github.com/warp/payroll-schedule/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *payroll.Engine
	Year   int
	Logger *zap.Logger
}

// NewHandler creates a handler serving year with engine.
func NewHandler(engine *payroll.Engine, year int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Engine: engine, Year: year, Logger: logger}
}

// =============================================================================
// SCHEDULE HANDLERS
// =============================================================================

// GetSchedule returns the full year.
// GET /api/schedule
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	s, ok := h.schedule(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toScheduleDTO(s))
}

// GetScheduleCSV returns the full year in the CSV file format.
// GET /api/schedule.csv
func (h *Handler) GetScheduleCSV(w http.ResponseWriter, r *http.Request) {
	s, ok := h.schedule(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.DefaultFileName+`"`)
	if err := export.Write(w, s); err != nil {
		// Headers are gone by now; all we can do is log.
		h.Logger.Error("failed to write csv", zap.Int("year", s.Year), zap.Error(err))
	}
}

// GetScheduleMonth returns a single month.
// GET /api/schedule/{month}
func (h *Handler) GetScheduleMonth(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Month must be a number", err)
		return
	}
	month := time.Month(n)

	salary, err := h.Engine.SalaryDate(h.Year, month)
	if err != nil {
		h.writeDateError(w, err)
		return
	}
	bonus, err := h.Engine.BonusDate(h.Year, month)
	if err != nil {
		h.writeDateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRowDTO(payroll.Row{Month: month, Salary: salary, Bonus: bonus}))
}

// GetRules returns the active payment rules.
// GET /api/rules
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRulesDTO(h.Engine.Rules()))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) schedule(w http.ResponseWriter) (payroll.Schedule, bool) {
	s, err := h.Engine.Schedule(h.Year)
	if err != nil {
		h.writeDateError(w, err)
		return payroll.Schedule{}, false
	}
	return s, true
}

func (h *Handler) writeDateError(w http.ResponseWriter, err error) {
	if generic.IsClientError(err) {
		msg := "Invalid date"
		if errors.Is(err, generic.ErrInvalidMonth) {
			msg = "Month must be between 1 and 12"
		}
		writeError(w, http.StatusBadRequest, msg, err)
		return
	}
	if generic.IsRuleError(err) {
		h.Logger.Error("payroll rules cannot place date", zap.Int("year", h.Year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Payroll rules cannot place this date", err)
		return
	}
	h.Logger.Error("schedule computation failed", zap.Int("year", h.Year), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Failed to compute schedule", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
