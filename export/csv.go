/*
Package export writes a payroll schedule as CSV.

FORMAT:
  Month,Salary,Bonus
  January,2024-01-31,2024-01-15
  ...
  December,2024-12-31,2024-12-18

  One header line, then one line per month in month order. Dates are
  YYYY-MM-DD. Standard CSV quoting; "\n" line endings.

FILE WRITES:
  WriteFile never leaves a half-written schedule behind. The CSV goes to a
  temporary file next to the destination and is renamed over it only after
  every line was written and the file was closed. The destination is thereby
  created or replaced on every run, never appended to.

SEE ALSO:
  - payroll/types.go: Schedule and Row
  - cmd/schedule/main.go: CLI that calls WriteFile
  - api/handlers.go: Serves the same CSV over HTTP
*/
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/warp/payroll-schedule/payroll"
)

// DefaultFileName is used when no output file is given.
const DefaultFileName = "schedule.csv"

// Header is the first line of every schedule file.
var Header = []string{"Month", "Salary", "Bonus"}

// ErrIncompleteSchedule is returned for schedules without twelve ordered rows.
var ErrIncompleteSchedule = errors.New("schedule must have 12 rows in month order")

// Record is one CSV line. Field order and tags define the header.
type Record struct {
	Month  string `csv:"Month"`
	Salary string `csv:"Salary"`
	Bonus  string `csv:"Bonus"`
}

// Records converts schedule rows to text records, preserving order.
func Records(s payroll.Schedule) []Record {
	records := make([]Record, 0, len(s.Rows))
	for _, r := range s.Rows {
		records = append(records, Record{
			Month:  r.MonthName(),
			Salary: r.Salary.String(),
			Bonus:  r.Bonus.String(),
		})
	}
	return records
}

// Write encodes the header and one line per month to w.
func Write(w io.Writer, s payroll.Schedule) error {
	if !s.Complete() {
		return fmt.Errorf("export %d: %w", s.Year, ErrIncompleteSchedule)
	}
	records := Records(s)
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("failed to encode schedule %d: %w", s.Year, err)
	}
	return nil
}

// WriteFile writes the schedule to path, replacing any existing file.
// On error the destination is left untouched and the temporary file removed.
func WriteFile(path string, s payroll.Schedule) (err error) {
	if path == "" {
		path = DefaultFileName
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	tmpName := tmp.Name()

	// Release the handle and drop the temp file on every failure path.
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = Write(tmp, s); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
