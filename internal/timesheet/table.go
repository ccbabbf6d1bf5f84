// Package timesheet holds the in-memory time-record table and the hour and
// payroll aggregation rules. Every screen and exporter computes figures
// through this package; nothing else in the repository re-derives hours.
package timesheet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/logger"
)

// Field names the mutable fields of an Entry. The set is closed: writes with
// any other name are rejected instead of creating stray keys.
type Field string

const (
	FieldEntryTime      Field = "entryTime"
	FieldExitTime       Field = "exitTime"
	FieldOvertimeHours  Field = "overtimeHours"
	FieldSickLeaveHours Field = "sickLeaveHours"
	FieldVacationHours  Field = "vacationHours"
	FieldHolidayHours   Field = "holidayHours"
	FieldOtherHours     Field = "otherHours"
)

// ErrUnknownField is returned by SetField for names outside the closed set.
var ErrUnknownField = errors.New("unknown time entry field")

// ParseField validates a field name coming from a client patch.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldEntryTime, FieldExitTime, FieldOvertimeHours, FieldSickLeaveHours,
		FieldVacationHours, FieldHolidayHours, FieldOtherHours:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Entry is one employee's recorded time for one calendar date. Clock fields
// hold "HH:MM" wall-clock values. A nil field means "not recorded", which is
// distinct from a recorded zero; aggregation folds both to a zero
// contribution.
type Entry struct {
	EntryTime      *string  `json:"entryTime"`
	ExitTime       *string  `json:"exitTime"`
	OvertimeHours  *float64 `json:"overtimeHours"`
	SickLeaveHours *float64 `json:"sickLeaveHours"`
	VacationHours  *float64 `json:"vacationHours"`
	HolidayHours   *float64 `json:"holidayHours"`
	OtherHours     *float64 `json:"otherHours"`
}

// Table maps ISO date -> employee id -> Entry. At most one entry exists per
// (date, employee) pair; last write wins. Table itself is not safe for
// concurrent mutation: callers that share one across goroutines must
// serialize writes (see service.TimesheetService).
type Table struct {
	days map[string]map[string]*Entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{days: make(map[string]map[string]*Entry)}
}

// NewTableFromRecords builds a table from the flat record collection,
// grouping by date then employee. Clock fields are truncated from ISO
// date-times to "HH:MM". Records missing a date or employee id are skipped
// with a warning. The result depends only on the input, so re-ingesting the
// same records produces an identical table.
func NewTableFromRecords(ctx context.Context, records []domain.RawTimeRecord) *Table {
	t := NewTable()
	for i, rec := range records {
		if rec.Date == "" || rec.EmployeeID == "" {
			logger.WarnLog(ctx, "skipping malformed time record %d: missing date or employeeId", i)
			continue
		}
		date := isoDate(rec.Date)
		e := t.ensure(date, rec.EmployeeID)
		if rec.EntryTime != nil {
			e.EntryTime = clockOfDay(*rec.EntryTime)
		}
		if rec.ExitTime != nil {
			e.ExitTime = clockOfDay(*rec.ExitTime)
		}
		if rec.OvertimeHours != nil {
			e.OvertimeHours = copyFloat(rec.OvertimeHours)
		}
		if rec.SickLeaveHours != nil {
			e.SickLeaveHours = copyFloat(rec.SickLeaveHours)
		}
		if rec.VacationHours != nil {
			e.VacationHours = copyFloat(rec.VacationHours)
		}
		if rec.HolidayHours != nil {
			e.HolidayHours = copyFloat(rec.HolidayHours)
		}
		if rec.OtherHours != nil {
			e.OtherHours = copyFloat(rec.OtherHours)
		}
	}
	return t
}

func (t *Table) ensure(date, employeeID string) *Entry {
	emps, ok := t.days[date]
	if !ok {
		emps = make(map[string]*Entry)
		t.days[date] = emps
	}
	e, ok := emps[employeeID]
	if !ok {
		e = &Entry{}
		emps[employeeID] = e
	}
	return e
}

// SetField merges a single field value into the entry at (date, employeeID),
// creating the date and employee sub-maps when absent. Fields not named by
// the call keep their current values. Clock fields accept "HH:MM" strings
// (empty clears the punch); hour fields accept numbers or numeric strings,
// and anything unparseable is stored as "not recorded".
func (t *Table) SetField(date, employeeID string, field Field, value interface{}) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}
	e := t.ensure(isoDate(date), employeeID)
	switch field {
	case FieldEntryTime:
		e.EntryTime = clockValue(value)
	case FieldExitTime:
		e.ExitTime = clockValue(value)
	case FieldOvertimeHours:
		e.OvertimeHours = hoursValue(value)
	case FieldSickLeaveHours:
		e.SickLeaveHours = hoursValue(value)
	case FieldVacationHours:
		e.VacationHours = hoursValue(value)
	case FieldHolidayHours:
		e.HolidayHours = hoursValue(value)
	case FieldOtherHours:
		e.OtherHours = hoursValue(value)
	}
	return nil
}

// EntryAt returns a copy of the entry for (date, employeeID), or a default
// all-nil entry when none exists. It never returns a "missing" signal, which
// keeps the aggregation functions total.
func (t *Table) EntryAt(date, employeeID string) Entry {
	if emps, ok := t.days[isoDate(date)]; ok {
		if e, ok := emps[employeeID]; ok {
			return *e
		}
	}
	return Entry{}
}

// Dates returns the ISO dates present in the table, in no particular order.
func (t *Table) Dates() []string {
	dates := make([]string, 0, len(t.days))
	for d := range t.days {
		dates = append(dates, d)
	}
	return dates
}

// Len reports the number of (date, employee) entries held.
func (t *Table) Len() int {
	n := 0
	for _, emps := range t.days {
		n += len(emps)
	}
	return n
}

// isoDate truncates an ISO date-time to its calendar-date part.
func isoDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// clockOfDay extracts the "HH:MM" wall-clock part of an ISO date-time or a
// bare clock string. Values too short to contain a clock come back nil.
func clockOfDay(s string) *string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[i+1:]
	}
	if len(s) < 5 {
		return nil
	}
	hm := s[:5]
	return &hm
}

// clockValue interprets a patch value destined for a clock field.
func clockValue(v interface{}) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return clockOfDay(s)
}

// hoursValue tolerantly coerces a patch value destined for an hour field.
// Operators submit partially filled forms, so non-numeric input must not
// fail; it simply stays unrecorded.
func hoursValue(v interface{}) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case string:
		if n == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

func copyFloat(f *float64) *float64 {
	v := *f
	return &v
}
