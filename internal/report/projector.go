// Package report projects aggregated time data into the tabular shapes the
// weekly report endpoints and exporters consume. It never computes hours on
// its own: every figure comes from the timesheet aggregator.
package report

import (
	"strings"
	"time"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/timesheet"
)

const isoDate = "2006-01-02"

// Row is one employee's line of the weekly report: the seven per-day entries
// (default entries where nothing was recorded) plus the range totals.
type Row struct {
	Employee   domain.Employee   `json:"employee"`
	PerDay     []timesheet.Entry `json:"perDay"`
	TotalHours float64           `json:"totalHours"`
	TotalPay   float64           `json:"totalPay"`
}

// WeekDays returns the 7 consecutive ISO dates starting at weekStart. The
// anchor is the literal caller-chosen date; it is not normalized to a
// calendar week boundary.
func WeekDays(weekStart time.Time) []string {
	days := make([]string, 7)
	for i := range days {
		days[i] = weekStart.AddDate(0, 0, i).Format(isoDate)
	}
	return days
}

// DisplayDate renders an ISO date as dd/MM/yyyy for report headers. Values
// that fail to parse pass through unchanged.
func DisplayDate(iso string) string {
	d, err := time.Parse(isoDate, iso)
	if err != nil {
		return iso
	}
	return d.Format("02/01/2006")
}

// FilterByEmployeeCode keeps employees whose code contains the given
// substring (case-sensitive). An empty filter returns the input unchanged,
// order preserved.
func FilterByEmployeeCode(employees []domain.Employee, substr string) []domain.Employee {
	if substr == "" {
		return employees
	}
	filtered := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(e.EmployeeCode, substr) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// BuildRows zips each employee against the week's entries and attaches the
// aggregator's range totals.
func BuildRows(employees []domain.Employee, t *timesheet.Table, weekDays []string, strategy timesheet.PayStrategy) []Row {
	rows := make([]Row, 0, len(employees))
	for _, emp := range employees {
		perDay := make([]timesheet.Entry, len(weekDays))
		for i, d := range weekDays {
			perDay[i] = t.EntryAt(d, emp.EmployeeID)
		}
		rows = append(rows, Row{
			Employee:   emp,
			PerDay:     perDay,
			TotalHours: timesheet.RangeTotalHours(t, emp.EmployeeID, weekDays),
			TotalPay:   timesheet.RangeTotalPay(t, emp, weekDays, strategy),
		})
	}
	return rows
}

// Matrix flattens report rows into the display matrix shared by the
// spreadsheet and document exporters: a header row followed by one row per
// employee with per-day total hours and the week total.
func Matrix(rows []Row, weekDays []string) [][]string {
	header := make([]string, 0, len(weekDays)+2)
	header = append(header, "Employee")
	for _, d := range weekDays {
		header = append(header, DisplayDate(d))
	}
	header = append(header, "Total Hours")

	matrix := [][]string{header}
	for _, row := range rows {
		cells := make([]string, 0, len(header))
		cells = append(cells, row.Employee.EmployeeName)
		for _, e := range row.PerDay {
			cells = append(cells, timesheet.FormatHours(timesheet.DailyTotalHours(e)))
		}
		cells = append(cells, timesheet.FormatHours(row.TotalHours))
		matrix = append(matrix, cells)
	}
	return matrix
}
