package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/report"
	"github.com/tucasahr/hr-apigateway/internal/timesheet"
	"github.com/tucasahr/hr-apigateway/pkg/reportpdf"
	"github.com/tucasahr/hr-apigateway/pkg/reportsheet"
)

var documentColumns = []string{
	"Date", "Entry", "Exit", "Overtime", "Sick", "Vacation", "Holiday", "Other", "Total Hours",
}

// ReportService produces the weekly report in its three shapes: JSON rows,
// an xlsx sheet for all employees, and a per-employee PDF document. All
// hour and pay figures come from the timesheet aggregator; the exporters
// only format.
type ReportService struct {
	employees *EmployeeService
	times     *TimesheetService
	strategy  timesheet.PayStrategy
	company   string
	layout    reportsheet.Layout
}

// NewReportService creates a new ReportService instance
func NewReportService(employees *EmployeeService, times *TimesheetService, strategy timesheet.PayStrategy, company string, layout reportsheet.Layout) *ReportService {
	return &ReportService{
		employees: employees,
		times:     times,
		strategy:  strategy,
		company:   company,
		layout:    layout,
	}
}

// WeeklyRows builds one report row per employee for the 7 days starting at
// weekStart, optionally filtered by employee code substring.
func (s *ReportService) WeeklyRows(ctx context.Context, weekStart time.Time, codeFilter string) ([]report.Row, []string, error) {
	employees, err := s.employees.List(ctx, domain.EmployeeFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("list employees: %w", err)
	}
	table, err := s.times.Table(ctx)
	if err != nil {
		return nil, nil, err
	}

	employees = report.FilterByEmployeeCode(employees, codeFilter)
	days := report.WeekDays(weekStart)
	return report.BuildRows(employees, table, days, s.strategy), days, nil
}

// WeeklySheet renders the all-employee weekly matrix as an xlsx workbook.
func (s *ReportService) WeeklySheet(ctx context.Context, weekStart time.Time, codeFilter string) ([]byte, error) {
	rows, days, err := s.WeeklyRows(ctx, weekStart, codeFilter)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("%s - Weekly Hours Report", s.company)
	return reportsheet.NewExporter(s.layout).Render(title, report.Matrix(rows, days))
}

// WeeklyDocument renders one employee's week as a printable PDF time sheet.
func (s *ReportService) WeeklyDocument(ctx context.Context, weekStart time.Time, employeeID string) ([]byte, error) {
	rows, days, err := s.WeeklyRows(ctx, weekStart, "")
	if err != nil {
		return nil, err
	}

	var row *report.Row
	for i := range rows {
		if rows[i].Employee.EmployeeID == employeeID {
			row = &rows[i]
			break
		}
	}
	if row == nil {
		return nil, fmt.Errorf("employee %s not found", employeeID)
	}

	doc := reportpdf.TimesheetDoc{
		Company:      s.company,
		Subtitle:     "Work Schedule Report",
		WeekOf:       report.DisplayDate(days[0]),
		EmployeeName: row.Employee.EmployeeName,
		EmployeeCode: row.Employee.EmployeeCode,
		Columns:      documentColumns,
		TotalHours:   timesheet.FormatHours(row.TotalHours),
		TotalPay:     timesheet.FormatMoney(row.TotalPay),
	}
	for i, day := range days {
		e := row.PerDay[i]
		doc.Rows = append(doc.Rows, []string{
			report.DisplayDate(day),
			clockCell(e.EntryTime),
			clockCell(e.ExitTime),
			hoursCell(e.OvertimeHours),
			hoursCell(e.SickLeaveHours),
			hoursCell(e.VacationHours),
			hoursCell(e.HolidayHours),
			hoursCell(e.OtherHours),
			timesheet.FormatHours(timesheet.DailyTotalHours(e)),
		})
	}

	return reportpdf.Render(doc)
}

func clockCell(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

func hoursCell(v *float64) string {
	if v == nil {
		return timesheet.FormatHours(0)
	}
	return timesheet.FormatHours(*v)
}
