package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/timesheet"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestWeekDays(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	days := WeekDays(monday)

	require.Len(t, days, 7)
	assert.Equal(t, []string{
		"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06",
		"2024-06-07", "2024-06-08", "2024-06-09",
	}, days)

	// The anchor is taken literally, mid-week starts are fine.
	thursday := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-06", WeekDays(thursday)[0])
}

func TestWeekDaysCrossesMonthBoundary(t *testing.T) {
	days := WeekDays(time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-01-31", days[2])
	assert.Equal(t, "2024-02-01", days[3])
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "03/06/2024", DisplayDate("2024-06-03"))
	assert.Equal(t, "not-a-date", DisplayDate("not-a-date"))
}

func TestFilterByEmployeeCode(t *testing.T) {
	employees := []domain.Employee{
		{EmployeeID: "1", EmployeeCode: "EMP-001"},
		{EmployeeID: "2", EmployeeCode: "EMP-002"},
		{EmployeeID: "3", EmployeeCode: "TMP-001"},
	}

	t.Run("empty filter is the identity", func(t *testing.T) {
		got := FilterByEmployeeCode(employees, "")
		assert.Equal(t, employees, got)
	})

	t.Run("substring match preserves order", func(t *testing.T) {
		got := FilterByEmployeeCode(employees, "-001")
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].EmployeeID)
		assert.Equal(t, "3", got[1].EmployeeID)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		assert.Empty(t, FilterByEmployeeCode(employees, "emp"))
	})
}

func TestBuildRowsAndMatrix(t *testing.T) {
	employees := []domain.Employee{
		{EmployeeID: "42", EmployeeName: "Isaac", EmployeeCode: "EMP-042", Rate: 18, OvertimeRate: 25},
		{EmployeeID: "7", EmployeeName: "Erlinda", EmployeeCode: "EMP-007", Rate: 15, OvertimeRate: 20},
	}
	records := []domain.RawTimeRecord{
		{
			Date:          "2024-06-03",
			EmployeeID:    "42",
			EntryTime:     strPtr("2024-06-03T08:00:00"),
			ExitTime:      strPtr("2024-06-03T16:00:00"),
			OvertimeHours: floatPtr(2),
		},
		{Date: "2024-06-04", EmployeeID: "42", SickLeaveHours: floatPtr(8)},
	}
	table := timesheet.NewTableFromRecords(context.Background(), records)
	weekDays := WeekDays(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))

	rows := BuildRows(employees, table, weekDays, timesheet.PayWorkedPlusLeave)
	require.Len(t, rows, 2)

	t.Run("totals come from the aggregator", func(t *testing.T) {
		assert.InDelta(t, 18.0, rows[0].TotalHours, 1e-9) // 8 worked + 2 ot + 8 sick
		assert.InDelta(t, 8*18+2*25+8*18, rows[0].TotalPay, 1e-9)
		assert.Zero(t, rows[1].TotalHours)
		assert.Zero(t, rows[1].TotalPay)
	})

	t.Run("days without entries get defaults", func(t *testing.T) {
		require.Len(t, rows[0].PerDay, 7)
		assert.Equal(t, timesheet.Entry{}, rows[0].PerDay[6])
	})

	t.Run("matrix carries header and display strings", func(t *testing.T) {
		matrix := Matrix(rows, weekDays)
		require.Len(t, matrix, 3)

		header := matrix[0]
		require.Len(t, header, 9)
		assert.Equal(t, "Employee", header[0])
		assert.Equal(t, "03/06/2024", header[1])
		assert.Equal(t, "Total Hours", header[8])

		isaac := matrix[1]
		assert.Equal(t, "Isaac", isaac[0])
		assert.Equal(t, "10.00", isaac[1]) // 8 worked + 2 overtime
		assert.Equal(t, "8.00", isaac[2])  // sick leave only
		assert.Equal(t, "0.00", isaac[3])
		assert.Equal(t, "18.00", isaac[8])

		erlinda := matrix[2]
		assert.Equal(t, "Erlinda", erlinda[0])
		assert.Equal(t, "0.00", erlinda[8])
	})
}
