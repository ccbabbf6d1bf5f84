package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tucasahr/hr-apigateway/internal/domain"
)

func TestDailyWorkedHours(t *testing.T) {
	t.Run("regular shift", func(t *testing.T) {
		e := Entry{EntryTime: strPtr("08:00"), ExitTime: strPtr("17:00")}
		assert.InDelta(t, 9.0, DailyWorkedHours(e), 1e-9)
	})

	t.Run("overnight shift wraps across midnight", func(t *testing.T) {
		e := Entry{EntryTime: strPtr("22:00"), ExitTime: strPtr("06:00")}
		assert.InDelta(t, 8.0, DailyWorkedHours(e), 1e-9)
	})

	t.Run("missing punch contributes zero regardless of leave", func(t *testing.T) {
		entries := []Entry{
			{EntryTime: strPtr("08:00")},
			{ExitTime: strPtr("17:00")},
			{},
			{EntryTime: strPtr("08:00"), SickLeaveHours: floatPtr(8)},
		}
		for _, e := range entries {
			assert.Zero(t, DailyWorkedHours(e))
		}
	})

	t.Run("unparseable clock behaves like a missing punch", func(t *testing.T) {
		e := Entry{EntryTime: strPtr("8am!!"), ExitTime: strPtr("17:00")}
		assert.Zero(t, DailyWorkedHours(e))
	})

	t.Run("partial hours", func(t *testing.T) {
		e := Entry{EntryTime: strPtr("08:30"), ExitTime: strPtr("12:45")}
		assert.InDelta(t, 4.25, DailyWorkedHours(e), 1e-9)
	})
}

func TestDailyTotalHours(t *testing.T) {
	t.Run("punches only equals worked hours", func(t *testing.T) {
		e := Entry{EntryTime: strPtr("09:00"), ExitTime: strPtr("17:00")}
		assert.Equal(t, DailyWorkedHours(e), DailyTotalHours(e))
	})

	t.Run("leave hours stack on worked hours", func(t *testing.T) {
		e := Entry{
			EntryTime:     strPtr("08:00"),
			ExitTime:      strPtr("17:00"),
			OvertimeHours: floatPtr(1),
		}
		assert.InDelta(t, 10.0, DailyTotalHours(e), 1e-9)
	})

	t.Run("leave counts even without punches", func(t *testing.T) {
		e := Entry{SickLeaveHours: floatPtr(4), VacationHours: floatPtr(2)}
		assert.InDelta(t, 6.0, DailyTotalHours(e), 1e-9)
	})
}

func TestRangeTotalHours(t *testing.T) {
	table := NewTable()
	_ = table.SetField("2024-06-03", "42", FieldEntryTime, "08:00")
	_ = table.SetField("2024-06-03", "42", FieldExitTime, "16:00")
	_ = table.SetField("2024-06-04", "42", FieldEntryTime, "08:00")
	_ = table.SetField("2024-06-04", "42", FieldExitTime, "12:00")
	_ = table.SetField("2024-06-05", "42", FieldHolidayHours, 8)

	t.Run("absent dates contribute zero", func(t *testing.T) {
		dates := []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06"}
		assert.InDelta(t, 20.0, RangeTotalHours(table, "42", dates), 1e-9)
	})

	t.Run("additive over disjoint date sets", func(t *testing.T) {
		daysA := []string{"2024-06-03", "2024-06-04"}
		daysB := []string{"2024-06-05", "2024-06-06"}
		all := append(append([]string{}, daysA...), daysB...)
		assert.InDelta(t,
			RangeTotalHours(table, "42", daysA)+RangeTotalHours(table, "42", daysB),
			RangeTotalHours(table, "42", all), 1e-9)
	})

	t.Run("unknown employee totals zero", func(t *testing.T) {
		assert.Zero(t, RangeTotalHours(table, "no-such", []string{"2024-06-03"}))
	})
}

func TestRangeTotalPay(t *testing.T) {
	emp := domain.Employee{EmployeeID: "42", Rate: 18, OvertimeRate: 25}

	t.Run("regular plus overtime", func(t *testing.T) {
		table := NewTable()
		_ = table.SetField("2024-06-03", "42", FieldEntryTime, "08:00")
		_ = table.SetField("2024-06-03", "42", FieldExitTime, "16:00")
		_ = table.SetField("2024-06-03", "42", FieldOvertimeHours, 2)

		dates := []string{"2024-06-03"}
		pay := RangeTotalPay(table, emp, dates, PayWorkedPlusLeave)
		assert.InDelta(t, 8*18+2*25, pay, 1e-9)
		// Without leave hours both strategies agree.
		assert.InDelta(t, pay, RangeTotalPay(table, emp, dates, PayTotalMinusOvertime), 1e-9)
	})

	t.Run("strategies diverge when leave hours are present", func(t *testing.T) {
		table := NewTable()
		_ = table.SetField("2024-06-03", "42", FieldEntryTime, "08:00")
		_ = table.SetField("2024-06-03", "42", FieldExitTime, "16:00")
		_ = table.SetField("2024-06-03", "42", FieldOvertimeHours, 2)
		_ = table.SetField("2024-06-03", "42", FieldVacationHours, 4)

		dates := []string{"2024-06-03"}
		workedPlusLeave := RangeTotalPay(table, emp, dates, PayWorkedPlusLeave)
		totalMinusOvertime := RangeTotalPay(table, emp, dates, PayTotalMinusOvertime)

		// worked 8h + 4h vacation at 18, 2h overtime at 25
		assert.InDelta(t, (8+4)*18+2*25, workedPlusLeave, 1e-9)
		// punch total only: 8h at 18, 2h overtime at 25, vacation unpaid
		assert.InDelta(t, 8*18+2*25, totalMinusOvertime, 1e-9)
		assert.NotEqual(t, workedPlusLeave, totalMinusOvertime)
	})
}

func TestParsePayStrategy(t *testing.T) {
	assert.Equal(t, PayWorkedPlusLeave, ParsePayStrategy(""))
	assert.Equal(t, PayWorkedPlusLeave, ParsePayStrategy("nonsense"))
	assert.Equal(t, PayTotalMinusOvertime, ParsePayStrategy("total-minus-overtime"))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "9.00", FormatHours(9))
	assert.Equal(t, "4.25", FormatHours(4.25))
	assert.Equal(t, "0.33", FormatHours(1.0/3.0))
}
