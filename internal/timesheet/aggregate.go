package timesheet

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tucasahr/hr-apigateway/internal/domain"
)

// PayStrategy names one of the payroll formulas. Both appear in operator
// practice; they agree only when every leave category is zero, so the choice
// is configuration, not code.
type PayStrategy string

const (
	// PayWorkedPlusLeave pays punch-derived hours and leave hours at the
	// regular rate and overtime at the overtime rate.
	PayWorkedPlusLeave PayStrategy = "worked-plus-leave"
	// PayTotalMinusOvertime pays (punch total - overtime) at the regular rate
	// and overtime at the overtime rate. The punch total carries no leave
	// categories, so under this formula leave hours go unpaid; it matches
	// PayWorkedPlusLeave only when every leave field is zero.
	PayTotalMinusOvertime PayStrategy = "total-minus-overtime"
)

// ParsePayStrategy resolves a configured strategy name, defaulting to
// PayWorkedPlusLeave for anything unrecognized.
func ParsePayStrategy(name string) PayStrategy {
	if PayStrategy(name) == PayTotalMinusOvertime {
		return PayTotalMinusOvertime
	}
	return PayWorkedPlusLeave
}

// DailyWorkedHours computes the punch-derived hours of one entry. Both
// punches present: same-day wall-clock subtraction; a negative difference
// means the shift ran past midnight and 24 hours are added. Either punch
// absent or unparseable: zero, with leave fields still counting elsewhere.
func DailyWorkedHours(e Entry) float64 {
	if e.EntryTime == nil || e.ExitTime == nil {
		return 0
	}
	start, ok := parseClock(*e.EntryTime)
	if !ok {
		return 0
	}
	end, ok := parseClock(*e.ExitTime)
	if !ok {
		return 0
	}
	diff := float64(end-start) / 60.0
	if diff < 0 {
		diff += 24
	}
	return diff
}

// DailyTotalHours is the punch-derived hours plus every leave category,
// treating unrecorded fields as zero.
func DailyTotalHours(e Entry) float64 {
	return DailyWorkedHours(e) +
		hoursOrZero(e.OvertimeHours) +
		hoursOrZero(e.SickLeaveHours) +
		hoursOrZero(e.VacationHours) +
		hoursOrZero(e.HolidayHours) +
		hoursOrZero(e.OtherHours)
}

// RangeTotalHours sums the daily totals of one employee over the given
// dates. Dates without an entry contribute zero. No intermediate rounding:
// rounding only happens at presentation time via FormatHours.
func RangeTotalHours(t *Table, employeeID string, dates []string) float64 {
	total := 0.0
	for _, d := range dates {
		total += DailyTotalHours(t.EntryAt(d, employeeID))
	}
	return total
}

// RangeTotalPay computes the monetary pay of one employee over the given
// dates under the chosen strategy.
func RangeTotalPay(t *Table, emp domain.Employee, dates []string, strategy PayStrategy) float64 {
	var worked, overtime, leave float64
	for _, d := range dates {
		e := t.EntryAt(d, emp.EmployeeID)
		worked += DailyWorkedHours(e)
		overtime += hoursOrZero(e.OvertimeHours)
		leave += hoursOrZero(e.SickLeaveHours) +
			hoursOrZero(e.VacationHours) +
			hoursOrZero(e.HolidayHours) +
			hoursOrZero(e.OtherHours)
	}
	switch strategy {
	case PayTotalMinusOvertime:
		total := worked + overtime
		return (total-overtime)*emp.Rate + overtime*emp.OvertimeRate
	default:
		return worked*emp.Rate + overtime*emp.OvertimeRate + leave*emp.Rate
	}
}

// FormatHours renders an hour figure for display, rounded to 2 decimals.
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', 2, 64)
}

// FormatMoney renders a currency figure for display.
func FormatMoney(m float64) string {
	return fmt.Sprintf("$%.2f", math.Round(m*100)/100)
}

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func hoursOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
