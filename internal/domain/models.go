package domain

import "time"

// Employee represents the employees table. Rates are per-hour amounts used by
// the payroll calculation.
type Employee struct {
	EmployeeID    string    `json:"employeeId" db:"employee_id"`
	EmployeeName  string    `json:"employeeName" db:"employee_name"`
	EmployeeCode  string    `json:"employeeCode" db:"employee_code"`
	GenderID      int       `json:"gender" db:"gender_id"`
	DepartmentID  int       `json:"department" db:"department_id"`
	DateOfJoining time.Time `json:"dateOfJoining" db:"date_of_joining"`
	PhotoFileName string    `json:"photoFileName" db:"photo_file_name"`
	Rate          float64   `json:"rate" db:"rate"`
	OvertimeRate  float64   `json:"overtimeRate" db:"overtime_rate"`
}

// Department represents the departments table
type Department struct {
	DepartmentID   int    `json:"departmentId" db:"department_id"`
	DepartmentName string `json:"departmentName" db:"department_name"`
}

// Gender represents the genders table
type Gender struct {
	GenderID   int    `json:"genderId" db:"gender_id"`
	GenderName string `json:"genderName" db:"gender_name"`
}

// GenderCount is one row of the per-gender employee headcount report
type GenderCount struct {
	GenderName string `json:"genderName"`
	Count      int    `json:"count"`
}

// RawTimeRecord is the flat representation of one employee's punches and leave
// hours for one calendar date, as exchanged with clients and stored in the
// time_records table. Clock fields may arrive as full ISO date-times or as
// bare "HH:MM" values; nil means "not recorded", which is distinct from zero.
type RawTimeRecord struct {
	ID             string   `json:"id,omitempty" db:"id"`
	Date           string   `json:"date" db:"date"`
	EmployeeID     string   `json:"employeeId" db:"employee_id"`
	EntryTime      *string  `json:"entryTime,omitempty" db:"entry_time"`
	ExitTime       *string  `json:"exitTime,omitempty" db:"exit_time"`
	OvertimeHours  *float64 `json:"overtimeHours,omitempty" db:"overtime_hours"`
	SickLeaveHours *float64 `json:"sickLeaveHours,omitempty" db:"sick_leave_hours"`
	VacationHours  *float64 `json:"vacationHours,omitempty" db:"vacation_hours"`
	HolidayHours   *float64 `json:"holidayHours,omitempty" db:"holiday_hours"`
	OtherHours     *float64 `json:"otherHours,omitempty" db:"other_hours"`
}
