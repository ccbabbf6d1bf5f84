package domain

import "context"

// EmployeeFilter defines criteria for listing employees
type EmployeeFilter struct {
	DepartmentID int
	Limit        int
	Offset       int
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	CountByGender(ctx context.Context) ([]GenderCount, error)
}

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	GetByID(ctx context.Context, id int) (*Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]Department, error)
}

// GenderRepository defines the interface for gender data access
type GenderRepository interface {
	Create(ctx context.Context, g *Gender) error
	GetByID(ctx context.Context, id int) (*Gender, error)
	Update(ctx context.Context, g *Gender) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]Gender, error)
}

// TimeRecordRepository defines the interface for the authoritative
// time-record collection. UpsertDay merges field-by-field: values absent from
// the incoming record never overwrite what is already stored.
type TimeRecordRepository interface {
	List(ctx context.Context) ([]RawTimeRecord, error)
	ListRange(ctx context.Context, fromDate, toDate string) ([]RawTimeRecord, error)
	UpsertDay(ctx context.Context, rec *RawTimeRecord) error
}
