package repository

import (
	"context"
	"database/sql"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/repository/builder"
)

var employeeColumns = []string{
	"employee_id", "employee_name", "employee_code", "gender_id",
	"department_id", "date_of_joining", "photo_file_name", "rate", "overtime_rate",
}

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new instance of EmployeeRepository
func NewEmployeeRepository(db *sql.DB) domain.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	b := builder.NewSQLBuilder()
	query, args := b.Insert("employees", employeeColumns...).
		Values(e.EmployeeID, e.EmployeeName, e.EmployeeCode, e.GenderID,
			e.DepartmentID, e.DateOfJoining, e.PhotoFileName, e.Rate, e.OvertimeRate).
		Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select(employeeColumns...).
		From("employees").
		Where("employee_id = ?", id).
		Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	var e domain.Employee
	if err := scanEmployee(row.Scan, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	b := builder.NewSQLBuilder()
	query, args := b.Update("employees").
		Set("employee_name", e.EmployeeName).
		Set("employee_code", e.EmployeeCode).
		Set("gender_id", e.GenderID).
		Set("department_id", e.DepartmentID).
		Set("date_of_joining", e.DateOfJoining).
		Set("photo_file_name", e.PhotoFileName).
		Set("rate", e.Rate).
		Set("overtime_rate", e.OvertimeRate).
		Where("employee_id = ?", e.EmployeeID).
		Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	b := builder.NewSQLBuilder()
	query, args := b.Delete("employees").
		Where("employee_id = ?", id).
		Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	b := builder.NewSQLBuilder()
	b.Select(employeeColumns...).
		From("employees").
		OrderBy("employee_id ASC")

	if filter.DepartmentID > 0 {
		b.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Limit > 0 {
		b.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		b.Offset(filter.Offset)
	}

	query, args := b.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := scanEmployee(rows.Scan, &e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) CountByGender(ctx context.Context) ([]domain.GenderCount, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select("g.gender_name", "COUNT(e.employee_id)").
		From("genders g").
		Join("LEFT", "employees e", "e.gender_id = g.gender_id").
		Build()
	query += " GROUP BY g.gender_id, g.gender_name ORDER BY g.gender_id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.GenderCount
	for rows.Next() {
		var gc domain.GenderCount
		if err := rows.Scan(&gc.GenderName, &gc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, gc)
	}
	return counts, rows.Err()
}

func scanEmployee(scan func(dest ...interface{}) error, e *domain.Employee) error {
	return scan(&e.EmployeeID, &e.EmployeeName, &e.EmployeeCode, &e.GenderID,
		&e.DepartmentID, &e.DateOfJoining, &e.PhotoFileName, &e.Rate, &e.OvertimeRate)
}
