package repository

import (
	"context"
	"database/sql"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/repository/builder"
)

type departmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository creates a new instance of DepartmentRepository
func NewDepartmentRepository(db *sql.DB) domain.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, d *domain.Department) error {
	query := "INSERT INTO departments (department_name) VALUES ($1) RETURNING department_id"
	return r.db.QueryRowContext(ctx, query, d.DepartmentName).Scan(&d.DepartmentID)
}

func (r *departmentRepository) GetByID(ctx context.Context, id int) (*domain.Department, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select("department_id", "department_name").
		From("departments").
		Where("department_id = ?", id).
		Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	var d domain.Department
	if err := row.Scan(&d.DepartmentID, &d.DepartmentName); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *departmentRepository) Update(ctx context.Context, d *domain.Department) error {
	b := builder.NewSQLBuilder()
	query, args := b.Update("departments").
		Set("department_name", d.DepartmentName).
		Where("department_id = ?", d.DepartmentID).
		Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *departmentRepository) Delete(ctx context.Context, id int) error {
	b := builder.NewSQLBuilder()
	query, args := b.Delete("departments").
		Where("department_id = ?", id).
		Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select("department_id", "department_name").
		From("departments").
		OrderBy("department_id ASC").
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.DepartmentID, &d.DepartmentName); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
