package service

import (
	"context"
	"fmt"

	"github.com/tucasahr/hr-apigateway/internal/domain"
)

// EmployeeService handles business logic for the employee directory.
type EmployeeService struct {
	repo domain.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(repo domain.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) Create(ctx context.Context, e *domain.Employee) error {
	if e.EmployeeID == "" {
		return fmt.Errorf("employee id cannot be empty")
	}
	if e.EmployeeName == "" {
		return fmt.Errorf("employee name cannot be empty")
	}
	if e.Rate < 0 || e.OvertimeRate < 0 {
		return fmt.Errorf("rates cannot be negative")
	}
	return s.repo.Create(ctx, e)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) Update(ctx context.Context, e *domain.Employee) error {
	if e.EmployeeID == "" {
		return fmt.Errorf("employee id cannot be empty")
	}
	return s.repo.Update(ctx, e)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	return s.repo.List(ctx, filter)
}

// GenderCounts returns the per-gender employee headcount.
func (s *EmployeeService) GenderCounts(ctx context.Context) ([]domain.GenderCount, error) {
	return s.repo.CountByGender(ctx)
}
