package service

import (
	"context"
	"fmt"

	"github.com/tucasahr/hr-apigateway/internal/domain"
)

// DepartmentService handles business logic for departments.
type DepartmentService struct {
	repo domain.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService instance
func NewDepartmentService(repo domain.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

func (s *DepartmentService) Create(ctx context.Context, d *domain.Department) error {
	if d.DepartmentName == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	return s.repo.Create(ctx, d)
}

func (s *DepartmentService) Get(ctx context.Context, id int) (*domain.Department, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DepartmentService) Update(ctx context.Context, d *domain.Department) error {
	if d.DepartmentName == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	return s.repo.Update(ctx, d)
}

func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.List(ctx)
}
