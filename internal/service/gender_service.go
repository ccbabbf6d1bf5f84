package service

import (
	"context"
	"fmt"

	"github.com/tucasahr/hr-apigateway/internal/domain"
)

// GenderService handles business logic for the gender reference list.
type GenderService struct {
	repo domain.GenderRepository
}

// NewGenderService creates a new GenderService instance
func NewGenderService(repo domain.GenderRepository) *GenderService {
	return &GenderService{repo: repo}
}

func (s *GenderService) Create(ctx context.Context, g *domain.Gender) error {
	if g.GenderName == "" {
		return fmt.Errorf("gender name cannot be empty")
	}
	return s.repo.Create(ctx, g)
}

func (s *GenderService) Get(ctx context.Context, id int) (*domain.Gender, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GenderService) Update(ctx context.Context, g *domain.Gender) error {
	if g.GenderName == "" {
		return fmt.Errorf("gender name cannot be empty")
	}
	return s.repo.Update(ctx, g)
}

func (s *GenderService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *GenderService) List(ctx context.Context) ([]domain.Gender, error) {
	return s.repo.List(ctx)
}
