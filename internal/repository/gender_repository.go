package repository

import (
	"context"
	"database/sql"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/repository/builder"
)

type genderRepository struct {
	db *sql.DB
}

// NewGenderRepository creates a new instance of GenderRepository
func NewGenderRepository(db *sql.DB) domain.GenderRepository {
	return &genderRepository{db: db}
}

func (r *genderRepository) Create(ctx context.Context, g *domain.Gender) error {
	query := "INSERT INTO genders (gender_name) VALUES ($1) RETURNING gender_id"
	return r.db.QueryRowContext(ctx, query, g.GenderName).Scan(&g.GenderID)
}

func (r *genderRepository) GetByID(ctx context.Context, id int) (*domain.Gender, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select("gender_id", "gender_name").
		From("genders").
		Where("gender_id = ?", id).
		Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	var g domain.Gender
	if err := row.Scan(&g.GenderID, &g.GenderName); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *genderRepository) Update(ctx context.Context, g *domain.Gender) error {
	b := builder.NewSQLBuilder()
	query, args := b.Update("genders").
		Set("gender_name", g.GenderName).
		Where("gender_id = ?", g.GenderID).
		Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *genderRepository) Delete(ctx context.Context, id int) error {
	b := builder.NewSQLBuilder()
	query, args := b.Delete("genders").
		Where("gender_id = ?", id).
		Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *genderRepository) List(ctx context.Context) ([]domain.Gender, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select("gender_id", "gender_name").
		From("genders").
		OrderBy("gender_id ASC").
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genders []domain.Gender
	for rows.Next() {
		var g domain.Gender
		if err := rows.Scan(&g.GenderID, &g.GenderName); err != nil {
			return nil, err
		}
		genders = append(genders, g)
	}
	return genders, rows.Err()
}
