package repositories

import (
	"context"

	"chenu2/internal/models"
)

type ColorRepository interface {
	Create(ctx context.Context, color *models.Color) error
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Color, error)
}

type colorRepo struct {
	db Database
}

func NewColorRepository(db Database) ColorRepository {
	return &colorRepo{db: db}
}

func (r *colorRepo) Create(ctx context.Context, color *models.Color) error {
	query := `
		INSERT INTO colors (company_id, name, color_code, cost, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		color.CompanyID, color.Name, color.ColorCode, color.Cost,
	).Scan(&color.ID, &color.CreatedAt)
}

func (r *colorRepo) ListByCompany(ctx context.Context, companyID int64) ([]*models.Color, error) {
	query := `
		SELECT id, company_id, name, color_code, cost, created_at
		FROM colors
		WHERE company_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colors []*models.Color
	for rows.Next() {
		color := &models.Color{}
		if err := rows.Scan(&color.ID, &color.CompanyID, &color.Name, &color.ColorCode, &color.Cost, &color.CreatedAt); err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return colors, rows.Err()
}
