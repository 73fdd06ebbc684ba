package repositories

import (
	"context"
	"errors"

	"chenu2/internal/models"

	"github.com/jackc/pgx/v5"
)

type PricingMatrixRepository interface {
	Create(ctx context.Context, row *models.PricingMatrix) error
	// FindTier returns the tightest tier covering the requested width for a
	// (product, tier label) pair: the row with the smallest max_width that is
	// still >= width, ties broken by the smallest max_height. Bounds are
	// inclusive. Returns (nil, nil) when no tier covers the width.
	FindTier(ctx context.Context, productID int64, optionName string, width int) (*models.PricingMatrix, error)
	ListByProduct(ctx context.Context, productID int64) ([]*models.PricingMatrix, error)
	Delete(ctx context.Context, id int64) error
}

type pricingMatrixRepo struct {
	db Database
}

func NewPricingMatrixRepository(db Database) PricingMatrixRepository {
	return &pricingMatrixRepo{db: db}
}

const matrixColumns = `id, product_id, option_name, max_width, max_height, price`

func (r *pricingMatrixRepo) Create(ctx context.Context, row *models.PricingMatrix) error {
	if row.MaxWidth == 0 {
		row.MaxWidth = models.UnboundedDimension
	}
	if row.MaxHeight == 0 {
		row.MaxHeight = models.UnboundedDimension
	}
	query := `
		INSERT INTO price_matrix (product_id, option_name, max_width, max_height, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		row.ProductID, row.OptionName, row.MaxWidth, row.MaxHeight, row.Price,
	).Scan(&row.ID)
}

func (r *pricingMatrixRepo) FindTier(ctx context.Context, productID int64, optionName string, width int) (*models.PricingMatrix, error) {
	row := &models.PricingMatrix{}
	query := `
		SELECT ` + matrixColumns + `
		FROM price_matrix
		WHERE product_id = $1 AND option_name = $2 AND max_width >= $3
		ORDER BY max_width ASC, max_height ASC
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, productID, optionName, width).Scan(
		&row.ID, &row.ProductID, &row.OptionName, &row.MaxWidth, &row.MaxHeight, &row.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (r *pricingMatrixRepo) ListByProduct(ctx context.Context, productID int64) ([]*models.PricingMatrix, error) {
	query := `SELECT ` + matrixColumns + ` FROM price_matrix WHERE product_id = $1 ORDER BY option_name ASC, max_width ASC`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []*models.PricingMatrix
	for rows.Next() {
		tier := &models.PricingMatrix{}
		if err := rows.Scan(&tier.ID, &tier.ProductID, &tier.OptionName, &tier.MaxWidth, &tier.MaxHeight, &tier.Price); err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, rows.Err()
}

func (r *pricingMatrixRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM price_matrix WHERE id = $1`, id)
	return err
}
