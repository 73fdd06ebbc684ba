package repositories

import (
	"context"
	"errors"

	"chenu2/internal/models"

	"github.com/jackc/pgx/v5"
)

type VariantRepository interface {
	Create(ctx context.Context, variant *models.ProductVariant) error
	// FindVariant looks up the unique (product, spec, type) row. Returns
	// (nil, nil) when no such variant exists.
	FindVariant(ctx context.Context, productID int64, specName, typeName string) (*models.ProductVariant, error)
	ListByProduct(ctx context.Context, productID int64) ([]*models.ProductVariant, error)
	Update(ctx context.Context, variant *models.ProductVariant) error
	Delete(ctx context.Context, id int64) error
}

type variantRepo struct {
	db Database
}

func NewVariantRepository(db Database) VariantRepository {
	return &variantRepo{db: db}
}

const variantColumns = `id, product_id, spec_name, type_name, price, note`

func (r *variantRepo) Create(ctx context.Context, variant *models.ProductVariant) error {
	query := `
		INSERT INTO product_variants (product_id, spec_name, type_name, price, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		variant.ProductID, variant.SpecName, variant.TypeName, variant.Price, variant.Note,
	).Scan(&variant.ID)
}

func (r *variantRepo) FindVariant(ctx context.Context, productID int64, specName, typeName string) (*models.ProductVariant, error) {
	variant := &models.ProductVariant{}
	query := `
		SELECT ` + variantColumns + `
		FROM product_variants
		WHERE product_id = $1 AND spec_name = $2 AND type_name = $3
	`
	err := r.db.QueryRow(ctx, query, productID, specName, typeName).Scan(
		&variant.ID, &variant.ProductID, &variant.SpecName, &variant.TypeName, &variant.Price, &variant.Note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return variant, nil
}

func (r *variantRepo) ListByProduct(ctx context.Context, productID int64) ([]*models.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE product_id = $1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []*models.ProductVariant
	for rows.Next() {
		variant := &models.ProductVariant{}
		if err := rows.Scan(&variant.ID, &variant.ProductID, &variant.SpecName, &variant.TypeName, &variant.Price, &variant.Note); err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}
	return variants, rows.Err()
}

func (r *variantRepo) Update(ctx context.Context, variant *models.ProductVariant) error {
	query := `
		UPDATE product_variants
		SET spec_name = $1, type_name = $2, price = $3, note = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, variant.SpecName, variant.TypeName, variant.Price, variant.Note, variant.ID)
	return err
}

func (r *variantRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	return err
}
