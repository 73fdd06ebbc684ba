package repositories

import (
	"context"

	"chenu2/internal/models"
)

type OptionRepository interface {
	Create(ctx context.Context, option *models.Option) error
	// GetByIDs returns the option rows for the given ids. Ids that do not
	// resolve are silently absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Option, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Option, error)
	ListByProduct(ctx context.Context, productID int64) ([]*models.Option, error)
	// ListCategoryDefaults returns options bound to a category but to no
	// particular product, i.e. the category-wide defaults.
	ListCategoryDefaults(ctx context.Context, companyID, categoryID int64) ([]*models.Option, error)
}

type optionRepo struct {
	db Database
}

func NewOptionRepository(db Database) OptionRepository {
	return &optionRepo{db: db}
}

const optionColumns = `id, company_id, category_id, product_id, name, add_price`

func (r *optionRepo) Create(ctx context.Context, option *models.Option) error {
	query := `
		INSERT INTO options (company_id, category_id, product_id, name, add_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		option.CompanyID, option.CategoryID, option.ProductID, option.Name, option.AddPrice,
	).Scan(&option.ID)
}

func (r *optionRepo) GetByIDs(ctx context.Context, ids []int64) ([]*models.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + optionColumns + ` FROM options WHERE id = ANY($1) ORDER BY id ASC`
	return r.queryOptions(ctx, query, ids)
}

func (r *optionRepo) ListByCompany(ctx context.Context, companyID int64) ([]*models.Option, error) {
	query := `SELECT ` + optionColumns + ` FROM options WHERE company_id = $1 ORDER BY id ASC`
	return r.queryOptions(ctx, query, companyID)
}

func (r *optionRepo) ListByProduct(ctx context.Context, productID int64) ([]*models.Option, error) {
	query := `SELECT ` + optionColumns + ` FROM options WHERE product_id = $1 ORDER BY id ASC`
	return r.queryOptions(ctx, query, productID)
}

func (r *optionRepo) ListCategoryDefaults(ctx context.Context, companyID, categoryID int64) ([]*models.Option, error) {
	query := `
		SELECT ` + optionColumns + `
		FROM options
		WHERE company_id = $1 AND category_id = $2 AND product_id IS NULL
		ORDER BY id ASC
	`
	return r.queryOptions(ctx, query, companyID, categoryID)
}

func (r *optionRepo) queryOptions(ctx context.Context, query string, args ...any) ([]*models.Option, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []*models.Option
	for rows.Next() {
		option := &models.Option{}
		if err := rows.Scan(&option.ID, &option.CompanyID, &option.CategoryID, &option.ProductID, &option.Name, &option.AddPrice); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, rows.Err()
}
