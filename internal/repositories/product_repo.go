package repositories

import (
	"context"
	"errors"
	"fmt"

	"chenu2/internal/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	// GetCatalogProduct loads a product together with its eagerly resolved
	// category ancestor chain; this is the read the estimation engine uses.
	// Returns (nil, nil) when the product does not exist.
	GetCatalogProduct(ctx context.Context, id int64) (*models.CatalogProduct, error)
	// ListByCategory returns products of a category and, for main
	// categories, of all its direct sub categories as well.
	ListByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error)
	Search(ctx context.Context, companyID int64, nameQuery string, limit, offset int) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepo struct {
	db         Database
	categories CategoryRepository
}

func NewProductRepository(db Database, categories CategoryRepository) ProductRepository {
	return &productRepo{db: db, categories: categories}
}

const productColumns = `id, company_id, category_id, name, base_price, description, size_label, created_at, updated_at`

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (company_id, category_id, name, base_price, description, size_label, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		product.CompanyID, product.CategoryID, product.Name, product.BasePrice, product.Description, product.SizeLabel,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.CompanyID, &product.CategoryID, &product.Name, &product.BasePrice,
		&product.Description, &product.SizeLabel, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetCatalogProduct(ctx context.Context, id int64) (*models.CatalogProduct, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	chain, err := r.categories.AncestorChain(ctx, product.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve category chain for product %d: %w", id, err)
	}
	return &models.CatalogProduct{Product: *product, Chain: chain}, nil
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE category_id = $1
		   OR category_id IN (SELECT id FROM categories WHERE parent_id = $1)
		ORDER BY id ASC
	`, productColumns)
	return r.queryProducts(ctx, query, categoryID)
}

func (r *productRepo) Search(ctx context.Context, companyID int64, nameQuery string, limit, offset int) ([]*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE company_id = $1 AND name ILIKE '%%' || $2 || '%%'
		ORDER BY id ASC
		LIMIT $3 OFFSET $4
	`, productColumns)
	return r.queryProducts(ctx, query, companyID, nameQuery, limit, offset)
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET category_id = $1, name = $2, base_price = $3, description = $4, size_label = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query,
		product.CategoryID, product.Name, product.BasePrice, product.Description, product.SizeLabel, product.ID)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *productRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(
			&product.ID, &product.CompanyID, &product.CategoryID, &product.Name, &product.BasePrice,
			&product.Description, &product.SizeLabel, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
