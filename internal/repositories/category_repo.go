package repositories

import (
	"context"
	"errors"

	"chenu2/internal/models"

	"github.com/jackc/pgx/v5"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	ListMainByCompany(ctx context.Context, companyID int64) ([]*models.Category, error)
	ListByParent(ctx context.Context, parentID int64) ([]*models.Category, error)
	// AncestorChain resolves the full category chain for a category id,
	// ordered leaf to root. The chain is loaded eagerly in one query so
	// callers never truncate the hierarchy by accident.
	AncestorChain(ctx context.Context, categoryID int64) ([]models.CategoryRef, error)
}

type categoryRepo struct {
	db Database
}

func NewCategoryRepository(db Database) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (company_id, parent_id, name, code)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, category.CompanyID, category.ParentID, category.Name, category.Code).Scan(&category.ID)
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	category := &models.Category{}
	query := `SELECT id, company_id, parent_id, name, code FROM categories WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.CompanyID, &category.ParentID, &category.Name, &category.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (r *categoryRepo) ListMainByCompany(ctx context.Context, companyID int64) ([]*models.Category, error) {
	query := `
		SELECT id, company_id, parent_id, name, code
		FROM categories
		WHERE company_id = $1 AND parent_id IS NULL
		ORDER BY id ASC
	`
	return r.queryCategories(ctx, query, companyID)
}

func (r *categoryRepo) ListByParent(ctx context.Context, parentID int64) ([]*models.Category, error) {
	query := `
		SELECT id, company_id, parent_id, name, code
		FROM categories
		WHERE parent_id = $1
		ORDER BY id ASC
	`
	return r.queryCategories(ctx, query, parentID)
}

func (r *categoryRepo) AncestorChain(ctx context.Context, categoryID int64) ([]models.CategoryRef, error) {
	query := `
		WITH RECURSIVE chain AS (
			SELECT id, parent_id, code, name, 0 AS depth
			FROM categories
			WHERE id = $1
			UNION ALL
			SELECT c.id, c.parent_id, c.code, c.name, chain.depth + 1
			FROM categories c
			JOIN chain ON c.id = chain.parent_id
		)
		SELECT id, code, name FROM chain ORDER BY depth ASC
	`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chain []models.CategoryRef
	for rows.Next() {
		var ref models.CategoryRef
		if err := rows.Scan(&ref.ID, &ref.Code, &ref.Name); err != nil {
			return nil, err
		}
		chain = append(chain, ref)
	}
	return chain, rows.Err()
}

func (r *categoryRepo) queryCategories(ctx context.Context, query string, args ...any) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.CompanyID, &category.ParentID, &category.Name, &category.Code); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
