package repositories

import (
	"context"
	"errors"

	"chenu2/internal/models"

	"github.com/jackc/pgx/v5"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetByCode(ctx context.Context, code string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
}

type companyRepo struct {
	db Database
}

func NewCompanyRepository(db Database) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (name, code, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, company.Name, company.Code).Scan(&company.ID, &company.CreatedAt)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company := &models.Company{}
	query := `SELECT id, name, code, created_at FROM companies WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.Code, &company.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) GetByCode(ctx context.Context, code string) (*models.Company, error) {
	company := &models.Company{}
	query := `SELECT id, name, code, created_at FROM companies WHERE code = $1`
	err := r.db.QueryRow(ctx, query, code).Scan(&company.ID, &company.Name, &company.Code, &company.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) List(ctx context.Context) ([]*models.Company, error) {
	query := `SELECT id, name, code, created_at FROM companies ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(&company.ID, &company.Name, &company.Code, &company.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}
