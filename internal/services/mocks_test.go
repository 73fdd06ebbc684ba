package services

import (
	"context"
	"time"

	"chenu2/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetCatalogProduct(ctx context.Context, id int64) (*models.CatalogProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogProduct), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, companyID int64, nameQuery string, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, companyID, nameQuery, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListMainByCompany(ctx context.Context, companyID int64) ([]*models.Category, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByParent(ctx context.Context, parentID int64) ([]*models.Category, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) AncestorChain(ctx context.Context, categoryID int64) ([]models.CategoryRef, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryRef), args.Error(1)
}

type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) Create(ctx context.Context, option *models.Option) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockOptionRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Option, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Option), args.Error(1)
}

func (m *MockOptionRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Option, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Option), args.Error(1)
}

func (m *MockOptionRepository) ListByProduct(ctx context.Context, productID int64) ([]*models.Option, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Option), args.Error(1)
}

func (m *MockOptionRepository) ListCategoryDefaults(ctx context.Context, companyID, categoryID int64) ([]*models.Option, error) {
	args := m.Called(ctx, companyID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Option), args.Error(1)
}

type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) Create(ctx context.Context, variant *models.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) FindVariant(ctx context.Context, productID int64, specName, typeName string) (*models.ProductVariant, error) {
	args := m.Called(ctx, productID, specName, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) ListByProduct(ctx context.Context, productID int64) ([]*models.ProductVariant, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) Update(ctx context.Context, variant *models.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPricingMatrixRepository struct {
	mock.Mock
}

func (m *MockPricingMatrixRepository) Create(ctx context.Context, row *models.PricingMatrix) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockPricingMatrixRepository) FindTier(ctx context.Context, productID int64, optionName string, width int) (*models.PricingMatrix, error) {
	args := m.Called(ctx, productID, optionName, width)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingMatrix), args.Error(1)
}

func (m *MockPricingMatrixRepository) ListByProduct(ctx context.Context, productID int64) ([]*models.PricingMatrix, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PricingMatrix), args.Error(1)
}

func (m *MockPricingMatrixRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockColorRepository struct {
	mock.Mock
}

func (m *MockColorRepository) Create(ctx context.Context, color *models.Color) error {
	args := m.Called(ctx, color)
	return args.Error(0)
}

func (m *MockColorRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Color, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Color), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetCatalogProduct(ctx context.Context, productID int64) (*models.CatalogProduct, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogProduct), args.Error(1)
}

func (m *MockCacheService) SetCatalogProduct(ctx context.Context, product *models.CatalogProduct, ttl time.Duration) error {
	args := m.Called(ctx, product, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCacheService) GetOptions(ctx context.Context, companyID, productID int64) ([]*models.Option, error) {
	args := m.Called(ctx, companyID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Option), args.Error(1)
}

func (m *MockCacheService) SetOptions(ctx context.Context, companyID, productID int64, options []*models.Option, ttl time.Duration) error {
	args := m.Called(ctx, companyID, productID, options, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateCompany(ctx context.Context, companyID int64) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// catalogProduct builds a product with a leaf→root category code chain.
func catalogProduct(id int64, name string, basePrice int, chainCodes ...string) *models.CatalogProduct {
	chain := make([]models.CategoryRef, 0, len(chainCodes))
	for i, code := range chainCodes {
		chain = append(chain, models.CategoryRef{ID: int64(i + 1), Code: code, Name: code})
	}
	return &models.CatalogProduct{
		Product: models.Product{ID: id, CompanyID: 1, CategoryID: 1, Name: name, BasePrice: basePrice},
		Chain:   chain,
	}
}

func intPtr(v int) *int {
	return &v
}
