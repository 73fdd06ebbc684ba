package pricing

import (
	"context"

	"chenu2/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockTierReader struct {
	mock.Mock
}

func (m *MockTierReader) FindTier(ctx context.Context, productID int64, optionName string, width int) (*models.PricingMatrix, error) {
	args := m.Called(ctx, productID, optionName, width)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingMatrix), args.Error(1)
}

type MockVariantReader struct {
	mock.Mock
}

func (m *MockVariantReader) FindVariant(ctx context.Context, productID int64, specName, typeName string) (*models.ProductVariant, error) {
	args := m.Called(ctx, productID, specName, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductVariant), args.Error(1)
}

type MockOptionReader struct {
	mock.Mock
}

func (m *MockOptionReader) GetByIDs(ctx context.Context, ids []int64) ([]*models.Option, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Option), args.Error(1)
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
