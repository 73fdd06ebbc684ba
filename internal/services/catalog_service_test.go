package services

import (
	"context"
	"errors"
	"testing"

	"chenu2/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type catalogFixture struct {
	categories *MockCategoryRepository
	products   *MockProductRepository
	options    *MockOptionRepository
	variants   *MockVariantRepository
	colors     *MockColorRepository
	cache      *MockCacheService
	service    CatalogService
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		categories: new(MockCategoryRepository),
		products:   new(MockProductRepository),
		options:    new(MockOptionRepository),
		variants:   new(MockVariantRepository),
		colors:     new(MockColorRepository),
		cache:      new(MockCacheService),
	}
	f.service = NewCatalogService(f.categories, f.products, f.options, f.variants, f.colors, f.cache)
	return f
}

func TestOptionsForProductMergesChainDefaults(t *testing.T) {
	f := newCatalogFixture()
	f.cache.On("GetOptions", mock.Anything, int64(1), int64(10)).Return(nil, nil)
	f.cache.On("SetOptions", mock.Anything, int64(1), int64(10), mock.Anything, mock.Anything).Return(nil)

	// product-specific 도어락 shadows the category default with the same name
	f.options.On("ListByProduct", mock.Anything, int64(10)).Return([]*models.Option{
		{ID: 7, Name: "도어락", AddPrice: 35000},
	}, nil)
	f.products.On("GetByID", mock.Anything, int64(10)).
		Return(&models.Product{ID: 10, CompanyID: 1, CategoryID: 5, Name: "ABS 도어"}, nil)
	f.categories.On("AncestorChain", mock.Anything, int64(5)).Return([]models.CategoryRef{
		{ID: 5, Code: "DOOR_ABS", Name: "ABS도어"},
		{ID: 2, Code: "DOOR", Name: "도어"},
	}, nil)
	f.options.On("ListCategoryDefaults", mock.Anything, int64(1), int64(5)).Return([]*models.Option{
		{ID: 3, Name: "도어락", AddPrice: 30000},
		{ID: 4, Name: "스토퍼", AddPrice: 5000},
	}, nil)
	f.options.On("ListCategoryDefaults", mock.Anything, int64(1), int64(2)).Return([]*models.Option{
		{ID: 1, Name: "경첩 업그레이드", AddPrice: 8000},
	}, nil)

	merged, err := f.service.OptionsForProduct(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Len(t, merged, 3)

	// sorted by id; the shadowed category 도어락 (id 3) is gone
	assert.Equal(t, int64(1), merged[0].ID)
	assert.Equal(t, int64(4), merged[1].ID)
	assert.Equal(t, int64(7), merged[2].ID)
	assert.Equal(t, 35000, merged[2].AddPrice, "the product-specific price wins")
}

func TestOptionsForProductZeroListsCompanyOptions(t *testing.T) {
	f := newCatalogFixture()
	company := []*models.Option{
		{ID: 1, Name: "도어락", AddPrice: 30000},
		{ID: 2, Name: "도어락", AddPrice: 32000},
	}
	f.cache.On("GetOptions", mock.Anything, int64(1), int64(0)).Return(nil, nil)
	f.cache.On("SetOptions", mock.Anything, int64(1), int64(0), company, mock.Anything).Return(nil)
	f.options.On("ListByCompany", mock.Anything, int64(1)).Return(company, nil)

	merged, err := f.service.OptionsForProduct(context.Background(), 1, 0)
	assert.NoError(t, err)
	// the company-wide listing does not dedup
	assert.Len(t, merged, 2)
	f.options.AssertNotCalled(t, "ListByProduct")
}

func TestOptionsForProductServedFromCache(t *testing.T) {
	f := newCatalogFixture()
	cached := []*models.Option{{ID: 1, Name: "도어락", AddPrice: 30000}}
	f.cache.On("GetOptions", mock.Anything, int64(1), int64(10)).Return(cached, nil)

	merged, err := f.service.OptionsForProduct(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, cached, merged)
	f.options.AssertNotCalled(t, "ListByProduct")
}

func TestOptionsForProductUnknownProduct(t *testing.T) {
	f := newCatalogFixture()
	f.cache.On("GetOptions", mock.Anything, int64(1), int64(99)).Return(nil, nil)
	f.options.On("ListByProduct", mock.Anything, int64(99)).Return([]*models.Option{}, nil)
	f.products.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := f.service.OptionsForProduct(context.Background(), 1, 99)
	assert.Error(t, err)
}

func TestOptionsForProductCacheFailureDegrades(t *testing.T) {
	f := newCatalogFixture()
	company := []*models.Option{{ID: 1, Name: "도어락", AddPrice: 30000}}
	f.cache.On("GetOptions", mock.Anything, int64(1), int64(0)).Return(nil, errors.New("redis down"))
	f.cache.On("SetOptions", mock.Anything, int64(1), int64(0), company, mock.Anything).Return(errors.New("redis down"))
	f.options.On("ListByCompany", mock.Anything, int64(1)).Return(company, nil)

	merged, err := f.service.OptionsForProduct(context.Background(), 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, company, merged)
}
