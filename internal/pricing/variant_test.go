package pricing

import (
	"context"
	"testing"

	"chenu2/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVariantCalculatorSupports(t *testing.T) {
	calc := NewVariantCalculator(new(MockVariantReader))

	for _, code := range []string{"FRAME", "MOLDING", "FILM", "INTERLOCK"} {
		assert.True(t, calc.Supports(code), "expected %s to be supported", code)
	}
	assert.False(t, calc.Supports("WINDOW"))
	assert.False(t, calc.Supports(""))
}

func TestVariantCalculatorFlatVariantPrice(t *testing.T) {
	variants := new(MockVariantReader)
	calc := NewVariantCalculator(variants)
	product := catalogProduct(3, "PVC 발포문틀", 0, "FRAME")

	variants.On("FindVariant", mock.Anything, int64(3), "110바", "일반형 3방").
		Return(&models.ProductVariant{ID: 1, ProductID: 3, SpecName: "110바", TypeName: "일반형 3방", Price: 45000}, nil)

	req := &models.EstimateRequest{ProductID: 3, SpecName: "110바", TypeName: "일반형 3방", Quantity: 1}
	price, err := calc.BasePrice(context.Background(), product, req)
	assert.NoError(t, err)
	assert.Equal(t, 45000, price)
}

func TestVariantCalculatorNoMatchingVariant(t *testing.T) {
	variants := new(MockVariantReader)
	calc := NewVariantCalculator(variants)
	product := catalogProduct(3, "목재 3연동 중문", 0, "INTERLOCK")

	variants.On("FindVariant", mock.Anything, int64(3), "140바", "양개형").Return(nil, nil)

	req := &models.EstimateRequest{ProductID: 3, SpecName: "140바", TypeName: "양개형", Quantity: 1}
	_, err := calc.BasePrice(context.Background(), product, req)
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestVariantCalculatorWoodFrameAreaPricing(t *testing.T) {
	variants := new(MockVariantReader)
	calc := NewVariantCalculator(variants)
	product := catalogProduct(5, "목재문틀 (도장)", 0, "FRAME")

	variants.On("FindVariant", mock.Anything, int64(5), "110바", "일반형").
		Return(&models.ProductVariant{ID: 2, ProductID: 5, SpecName: "110바", TypeName: "일반형", Price: 50000}, nil)

	// 1220 x 2440 mm = 3.30755... 才; x 50,000 per 才 rounds to 165,378
	req := &models.EstimateRequest{
		ProductID: 5,
		SpecName:  "110바",
		TypeName:  "일반형",
		Width:     intPtr(1220),
		Height:    intPtr(2440),
		Quantity:  1,
	}
	price, err := calc.BasePrice(context.Background(), product, req)
	assert.NoError(t, err)
	assert.Equal(t, 165378, price)
}

func TestVariantCalculatorWoodFrameExactArea(t *testing.T) {
	variants := new(MockVariantReader)
	calc := NewVariantCalculator(variants)
	product := catalogProduct(5, "목재문틀", 0, "FRAME")

	variants.On("FindVariant", mock.Anything, int64(5), "110바", "일반형").
		Return(&models.ProductVariant{ID: 2, ProductID: 5, SpecName: "110바", TypeName: "일반형", Price: 50000}, nil)

	// 900 x 1000 mm is exactly one 才
	req := &models.EstimateRequest{
		ProductID: 5,
		SpecName:  "110바",
		TypeName:  "일반형",
		Width:     intPtr(900),
		Height:    intPtr(1000),
		Quantity:  1,
	}
	price, err := calc.BasePrice(context.Background(), product, req)
	assert.NoError(t, err)
	assert.Equal(t, 50000, price)
}

func TestVariantCalculatorWoodFrameHalfBoundaryRoundsAwayFromZero(t *testing.T) {
	variants := new(MockVariantReader)
	calc := NewVariantCalculator(variants)
	product := catalogProduct(5, "목재문틀", 0, "FRAME")

	variants.On("FindVariant", mock.Anything, int64(5), "110바", "일반형").
		Return(&models.ProductVariant{ID: 2, ProductID: 5, SpecName: "110바", TypeName: "일반형", Price: 3}, nil)

	// 450 x 1000 mm = exactly 0.5 才; 0.5 x 3 = 1.5 must round up to 2
	req := &models.EstimateRequest{
		ProductID: 5,
		SpecName:  "110바",
		TypeName:  "일반형",
		Width:     intPtr(450),
		Height:    intPtr(1000),
		Quantity:  1,
	}
	price, err := calc.BasePrice(context.Background(), product, req)
	assert.NoError(t, err)
	assert.Equal(t, 2, price)
}

func TestVariantCalculatorWoodFrameRequiresDimensions(t *testing.T) {
	variants := new(MockVariantReader)
	calc := NewVariantCalculator(variants)
	product := catalogProduct(5, "목재문틀", 0, "FRAME")

	variants.On("FindVariant", mock.Anything, int64(5), "110바", "일반형").
		Return(&models.ProductVariant{ID: 2, ProductID: 5, SpecName: "110바", TypeName: "일반형", Price: 50000}, nil)

	cases := []*models.EstimateRequest{
		{ProductID: 5, SpecName: "110바", TypeName: "일반형", Quantity: 1},
		{ProductID: 5, SpecName: "110바", TypeName: "일반형", Width: intPtr(900), Quantity: 1},
		{ProductID: 5, SpecName: "110바", TypeName: "일반형", Height: intPtr(2100), Quantity: 1},
	}
	for _, req := range cases {
		_, err := calc.BasePrice(context.Background(), product, req)
		assert.ErrorIs(t, err, ErrDimensionsRequired)
	}
}
