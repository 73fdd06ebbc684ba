package pricing

import (
	"context"
	"strings"

	"chenu2/internal/models"
)

// flat-priced category codes beyond the DOOR* prefix
var basicCategories = map[string]bool{
	CategoryWindow:    true,
	"HARDWARE":        true,
	"DOORLOCK":        true,
	"RECESSED_HANDLE": true,
	"EASY_HINGE":      true,
	"PULL_HANDLE":     true,
	"DOOR_STOPPER":    true,
	"PACKAGING_FILM":  true,
	"OTHER_HARDWARE":  true,
	"HANGER_HARDWARE": true,
}

// BasicCalculator prices flat products: the configured base price is the unit
// price, dimensions and spec fields are ignored.
type BasicCalculator struct{}

func NewBasicCalculator() *BasicCalculator {
	return &BasicCalculator{}
}

func (c *BasicCalculator) Supports(categoryCode string) bool {
	if categoryCode == "" {
		return false
	}
	// every DOOR subcategory (DOOR, DOOR_BASIC, DOOR_NATURAL, ...) is flat priced
	return strings.HasPrefix(categoryCode, "DOOR") || basicCategories[categoryCode]
}

func (c *BasicCalculator) BasePrice(ctx context.Context, product *models.CatalogProduct, req *models.EstimateRequest) (int, error) {
	if product.BasePrice <= 0 {
		return 0, ErrBasePriceNotSet
	}
	return product.BasePrice, nil
}
