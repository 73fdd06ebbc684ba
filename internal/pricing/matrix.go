package pricing

import (
	"context"

	"chenu2/internal/models"
)

// MatrixCalculator prices dimension-tiered products from the pricing matrix.
// It performs no arithmetic: the matched tier's price is the unit price.
// Height never filters the lookup here; height-driven surcharges are modeled
// as options.
type MatrixCalculator struct {
	tiers TierReader
}

func NewMatrixCalculator(tiers TierReader) *MatrixCalculator {
	return &MatrixCalculator{tiers: tiers}
}

func (c *MatrixCalculator) Supports(categoryCode string) bool {
	return categoryCode == CategoryInterlock || categoryCode == CategoryWindow
}

func (c *MatrixCalculator) BasePrice(ctx context.Context, product *models.CatalogProduct, req *models.EstimateRequest) (int, error) {
	if req.Width == nil {
		return 0, ErrWidthRequired
	}

	tier, err := c.tiers.FindTier(ctx, product.ID, c.tierName(product, req), *req.Width)
	if err != nil {
		return 0, err
	}
	if tier == nil {
		return 0, ErrNoPriceTier
	}
	return tier.Price, nil
}

// tierName picks the matrix tier label. Window products are tiered per glass
// type chosen by the customer; sliding partitions always use the base set.
func (c *MatrixCalculator) tierName(product *models.CatalogProduct, req *models.EstimateRequest) string {
	if product.InCategory(CategoryWindow) {
		if req.TypeName != "" {
			return req.TypeName
		}
		return DefaultWindowTier
	}
	return BaseSetTier
}
