package pricing

import (
	"context"
	"math"
	"strings"

	"chenu2/internal/models"
)

// saeDivisor converts a width×height product in millimeters to 才, the
// traditional area unit used to price wooden door frames: 1才 = 900,000 mm².
const saeDivisor = 900000.0

// VariantCalculator prices products whose unit price lives on a (spec, type)
// variant row. Wooden door frames are the special case: their variant price is
// per 才, so the unit price scales with the requested area.
type VariantCalculator struct {
	variants VariantReader
}

func NewVariantCalculator(variants VariantReader) *VariantCalculator {
	return &VariantCalculator{variants: variants}
}

func (c *VariantCalculator) Supports(categoryCode string) bool {
	switch categoryCode {
	case "FRAME", "MOLDING", "FILM", CategoryInterlock:
		return true
	}
	return false
}

func (c *VariantCalculator) BasePrice(ctx context.Context, product *models.CatalogProduct, req *models.EstimateRequest) (int, error) {
	variant, err := c.variants.FindVariant(ctx, product.ID, req.SpecName, req.TypeName)
	if err != nil {
		return 0, err
	}
	if variant == nil {
		return 0, ErrVariantNotFound
	}

	if strings.Contains(product.Name, woodFrameMarker) {
		if req.Width == nil || req.Height == nil {
			return 0, ErrDimensionsRequired
		}
		// unit price = round(才 × price-per-才), rounding half away from zero
		sae := float64(*req.Width) * float64(*req.Height) / saeDivisor
		return int(math.Round(sae * float64(variant.Price))), nil
	}

	// PVC foam frames, slim frames, moldings etc. are flat variant prices
	return variant.Price, nil
}
