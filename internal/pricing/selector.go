package pricing

import (
	"strings"

	"chenu2/internal/models"
)

// Selector picks the calculator for a product. Category code alone is
// ambiguous (INTERLOCK and WINDOW are each claimed by two calculators), so
// product-attribute probes run first, in a fixed priority order, before the
// plain category fallback. The fallback walks the calculators in registry
// order (basic, variant, matrix) and tries each Supports predicate against
// the product's category code and its parent's.
type Selector struct {
	basic   *BasicCalculator
	matrix  *MatrixCalculator
	variant *VariantCalculator
	ordered []Calculator
}

func NewSelector(tiers TierReader, variants VariantReader) *Selector {
	s := &Selector{
		basic:   NewBasicCalculator(),
		matrix:  NewMatrixCalculator(tiers),
		variant: NewVariantCalculator(variants),
	}
	s.ordered = []Calculator{s.basic, s.variant, s.matrix}
	return s
}

// Select resolves the calculator for a product or fails with ErrNoCalculator.
func (s *Selector) Select(product *models.CatalogProduct) (Calculator, error) {
	// grille/lattice windows are always matrix tiered
	if s.isGansalWindow(product) {
		return s.matrix, nil
	}
	// ordinary windows with a configured base price are flat
	if s.isWindowWithBasePrice(product) {
		return s.basic, nil
	}
	// wood triple-sliding partitions price off their variants
	if s.isWoodInterlock(product) {
		return s.variant, nil
	}

	for _, calc := range s.ordered {
		if calc.Supports(product.CategoryCode()) || calc.Supports(product.ParentCategoryCode()) {
			return calc, nil
		}
	}
	return nil, ErrNoCalculator
}

func (s *Selector) isGansalWindow(product *models.CatalogProduct) bool {
	return product.InCategory(CategoryWindow) && strings.Contains(product.Name, gansalMarker)
}

func (s *Selector) isWindowWithBasePrice(product *models.CatalogProduct) bool {
	return product.InCategory(CategoryWindow) && product.BasePrice > 0
}

func (s *Selector) isWoodInterlock(product *models.CatalogProduct) bool {
	return product.InCategory(CategoryInterlock) && strings.Contains(product.Name, woodInterlockMarker)
}
