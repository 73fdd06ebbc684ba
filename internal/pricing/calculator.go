package pricing

import (
	"context"

	"chenu2/internal/models"
)

// Category codes the selection rules key on.
const (
	CategoryWindow    = "WINDOW"
	CategoryInterlock = "INTERLOCK"
)

// Product-name markers that pick a pricing rule before category dispatch.
// 간살 is the grille/lattice window family, 목재 3연동 중문 the wood
// triple-sliding partition, 목재문틀 the wooden door frame priced per area.
const (
	gansalMarker        = "간살"
	woodInterlockMarker = "목재 3연동 중문"
	woodFrameMarker     = "목재문틀"
)

// Tier labels used by the pricing matrix. Window tiers are keyed by glass
// type and fall back to clear glass when the request names none; sliding
// partitions always price off the base set.
const (
	BaseSetTier       = "기본 세트"
	DefaultWindowTier = "투명유리"
)

// Calculator computes a product's base unit price, before options and
// quantity. Supports is the category fallback predicate used when none of the
// product-attribute probes in the selector fire.
type Calculator interface {
	Supports(categoryCode string) bool
	BasePrice(ctx context.Context, product *models.CatalogProduct, req *models.EstimateRequest) (int, error)
}

// TierReader resolves pricing-matrix tiers. Implemented by the pricing matrix
// repository; returns (nil, nil) when no tier covers the width.
type TierReader interface {
	FindTier(ctx context.Context, productID int64, optionName string, width int) (*models.PricingMatrix, error)
}

// VariantReader resolves (product, spec, type) variants. Implemented by the
// variant repository; returns (nil, nil) when no row matches.
type VariantReader interface {
	FindVariant(ctx context.Context, productID int64, specName, typeName string) (*models.ProductVariant, error)
}

// OptionReader fetches option rows by id. Implemented by the option repository.
type OptionReader interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Option, error)
}
