package pricing

import "errors"

// Every calculation failure is a bad-input / missing-catalog-data class and
// surfaces unchanged to the caller; nothing here is retryable.
var (
	ErrProductNotFound    = errors.New("product does not exist")
	ErrNoCalculator       = errors.New("no pricing rule matches the product category")
	ErrBasePriceNotSet    = errors.New("product has no base price configured")
	ErrWidthRequired      = errors.New("width is required for this product")
	ErrDimensionsRequired = errors.New("width and height are required for this product")
	ErrNoPriceTier        = errors.New("no price tier covers the requested width")
	ErrVariantNotFound    = errors.New("no variant matches the requested spec and type")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
)
