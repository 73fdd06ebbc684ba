package models

// UnboundedDimension is the max_width/max_height default meaning "no upper bound".
const UnboundedDimension = 99999

// PricingMatrix is one tier of a dimension step function. OptionName labels
// the tier family (a glass type for windows, "기본 세트" for sliding
// partitions); MaxWidth/MaxHeight are inclusive upper bounds. The applicable
// tier for a requested width is the row with the smallest MaxWidth that still
// covers it, ties broken by the smallest MaxHeight.
type PricingMatrix struct {
	ID         int64  `json:"id" db:"id"`
	ProductID  int64  `json:"product_id" db:"product_id"`
	OptionName string `json:"option_name" db:"option_name"`
	MaxWidth   int    `json:"max_width" db:"max_width"`
	MaxHeight  int    `json:"max_height" db:"max_height"`
	Price      int    `json:"price" db:"price"`
}
