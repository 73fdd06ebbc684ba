package models

// ProductVariant is a priced (spec, type) combination of a product, e.g. a
// frame bar width together with a style. Unique per (product, spec, type).
// For wooden door-frame products the price is interpreted per 才 (area unit)
// rather than as a flat amount.
type ProductVariant struct {
	ID        int64   `json:"id" db:"id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	SpecName  string  `json:"spec_name" db:"spec_name"`
	TypeName  string  `json:"type_name" db:"type_name"`
	Price     int     `json:"price" db:"price"`
	Note      *string `json:"note" db:"note"`
}
