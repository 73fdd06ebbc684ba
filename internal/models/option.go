package models

// Option is a surcharge (or discount, AddPrice may be negative) a customer can
// add to a product. CategoryID nil means the option applies company-wide;
// ProductID set means it belongs to one product and, in option listings, shadows
// a same-named category option.
type Option struct {
	ID         int64  `json:"id" db:"id"`
	CompanyID  int64  `json:"company_id" db:"company_id"`
	CategoryID *int64 `json:"category_id" db:"category_id"`
	ProductID  *int64 `json:"product_id" db:"product_id"`
	Name       string `json:"name" db:"name"`
	AddPrice   int    `json:"add_price" db:"add_price"`
}
