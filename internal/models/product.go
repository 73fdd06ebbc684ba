package models

import "time"

// Product is a made-to-order catalog item. BasePrice of 0 means no flat unit
// price is configured; such products are priced from variants or the pricing
// matrix instead.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	CompanyID   int64     `json:"company_id" db:"company_id"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	Name        string    `json:"name" db:"name"`
	BasePrice   int       `json:"base_price" db:"base_price"`
	Description *string   `json:"description" db:"description"`
	SizeLabel   *string   `json:"size_label" db:"size_label"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CatalogProduct is a product joined with its category ancestor chain.
// Chain holds category codes ordered leaf to root; the pricing rules only
// look at the first two levels but the chain is resolved to full depth.
type CatalogProduct struct {
	Product
	Chain []CategoryRef `json:"category_chain"`
}

// CategoryCode returns the code of the product's own category.
func (p *CatalogProduct) CategoryCode() string {
	if len(p.Chain) == 0 {
		return ""
	}
	return p.Chain[0].Code
}

// ParentCategoryCode returns the code of the immediate parent category,
// or "" for products in a main category.
func (p *CatalogProduct) ParentCategoryCode() string {
	if len(p.Chain) < 2 {
		return ""
	}
	return p.Chain[1].Code
}

// InCategory reports whether the product's category or its immediate parent
// carries the given code.
func (p *CatalogProduct) InCategory(code string) bool {
	return p.CategoryCode() == code || p.ParentCategoryCode() == code
}
