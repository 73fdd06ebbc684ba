package models

// Category is a company-scoped product grouping. ParentID is nil for main
// (top-level) categories; sub categories point at their parent. The code is
// unique per company and drives pricing-rule selection.
type Category struct {
	ID        int64  `json:"id" db:"id"`
	CompanyID int64  `json:"company_id" db:"company_id"`
	ParentID  *int64 `json:"parent_id" db:"parent_id"`
	Name      string `json:"name" db:"name"`
	Code      string `json:"code" db:"code"`
}

// CategoryRef is one entry of a category ancestor chain, ordered leaf to root.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
