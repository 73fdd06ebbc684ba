package models

import "time"

// Company is a tenant of the estimate system. Code is the short unique slug
// used in admin tooling; every catalog row hangs off a company.
type Company struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
