package models

import "time"

// Color is a company-wide finish choice shown in the quote UI. Cost is an
// optional surcharge ratio (0.1 = 10%) applied by the front end, not by the
// estimation engine.
type Color struct {
	ID        int64     `json:"id" db:"id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	Name      string    `json:"name" db:"name"`
	ColorCode *string   `json:"color_code" db:"color_code"`
	Cost      *float64  `json:"cost" db:"cost"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
