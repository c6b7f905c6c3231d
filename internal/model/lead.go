package model

import "time"

// Lead is a buyer/seller inquiry captured from a tenant site or the
// platform's own landing pages.
type Lead struct {
	ID        string    `json:"id" db:"id"`
	SiteID    *string   `json:"site_id,omitempty" db:"site_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Message   string    `json:"message" db:"message"`
	Source    string    `json:"source" db:"source"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
