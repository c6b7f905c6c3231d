package model

import "time"

// Testimonial is a customer quote shown on a tenant site once approved.
type Testimonial struct {
	ID         string    `json:"id" db:"id"`
	SiteID     *string   `json:"site_id,omitempty" db:"site_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Company    *string   `json:"company,omitempty" db:"company"`
	Quote      string    `json:"quote" db:"quote"`
	Rating     int       `json:"rating" db:"rating"`
	Approved   bool      `json:"approved" db:"approved"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
