package request

// CreateTestimonial submits a customer quote for review.
type CreateTestimonial struct {
	SiteID     *string `json:"site_id"`
	AuthorName string  `json:"author_name" validate:"required,max=100"`
	Company    *string `json:"company"`
	Quote      string  `json:"quote" validate:"required,max=2000"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
}

// ApproveTestimonial toggles public visibility.
type ApproveTestimonial struct {
	Approved *bool `json:"approved" validate:"required"`
}
