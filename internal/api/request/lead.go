package request

// CreateLead captures an inquiry from a tenant site or a landing page.
type CreateLead struct {
	SiteID  *string `json:"site_id"`
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" validate:"max=5000"`
	Source  string  `json:"source" validate:"max=50"`
}

// UpdateLeadStatus moves a lead along the pipeline.
type UpdateLeadStatus struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified closed"`
}
