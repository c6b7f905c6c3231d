package request

// CreateSite is the onboarding payload that starts a provisioning run.
type CreateSite struct {
	UserID                 string   `json:"user_id" validate:"required"`
	CompanyName            string   `json:"company_name" validate:"required,max=100"`
	Subdomain              string   `json:"subdomain" validate:"required,subdomain"`
	OwnerEmail             string   `json:"owner_email" validate:"required,email"`
	OwnerName              string   `json:"owner_name" validate:"required,max=100"`
	BrandColors            []string `json:"brand_colors" validate:"omitempty,max=3,dive,hexcolor"`
	Tagline                string   `json:"tagline" validate:"max=200"`
	AboutText              string   `json:"about_text" validate:"max=5000"`
	ThemeID                string   `json:"theme_id" validate:"required"`
	LayoutStyle            string   `json:"layout_style" validate:"required"`
	PropertyTypes          []string `json:"property_types"`
	IncludedPages          []string `json:"included_pages"`
	PreferredContactMethod []string `json:"preferred_contact_method"`
}
