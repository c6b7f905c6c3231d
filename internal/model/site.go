package model

import "time"

// Site is the control-plane record of one provisioned tenant website.
type Site struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	OwnerEmail    string    `json:"owner_email" db:"owner_email"`
	SiteName      string    `json:"site_name" db:"site_name"`
	CompanyName   string    `json:"company_name" db:"company_name"`
	Subdomain     string    `json:"subdomain" db:"subdomain"`
	RepoURL       *string   `json:"repo_url,omitempty" db:"repo_url"`
	Domain        *string   `json:"domain,omitempty" db:"domain"`
	DatabaseName  *string   `json:"database_name,omitempty" db:"database_name"`
	ThemeID       string    `json:"theme_id" db:"theme_id"`
	LayoutStyle   string    `json:"layout_style" db:"layout_style"`
	Status        string    `json:"status" db:"status"`
	StatusMessage *string   `json:"status_message,omitempty" db:"status_message"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
