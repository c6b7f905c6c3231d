package model

// Theme is one entry of the theme catalog offered during onboarding.
type Theme struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Layouts     []string `json:"layouts" yaml:"layouts"`
	PreviewURL  string   `json:"preview_url" yaml:"preview_url"`
	Default     bool     `json:"default" yaml:"default"`
}
