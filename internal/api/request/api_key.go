package request

// CreateAPIKey is the payload for creating an API key.
type CreateAPIKey struct {
	Name   string   `json:"name" validate:"required,max=100"`
	Scopes []string `json:"scopes"`
}
