package request

// JoinWaitlist is the public pre-launch signup payload.
type JoinWaitlist struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
}

// Contact is the public contact-form payload.
type Contact struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Subject string  `json:"subject" validate:"required,max=200"`
	Message string  `json:"message" validate:"required,max=5000"`
}
