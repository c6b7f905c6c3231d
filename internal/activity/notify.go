package activity

import (
	"context"
	"fmt"

	"github.com/juzbuild/juzbuild/internal/mailer"
)

// Mailer sends a templated email and returns the provider's message ID.
type Mailer interface {
	Send(ctx context.Context, to, templateName string, vars map[string]string) (string, error)
}

// Notify contains the provisioning email notification activity.
type Notify struct {
	mail    Mailer
	enabled bool
}

// NewNotify creates a new Notify activity struct.
func NewNotify(mail Mailer, enabled bool) *Notify {
	return &Notify{mail: mail, enabled: enabled}
}

// SendSiteReadyEmailParams holds parameters for SendSiteReadyEmail.
type SendSiteReadyEmailParams struct {
	To        string `json:"to"`
	OwnerName string `json:"owner_name"`
	Domain    string `json:"domain"`
}

// SendSiteReadyEmailResult reports the sent notification.
type SendSiteReadyEmailResult struct {
	MessageID string `json:"message_id,omitempty"`
	Skipped   bool   `json:"skipped"`
}

// SendSiteReadyEmail sends the "website ready" email to the site owner.
// Without email credentials the step performs no network calls.
func (a *Notify) SendSiteReadyEmail(ctx context.Context, params SendSiteReadyEmailParams) (*SendSiteReadyEmailResult, error) {
	if !a.enabled {
		return &SendSiteReadyEmailResult{Skipped: true}, nil
	}

	id, err := a.mail.Send(ctx, params.To, mailer.TemplateWebsiteCreation, map[string]string{
		"name":       params.OwnerName,
		"domain":     params.Domain,
		"websiteUrl": "https://" + params.Domain,
	})
	if err != nil {
		return nil, fmt.Errorf("send site ready email: %w", err)
	}
	return &SendSiteReadyEmailResult{MessageID: id}, nil
}
