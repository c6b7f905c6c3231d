package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/juzbuild/juzbuild/internal/mailer"
	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/platform"
)

// WaitlistService stores waitlist signups and contact messages and sends
// the matching transactional emails. Email is best-effort: a failed send
// never fails the signup.
type WaitlistService struct {
	db         DB
	mail       Mailer
	adminEmail string
}

func NewWaitlistService(db DB, mail Mailer, adminEmail string) *WaitlistService {
	return &WaitlistService{db: db, mail: mail, adminEmail: adminEmail}
}

func (s *WaitlistService) Join(ctx context.Context, entry *model.WaitlistEntry) error {
	entry.ID = platform.NewID()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(ctx,
		`INSERT INTO waitlist_entries (id, name, email, company, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Name, entry.Email, entry.Company, entry.Phone, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert waitlist entry: %w", err)
	}

	if s.mail != nil {
		vars := map[string]string{
			"name":  entry.Name,
			"email": entry.Email,
		}
		if entry.Company != nil {
			vars["company"] = *entry.Company
		}
		if entry.Phone != nil {
			vars["phone"] = *entry.Phone
		}

		if _, err := s.mail.Send(ctx, entry.Email, mailer.TemplateWaitlistWelcome, vars); err != nil {
			log.Warn().Err(err).Str("email", entry.Email).Msg("waitlist welcome email failed")
		}
		if s.adminEmail != "" {
			if _, err := s.mail.Send(ctx, s.adminEmail, mailer.TemplateWaitlistNotification, vars); err != nil {
				log.Warn().Err(err).Msg("waitlist admin notification failed")
			}
		}
	}

	return nil
}

func (s *WaitlistService) Contact(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = platform.NewID()
	msg.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, company, subject, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Company, msg.Subject, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}

	if s.mail != nil {
		vars := map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"subject": msg.Subject,
			"message": msg.Message,
		}
		if msg.Phone != nil {
			vars["phone"] = *msg.Phone
		}
		if msg.Company != nil {
			vars["company"] = *msg.Company
		}

		if _, err := s.mail.Send(ctx, msg.Email, mailer.TemplateContactConfirmation, vars); err != nil {
			log.Warn().Err(err).Str("email", msg.Email).Msg("contact confirmation email failed")
		}
		if s.adminEmail != "" {
			if _, err := s.mail.Send(ctx, s.adminEmail, mailer.TemplateContactNotification, vars); err != nil {
				log.Warn().Err(err).Msg("contact admin notification failed")
			}
		}
	}

	return nil
}
