package core

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	temporalclient "go.temporal.io/sdk/client"

	"github.com/juzbuild/juzbuild/internal/model"
)

// DB defines the database operations used by core services.
// *pgxpool.Pool satisfies this interface.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Mailer sends a templated email and returns the provider's message ID.
// A nil Mailer disables outbound email (waitlist and contact flows still
// store their rows).
type Mailer interface {
	Send(ctx context.Context, to, templateName string, vars map[string]string) (string, error)
}

type Services struct {
	Site        *SiteService
	Lead        *LeadService
	Testimonial *TestimonialService
	Waitlist    *WaitlistService
	Theme       *ThemeService
	Dashboard   *DashboardService
	APIKey      *APIKeyService
}

func NewServices(db DB, tc temporalclient.Client, mail Mailer, adminEmail string, themes []model.Theme) *Services {
	return &Services{
		Site:        NewSiteService(db, tc),
		Lead:        NewLeadService(db),
		Testimonial: NewTestimonialService(db),
		Waitlist:    NewWaitlistService(db, mail, adminEmail),
		Theme:       NewThemeService(themes),
		Dashboard:   NewDashboardService(db),
		APIKey:      NewAPIKeyService(db),
	}
}
