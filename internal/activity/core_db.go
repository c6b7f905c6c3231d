package activity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/platform"
)

// DB defines the database operations used by activity structs.
// *pgxpool.Pool satisfies this interface.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CoreDB contains activities that read from and update the core database.
type CoreDB struct {
	db DB
}

// NewCoreDB creates a new CoreDB activity struct.
func NewCoreDB(db DB) *CoreDB {
	return &CoreDB{db: db}
}

// UpdateSiteStatusParams holds the parameters for UpdateSiteStatus.
type UpdateSiteStatusParams struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	StatusMessage *string `json:"status_message,omitempty"`
}

// UpdateSiteStatus sets the status of a site row, optionally with a
// human-readable message (the failing step and error on failure).
func (a *CoreDB) UpdateSiteStatus(ctx context.Context, params UpdateSiteStatusParams) error {
	_, err := a.db.Exec(ctx,
		`UPDATE sites SET status = $1, status_message = $2, updated_at = now() WHERE id = $3`,
		params.Status, params.StatusMessage, params.ID)
	if err != nil {
		return fmt.Errorf("update site status: %w", err)
	}
	return nil
}

// GetSiteByID retrieves a site by its ID.
func (a *CoreDB) GetSiteByID(ctx context.Context, id string) (*model.Site, error) {
	var s model.Site
	err := a.db.QueryRow(ctx,
		`SELECT id, user_id, owner_email, site_name, company_name, subdomain,
		 repo_url, domain, database_name, theme_id, layout_style, status, status_message,
		 created_at, updated_at
		 FROM sites WHERE id = $1`, id,
	).Scan(&s.ID, &s.UserID, &s.OwnerEmail, &s.SiteName, &s.CompanyName, &s.Subdomain,
		&s.RepoURL, &s.Domain, &s.DatabaseName, &s.ThemeID, &s.LayoutStyle, &s.Status, &s.StatusMessage,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get site by id: %w", err)
	}
	return &s, nil
}

// SetSiteOutputsParams holds the provisioning outputs to persist on a site.
type SetSiteOutputsParams struct {
	ID           string  `json:"id"`
	RepoURL      *string `json:"repo_url,omitempty"`
	Domain       *string `json:"domain,omitempty"`
	DatabaseName *string `json:"database_name,omitempty"`
}

// SetSiteOutputs stores the resources a provisioning run produced on the
// site row. Nil fields are left untouched.
func (a *CoreDB) SetSiteOutputs(ctx context.Context, params SetSiteOutputsParams) error {
	_, err := a.db.Exec(ctx,
		`UPDATE sites SET
		 repo_url = COALESCE($1, repo_url),
		 domain = COALESCE($2, domain),
		 database_name = COALESCE($3, database_name),
		 updated_at = now()
		 WHERE id = $4`,
		params.RepoURL, params.Domain, params.DatabaseName, params.ID)
	if err != nil {
		return fmt.Errorf("set site outputs: %w", err)
	}
	return nil
}

// InsertWebsiteRecordParams holds the fields of one provisioning ledger entry.
type InsertWebsiteRecordParams struct {
	SiteID       string `json:"site_id"`
	UserID       string `json:"user_id"`
	SiteName     string `json:"site_name"`
	CompanyName  string `json:"company_name"`
	OwnerEmail   string `json:"owner_email"`
	Domain       string `json:"domain"`
	RepoURL      string `json:"repo_url"`
	DatabaseName string `json:"database_name"`
	ThemeID      string `json:"theme_id"`
	LayoutStyle  string `json:"layout_style"`
	Status       string `json:"status"`
}

// InsertWebsiteRecord writes the final ledger row for a provisioned website
// and returns the new record's ID. The ledger is append-only: re-provisioning
// the same site produces a new row.
func (a *CoreDB) InsertWebsiteRecord(ctx context.Context, params InsertWebsiteRecordParams) (string, error) {
	id := platform.NewID()
	_, err := a.db.Exec(ctx,
		`INSERT INTO websites (id, site_id, user_id, site_name, company_name, owner_email,
		 domain, repo_url, database_name, theme_id, layout_style, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())`,
		id, params.SiteID, params.UserID, params.SiteName, params.CompanyName, params.OwnerEmail,
		params.Domain, params.RepoURL, params.DatabaseName, params.ThemeID, params.LayoutStyle, params.Status)
	if err != nil {
		return "", fmt.Errorf("insert website record: %w", err)
	}
	return id, nil
}

// DeleteWebsiteRecords removes ledger rows for a site. Used by site deletion.
func (a *CoreDB) DeleteWebsiteRecords(ctx context.Context, siteID string) error {
	_, err := a.db.Exec(ctx, `DELETE FROM websites WHERE site_id = $1`, siteID)
	if err != nil {
		return fmt.Errorf("delete website records: %w", err)
	}
	return nil
}
