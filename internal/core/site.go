package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	temporalclient "go.temporal.io/sdk/client"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/platform"
)

// ErrSubdomainTaken is returned when a site with the requested subdomain
// already exists and is not deleted.
var ErrSubdomainTaken = errors.New("subdomain already taken")

type SiteService struct {
	db DB
	tc temporalclient.Client
}

func NewSiteService(db DB, tc temporalclient.Client) *SiteService {
	return &SiteService{db: db, tc: tc}
}

// Create inserts the site row and enqueues the provisioning run on the
// site's entity workflow. Provisioning is asynchronous: the returned site
// is in status pending and moves through provisioning/active/failed as the
// workflow progresses.
func (s *SiteService) Create(ctx context.Context, req model.ProvisioningRequest) (*model.Site, error) {
	var taken bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sites WHERE subdomain = $1 AND status != $2)`,
		req.Subdomain, model.StatusDeleted,
	).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("check subdomain: %w", err)
	}
	if taken {
		return nil, ErrSubdomainTaken
	}

	now := time.Now().UTC()
	site := &model.Site{
		ID:          platform.NewID(),
		UserID:      req.UserID,
		OwnerEmail:  req.OwnerEmail,
		SiteName:    req.Subdomain,
		CompanyName: req.CompanyName,
		Subdomain:   req.Subdomain,
		ThemeID:     req.ThemeID,
		LayoutStyle: req.LayoutStyle,
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO sites (id, user_id, owner_email, site_name, company_name, subdomain,
		 theme_id, layout_style, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		site.ID, site.UserID, site.OwnerEmail, site.SiteName, site.CompanyName, site.Subdomain,
		site.ThemeID, site.LayoutStyle, site.Status, site.CreatedAt, site.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert site: %w", err)
	}

	req.SiteID = site.ID
	if err := signalProvision(ctx, s.tc, site.Subdomain, model.ProvisionTask{
		WorkflowName: "CreateSiteWorkflow",
		WorkflowID:   fmt.Sprintf("create-site-%s", site.ID),
		Arg:          req,
	}); err != nil {
		return nil, fmt.Errorf("start CreateSiteWorkflow: %w", err)
	}

	return site, nil
}

func (s *SiteService) GetByID(ctx context.Context, id string) (*model.Site, error) {
	var site model.Site
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, owner_email, site_name, company_name, subdomain,
		 repo_url, domain, database_name, theme_id, layout_style, status, status_message,
		 created_at, updated_at
		 FROM sites WHERE id = $1`, id,
	).Scan(&site.ID, &site.UserID, &site.OwnerEmail, &site.SiteName, &site.CompanyName, &site.Subdomain,
		&site.RepoURL, &site.Domain, &site.DatabaseName, &site.ThemeID, &site.LayoutStyle,
		&site.Status, &site.StatusMessage, &site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get site %s: %w", id, err)
	}
	return &site, nil
}

func (s *SiteService) List(ctx context.Context, params request.ListParams) ([]model.Site, bool, error) {
	query := `SELECT id, user_id, owner_email, site_name, company_name, subdomain,
	 repo_url, domain, database_name, theme_id, layout_style, status, status_message,
	 created_at, updated_at FROM sites WHERE status != 'deleted'`
	args := []any{}
	argIdx := 1

	if params.Search != "" {
		query += fmt.Sprintf(` AND (company_name ILIKE $%d OR subdomain ILIKE $%d)`, argIdx, argIdx)
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}
	if params.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, params.Status)
		argIdx++
	}
	if params.Cursor != "" {
		query += fmt.Sprintf(` AND id > $%d`, argIdx)
		args = append(args, params.Cursor)
		argIdx++
	}

	sortCol := "created_at"
	switch params.Sort {
	case "company_name":
		sortCol = "company_name"
	case "subdomain":
		sortCol = "subdomain"
	case "status":
		sortCol = "status"
	}
	order := "DESC"
	if params.Order == "asc" {
		order = "ASC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s`, sortCol, order)
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, params.Limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()

	var sites []model.Site
	for rows.Next() {
		var site model.Site
		if err := rows.Scan(&site.ID, &site.UserID, &site.OwnerEmail, &site.SiteName, &site.CompanyName,
			&site.Subdomain, &site.RepoURL, &site.Domain, &site.DatabaseName, &site.ThemeID,
			&site.LayoutStyle, &site.Status, &site.StatusMessage, &site.CreatedAt, &site.UpdatedAt); err != nil {
			return nil, false, fmt.Errorf("scan site: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate sites: %w", err)
	}

	hasMore := len(sites) > params.Limit
	if hasMore {
		sites = sites[:params.Limit]
	}
	return sites, hasMore, nil
}

// Delete enqueues the site's teardown workflow, which drops the tenant
// database, clears the ledger, and marks the row deleted. Calling Delete
// on a site already deleting or deleted is a no-op.
func (s *SiteService) Delete(ctx context.Context, id string) error {
	site, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if site.Status == model.StatusDeleting || site.Status == model.StatusDeleted {
		return nil
	}

	if err := signalProvision(ctx, s.tc, site.Subdomain, model.ProvisionTask{
		WorkflowName: "DeleteSiteWorkflow",
		WorkflowID:   fmt.Sprintf("delete-site-%s", site.ID),
		Arg:          site.ID,
	}); err != nil {
		return fmt.Errorf("start DeleteSiteWorkflow: %w", err)
	}
	return nil
}
