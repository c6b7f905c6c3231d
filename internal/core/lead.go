package core

import (
	"context"
	"fmt"
	"time"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/platform"
)

type LeadService struct {
	db DB
}

func NewLeadService(db DB) *LeadService {
	return &LeadService{db: db}
}

func (s *LeadService) Create(ctx context.Context, lead *model.Lead) error {
	lead.ID = platform.NewID()
	if lead.Status == "" {
		lead.Status = model.LeadStatusNew
	}
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO leads (id, site_id, name, email, phone, message, source, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		lead.ID, lead.SiteID, lead.Name, lead.Email, lead.Phone, lead.Message,
		lead.Source, lead.Status, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (s *LeadService) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	var l model.Lead
	err := s.db.QueryRow(ctx,
		`SELECT id, site_id, name, email, phone, message, source, status, created_at, updated_at
		 FROM leads WHERE id = $1`, id,
	).Scan(&l.ID, &l.SiteID, &l.Name, &l.Email, &l.Phone, &l.Message, &l.Source,
		&l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get lead %s: %w", id, err)
	}
	return &l, nil
}

func (s *LeadService) List(ctx context.Context, params request.ListParams) ([]model.Lead, bool, error) {
	query := `SELECT id, site_id, name, email, phone, message, source, status, created_at, updated_at
	 FROM leads WHERE 1=1`
	args := []any{}
	argIdx := 1

	if params.Search != "" {
		query += fmt.Sprintf(` AND (name ILIKE $%d OR email ILIKE $%d)`, argIdx, argIdx)
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

	order := "DESC"
	if params.Order == "asc" {
		order = "ASC"
	}
	query += fmt.Sprintf(` ORDER BY created_at %s LIMIT $%d`, order, argIdx)
	args = append(args, params.Limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(&l.ID, &l.SiteID, &l.Name, &l.Email, &l.Phone, &l.Message,
			&l.Source, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, false, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate leads: %w", err)
	}

	hasMore := len(leads) > params.Limit
	if hasMore {
		leads = leads[:params.Limit]
	}
	return leads, hasMore, nil
}

// UpdateStatus moves a lead along the pipeline (new → contacted →
// qualified → closed). Transitions are unrestricted; the pipeline is
// advisory.
func (s *LeadService) UpdateStatus(ctx context.Context, id, status string) (*model.Lead, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE leads SET status = $1, updated_at = now() WHERE id = $2`, status, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update lead %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("lead %s not found", id)
	}
	return s.GetByID(ctx, id)
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s not found", id)
	}
	return nil
}
