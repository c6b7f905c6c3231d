package core

import (
	"context"
	"fmt"
	"time"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/platform"
)

type TestimonialService struct {
	db DB
}

func NewTestimonialService(db DB) *TestimonialService {
	return &TestimonialService{db: db}
}

func (s *TestimonialService) Create(ctx context.Context, t *model.Testimonial) error {
	t.ID = platform.NewID()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO testimonials (id, site_id, author_name, company, quote, rating, approved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.SiteID, t.AuthorName, t.Company, t.Quote, t.Rating, t.Approved, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

func (s *TestimonialService) GetByID(ctx context.Context, id string) (*model.Testimonial, error) {
	var t model.Testimonial
	err := s.db.QueryRow(ctx,
		`SELECT id, site_id, author_name, company, quote, rating, approved, created_at, updated_at
		 FROM testimonials WHERE id = $1`, id,
	).Scan(&t.ID, &t.SiteID, &t.AuthorName, &t.Company, &t.Quote, &t.Rating, &t.Approved,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get testimonial %s: %w", id, err)
	}
	return &t, nil
}

// List returns testimonials, optionally only approved ones for public
// display.
func (s *TestimonialService) List(ctx context.Context, approvedOnly bool, params request.ListParams) ([]model.Testimonial, bool, error) {
	query := `SELECT id, site_id, author_name, company, quote, rating, approved, created_at, updated_at
	 FROM testimonials WHERE 1=1`
	args := []any{}
	argIdx := 1

	if approvedOnly {
		query += ` AND approved = true`
	}
	if params.Cursor != "" {
		query += fmt.Sprintf(` AND id > $%d`, argIdx)
		args = append(args, params.Cursor)
		argIdx++
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, argIdx)
	args = append(args, params.Limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.SiteID, &t.AuthorName, &t.Company, &t.Quote, &t.Rating,
			&t.Approved, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, false, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate testimonials: %w", err)
	}

	hasMore := len(items) > params.Limit
	if hasMore {
		items = items[:params.Limit]
	}
	return items, hasMore, nil
}

func (s *TestimonialService) SetApproved(ctx context.Context, id string, approved bool) (*model.Testimonial, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE testimonials SET approved = $1, updated_at = now() WHERE id = $2`, approved, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update testimonial %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("testimonial %s not found", id)
	}
	return s.GetByID(ctx, id)
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("testimonial %s not found", id)
	}
	return nil
}
