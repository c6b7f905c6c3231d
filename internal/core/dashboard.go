package core

import (
	"context"
	"fmt"
)

// DashboardStats aggregates control-plane counts for the admin dashboard.
type DashboardStats struct {
	Sites        map[string]int `json:"sites"`
	Leads        map[string]int `json:"leads"`
	Testimonials struct {
		Total    int `json:"total"`
		Approved int `json:"approved"`
	} `json:"testimonials"`
	WaitlistEntries int `json:"waitlist_entries"`
	ContactMessages int `json:"contact_messages"`
}

// DashboardService queries aggregate stats from the core DB.
type DashboardService struct {
	db DB
}

func NewDashboardService(db DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		Sites: map[string]int{},
		Leads: map[string]int{},
	}

	rows, err := s.db.Query(ctx, `SELECT status, COUNT(*) FROM sites GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count sites: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan site count: %w", err)
		}
		stats.Sites[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate site counts: %w", err)
	}

	leadRows, err := s.db.Query(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	defer leadRows.Close()
	for leadRows.Next() {
		var status string
		var count int
		if err := leadRows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan lead count: %w", err)
		}
		stats.Leads[status] = count
	}
	if err := leadRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lead counts: %w", err)
	}

	err = s.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE approved) FROM testimonials`,
	).Scan(&stats.Testimonials.Total, &stats.Testimonials.Approved)
	if err != nil {
		return nil, fmt.Errorf("count testimonials: %w", err)
	}

	err = s.db.QueryRow(ctx, `SELECT COUNT(*) FROM waitlist_entries`).Scan(&stats.WaitlistEntries)
	if err != nil {
		return nil, fmt.Errorf("count waitlist entries: %w", err)
	}

	err = s.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&stats.ContactMessages)
	if err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}

	return stats, nil
}
