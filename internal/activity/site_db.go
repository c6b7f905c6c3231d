package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/juzbuild/juzbuild/internal/db"
	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/platform"
	"github.com/juzbuild/juzbuild/internal/sitegen"
)

// SiteDB contains activities that manage per-site tenant databases.
type SiteDB struct {
	connector *db.SiteConnector
}

// NewSiteDB creates a new SiteDB activity struct.
func NewSiteDB(connector *db.SiteConnector) *SiteDB {
	return &SiteDB{connector: connector}
}

// siteTables is the schema every tenant database starts with.
var siteTables = []struct {
	name string
	ddl  string
}{
	{"settings", `CREATE TABLE IF NOT EXISTS settings (
		id UUID PRIMARY KEY,
		company_name TEXT NOT NULL,
		tagline TEXT NOT NULL DEFAULT '',
		about_text TEXT NOT NULL DEFAULT '',
		primary_color TEXT NOT NULL,
		secondary_color TEXT NOT NULL,
		accent_color TEXT NOT NULL,
		contact_methods JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"properties", `CREATE TABLE IF NOT EXISTS properties (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL,
		property_type TEXT NOT NULL,
		bedrooms INT NOT NULL DEFAULT 0,
		bathrooms INT NOT NULL DEFAULT 0,
		location TEXT NOT NULL DEFAULT '',
		featured BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"pages", `CREATE TABLE IF NOT EXISTS pages (
		id UUID PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		enabled BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'owner',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"inquiries", `CREATE TABLE IF NOT EXISTS inquiries (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		property_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
}

// ProvisionSiteDatabaseParams holds parameters for ProvisionSiteDatabase.
type ProvisionSiteDatabaseParams struct {
	Request model.ProvisioningRequest `json:"request"`
}

// ProvisionSiteDatabaseResult reports what the database step produced.
type ProvisionSiteDatabaseResult struct {
	DatabaseName     string   `json:"database_name"`
	Tables           []string `json:"tables"`
	SeededProperties int      `json:"seeded_properties"`
}

// ProvisionSiteDatabase creates the tenant database for a site, creates its
// schema, and seeds it with the onboarding data: one settings row, sample
// property listings, one page row per included page, and the owner user.
// Creating a database that already exists is not an error; the schema DDL is
// idempotent so a re-run converges.
func (a *SiteDB) ProvisionSiteDatabase(ctx context.Context, params ProvisionSiteDatabaseParams) (*ProvisionSiteDatabaseResult, error) {
	req := params.Request
	dbName := platform.DeriveDatabaseName(req.Subdomain)

	if err := a.ensureDatabase(ctx, dbName); err != nil {
		return nil, err
	}

	conn, err := a.connector.Connect(ctx, dbName)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	tables := make([]string, 0, len(siteTables))
	for _, t := range siteTables {
		if _, err := conn.Exec(ctx, t.ddl); err != nil {
			return nil, fmt.Errorf("create table %s: %w", t.name, err)
		}
		tables = append(tables, t.name)
	}

	if err := seedSettings(ctx, conn, req); err != nil {
		return nil, err
	}
	seeded, err := seedProperties(ctx, conn, req)
	if err != nil {
		return nil, err
	}
	if err := seedPages(ctx, conn, req); err != nil {
		return nil, err
	}
	if err := seedOwner(ctx, conn, req); err != nil {
		return nil, err
	}

	return &ProvisionSiteDatabaseResult{
		DatabaseName:     dbName,
		Tables:           tables,
		SeededProperties: seeded,
	}, nil
}

// DropSiteDatabase drops a tenant database. A missing database is not an
// error so deletion can be retried.
func (a *SiteDB) DropSiteDatabase(ctx context.Context, dbName string) error {
	if !strings.HasPrefix(dbName, platform.SiteDatabasePrefix) {
		return fmt.Errorf("refusing to drop non-site database %q", dbName)
	}

	admin, err := a.connector.ConnectAdmin(ctx)
	if err != nil {
		return err
	}
	defer admin.Close(ctx)

	_, err = admin.Exec(ctx, "DROP DATABASE IF EXISTS "+db.QuoteIdentifier(dbName))
	if err != nil {
		return fmt.Errorf("drop database %s: %w", dbName, err)
	}
	return nil
}

func (a *SiteDB) ensureDatabase(ctx context.Context, dbName string) error {
	admin, err := a.connector.ConnectAdmin(ctx)
	if err != nil {
		return err
	}
	defer admin.Close(ctx)

	var exists bool
	err = admin.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, dbName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE does not accept bind parameters.
	_, err = admin.Exec(ctx, "CREATE DATABASE "+db.QuoteIdentifier(dbName))
	if err != nil {
		return fmt.Errorf("create database %s: %w", dbName, err)
	}
	return nil
}

func seedSettings(ctx context.Context, conn *pgx.Conn, req model.ProvisioningRequest) error {
	colors := sitegen.ResolveBrandColors(req.BrandColors)
	methods, err := json.Marshal(req.PreferredContactMethod)
	if err != nil {
		return fmt.Errorf("marshal contact methods: %w", err)
	}

	_, err = conn.Exec(ctx,
		`INSERT INTO settings (id, company_name, tagline, about_text,
		 primary_color, secondary_color, accent_color, contact_methods, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		platform.NewID(), req.CompanyName, req.Tagline, req.AboutText,
		colors.Primary, colors.Secondary, colors.Accent, methods, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

func seedProperties(ctx context.Context, conn *pgx.Conn, req model.ProvisioningRequest) (int, error) {
	// Re-runs should not pile up duplicate samples.
	var count int
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	samples := sitegen.SampleProperties(req.PropertyTypes)
	for _, p := range samples {
		_, err := conn.Exec(ctx,
			`INSERT INTO properties (id, title, description, price, property_type,
			 bedrooms, bathrooms, location, featured, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			platform.NewID(), p.Title, "", p.Price, p.Type,
			p.Beds, p.Baths, p.Address, p.Featured, time.Now().UTC())
		if err != nil {
			return 0, fmt.Errorf("seed property %q: %w", p.Title, err)
		}
	}
	return len(samples), nil
}

func seedPages(ctx context.Context, conn *pgx.Conn, req model.ProvisioningRequest) error {
	for _, slug := range req.IncludedPages {
		_, err := conn.Exec(ctx,
			`INSERT INTO pages (id, slug, title, content, enabled, created_at)
			 VALUES ($1, $2, $3, $4, true, $5)
			 ON CONFLICT (slug) DO NOTHING`,
			platform.NewID(), slug, sitegen.NavLabel(slug),
			sitegen.PageContent(slug, req.CompanyName), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("seed page %q: %w", slug, err)
		}
	}
	return nil
}

func seedOwner(ctx context.Context, conn *pgx.Conn, req model.ProvisioningRequest) error {
	_, err := conn.Exec(ctx,
		`INSERT INTO users (id, email, name, role, created_at)
		 VALUES ($1, $2, $3, 'owner', $4)
		 ON CONFLICT (email) DO NOTHING`,
		platform.NewID(), req.OwnerEmail, req.OwnerName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("seed owner user: %w", err)
	}
	return nil
}
