package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
)

// SiteConnector opens connections on the database server that hosts
// per-site tenant databases. Connections are short-lived: the provisioning
// step opens one, seeds the tenant database, and closes it before
// returning.
type SiteConnector struct {
	adminURL string
}

func NewSiteConnector(adminURL string) *SiteConnector {
	return &SiteConnector{adminURL: adminURL}
}

// ConnectAdmin opens a connection to the server's admin database, used for
// CREATE DATABASE / DROP DATABASE.
func (c *SiteConnector) ConnectAdmin(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, c.adminURL)
	if err != nil {
		return nil, fmt.Errorf("connect site db server: %w", err)
	}
	return conn, nil
}

// Connect opens a connection to a specific tenant database on the server.
func (c *SiteConnector) Connect(ctx context.Context, dbName string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, c.URLFor(dbName))
	if err != nil {
		return nil, fmt.Errorf("connect tenant db %s: %w", dbName, err)
	}
	return conn, nil
}

// URLFor rewrites the admin connection string to point at the given
// database name.
func (c *SiteConnector) URLFor(dbName string) string {
	u, err := url.Parse(c.adminURL)
	if err != nil {
		// Fall back to a DSN-style rewrite for non-URL connection strings.
		return c.adminURL + " dbname=" + dbName
	}
	u.Path = "/" + dbName
	return u.String()
}

// QuoteIdentifier quotes a database identifier for statements that do not
// accept bind parameters (CREATE DATABASE and friends). Tenant database
// names are derived from alphanumerics only, so this is belt and braces.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
