package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLForRewritesDatabase(t *testing.T) {
	c := NewSiteConnector("postgres://juz:pw@db.internal:5432/postgres?sslmode=require")
	assert.Equal(t,
		"postgres://juz:pw@db.internal:5432/site_acme?sslmode=require",
		c.URLFor("site_acme"))
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"site_acme"`, QuoteIdentifier("site_acme"))
	assert.Equal(t, `"we""ird"`, QuoteIdentifier(`we"ird`))
}
