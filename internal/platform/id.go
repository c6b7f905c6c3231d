package platform

import (
	"strings"

	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}

// SiteDatabasePrefix namespaces per-site tenant databases on the shared
// database server.
const SiteDatabasePrefix = "site_"

// DeriveDatabaseName derives the tenant database name from a site name:
// lower-cased, every rune outside ASCII [a-z0-9] stripped, prefixed. The
// derivation is deterministic so re-running provisioning for the same site
// name targets the same database.
func DeriveDatabaseName(siteName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(siteName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return SiteDatabasePrefix + b.String()
}
