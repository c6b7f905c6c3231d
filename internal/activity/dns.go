package activity

import (
	"context"
	"fmt"
)

// DNSAPI is the subset of the DNS provider client the subdomain activity uses.
type DNSAPI interface {
	AddCNAMERecord(ctx context.Context, domain, host, target string) error
}

// DNS contains the subdomain binding activity.
type DNS struct {
	client       DNSAPI
	parentDomain string
	enabled      bool
}

// NewDNS creates a new DNS activity struct.
func NewDNS(client DNSAPI, parentDomain string, enabled bool) *DNS {
	return &DNS{client: client, parentDomain: parentDomain, enabled: enabled}
}

// BindSubdomainParams holds parameters for BindSubdomain.
type BindSubdomainParams struct {
	Subdomain string `json:"subdomain"`
	Target    string `json:"target"`
}

// BindSubdomainResult reports the bound domain.
type BindSubdomainResult struct {
	Domain  string `json:"domain"`
	Target  string `json:"target,omitempty"`
	Skipped bool   `json:"skipped"`
}

// BindSubdomain points <subdomain>.<parent domain> at the deployment via a
// CNAME record. Provider-reported failures fail the step with the
// provider's message. Without DNS credentials the step performs no network
// calls and reports the would-be domain.
func (a *DNS) BindSubdomain(ctx context.Context, params BindSubdomainParams) (*BindSubdomainResult, error) {
	domain := params.Subdomain + "." + a.parentDomain

	if !a.enabled {
		return &BindSubdomainResult{Domain: domain, Skipped: true}, nil
	}

	target := params.Target
	if target == "" {
		target = "cname.vercel-dns.com"
	}

	if err := a.client.AddCNAMERecord(ctx, a.parentDomain, params.Subdomain, target); err != nil {
		return nil, fmt.Errorf("bind subdomain %s: %w", domain, err)
	}

	return &BindSubdomainResult{Domain: domain, Target: target}, nil
}
