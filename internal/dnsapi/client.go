// Package dnsapi is a minimal Namecheap DNS client. Namecheap exposes a
// single XML endpoint and its setHosts command replaces the domain's entire
// record set, so adding one CNAME means reading the current records and
// writing them all back plus the new one.
package dnsapi

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiUser    string
	apiKey     string
	clientIP   string
}

func NewClient(baseURL, apiUser, apiKey, clientIP string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiUser:    apiUser,
		apiKey:     apiKey,
		clientIP:   clientIP,
	}
}

type hostRecord struct {
	Name    string `xml:"Name,attr"`
	Type    string `xml:"Type,attr"`
	Address string `xml:"Address,attr"`
	MXPref  string `xml:"MXPref,attr"`
	TTL     string `xml:"TTL,attr"`
}

type apiResponse struct {
	XMLName xml.Name `xml:"ApiResponse"`
	Status  string   `xml:"Status,attr"`
	Errors  struct {
		Error []struct {
			Number  string `xml:"Number,attr"`
			Message string `xml:",chardata"`
		} `xml:"Error"`
	} `xml:"Errors"`
	CommandResponse struct {
		GetHostsResult struct {
			Hosts []hostRecord `xml:"host"`
		} `xml:"DomainDNSGetHostsResult"`
	} `xml:"CommandResponse"`
}

// AddCNAMERecord creates a CNAME record mapping host.<domain> to target.
// Every existing host record on the domain is preserved; an existing CNAME
// for the same host is replaced, so rebinding a subdomain is idempotent.
func (c *Client) AddCNAMERecord(ctx context.Context, domain, host, target string) error {
	sld, tld, err := splitDomain(domain)
	if err != nil {
		return err
	}

	existing, err := c.getHosts(ctx, sld, tld)
	if err != nil {
		return err
	}

	records := make([]hostRecord, 0, len(existing)+1)
	for _, rec := range existing {
		if rec.Type == "CNAME" && strings.EqualFold(rec.Name, host) {
			continue
		}
		records = append(records, rec)
	}
	records = append(records, hostRecord{Name: host, Type: "CNAME", Address: target, TTL: "300"})

	params := url.Values{}
	params.Set("Command", "namecheap.domains.dns.setHosts")
	params.Set("SLD", sld)
	params.Set("TLD", tld)
	for i, rec := range records {
		n := strconv.Itoa(i + 1)
		params.Set("HostName"+n, rec.Name)
		params.Set("RecordType"+n, rec.Type)
		params.Set("Address"+n, rec.Address)
		params.Set("TTL"+n, rec.TTL)
		if rec.MXPref != "" {
			params.Set("MXPref"+n, rec.MXPref)
		}
	}

	if _, err := c.call(ctx, params); err != nil {
		return fmt.Errorf("set dns host records: %w", err)
	}
	return nil
}

func (c *Client) getHosts(ctx context.Context, sld, tld string) ([]hostRecord, error) {
	params := url.Values{}
	params.Set("Command", "namecheap.domains.dns.getHosts")
	params.Set("SLD", sld)
	params.Set("TLD", tld)

	parsed, err := c.call(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("get dns host records: %w", err)
	}
	return parsed.CommandResponse.GetHostsResult.Hosts, nil
}

// call posts a command to the API endpoint. The provider reports failures
// inside a 200 response body, so the status attribute is authoritative, not
// the HTTP status code.
func (c *Client) call(ctx context.Context, params url.Values) (*apiResponse, error) {
	params.Set("ApiUser", c.apiUser)
	params.Set("ApiKey", c.apiKey)
	params.Set("UserName", c.apiUser)
	params.Set("ClientIp", c.clientIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("dns request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dns response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse dns response: %w", err)
	}
	if !strings.EqualFold(parsed.Status, "OK") {
		if len(parsed.Errors.Error) > 0 {
			return nil, fmt.Errorf("dns provider error %s: %s",
				parsed.Errors.Error[0].Number, strings.TrimSpace(parsed.Errors.Error[0].Message))
		}
		return nil, fmt.Errorf("dns provider returned status %q", parsed.Status)
	}
	return &parsed, nil
}

func splitDomain(domain string) (sld, tld string, err error) {
	parts := strings.SplitN(domain, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid parent domain %q", domain)
	}
	return parts[0], parts[1], nil
}
