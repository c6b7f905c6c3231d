package dnsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getHostsResponse = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK" xmlns="http://api.namecheap.com/xml.response">
  <Errors/>
  <CommandResponse Type="namecheap.domains.dns.getHosts">
    <DomainDNSGetHostsResult Domain="onjuzbuild.com">
      <host HostId="1" Name="@" Type="A" Address="203.0.113.10" MXPref="10" TTL="1800"/>
      <host HostId="2" Name="alpha" Type="CNAME" Address="alpha-xyz789.vercel.app" MXPref="10" TTL="300"/>
    </DomainDNSGetHostsResult>
  </CommandResponse>
</ApiResponse>`

const emptyGetHostsResponse = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK" xmlns="http://api.namecheap.com/xml.response">
  <Errors/>
  <CommandResponse Type="namecheap.domains.dns.getHosts">
    <DomainDNSGetHostsResult Domain="onjuzbuild.com"/>
  </CommandResponse>
</ApiResponse>`

const okResponse = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK" xmlns="http://api.namecheap.com/xml.response">
  <Errors/>
</ApiResponse>`

const errorResponse = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="ERROR" xmlns="http://api.namecheap.com/xml.response">
  <Errors><Error Number="2030280">quota exceeded</Error></Errors>
</ApiResponse>`

// newDNSServer serves getHosts from the given body and captures the form of
// the subsequent setHosts call.
func newDNSServer(t *testing.T, getHostsBody string, setHostsForm *url.Values) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.Form.Get("Command") {
		case "namecheap.domains.dns.getHosts":
			w.Write([]byte(getHostsBody))
		case "namecheap.domains.dns.setHosts":
			*setHostsForm = r.Form
			w.Write([]byte(okResponse))
		default:
			t.Errorf("unexpected command %q", r.Form.Get("Command"))
		}
	}))
}

func TestAddCNAMERecordEmptyZone(t *testing.T) {
	var form url.Values
	srv := newDNSServer(t, emptyGetHostsResponse, &form)
	defer srv.Close()

	c := NewClient(srv.URL, "juzbuild", "key", "1.2.3.4")
	err := c.AddCNAMERecord(context.Background(), "onjuzbuild.com", "acme", "acme-abc123.vercel.app")
	require.NoError(t, err)

	assert.Equal(t, "onjuzbuild", form.Get("SLD"))
	assert.Equal(t, "com", form.Get("TLD"))
	assert.Equal(t, "acme", form.Get("HostName1"))
	assert.Equal(t, "CNAME", form.Get("RecordType1"))
	assert.Equal(t, "acme-abc123.vercel.app", form.Get("Address1"))
	assert.Empty(t, form.Get("HostName2"))
}

func TestAddCNAMERecordPreservesExistingRecords(t *testing.T) {
	var form url.Values
	srv := newDNSServer(t, getHostsResponse, &form)
	defer srv.Close()

	// setHosts replaces the whole zone, so the apex A record and the other
	// tenant's CNAME must be resubmitted alongside the new record.
	c := NewClient(srv.URL, "juzbuild", "key", "1.2.3.4")
	err := c.AddCNAMERecord(context.Background(), "onjuzbuild.com", "acme", "acme-abc123.vercel.app")
	require.NoError(t, err)

	assert.Equal(t, "@", form.Get("HostName1"))
	assert.Equal(t, "A", form.Get("RecordType1"))
	assert.Equal(t, "203.0.113.10", form.Get("Address1"))
	assert.Equal(t, "alpha", form.Get("HostName2"))
	assert.Equal(t, "CNAME", form.Get("RecordType2"))
	assert.Equal(t, "alpha-xyz789.vercel.app", form.Get("Address2"))
	assert.Equal(t, "acme", form.Get("HostName3"))
	assert.Equal(t, "CNAME", form.Get("RecordType3"))
	assert.Equal(t, "acme-abc123.vercel.app", form.Get("Address3"))
	assert.Empty(t, form.Get("HostName4"))
}

func TestAddCNAMERecordReplacesSameHost(t *testing.T) {
	var form url.Values
	srv := newDNSServer(t, getHostsResponse, &form)
	defer srv.Close()

	c := NewClient(srv.URL, "juzbuild", "key", "1.2.3.4")
	err := c.AddCNAMERecord(context.Background(), "onjuzbuild.com", "alpha", "alpha-new456.vercel.app")
	require.NoError(t, err)

	// The stale alpha CNAME is dropped, not duplicated.
	assert.Equal(t, "@", form.Get("HostName1"))
	assert.Equal(t, "alpha", form.Get("HostName2"))
	assert.Equal(t, "alpha-new456.vercel.app", form.Get("Address2"))
	assert.Empty(t, form.Get("HostName3"))
}

func TestAddCNAMERecordGetHostsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Namecheap reports errors inside a 200 body.
		w.Write([]byte(errorResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "juzbuild", "key", "1.2.3.4")
	err := c.AddCNAMERecord(context.Background(), "onjuzbuild.com", "acme", "target")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get dns host records")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAddCNAMERecordSetHostsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("Command") == "namecheap.domains.dns.getHosts" {
			w.Write([]byte(emptyGetHostsResponse))
			return
		}
		w.Write([]byte(errorResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "juzbuild", "key", "1.2.3.4")
	err := c.AddCNAMERecord(context.Background(), "onjuzbuild.com", "acme", "target")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set dns host records")
}

func TestAddCNAMERecordInvalidDomain(t *testing.T) {
	c := NewClient("http://unused", "juzbuild", "key", "1.2.3.4")
	err := c.AddCNAMERecord(context.Background(), "nodots", "acme", "target")
	assert.Error(t, err)
}
