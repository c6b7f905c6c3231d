package deployer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v10/projects", r.URL.Path)
		assert.Equal(t, "team_1", r.URL.Query().Get("teamId"))
		assert.Equal(t, "Bearer vc_test", r.Header.Get("Authorization"))

		var payload struct {
			Name          string            `json:"name"`
			GitRepository map[string]string `json:"gitRepository"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "acme", payload.Name)
		assert.Equal(t, "juzbuild/acme", payload.GitRepository["repo"])

		w.Write([]byte(`{"id":"prj_123","name":"acme"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "vc_test", "team_1")
	project, err := c.CreateProject(context.Background(), "acme", "juzbuild/acme")
	require.NoError(t, err)
	assert.Equal(t, "prj_123", project.ID)
}

func TestCreateDeployment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v13/deployments", r.URL.Path)
		w.Write([]byte(`{"id":"dpl_1","url":"acme-abc123.vercel.app","readyState":"QUEUED"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "vc_test", "")
	deployment, err := c.CreateDeployment(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme-abc123.vercel.app", deployment.URL)
	assert.Equal(t, "QUEUED", deployment.ReadyState)
}

func TestCreateProjectError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"project exists"}}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "vc_test", "")
	_, err := c.CreateProject(context.Background(), "acme", "juzbuild/acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
}
