package activity

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juzbuild/juzbuild/internal/codehost"
	"github.com/juzbuild/juzbuild/internal/model"
)

// ---------- Mock code host ----------

type mockCodeHost struct {
	createdRepos []string
	putFiles     []string
	failPaths    map[string]bool
	createErr    error
}

func (m *mockCodeHost) CreateRepo(ctx context.Context, name, description string) (*codehost.Repo, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdRepos = append(m.createdRepos, name)
	repo := &codehost.Repo{
		Name:     name,
		FullName: "juzbuild/" + name,
		HTMLURL:  "https://github.com/juzbuild/" + name,
		CloneURL: "https://github.com/juzbuild/" + name + ".git",
	}
	repo.Owner.Login = "juzbuild"
	return repo, nil
}

func (m *mockCodeHost) PutFile(ctx context.Context, owner, repo, path, message string, content []byte) error {
	if m.failPaths[path] {
		return fmt.Errorf("upload %s: status 502", path)
	}
	m.putFiles = append(m.putFiles, path)
	return nil
}

func writeTemplateDir(t *testing.T, files ...string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content of "+rel), 0o644))
	}
	return dir, files
}

func testRequest() model.ProvisioningRequest {
	return model.ProvisioningRequest{
		SiteID:      "site-1",
		CompanyName: "Acme Realty",
		Subdomain:   "acme",
		OwnerEmail:  "owner@acme.test",
		OwnerName:   "Dana",
	}
}

// ---------- PublishRepository ----------

func TestPublishRepository_Success(t *testing.T) {
	dir, files := writeTemplateDir(t, "package.json", "pages/index.js", "styles/globals.css")
	host := &mockCodeHost{}
	a := NewRepository(host, "juzbuild", true, RepositoryPacing{BatchSize: 2}, func(time.Duration) {})

	result, err := a.PublishRepository(context.Background(), PublishRepositoryParams{
		Request: testRequest(), Dir: dir, Files: files,
	})
	require.NoError(t, err)

	assert.Equal(t, "juzbuild/acme", result.FullName)
	assert.Equal(t, "https://github.com/juzbuild/acme", result.RepoURL)
	assert.False(t, result.Skipped)
	assert.Equal(t, 4, result.FilesPushed) // README + 3 template files
	assert.Empty(t, result.FailedFiles)

	// README is the first commit so the repository is never empty.
	require.NotEmpty(t, host.putFiles)
	assert.Equal(t, "README.md", host.putFiles[0])
}

func TestPublishRepository_Disabled_NoNetworkCalls(t *testing.T) {
	host := &mockCodeHost{}
	a := NewRepository(host, "", false, RepositoryPacing{}, func(time.Duration) {})

	result, err := a.PublishRepository(context.Background(), PublishRepositoryParams{
		Request: testRequest(), Dir: "/nonexistent", Files: []string{"package.json"},
	})
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Equal(t, "juzbuild/acme", result.FullName)
	assert.Equal(t, "https://github.com/juzbuild/acme", result.RepoURL)
	assert.Empty(t, host.createdRepos)
	assert.Empty(t, host.putFiles)
}

func TestPublishRepository_FileFailuresAreTolerated(t *testing.T) {
	dir, files := writeTemplateDir(t, "package.json", "pages/index.js", "styles/globals.css")
	host := &mockCodeHost{failPaths: map[string]bool{"pages/index.js": true}}
	a := NewRepository(host, "juzbuild", true, RepositoryPacing{}, func(time.Duration) {})

	result, err := a.PublishRepository(context.Background(), PublishRepositoryParams{
		Request: testRequest(), Dir: dir, Files: files,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesPushed) // README + 2 surviving files
	assert.Equal(t, []string{"pages/index.js"}, result.FailedFiles)
}

func TestPublishRepository_CreateRepoFails(t *testing.T) {
	host := &mockCodeHost{createErr: fmt.Errorf("name already exists")}
	a := NewRepository(host, "juzbuild", true, RepositoryPacing{}, func(time.Duration) {})

	_, err := a.PublishRepository(context.Background(), PublishRepositoryParams{
		Request: testRequest(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name already exists")
}

func TestPublishRepository_Pacing(t *testing.T) {
	dir, files := writeTemplateDir(t, "a.js", "b.js", "c.js", "d.js")
	host := &mockCodeHost{}

	var slept []time.Duration
	pacing := RepositoryPacing{
		UploadDelay: 500 * time.Millisecond,
		BatchDelay:  2 * time.Second,
		BatchSize:   2,
	}
	a := NewRepository(host, "juzbuild", true, pacing, func(d time.Duration) {
		slept = append(slept, d)
	})

	_, err := a.PublishRepository(context.Background(), PublishRepositoryParams{
		Request: testRequest(), Dir: dir, Files: files,
	})
	require.NoError(t, err)

	// One upload delay per file, plus a batch delay after every 2 files.
	assert.Equal(t, []time.Duration{
		500 * time.Millisecond,
		500 * time.Millisecond,
		500 * time.Millisecond, 2 * time.Second,
		500 * time.Millisecond,
	}, slept)
}

func TestPublishRepository_MissingLocalFileIsListed(t *testing.T) {
	dir, _ := writeTemplateDir(t, "package.json")
	host := &mockCodeHost{}
	a := NewRepository(host, "juzbuild", true, RepositoryPacing{}, func(time.Duration) {})

	result, err := a.PublishRepository(context.Background(), PublishRepositoryParams{
		Request: testRequest(), Dir: dir, Files: []string{"package.json", "missing.js"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing.js"}, result.FailedFiles)
}
