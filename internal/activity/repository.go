package activity

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/juzbuild/juzbuild/internal/codehost"
	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/sitegen"
)

// CodeHost is the subset of the GitHub client the repository activity uses.
type CodeHost interface {
	CreateRepo(ctx context.Context, name, description string) (*codehost.Repo, error)
	PutFile(ctx context.Context, owner, repo, path, message string, content []byte) error
}

// RepositoryPacing controls the delays between per-file commits. The
// contents API has no batch endpoint, so files are committed one at a time
// with pauses to stay under the abuse limits. Tests inject zero delays and
// a recording sleep func.
type RepositoryPacing struct {
	UploadDelay time.Duration
	BatchDelay  time.Duration
	BatchSize   int
}

// Repository contains the repository publishing activity.
type Repository struct {
	client  CodeHost
	owner   string
	enabled bool
	pacing  RepositoryPacing
	sleep   func(time.Duration)
}

// NewRepository creates a new Repository activity struct. sleep may be nil,
// in which case time.Sleep is used.
func NewRepository(client CodeHost, owner string, enabled bool, pacing RepositoryPacing, sleep func(time.Duration)) *Repository {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Repository{client: client, owner: owner, enabled: enabled, pacing: pacing, sleep: sleep}
}

// PublishRepositoryParams holds parameters for PublishRepository.
type PublishRepositoryParams struct {
	Request model.ProvisioningRequest `json:"request"`
	Dir     string                    `json:"dir"`
	Files   []string                  `json:"files"`
}

// PublishRepositoryResult reports the published repository.
//
// FailedFiles lists template files whose upload failed. Individual upload
// failures do not fail the step; the list is surfaced so the operator can
// re-push them by hand.
type PublishRepositoryResult struct {
	RepoURL     string   `json:"repo_url"`
	FullName    string   `json:"full_name"`
	CloneURL    string   `json:"clone_url,omitempty"`
	Owner       string   `json:"owner"`
	FilesPushed int      `json:"files_pushed"`
	FailedFiles []string `json:"failed_files,omitempty"`
	Skipped     bool     `json:"skipped"`
}

// PublishRepository creates the site's GitHub repository and commits the
// generated template into it, one commit per file. The README goes first so
// the repository is never empty.
//
// Without GitHub credentials the step performs no network calls and
// reports a synthetic repository, so the rest of the pipeline can proceed.
func (a *Repository) PublishRepository(ctx context.Context, params PublishRepositoryParams) (*PublishRepositoryResult, error) {
	name := params.Request.Subdomain

	if !a.enabled {
		owner := a.owner
		if owner == "" {
			owner = "juzbuild"
		}
		return &PublishRepositoryResult{
			RepoURL:  fmt.Sprintf("https://github.com/%s/%s", owner, name),
			FullName: owner + "/" + name,
			Owner:    owner,
			Skipped:  true,
		}, nil
	}

	repo, err := a.client.CreateRepo(ctx, name, params.Request.CompanyName+" website")
	if err != nil {
		return nil, fmt.Errorf("create repository %s: %w", name, err)
	}

	result := &PublishRepositoryResult{
		RepoURL:  repo.HTMLURL,
		FullName: repo.FullName,
		CloneURL: repo.CloneURL,
		Owner:    repo.Owner.Login,
	}

	readme := []byte(sitegen.Readme(params.Request))
	if err := a.client.PutFile(ctx, repo.Owner.Login, repo.Name, "README.md", "Initial commit", readme); err != nil {
		result.FailedFiles = append(result.FailedFiles, "README.md")
	} else {
		result.FilesPushed++
	}

	for i, rel := range params.Files {
		a.sleep(a.pacing.UploadDelay)
		if a.pacing.BatchSize > 0 && i > 0 && i%a.pacing.BatchSize == 0 {
			a.sleep(a.pacing.BatchDelay)
		}

		content, err := os.ReadFile(filepath.Join(params.Dir, filepath.FromSlash(rel)))
		if err != nil {
			result.FailedFiles = append(result.FailedFiles, rel)
			continue
		}
		if err := a.client.PutFile(ctx, repo.Owner.Login, repo.Name, rel, "Add "+rel, content); err != nil {
			result.FailedFiles = append(result.FailedFiles, rel)
			continue
		}
		result.FilesPushed++
	}

	return result, nil
}
