package activity

import (
	"context"
	"fmt"

	"github.com/juzbuild/juzbuild/internal/model"
	"github.com/juzbuild/juzbuild/internal/sitegen"
)

// ArchiveStore uploads a template directory snapshot to object storage.
type ArchiveStore interface {
	ArchiveDir(ctx context.Context, siteName, dir string) (string, error)
}

// Template contains the site template generation activity.
type Template struct {
	generator *sitegen.Generator
	store     ArchiveStore
	archive   bool
}

// NewTemplate creates a new Template activity struct. store may be nil when
// archiving is disabled.
func NewTemplate(generator *sitegen.Generator, store ArchiveStore, archive bool) *Template {
	return &Template{generator: generator, store: store, archive: archive}
}

// GenerateSiteTemplateParams holds parameters for GenerateSiteTemplate.
type GenerateSiteTemplateParams struct {
	Request model.ProvisioningRequest `json:"request"`
}

// GenerateSiteTemplateResult reports the generated template. ArchiveError
// carries a failed snapshot upload without failing the step.
type GenerateSiteTemplateResult struct {
	Dir          string   `json:"dir"`
	Files        []string `json:"files"`
	ArchiveKey   string   `json:"archive_key,omitempty"`
	ArchiveError string   `json:"archive_error,omitempty"`
}

// GenerateSiteTemplate renders the static site source tree for a request
// into the work directory. When archiving is enabled the tree is also
// uploaded as a tar.gz snapshot; archive failures do not fail the step.
func (a *Template) GenerateSiteTemplate(ctx context.Context, params GenerateSiteTemplateParams) (*GenerateSiteTemplateResult, error) {
	result, err := a.generator.Generate(params.Request)
	if err != nil {
		return nil, fmt.Errorf("generate site template: %w", err)
	}

	out := &GenerateSiteTemplateResult{
		Dir:   result.Dir,
		Files: result.Files,
	}

	if a.archive && a.store != nil {
		key, err := a.store.ArchiveDir(ctx, params.Request.Subdomain, result.Dir)
		if err != nil {
			out.ArchiveError = err.Error()
		} else {
			out.ArchiveKey = key
		}
	}

	return out, nil
}
