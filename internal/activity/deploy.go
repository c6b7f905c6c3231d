package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/juzbuild/juzbuild/internal/deployer"
	"github.com/juzbuild/juzbuild/internal/model"
)

// Deployer is the subset of the Vercel client the deployment activity uses.
type Deployer interface {
	CreateProject(ctx context.Context, name, gitHubRepo string) (*deployer.Project, error)
	CreateDeployment(ctx context.Context, projectName string) (*deployer.Deployment, error)
}

// Deploy contains the deployment trigger activity.
type Deploy struct {
	client    Deployer
	codehost  CodeHost
	enabled   bool
	github    bool
	linkDelay time.Duration
	sleep     func(time.Duration)
}

// NewDeploy creates a new Deploy activity struct. The code host client is
// used to nudge the git integration after project creation; it is only
// called when GitHub publishing is also enabled.
func NewDeploy(client Deployer, codehost CodeHost, enabled, github bool, linkDelay time.Duration, sleep func(time.Duration)) *Deploy {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Deploy{client: client, codehost: codehost, enabled: enabled, github: github, linkDelay: linkDelay, sleep: sleep}
}

// TriggerDeploymentParams holds parameters for TriggerDeployment.
type TriggerDeploymentParams struct {
	Request      model.ProvisioningRequest `json:"request"`
	RepoFullName string                    `json:"repo_full_name"`
	RepoOwner    string                    `json:"repo_owner"`
}

// TriggerDeploymentResult reports the deployment trigger.
type TriggerDeploymentResult struct {
	ProjectID     string `json:"project_id,omitempty"`
	DeploymentURL string `json:"deployment_url"`
	ReadyState    string `json:"ready_state,omitempty"`
	Skipped       bool   `json:"skipped"`
}

// TriggerDeployment creates the hosting project linked to the site's
// repository and requests its first deployment. The git link takes a moment
// to become effective after project creation, so a marker file is committed
// after a configurable delay to make sure the integration picks up a build.
//
// Without Vercel credentials the step performs no network calls and reports
// a synthetic deployment URL.
func (a *Deploy) TriggerDeployment(ctx context.Context, params TriggerDeploymentParams) (*TriggerDeploymentResult, error) {
	name := params.Request.Subdomain

	if !a.enabled {
		return &TriggerDeploymentResult{
			DeploymentURL: name + ".vercel.app",
			Skipped:       true,
		}, nil
	}

	project, err := a.client.CreateProject(ctx, name, params.RepoFullName)
	if err != nil {
		return nil, fmt.Errorf("create deployment project %s: %w", name, err)
	}

	a.sleep(a.linkDelay)

	if a.github && a.codehost != nil {
		marker := []byte(time.Now().UTC().Format(time.RFC3339) + "\n")
		// Best-effort: the explicit deployment below covers a missed hook.
		_ = a.codehost.PutFile(ctx, params.RepoOwner, name, ".vercel-trigger", "Trigger deployment", marker)
	}

	deployment, err := a.client.CreateDeployment(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create deployment for %s: %w", name, err)
	}

	url := deployment.URL
	if url == "" {
		url = name + ".vercel.app"
	}
	return &TriggerDeploymentResult{
		ProjectID:     project.ID,
		DeploymentURL: url,
		ReadyState:    deployment.ReadyState,
	}, nil
}
