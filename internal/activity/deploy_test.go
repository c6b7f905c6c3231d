package activity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juzbuild/juzbuild/internal/deployer"
)

type mockDeployer struct {
	projects    []string
	deployments []string
	projectErr  error
	deployErr   error
}

func (m *mockDeployer) CreateProject(ctx context.Context, name, gitHubRepo string) (*deployer.Project, error) {
	if m.projectErr != nil {
		return nil, m.projectErr
	}
	m.projects = append(m.projects, name)
	return &deployer.Project{ID: "prj_" + name, Name: name}, nil
}

func (m *mockDeployer) CreateDeployment(ctx context.Context, projectName string) (*deployer.Deployment, error) {
	if m.deployErr != nil {
		return nil, m.deployErr
	}
	m.deployments = append(m.deployments, projectName)
	return &deployer.Deployment{ID: "dpl_1", URL: projectName + "-abc123.vercel.app", ReadyState: "QUEUED"}, nil
}

func TestTriggerDeployment_Success(t *testing.T) {
	d := &mockDeployer{}
	host := &mockCodeHost{}
	var slept []time.Duration
	a := NewDeploy(d, host, true, true, 10*time.Second, func(dur time.Duration) { slept = append(slept, dur) })

	result, err := a.TriggerDeployment(context.Background(), TriggerDeploymentParams{
		Request: testRequest(), RepoFullName: "juzbuild/acme", RepoOwner: "juzbuild",
	})
	require.NoError(t, err)

	assert.Equal(t, "prj_acme", result.ProjectID)
	assert.Equal(t, "acme-abc123.vercel.app", result.DeploymentURL)
	assert.False(t, result.Skipped)
	assert.Equal(t, []string{"acme"}, d.projects)
	assert.Equal(t, []string{"acme"}, d.deployments)
	assert.Equal(t, []time.Duration{10 * time.Second}, slept)
	assert.Contains(t, host.putFiles, ".vercel-trigger")
}

func TestTriggerDeployment_Disabled_NoNetworkCalls(t *testing.T) {
	d := &mockDeployer{}
	a := NewDeploy(d, nil, false, false, 0, func(time.Duration) {})

	result, err := a.TriggerDeployment(context.Background(), TriggerDeploymentParams{
		Request: testRequest(), RepoFullName: "juzbuild/acme",
	})
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Equal(t, "acme.vercel.app", result.DeploymentURL)
	assert.Empty(t, d.projects)
	assert.Empty(t, d.deployments)
}

func TestTriggerDeployment_ProjectFails(t *testing.T) {
	d := &mockDeployer{projectErr: fmt.Errorf("project exists")}
	a := NewDeploy(d, nil, true, false, 0, func(time.Duration) {})

	_, err := a.TriggerDeployment(context.Background(), TriggerDeploymentParams{
		Request: testRequest(), RepoFullName: "juzbuild/acme",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project exists")
}

func TestTriggerDeployment_MarkerFailureDoesNotFailStep(t *testing.T) {
	d := &mockDeployer{}
	host := &mockCodeHost{failPaths: map[string]bool{".vercel-trigger": true}}
	a := NewDeploy(d, host, true, true, 0, func(time.Duration) {})

	result, err := a.TriggerDeployment(context.Background(), TriggerDeploymentParams{
		Request: testRequest(), RepoFullName: "juzbuild/acme", RepoOwner: "juzbuild",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme-abc123.vercel.app", result.DeploymentURL)
}
