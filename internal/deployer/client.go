// Package deployer is a minimal Vercel API client: it registers a project
// linked to a Git repository and requests deployments for it.
package deployer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	teamID     string
}

func NewClient(baseURL, token, teamID string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		token:      token,
		teamID:     teamID,
	}
}

// Project is a hosting project linked to a source repository.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Deployment is one deployment of a project.
type Deployment struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	ReadyState string `json:"readyState"`
}

// CreateProject registers a new project linked to the given GitHub
// repository ("owner/name").
func (c *Client) CreateProject(ctx context.Context, name, gitHubRepo string) (*Project, error) {
	payload := map[string]any{
		"name":      name,
		"framework": "nextjs",
		"gitRepository": map[string]string{
			"type": "github",
			"repo": gitHubRepo,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal create project: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/v10/projects"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create project request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create project %s: status %d: %s", name, resp.StatusCode, string(respBody))
	}

	var project Project
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return nil, fmt.Errorf("decode create project response: %w", err)
	}
	return &project, nil
}

// CreateDeployment requests a deployment of the project from its linked
// repository's default branch.
func (c *Client) CreateDeployment(ctx context.Context, projectName string) (*Deployment, error) {
	payload := map[string]any{
		"name":   projectName,
		"target": "production",
		"gitSource": map[string]string{
			"type": "github",
			"ref":  "main",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal create deployment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/v13/deployments"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create deployment request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create deployment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create deployment for %s: status %d: %s", projectName, resp.StatusCode, string(respBody))
	}

	var deployment Deployment
	if err := json.NewDecoder(resp.Body).Decode(&deployment); err != nil {
		return nil, fmt.Errorf("decode create deployment response: %w", err)
	}
	return &deployment, nil
}

func (c *Client) url(path string) string {
	u := c.baseURL + path
	if c.teamID != "" {
		u += "?teamId=" + url.QueryEscape(c.teamID)
	}
	return u
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
}
