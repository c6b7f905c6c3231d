package model

// ProvisionSignalName is the signal name used by the per-site provisioning workflow.
const ProvisionSignalName = "provision"

// Provisioning step names. These appear in outcomes, logs, and the UI, so
// they are part of the external contract.
const (
	StepDatabaseSetup      = "Database Setup"
	StepTemplateGeneration = "Template Generation"
	StepRepositorySetup    = "Repository Setup"
	StepDeployment         = "Deployment"
	StepSubdomainSetup     = "Subdomain Setup"
	StepEmailNotification  = "Email Notification"
	StepWebsiteRecord      = "Website Record"
)

// ProvisionTask is a unit of work processed sequentially by the per-site
// provisioning workflow. Serializing tasks per site name prevents two
// concurrent requests for the same subdomain from racing.
type ProvisionTask struct {
	WorkflowName string `json:"workflow_name"`
	WorkflowID   string `json:"workflow_id"`
	Arg          any    `json:"arg"`
}

// ProvisioningRequest is the immutable input to one provisioning run.
// Brand colors are positional: first is primary, second secondary, third
// accent. Missing slots fall back to fixed defaults.
type ProvisioningRequest struct {
	SiteID                 string   `json:"site_id"`
	UserID                 string   `json:"user_id"`
	OwnerEmail             string   `json:"owner_email"`
	OwnerName              string   `json:"owner_name"`
	CompanyName            string   `json:"company_name"`
	Subdomain              string   `json:"subdomain"`
	BrandColors            []string `json:"brand_colors"`
	Tagline                string   `json:"tagline"`
	AboutText              string   `json:"about_text"`
	ThemeID                string   `json:"theme_id"`
	LayoutStyle            string   `json:"layout_style"`
	PropertyTypes          []string `json:"property_types"`
	IncludedPages          []string `json:"included_pages"`
	PreferredContactMethod []string `json:"preferred_contact_method"`
}

// StepPayload is the opaque data payload one step produced.
type StepPayload map[string]any

// ProvisioningOutcome is the terminal value of a provisioning run.
//
// On success, Steps holds one payload per step name and Domain/Status carry
// the computed summary. On failure, Step names the failing step and Error
// holds the raw underlying message. CreatedResources lists every external
// resource created before the run stopped, so a caller can clean up;
// the workflow itself never compensates.
type ProvisioningOutcome struct {
	Success          bool                   `json:"success"`
	SiteName         string                 `json:"site_name,omitempty"`
	Domain           string                 `json:"domain,omitempty"`
	Status           string                 `json:"status,omitempty"`
	Steps            map[string]StepPayload `json:"steps,omitempty"`
	Step             string                 `json:"step,omitempty"`
	Error            string                 `json:"error,omitempty"`
	CreatedResources []string               `json:"created_resources,omitempty"`
}
