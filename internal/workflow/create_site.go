package workflow

import (
	"go.temporal.io/sdk/workflow"

	"github.com/juzbuild/juzbuild/internal/activity"
	"github.com/juzbuild/juzbuild/internal/model"
)

// CreateSiteWorkflow provisions a tenant website end to end: tenant
// database, template generation, repository publishing, deployment,
// subdomain binding, owner notification, and the final ledger record.
//
// Steps run strictly in order and each runs at most once. The first step
// failure aborts the run; the returned outcome names the failing step,
// carries the raw error, and lists every resource created before the stop
// so a caller can clean up by hand. A step failure is a business outcome,
// not a workflow error, so the workflow completes normally either way.
func CreateSiteWorkflow(ctx workflow.Context, req model.ProvisioningRequest) (model.ProvisioningOutcome, error) {
	logger := workflow.GetLogger(ctx)
	steps := stepCtx(ctx)

	outcome := model.ProvisioningOutcome{
		SiteName: req.Subdomain,
		Steps:    map[string]model.StepPayload{},
	}
	var created []string

	fail := func(step string, err error) model.ProvisioningOutcome {
		logger.Error("provisioning step failed", "site", req.Subdomain, "step", step, "error", err)
		outcome.Success = false
		outcome.Status = model.StatusFailed
		outcome.Step = step
		outcome.Error = err.Error()
		outcome.CreatedResources = created
		_ = setSiteFailed(ctx, req.SiteID, step, err)
		return outcome
	}

	err := workflow.ExecuteActivity(statusCtx(ctx), "UpdateSiteStatus", activity.UpdateSiteStatusParams{
		ID:     req.SiteID,
		Status: model.StatusProvisioning,
	}).Get(ctx, nil)
	if err != nil {
		return outcome, err
	}

	// Database Setup.
	var dbRes activity.ProvisionSiteDatabaseResult
	err = workflow.ExecuteActivity(steps, "ProvisionSiteDatabase", activity.ProvisionSiteDatabaseParams{
		Request: req,
	}).Get(ctx, &dbRes)
	if err != nil {
		return fail(model.StepDatabaseSetup, err), nil
	}
	created = append(created, "database:"+dbRes.DatabaseName)
	outcome.Steps[model.StepDatabaseSetup] = model.StepPayload{
		"database_name":     dbRes.DatabaseName,
		"tables":            dbRes.Tables,
		"seeded_properties": dbRes.SeededProperties,
	}

	// Template Generation.
	var tmplRes activity.GenerateSiteTemplateResult
	err = workflow.ExecuteActivity(steps, "GenerateSiteTemplate", activity.GenerateSiteTemplateParams{
		Request: req,
	}).Get(ctx, &tmplRes)
	if err != nil {
		return fail(model.StepTemplateGeneration, err), nil
	}
	if tmplRes.ArchiveKey != "" {
		created = append(created, "archive:"+tmplRes.ArchiveKey)
	}
	outcome.Steps[model.StepTemplateGeneration] = model.StepPayload{
		"dir":         tmplRes.Dir,
		"file_count":  len(tmplRes.Files),
		"archive_key": tmplRes.ArchiveKey,
	}

	// Repository Setup.
	var repoRes activity.PublishRepositoryResult
	err = workflow.ExecuteActivity(steps, "PublishRepository", activity.PublishRepositoryParams{
		Request: req,
		Dir:     tmplRes.Dir,
		Files:   tmplRes.Files,
	}).Get(ctx, &repoRes)
	if err != nil {
		return fail(model.StepRepositorySetup, err), nil
	}
	if !repoRes.Skipped {
		created = append(created, "github_repo:"+repoRes.FullName)
	}
	outcome.Steps[model.StepRepositorySetup] = model.StepPayload{
		"repo_url":     repoRes.RepoURL,
		"full_name":    repoRes.FullName,
		"files_pushed": repoRes.FilesPushed,
		"failed_files": repoRes.FailedFiles,
		"skipped":      repoRes.Skipped,
	}

	// Deployment.
	var depRes activity.TriggerDeploymentResult
	err = workflow.ExecuteActivity(steps, "TriggerDeployment", activity.TriggerDeploymentParams{
		Request:      req,
		RepoFullName: repoRes.FullName,
		RepoOwner:    repoRes.Owner,
	}).Get(ctx, &depRes)
	if err != nil {
		return fail(model.StepDeployment, err), nil
	}
	if !depRes.Skipped {
		created = append(created, "vercel_project:"+depRes.ProjectID)
	}
	outcome.Steps[model.StepDeployment] = model.StepPayload{
		"project_id":     depRes.ProjectID,
		"deployment_url": depRes.DeploymentURL,
		"skipped":        depRes.Skipped,
	}

	// Subdomain Setup.
	var dnsRes activity.BindSubdomainResult
	err = workflow.ExecuteActivity(steps, "BindSubdomain", activity.BindSubdomainParams{
		Subdomain: req.Subdomain,
		Target:    depRes.DeploymentURL,
	}).Get(ctx, &dnsRes)
	if err != nil {
		return fail(model.StepSubdomainSetup, err), nil
	}
	if !dnsRes.Skipped {
		created = append(created, "dns_record:"+dnsRes.Domain)
	}
	outcome.Domain = dnsRes.Domain
	outcome.Steps[model.StepSubdomainSetup] = model.StepPayload{
		"domain":  dnsRes.Domain,
		"target":  dnsRes.Target,
		"skipped": dnsRes.Skipped,
	}

	// Email Notification.
	var mailRes activity.SendSiteReadyEmailResult
	err = workflow.ExecuteActivity(steps, "SendSiteReadyEmail", activity.SendSiteReadyEmailParams{
		To:        req.OwnerEmail,
		OwnerName: req.OwnerName,
		Domain:    dnsRes.Domain,
	}).Get(ctx, &mailRes)
	if err != nil {
		return fail(model.StepEmailNotification, err), nil
	}
	outcome.Steps[model.StepEmailNotification] = model.StepPayload{
		"message_id": mailRes.MessageID,
		"skipped":    mailRes.Skipped,
	}

	// Website Record.
	var websiteID string
	err = workflow.ExecuteActivity(steps, "InsertWebsiteRecord", activity.InsertWebsiteRecordParams{
		SiteID:       req.SiteID,
		UserID:       req.UserID,
		SiteName:     req.Subdomain,
		CompanyName:  req.CompanyName,
		OwnerEmail:   req.OwnerEmail,
		Domain:       dnsRes.Domain,
		RepoURL:      repoRes.RepoURL,
		DatabaseName: dbRes.DatabaseName,
		ThemeID:      req.ThemeID,
		LayoutStyle:  req.LayoutStyle,
		Status:       model.StatusActive,
	}).Get(ctx, &websiteID)
	if err != nil {
		return fail(model.StepWebsiteRecord, err), nil
	}
	outcome.Steps[model.StepWebsiteRecord] = model.StepPayload{
		"website_id": websiteID,
	}

	// Persist outputs and flip the site live. Bookkeeping failures do not
	// undo a fully provisioned site.
	bookCtx := statusCtx(ctx)
	_ = workflow.ExecuteActivity(bookCtx, "SetSiteOutputs", activity.SetSiteOutputsParams{
		ID:           req.SiteID,
		RepoURL:      &repoRes.RepoURL,
		Domain:       &dnsRes.Domain,
		DatabaseName: &dbRes.DatabaseName,
	}).Get(ctx, nil)
	_ = workflow.ExecuteActivity(bookCtx, "UpdateSiteStatus", activity.UpdateSiteStatusParams{
		ID:     req.SiteID,
		Status: model.StatusActive,
	}).Get(ctx, nil)

	outcome.Success = true
	outcome.Status = model.StatusActive
	outcome.CreatedResources = created
	return outcome, nil
}
