package workflow

import (
	"go.temporal.io/sdk/workflow"

	"github.com/juzbuild/juzbuild/internal/activity"
	"github.com/juzbuild/juzbuild/internal/model"
)

// DeleteSiteWorkflow tears down a site's tenant database and ledger rows.
// External resources (repository, deployment project, DNS record) are left
// for the operator, mirroring how provisioning never rolls them back.
func DeleteSiteWorkflow(ctx workflow.Context, siteID string) error {
	ctx = statusCtx(ctx)

	err := workflow.ExecuteActivity(ctx, "UpdateSiteStatus", activity.UpdateSiteStatusParams{
		ID:     siteID,
		Status: model.StatusDeleting,
	}).Get(ctx, nil)
	if err != nil {
		return err
	}

	var site model.Site
	err = workflow.ExecuteActivity(ctx, "GetSiteByID", siteID).Get(ctx, &site)
	if err != nil {
		_ = setSiteFailed(ctx, siteID, "Site Lookup", err)
		return err
	}

	if site.DatabaseName != nil && *site.DatabaseName != "" {
		err = workflow.ExecuteActivity(ctx, "DropSiteDatabase", *site.DatabaseName).Get(ctx, nil)
		if err != nil {
			_ = setSiteFailed(ctx, siteID, "Database Teardown", err)
			return err
		}
	}

	err = workflow.ExecuteActivity(ctx, "DeleteWebsiteRecords", siteID).Get(ctx, nil)
	if err != nil {
		_ = setSiteFailed(ctx, siteID, "Ledger Cleanup", err)
		return err
	}

	return workflow.ExecuteActivity(ctx, "UpdateSiteStatus", activity.UpdateSiteStatusParams{
		ID:     siteID,
		Status: model.StatusDeleted,
	}).Get(ctx, nil)
}
