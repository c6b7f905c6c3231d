package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/juzbuild/juzbuild/internal/activity"
	"github.com/juzbuild/juzbuild/internal/model"
)

// stepCtx returns a workflow context for provisioning step activities.
// Steps run at most once: a failed step aborts the run rather than being
// retried, and the caller reports which step failed.
func stepCtx(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})
}

// statusCtx returns a workflow context for site status bookkeeping. Status
// updates are not provisioning steps and may be retried.
func statusCtx(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts:    3,
			InitialInterval:    1 * time.Second,
			MaximumInterval:    10 * time.Second,
			BackoffCoefficient: 2.0,
		},
	})
}

// setSiteFailed marks the site failed with the failing step and error.
// Callers ignore the returned error since the step error is more important.
func setSiteFailed(ctx workflow.Context, siteID, step string, err error) error {
	msg := step + ": " + err.Error()
	return workflow.ExecuteActivity(statusCtx(ctx), "UpdateSiteStatus", activity.UpdateSiteStatusParams{
		ID:            siteID,
		Status:        model.StatusFailed,
		StatusMessage: &msg,
	}).Get(ctx, nil)
}
