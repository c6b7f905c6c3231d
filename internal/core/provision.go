package core

import (
	"context"
	"fmt"

	"github.com/juzbuild/juzbuild/internal/model"
	temporalclient "go.temporal.io/sdk/client"
)

const taskQueue = "juzbuild-tasks"

// signalProvision routes a workflow task through the per-site entity
// workflow. It uses SignalWithStartWorkflow to ensure sequential execution
// of all workflows touching one site name: two concurrent requests for the
// same subdomain land on the same entity workflow and run one at a time.
func signalProvision(ctx context.Context, tc temporalclient.Client, siteName string, task model.ProvisionTask) error {
	wfID := fmt.Sprintf("site-%s", siteName)
	_, err := tc.SignalWithStartWorkflow(ctx, wfID, model.ProvisionSignalName, task,
		temporalclient.StartWorkflowOptions{
			ID:        wfID,
			TaskQueue: taskQueue,
		},
		"SiteProvisionWorkflow",
	)
	return err
}
