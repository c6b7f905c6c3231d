package workflow

import (
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/testsuite"

	"github.com/juzbuild/juzbuild/internal/activity"
	"github.com/juzbuild/juzbuild/internal/model"
)

// registerActivities registers activity structs with the test workflow
// environment so that parameter and return types can be deserialized correctly
// by the Temporal test framework. In unit tests, all activities are mocked via
// OnActivity, but the framework still needs the type information for proper
// serialization/deserialization of activity parameters and return values.
func registerActivities(env *testsuite.TestWorkflowEnvironment) {
	env.RegisterActivity(&activity.CoreDB{})
	env.RegisterActivity(&activity.SiteDB{})
	env.RegisterActivity(&activity.Template{})
	env.RegisterActivity(&activity.Repository{})
	env.RegisterActivity(&activity.Deploy{})
	env.RegisterActivity(&activity.DNS{})
	env.RegisterActivity(&activity.Notify{})
}

// matchFailedStatus returns a mock.MatchedBy matcher for UpdateSiteStatusParams
// that checks the site ID, status=failed, and that the message names the step.
// The exact message includes Temporal activity error wrapping that is not
// predictable in tests.
func matchFailedStatus(id, step string) interface{} {
	return mock.MatchedBy(func(params activity.UpdateSiteStatusParams) bool {
		return params.ID == id &&
			params.Status == model.StatusFailed &&
			params.StatusMessage != nil &&
			len(*params.StatusMessage) > len(step) &&
			(*params.StatusMessage)[:len(step)] == step
	})
}
