package workflow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/juzbuild/juzbuild/internal/model"
)

type SiteProvisionWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env *testsuite.TestWorkflowEnvironment
}

func (s *SiteProvisionWorkflowTestSuite) SetupTest() {
	s.env = s.NewTestWorkflowEnvironment()
	registerActivities(s.env)
	s.env.RegisterWorkflow(CreateSiteWorkflow)
	s.env.RegisterWorkflow(DeleteSiteWorkflow)
}

func (s *SiteProvisionWorkflowTestSuite) AfterTest(suiteName, testName string) {
	s.env.AssertExpectations(s.T())
}

func (s *SiteProvisionWorkflowTestSuite) TestRunsTaskAsChildWorkflow() {
	req := provisioningRequest()
	task := model.ProvisionTask{
		WorkflowName: "CreateSiteWorkflow",
		WorkflowID:   "create-site-acme-1",
		Arg:          req,
	}

	s.env.RegisterDelayedCallback(func() {
		s.env.SignalWorkflow(model.ProvisionSignalName, task)
	}, 0)

	s.env.OnWorkflow(CreateSiteWorkflow, mock.Anything, req).
		Return(model.ProvisioningOutcome{Success: true, SiteName: "acme"}, nil)

	s.env.ExecuteWorkflow(SiteProvisionWorkflow)
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SiteProvisionWorkflowTestSuite) TestChildFailureDoesNotStopOrchestrator() {
	task := model.ProvisionTask{
		WorkflowName: "DeleteSiteWorkflow",
		WorkflowID:   "delete-site-1",
		Arg:          "site-1",
	}

	s.env.RegisterDelayedCallback(func() {
		s.env.SignalWorkflow(model.ProvisionSignalName, task)
	}, 0)

	s.env.OnWorkflow(DeleteSiteWorkflow, mock.Anything, "site-1").
		Return(fmt.Errorf("database in use"))

	s.env.ExecuteWorkflow(SiteProvisionWorkflow)
	s.True(s.env.IsWorkflowCompleted())
	// The orchestrator logs the failure and keeps serving the site's queue.
	s.NoError(s.env.GetWorkflowError())
}

func (s *SiteProvisionWorkflowTestSuite) TestIdleTimeout() {
	// No signals; the workflow completes after the idle window.
	s.env.ExecuteWorkflow(SiteProvisionWorkflow)
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func TestSiteProvisionWorkflow(t *testing.T) {
	suite.Run(t, new(SiteProvisionWorkflowTestSuite))
}
