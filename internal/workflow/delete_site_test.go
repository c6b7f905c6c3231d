package workflow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/juzbuild/juzbuild/internal/activity"
	"github.com/juzbuild/juzbuild/internal/model"
)

type DeleteSiteWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env *testsuite.TestWorkflowEnvironment
}

func (s *DeleteSiteWorkflowTestSuite) SetupTest() {
	s.env = s.NewTestWorkflowEnvironment()
	registerActivities(s.env)
}

func (s *DeleteSiteWorkflowTestSuite) AfterTest(suiteName, testName string) {
	s.env.AssertExpectations(s.T())
}

func (s *DeleteSiteWorkflowTestSuite) TestSuccess() {
	siteID := "site-1"
	dbName := "site_acme"
	site := model.Site{ID: siteID, SiteName: "acme", DatabaseName: &dbName}

	s.env.OnActivity("UpdateSiteStatus", mock.Anything, activity.UpdateSiteStatusParams{
		ID: siteID, Status: model.StatusDeleting,
	}).Return(nil)
	s.env.OnActivity("GetSiteByID", mock.Anything, siteID).Return(&site, nil)
	s.env.OnActivity("DropSiteDatabase", mock.Anything, dbName).Return(nil)
	s.env.OnActivity("DeleteWebsiteRecords", mock.Anything, siteID).Return(nil)
	s.env.OnActivity("UpdateSiteStatus", mock.Anything, activity.UpdateSiteStatusParams{
		ID: siteID, Status: model.StatusDeleted,
	}).Return(nil)

	s.env.ExecuteWorkflow(DeleteSiteWorkflow, siteID)
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *DeleteSiteWorkflowTestSuite) TestNoDatabase_SkipsDrop() {
	siteID := "site-2"
	site := model.Site{ID: siteID, SiteName: "acme"}

	s.env.OnActivity("UpdateSiteStatus", mock.Anything, activity.UpdateSiteStatusParams{
		ID: siteID, Status: model.StatusDeleting,
	}).Return(nil)
	s.env.OnActivity("GetSiteByID", mock.Anything, siteID).Return(&site, nil)
	s.env.OnActivity("DeleteWebsiteRecords", mock.Anything, siteID).Return(nil)
	s.env.OnActivity("UpdateSiteStatus", mock.Anything, activity.UpdateSiteStatusParams{
		ID: siteID, Status: model.StatusDeleted,
	}).Return(nil)

	s.env.ExecuteWorkflow(DeleteSiteWorkflow, siteID)
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
	s.env.AssertNotCalled(s.T(), "DropSiteDatabase", mock.Anything, mock.Anything)
}

func (s *DeleteSiteWorkflowTestSuite) TestDropFails_SetsStatusFailed() {
	siteID := "site-3"
	dbName := "site_acme"
	site := model.Site{ID: siteID, SiteName: "acme", DatabaseName: &dbName}

	s.env.OnActivity("UpdateSiteStatus", mock.Anything, activity.UpdateSiteStatusParams{
		ID: siteID, Status: model.StatusDeleting,
	}).Return(nil)
	s.env.OnActivity("GetSiteByID", mock.Anything, siteID).Return(&site, nil)
	s.env.OnActivity("DropSiteDatabase", mock.Anything, dbName).
		Return(fmt.Errorf("database in use"))
	s.env.OnActivity("UpdateSiteStatus", mock.Anything,
		matchFailedStatus(siteID, "Database Teardown")).Return(nil)

	s.env.ExecuteWorkflow(DeleteSiteWorkflow, siteID)
	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func TestDeleteSiteWorkflow(t *testing.T) {
	suite.Run(t, new(DeleteSiteWorkflowTestSuite))
}
