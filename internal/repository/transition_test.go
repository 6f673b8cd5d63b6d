//go:build integration
// +build integration

package repository

import (
	"testing"

	"cx-crm-backend/internal/database/models"
	"cx-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TransitionRepositoryTestSuite tests the TransitionRepository
type TransitionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TransitionRepository
	pipelineRepo  *PipelineRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TransitionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTransitionRepository(suite.baseTestSuite.DB)
	suite.pipelineRepo = NewPipelineRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TransitionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TransitionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TransitionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedHistory creates a pipeline and walks it through three stages, returning
// the pipeline and the stages in visit order.
func (suite *TransitionRepositoryTestSuite) seedHistory() (*models.CxPipeline, []*models.PipelineStage) {
	client := testutils.NewClientFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(client).Error)

	names := []string{"Lead/Prospect", "Negotiation", "Onboarding"}
	stages := make([]*models.PipelineStage, len(names))
	for i, name := range names {
		s := testutils.NewStageFactory().WithName(name)
		s.SortOrder = i
		suite.NoError(suite.baseTestSuite.DB.Create(s).Error)
		stages[i] = s
	}

	pipeline := testutils.NewPipelineFactory().WithClient(client.ID)
	pipeline.StageID = &stages[0].ID
	suite.NoError(suite.pipelineRepo.Create(pipeline, nil))
	for _, s := range stages[1:] {
		_, err := suite.pipelineRepo.ChangeStage(pipeline.ID, s.ID, nil)
		suite.NoError(err)
	}
	return pipeline, stages
}

// TestGetByPipelineIDNewestFirst tests paging through the history
func (suite *TransitionRepositoryTestSuite) TestGetByPipelineIDNewestFirst() {
	pipeline, stages := suite.seedHistory()

	transitions, total, err := suite.repo.GetByPipelineID(pipeline.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(transitions, 3)

	// newest entry first; only the newest is open
	suite.Equal(stages[2].ID, *transitions[0].ToStageID)
	suite.True(transitions[0].IsActive())
	suite.False(transitions[1].IsActive())
	suite.False(transitions[2].IsActive())
	suite.Nil(transitions[2].FromStageID)

	// stages come preloaded
	suite.NotNil(transitions[0].ToStage)
	suite.Equal("Onboarding", transitions[0].ToStage.Name)

	// pagination
	page, total, err := suite.repo.GetByPipelineID(pipeline.ID, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 1)
}

// TestGetOpen tests resolving the single open transition
func (suite *TransitionRepositoryTestSuite) TestGetOpen() {
	pipeline, stages := suite.seedHistory()

	open, err := suite.repo.GetOpen(pipeline.ID)

	suite.NoError(err)
	suite.Equal(stages[2].ID, *open.ToStageID)
	suite.Nil(open.ExitDate)
}

// TestGetOpenNone tests a pipeline with no stage history
func (suite *TransitionRepositoryTestSuite) TestGetOpenNone() {
	client := testutils.NewClientFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(client).Error)
	pipeline := testutils.NewPipelineFactory().WithClient(client.ID)
	suite.NoError(suite.pipelineRepo.Create(pipeline, nil))

	open, err := suite.repo.GetOpen(pipeline.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(open)
}

// TestGetRecentLimit tests the bounded recent list
func (suite *TransitionRepositoryTestSuite) TestGetRecentLimit() {
	pipeline, _ := suite.seedHistory()

	recent, err := suite.repo.GetRecent(pipeline.ID, 2)

	suite.NoError(err)
	suite.Len(recent, 2)
	suite.True(recent[0].IsActive())
}

// TestGetAllPreloadsTargets tests the stats aggregator's read
func (suite *TransitionRepositoryTestSuite) TestGetAllPreloadsTargets() {
	suite.seedHistory()

	all, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(all, 3)
	for _, tr := range all {
		if tr.ToStageID != nil {
			suite.NotNil(tr.ToStage)
		}
	}
}

// TestGetByPipelineIDEmpty tests an unknown pipeline id
func (suite *TransitionRepositoryTestSuite) TestGetByPipelineIDEmpty() {
	transitions, total, err := suite.repo.GetByPipelineID(uuid.New(), 10, 0)

	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Len(transitions, 0)
}

// Run the test suite
func TestTransitionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionRepositoryTestSuite))
}
