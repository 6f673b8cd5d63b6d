//go:build integration
// +build integration

package repository

import (
	"strings"
	"testing"

	"cx-crm-backend/internal/database/models"
	"cx-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ActivityRepositoryTestSuite tests the ActivityRepository
type ActivityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ActivityRepository
	pipelineRepo  *PipelineRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ActivityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewActivityRepository(suite.baseTestSuite.DB)
	suite.pipelineRepo = NewPipelineRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ActivityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ActivityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ActivityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ActivityRepositoryTestSuite) createPipeline() *models.CxPipeline {
	client := testutils.NewClientFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(client).Error)
	pipeline := testutils.NewPipelineFactory().WithClient(client.ID)
	suite.NoError(suite.pipelineRepo.Create(pipeline, nil))
	return pipeline
}

// TestCreateAndList tests appending and paging the audit log
func (suite *ActivityRepositoryTestSuite) TestCreateAndList() {
	pipeline := suite.createPipeline()
	user := testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	kinds := []models.ActivityKind{
		models.ActivityKindNoteAdded,
		models.ActivityKindManagerChange,
		models.ActivityKindCustom,
	}
	for _, kind := range kinds {
		suite.NoError(suite.repo.Create(&models.PipelineActivity{
			PipelineID:  pipeline.ID,
			UserID:      &user.ID,
			Kind:        kind,
			Description: "entry of kind " + string(kind),
		}))
	}

	activities, total, err := suite.repo.GetByPipelineID(pipeline.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(activities, 3)
	// newest first
	suite.Equal(models.ActivityKindCustom, activities[0].Kind)
	suite.Equal(models.ActivityKindNoteAdded, activities[2].Kind)
	// acting user preloaded
	suite.NotNil(activities[0].User)
	suite.Equal(user.Username, activities[0].User.Username)

	page, total, err := suite.repo.GetByPipelineID(pipeline.ID, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 1)
}

// TestSnapshotsFitColumn tests that truncated snapshots fit the column bound
func (suite *ActivityRepositoryTestSuite) TestSnapshotsFitColumn() {
	pipeline := suite.createPipeline()
	long := strings.Repeat("x", 500)

	err := suite.repo.Create(&models.PipelineActivity{
		PipelineID: pipeline.ID,
		Kind:       models.ActivityKindNoteAdded,
		OldValue:   models.TruncateSnapshot(long),
		NewValue:   models.TruncateSnapshot(long),
	})

	suite.NoError(err)

	activities, _, err := suite.repo.GetByPipelineID(pipeline.ID, 1, 0)
	suite.NoError(err)
	suite.Len(activities, 1)
	suite.Equal(strings.Repeat("x", 100)+"...", activities[0].OldValue)
}

// TestGetRecentLimit tests the bounded recent list
func (suite *ActivityRepositoryTestSuite) TestGetRecentLimit() {
	pipeline := suite.createPipeline()
	for i := 0; i < 7; i++ {
		suite.NoError(suite.repo.Create(&models.PipelineActivity{
			PipelineID: pipeline.ID,
			Kind:       models.ActivityKindCustom,
		}))
	}

	recent, err := suite.repo.GetRecent(pipeline.ID, 5)

	suite.NoError(err)
	suite.Len(recent, 5)
}

// TestGetByPipelineIDEmpty tests an unknown pipeline id
func (suite *ActivityRepositoryTestSuite) TestGetByPipelineIDEmpty() {
	activities, total, err := suite.repo.GetByPipelineID(uuid.New(), 10, 0)

	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Len(activities, 0)
}

// Run the test suite
func TestActivityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityRepositoryTestSuite))
}
