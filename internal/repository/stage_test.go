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

// StageRepositoryTestSuite tests the StageRepository
type StageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StageRepository
	pipelineRepo  *PipelineRepository
}

// SetupSuite runs before all tests in the suite
func (suite *StageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewStageRepository(suite.baseTestSuite.DB)
	suite.pipelineRepo = NewPipelineRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *StageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *StageRepositoryTestSuite) createStage(name string, order int) *models.PipelineStage {
	s := testutils.NewStageFactory().WithName(name)
	s.SortOrder = order
	suite.NoError(suite.repo.Create(s))
	return s
}

// TestCreateAndGetByID tests round-tripping a stage
func (suite *StageRepositoryTestSuite) TestCreateAndGetByID() {
	sla := 14
	stage := testutils.NewStageFactory().WithName("Negotiation")
	stage.SortOrder = 1
	stage.ExpectedDurationDays = &sla

	suite.NoError(suite.repo.Create(stage))

	got, err := suite.repo.GetByID(stage.ID)
	suite.NoError(err)
	suite.Equal("Negotiation", got.Name)
	suite.Equal(1, got.SortOrder)
	suite.Equal(14, *got.ExpectedDurationDays)
	suite.False(got.IsDefault)
}

// TestGetByIDNotFound tests retrieving a non-existent stage
func (suite *StageRepositoryTestSuite) TestGetByIDNotFound() {
	got, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(got)
}

// TestGetAllCatalogOrder tests ordering by sort_order with name tiebreak
func (suite *StageRepositoryTestSuite) TestGetAllCatalogOrder() {
	suite.createStage("Charlie", 1)
	suite.createStage("Alpha", 2)
	suite.createStage("Bravo", 1)

	stages, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(stages, 3)
	// order 1 before order 2; within order 1, Bravo before Charlie
	suite.Equal("Bravo", stages[0].Name)
	suite.Equal("Charlie", stages[1].Name)
	suite.Equal("Alpha", stages[2].Name)
}

// TestCountPipelinesUsing tests the in-use counter behind stage deletion
func (suite *StageRepositoryTestSuite) TestCountPipelinesUsing() {
	client := testutils.NewClientFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(client).Error)
	stage := suite.createStage("Onboarding", 2)

	count, err := suite.repo.CountPipelinesUsing(stage.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	pipeline := testutils.NewPipelineFactory().WithClient(client.ID)
	pipeline.StageID = &stage.ID
	suite.NoError(suite.pipelineRepo.Create(pipeline, nil))

	count, err = suite.repo.CountPipelinesUsing(stage.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestCountDefaults tests the migration guard counter
func (suite *StageRepositoryTestSuite) TestCountDefaults() {
	count, err := suite.repo.CountDefaults()
	suite.NoError(err)
	suite.Equal(int64(0), count)

	def := testutils.NewStageFactory().WithName("Lead/Prospect")
	def.IsDefault = true
	suite.NoError(suite.repo.Create(def))
	suite.createStage("Custom", 9)

	count, err = suite.repo.CountDefaults()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDelete tests removing an unused stage
func (suite *StageRepositoryTestSuite) TestDelete() {
	stage := suite.createStage("Scratch", 9)

	suite.NoError(suite.repo.Delete(stage.ID))

	_, err := suite.repo.GetByID(stage.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteNotFound tests deleting a non-existent stage
func (suite *StageRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestStageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StageRepositoryTestSuite))
}
