package service_test

import (
	"errors"
	"testing"

	apperrors "cx-crm-backend/internal/errors"
	"cx-crm-backend/internal/mocks"
	"cx-crm-backend/internal/repository"
	"cx-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MigrationServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPipelineRepo *mocks.MockPipelineRepositoryInterface
	mockStageRepo    *mocks.MockStageRepositoryInterface
	migrationService *service.MigrationService
}

func (suite *MigrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPipelineRepo = mocks.NewMockPipelineRepositoryInterface(suite.ctrl)
	suite.mockStageRepo = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.migrationService = service.NewMigrationService(suite.mockPipelineRepo, suite.mockStageRepo)
}

func (suite *MigrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MigrationServiceTestSuite) TestMigrate_Success() {
	actorID := uuid.New()
	suite.mockStageRepo.EXPECT().CountDefaults().Return(int64(0), nil)
	suite.mockPipelineRepo.EXPECT().
		MigrateLegacyStatuses(&actorID).
		Return(&repository.MigrationResult{StagesCreated: 5, PipelinesMigrated: 12}, nil)

	resp, err := suite.migrationService.MigrateLegacyStatuses(&actorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, resp.StagesCreated)
	assert.Equal(suite.T(), 12, resp.PipelinesMigrated)
	assert.Contains(suite.T(), resp.Message, "created 5 default stages")
}

func (suite *MigrationServiceTestSuite) TestMigrate_SecondRunConflict() {
	suite.mockStageRepo.EXPECT().CountDefaults().Return(int64(5), nil)

	resp, err := suite.migrationService.MigrateLegacyStatuses(nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsConflict(err))
	assert.True(suite.T(), errors.Is(err, apperrors.ErrMigrationDone))
}

func (suite *MigrationServiceTestSuite) TestMigrate_LostRaceMapsToConflict() {
	// the precondition passed but another request won the transaction
	suite.mockStageRepo.EXPECT().CountDefaults().Return(int64(0), nil)
	suite.mockPipelineRepo.EXPECT().
		MigrateLegacyStatuses(nil).
		Return(nil, repository.ErrDefaultStagesExist)

	resp, err := suite.migrationService.MigrateLegacyStatuses(nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *MigrationServiceTestSuite) TestMigrate_RepositoryError() {
	suite.mockStageRepo.EXPECT().CountDefaults().Return(int64(0), nil)
	suite.mockPipelineRepo.EXPECT().
		MigrateLegacyStatuses(nil).
		Return(nil, errors.New("db failed"))

	resp, err := suite.migrationService.MigrateLegacyStatuses(nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to migrate legacy statuses")
}

func TestMigrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationServiceTestSuite))
}
