package service_test

import (
	"testing"
	"time"

	"cx-crm-backend/internal/database/models"
	apperrors "cx-crm-backend/internal/errors"
	"cx-crm-backend/internal/mocks"
	"cx-crm-backend/internal/repository"
	"cx-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PipelineServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockPipelineRepo   *mocks.MockPipelineRepositoryInterface
	mockClientRepo     *mocks.MockClientRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockStageRepo      *mocks.MockStageRepositoryInterface
	mockTransitionRepo *mocks.MockTransitionRepositoryInterface
	mockActivityRepo   *mocks.MockActivityRepositoryInterface
	pipelineService    *service.PipelineService
	now                time.Time
}

func (suite *PipelineServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPipelineRepo = mocks.NewMockPipelineRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockStageRepo = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.mockTransitionRepo = mocks.NewMockTransitionRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)

	suite.pipelineService = service.NewPipelineService(
		suite.mockPipelineRepo,
		suite.mockClientRepo,
		suite.mockUserRepo,
		suite.mockStageRepo,
		suite.mockTransitionRepo,
		suite.mockActivityRepo,
		validator.New(),
	)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.pipelineService.NowFunc = func() time.Time { return suite.now }
}

func (suite *PipelineServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectDetail wires the GetByID detail flow for the given pipeline
func (suite *PipelineServiceTestSuite) expectDetail(pipeline *models.CxPipeline) {
	suite.mockPipelineRepo.EXPECT().GetDetail(pipeline.ID).Return(pipeline, nil)
	suite.mockActivityRepo.EXPECT().GetRecent(pipeline.ID, 5).Return([]models.PipelineActivity{}, nil)
	suite.mockTransitionRepo.EXPECT().GetRecent(pipeline.ID, 5).Return([]models.StageTransition{}, nil)
}

func (suite *PipelineServiceTestSuite) TestCreate_Success() {
	clientID := uuid.New()
	actorID := uuid.New()
	req := &service.CreatePipelineRequest{ClientID: clientID, Notes: "first contact"}

	suite.mockClientRepo.EXPECT().GetByID(clientID).Return(&models.CxClient{
		BaseModel: models.BaseModel{ID: clientID}, Name: "Acme Corp",
	}, nil)

	var createdID uuid.UUID
	suite.mockPipelineRepo.EXPECT().
		Create(gomock.Any(), &actorID).
		DoAndReturn(func(p *models.CxPipeline, _ *uuid.UUID) error {
			assert.Equal(suite.T(), clientID, p.ClientID)
			assert.Equal(suite.T(), models.LegacyStatusLead, p.Status)
			assert.Equal(suite.T(), "first contact", p.Notes)
			p.ID = uuid.New()
			createdID = p.ID
			return nil
		})

	suite.mockPipelineRepo.EXPECT().
		GetDetail(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.CxPipeline, error) {
			assert.Equal(suite.T(), createdID, id)
			return &models.CxPipeline{
				BaseModel: models.BaseModel{ID: id},
				ClientID:  clientID,
				Client:    models.CxClient{BaseModel: models.BaseModel{ID: clientID}, Name: "Acme Corp"},
				Status:    models.LegacyStatusLead,
				Notes:     "first contact",
			}, nil
		})
	suite.mockActivityRepo.EXPECT().GetRecent(gomock.Any(), 5).Return([]models.PipelineActivity{}, nil)
	suite.mockTransitionRepo.EXPECT().GetRecent(gomock.Any(), 5).Return([]models.StageTransition{}, nil)

	resp, err := suite.pipelineService.Create(req, &actorID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "Acme Corp", resp.ClientName)
	assert.Equal(suite.T(), 1, resp.Status)
	assert.Equal(suite.T(), "Lead/Prospect", resp.StatusDisplay)
	assert.Equal(suite.T(), "Lead/Prospect", resp.PhaseDisplay)
}

func (suite *PipelineServiceTestSuite) TestCreate_ClientNotFound() {
	clientID := uuid.New()
	req := &service.CreatePipelineRequest{ClientID: clientID}

	suite.mockClientRepo.EXPECT().GetByID(clientID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.pipelineService.Create(req, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *PipelineServiceTestSuite) TestCreate_InvalidLegacyStatus() {
	clientID := uuid.New()
	badStatus := 9
	req := &service.CreatePipelineRequest{ClientID: clientID, Status: &badStatus}

	suite.mockClientRepo.EXPECT().GetByID(clientID).Return(&models.CxClient{
		BaseModel: models.BaseModel{ID: clientID},
	}, nil)

	resp, err := suite.pipelineService.Create(req, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PipelineServiceTestSuite) TestGetByID_DurationAndOverdue() {
	id := uuid.New()
	clientID := uuid.New()
	stageID := uuid.New()
	sla := 7
	start := suite.now.Add(-10 * 24 * time.Hour)

	pipeline := &models.CxPipeline{
		BaseModel:      models.BaseModel{ID: id},
		ClientID:       clientID,
		Client:         models.CxClient{BaseModel: models.BaseModel{ID: clientID}, Name: "Acme Corp"},
		StageID:        &stageID,
		Stage:          &models.PipelineStage{BaseModel: models.BaseModel{ID: stageID}, Name: "Onboarding", ExpectedDurationDays: &sla},
		Status:         models.LegacyStatusOnboarding,
		StageStartDate: &start,
	}
	suite.expectDetail(pipeline)

	resp, err := suite.pipelineService.GetByID(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, resp.CurrentStageDurationDays)
	assert.True(suite.T(), resp.IsStageOverdue)
	assert.Equal(suite.T(), "Onboarding", resp.PhaseDisplay)
	assert.Equal(suite.T(), "Onboarding", *resp.StageName)
}

func (suite *PipelineServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockPipelineRepo.EXPECT().GetDetail(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.pipelineService.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *PipelineServiceTestSuite) TestList_PaginationNormalization() {
	// page 0 and pageSize 0 normalize to page=1, pageSize=20
	suite.mockPipelineRepo.EXPECT().GetAll(nil, 20, 0).Return([]models.CxPipeline{}, int64(0), nil)

	resp, err := suite.pipelineService.List(nil, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.Pipelines, 0)
}

func (suite *PipelineServiceTestSuite) TestList_ClientFilter() {
	clientID := uuid.New()
	pipelines := []models.CxPipeline{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			ClientID:  clientID,
			Client:    models.CxClient{BaseModel: models.BaseModel{ID: clientID}, Name: "Acme Corp"},
			Status:    models.LegacyStatusNegotiation,
		},
	}
	suite.mockPipelineRepo.EXPECT().GetAll(&clientID, 10, 10).Return(pipelines, int64(11), nil)

	resp, err := suite.pipelineService.List(&clientID, 2, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(11), resp.Total)
	assert.Equal(suite.T(), 2, resp.Page)
	assert.Len(suite.T(), resp.Pipelines, 1)
	assert.Equal(suite.T(), "Negotiation", resp.Pipelines[0].PhaseDisplay)
}

func (suite *PipelineServiceTestSuite) TestUpdate_StageChangeDispatch() {
	id := uuid.New()
	clientID := uuid.New()
	newStageID := uuid.New()
	actorID := uuid.New()
	req := &service.UpdatePipelineRequest{StageID: &newStageID}

	existing := &models.CxPipeline{
		BaseModel: models.BaseModel{ID: id},
		ClientID:  clientID,
		Status:    models.LegacyStatusLead,
	}

	suite.mockPipelineRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockStageRepo.EXPECT().GetByID(newStageID).Return(&models.PipelineStage{
		BaseModel: models.BaseModel{ID: newStageID}, Name: "Negotiation",
	}, nil)
	suite.mockPipelineRepo.EXPECT().
		ChangeStage(id, newStageID, &actorID).
		Return(&repository.StageChangeResult{Changed: true, OldLabel: "Lead/Prospect", NewLabel: "Negotiation"}, nil)

	start := suite.now
	updated := &models.CxPipeline{
		BaseModel:      models.BaseModel{ID: id},
		ClientID:       clientID,
		Client:         models.CxClient{BaseModel: models.BaseModel{ID: clientID}, Name: "Acme Corp"},
		StageID:        &newStageID,
		Stage:          &models.PipelineStage{BaseModel: models.BaseModel{ID: newStageID}, Name: "Negotiation"},
		Status:         models.LegacyStatusLead,
		StageStartDate: &start,
	}
	suite.expectDetail(updated)

	resp, err := suite.pipelineService.Update(id, req, &actorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Negotiation", resp.PhaseDisplay)
	assert.Equal(suite.T(), 0, resp.CurrentStageDurationDays)
}

func (suite *PipelineServiceTestSuite) TestUpdate_StageNotFound() {
	id := uuid.New()
	newStageID := uuid.New()
	req := &service.UpdatePipelineRequest{StageID: &newStageID}

	suite.mockPipelineRepo.EXPECT().GetByID(id).Return(&models.CxPipeline{
		BaseModel: models.BaseModel{ID: id},
	}, nil)
	suite.mockStageRepo.EXPECT().GetByID(newStageID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.pipelineService.Update(id, req, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *PipelineServiceTestSuite) TestUpdate_NotesAppendsAuditEntry() {
	id := uuid.New()
	clientID := uuid.New()
	actorID := uuid.New()
	newNotes := "met with procurement team"
	req := &service.UpdatePipelineRequest{Notes: &newNotes}

	existing := &models.CxPipeline{
		BaseModel: models.BaseModel{ID: id},
		ClientID:  clientID,
		Notes:     "initial call",
		Status:    models.LegacyStatusLead,
	}

	suite.mockPipelineRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockPipelineRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.PipelineActivity) error {
			assert.Equal(suite.T(), models.ActivityKindNoteAdded, a.Kind)
			assert.Equal(suite.T(), "initial call", a.OldValue)
			assert.Equal(suite.T(), "met with procurement team", a.NewValue)
			assert.Equal(suite.T(), &actorID, a.UserID)
			return nil
		})

	updated := &models.CxPipeline{
		BaseModel: models.BaseModel{ID: id},
		ClientID:  clientID,
		Client:    models.CxClient{BaseModel: models.BaseModel{ID: clientID}, Name: "Acme Corp"},
		Notes:     newNotes,
		Status:    models.LegacyStatusLead,
	}
	suite.expectDetail(updated)

	resp, err := suite.pipelineService.Update(id, req, &actorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newNotes, resp.Notes)
}

func (suite *PipelineServiceTestSuite) TestUpdate_NoChangesIsNoOp() {
	id := uuid.New()
	clientID := uuid.New()
	notes := "same notes"
	req := &service.UpdatePipelineRequest{Notes: &notes}

	existing := &models.CxPipeline{
		BaseModel: models.BaseModel{ID: id},
		ClientID:  clientID,
		Notes:     "same notes",
		Status:    models.LegacyStatusLead,
	}
	// identical notes: no Update, no activity, just the detail reload
	suite.mockPipelineRepo.EXPECT().GetByID(id).Return(existing, nil)

	detail := &models.CxPipeline{
		BaseModel: models.BaseModel{ID: id},
		ClientID:  clientID,
		Client:    models.CxClient{BaseModel: models.BaseModel{ID: clientID}, Name: "Acme Corp"},
		Notes:     "same notes",
		Status:    models.LegacyStatusLead,
	}
	suite.expectDetail(detail)

	resp, err := suite.pipelineService.Update(id, req, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "same notes", resp.Notes)
}

func (suite *PipelineServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockPipelineRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	err := suite.pipelineService.Delete(id)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *PipelineServiceTestSuite) TestListActivities_PipelineNotFound() {
	id := uuid.New()
	suite.mockPipelineRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.pipelineService.ListActivities(id, 1, 20)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *PipelineServiceTestSuite) TestListTransitions_Success() {
	id := uuid.New()
	stageID := uuid.New()
	entry := suite.now.Add(-6 * 24 * time.Hour)
	exit := suite.now.Add(-2 * 24 * time.Hour)

	suite.mockPipelineRepo.EXPECT().GetByID(id).Return(&models.CxPipeline{
		BaseModel: models.BaseModel{ID: id},
	}, nil)
	transitions := []models.StageTransition{
		{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			PipelineID: id,
			ToStageID:  &stageID,
			ToStage:    &models.PipelineStage{BaseModel: models.BaseModel{ID: stageID}, Name: "Negotiation"},
			EntryDate:  entry,
			ExitDate:   &exit,
		},
	}
	suite.mockTransitionRepo.EXPECT().GetByPipelineID(id, 20, 0).Return(transitions, int64(1), nil)

	resp, err := suite.pipelineService.ListTransitions(id, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Transitions, 1)
	assert.Equal(suite.T(), 4, resp.Transitions[0].DurationDays)
	assert.False(suite.T(), resp.Transitions[0].IsActive)
	assert.Equal(suite.T(), "Negotiation", *resp.Transitions[0].ToStageName)
}

func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}
