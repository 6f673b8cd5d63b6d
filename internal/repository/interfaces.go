package repository

import (
	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StageRepositoryInterface defines the interface for pipeline stage repository operations
type StageRepositoryInterface interface {
	Create(stage *models.PipelineStage) error
	GetByID(id uuid.UUID) (*models.PipelineStage, error)
	GetAll() ([]models.PipelineStage, error)
	Update(stage *models.PipelineStage) error
	Delete(id uuid.UUID) error
	CountPipelinesUsing(stageID uuid.UUID) (int64, error)
	CountDefaults() (int64, error)
}

// PipelineRepositoryInterface defines the interface for pipeline repository operations
type PipelineRepositoryInterface interface {
	Create(pipeline *models.CxPipeline, actingUserID *uuid.UUID) error
	GetByID(id uuid.UUID) (*models.CxPipeline, error)
	GetDetail(id uuid.UUID) (*models.CxPipeline, error)
	GetAll(clientID *uuid.UUID, limit, offset int) ([]models.CxPipeline, int64, error)
	Update(pipeline *models.CxPipeline) error
	Delete(id uuid.UUID) error
	ChangeStage(pipelineID, newStageID uuid.UUID, actingUserID *uuid.UUID) (*StageChangeResult, error)
	MigrateLegacyStatuses(actingUserID *uuid.UUID) (*MigrationResult, error)
}

// TransitionRepositoryInterface defines the interface for stage transition repository operations
type TransitionRepositoryInterface interface {
	GetByPipelineID(pipelineID uuid.UUID, limit, offset int) ([]models.StageTransition, int64, error)
	GetRecent(pipelineID uuid.UUID, limit int) ([]models.StageTransition, error)
	GetOpen(pipelineID uuid.UUID) (*models.StageTransition, error)
	GetAll() ([]models.StageTransition, error)
}

// ActivityRepositoryInterface defines the interface for pipeline activity repository operations
type ActivityRepositoryInterface interface {
	Create(activity *models.PipelineActivity) error
	GetByPipelineID(pipelineID uuid.UUID, limit, offset int) ([]models.PipelineActivity, int64, error)
	GetRecent(pipelineID uuid.UUID, limit int) ([]models.PipelineActivity, error)
}

// ClientRepositoryInterface defines the interface for client lookups. Clients
// are owned by the auth domain; this service only reads them.
type ClientRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.CxClient, error)
}

// UserRepositoryInterface defines the interface for staff user lookups
type UserRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.CxUser, error)
	GetByUsername(username string) (*models.CxUser, error)
}
