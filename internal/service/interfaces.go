package service

import (
	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StageServiceInterface defines the interface for the stage catalog service
type StageServiceInterface interface {
	CreateStage(req *CreateStageRequest, actingUserID *uuid.UUID) (*StageResponse, error)
	GetStageByID(id uuid.UUID) (*StageResponse, error)
	ListStages() ([]StageResponse, error)
	UpdateStage(id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error)
	DeleteStage(id uuid.UUID) error
}

// PipelineServiceInterface defines the interface for the pipeline service
type PipelineServiceInterface interface {
	Create(req *CreatePipelineRequest, actingUserID *uuid.UUID) (*PipelineDetailResponse, error)
	GetByID(id uuid.UUID) (*PipelineDetailResponse, error)
	List(clientID *uuid.UUID, page, pageSize int) (*PipelineListResponse, error)
	Update(id uuid.UUID, req *UpdatePipelineRequest, actingUserID *uuid.UUID) (*PipelineDetailResponse, error)
	Delete(id uuid.UUID) error
	ListActivities(pipelineID uuid.UUID, page, pageSize int) (*ActivityListResponse, error)
	ListTransitions(pipelineID uuid.UUID, page, pageSize int) (*TransitionListResponse, error)
}

// ActivityServiceInterface defines the interface for the activity recorder
type ActivityServiceInterface interface {
	Record(pipelineID uuid.UUID, kind models.ActivityKind, oldValue, newValue, description string, actingUserID *uuid.UUID) (*ActivityResponse, error)
}

// StatsServiceInterface defines the interface for the stage stats aggregator
type StatsServiceInterface interface {
	ComputeStageStats() ([]StageStatsResponse, error)
}

// MigrationServiceInterface defines the interface for the legacy status migration
type MigrationServiceInterface interface {
	MigrateLegacyStatuses(actingUserID *uuid.UUID) (*MigrationResponse, error)
}
