package service

import (
	"errors"
	"fmt"

	apperrors "cx-crm-backend/internal/errors"
	"cx-crm-backend/internal/logger"
	"cx-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// MigrationService runs the one-shot legacy status migration
type MigrationService struct {
	pipelineRepo repository.PipelineRepositoryInterface
	stageRepo    repository.StageRepositoryInterface
}

// Ensure MigrationService implements MigrationServiceInterface
var _ MigrationServiceInterface = (*MigrationService)(nil)

// NewMigrationService creates a new MigrationService
func NewMigrationService(pipelineRepo repository.PipelineRepositoryInterface, stageRepo repository.StageRepositoryInterface) *MigrationService {
	return &MigrationService{
		pipelineRepo: pipelineRepo,
		stageRepo:    stageRepo,
	}
}

// MigrationResponse reports what the migration created
type MigrationResponse struct {
	StagesCreated     int    `json:"stages_created"`
	PipelinesMigrated int    `json:"pipelines_migrated"`
	Message           string `json:"message"`
}

// MigrateLegacyStatuses seeds the default stage catalog from the legacy status
// codes and backfills stage-less pipelines. Fails with Conflict when default
// stages already exist.
func (s *MigrationService) MigrateLegacyStatuses(actingUserID *uuid.UUID) (*MigrationResponse, error) {
	log := logger.New()
	if actingUserID != nil {
		log = log.WithField("user", actingUserID.String())
	}

	defaults, err := s.stageRepo.CountDefaults()
	if err != nil {
		return nil, fmt.Errorf("failed to check default stages: %w", err)
	}
	if defaults > 0 {
		log.Warn("Legacy status migration requested but default stages already exist")
		return nil, apperrors.ErrMigrationDone
	}

	result, err := s.pipelineRepo.MigrateLegacyStatuses(actingUserID)
	if err != nil {
		// the repository re-checks inside its transaction
		if errors.Is(err, repository.ErrDefaultStagesExist) {
			return nil, apperrors.ErrMigrationDone
		}
		return nil, fmt.Errorf("failed to migrate legacy statuses: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"stages_created":     result.StagesCreated,
		"pipelines_migrated": result.PipelinesMigrated,
	}).Info("Legacy status migration completed")

	return &MigrationResponse{
		StagesCreated:     result.StagesCreated,
		PipelinesMigrated: result.PipelinesMigrated,
		Message: fmt.Sprintf("created %d default stages and migrated %d pipelines",
			result.StagesCreated, result.PipelinesMigrated),
	}, nil
}
