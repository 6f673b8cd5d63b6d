package repository

import (
	"fmt"
	"time"

	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDefaultStagesExist is returned when the legacy migration has already run
var ErrDefaultStagesExist = fmt.Errorf("default stages already exist")

// StageChangeResult reports the outcome of an atomic stage change
type StageChangeResult struct {
	Changed    bool
	OldLabel   string
	NewLabel   string
	Transition *models.StageTransition
}

// MigrationResult reports what the legacy status migration created
type MigrationResult struct {
	StagesCreated     int
	PipelinesMigrated int
}

// PipelineRepository handles database operations for pipelines, including the
// compound stage-change write and the legacy status migration.
type PipelineRepository struct {
	db *gorm.DB
}

// Ensure PipelineRepository implements PipelineRepositoryInterface
var _ PipelineRepositoryInterface = (*PipelineRepository)(nil)

// NewPipelineRepository creates a new pipeline repository
func NewPipelineRepository(db *gorm.DB) *PipelineRepository {
	return &PipelineRepository{db: db}
}

// Create inserts a pipeline. When an initial stage is set, the single initial
// transition (from_stage = nil) and its stage_change activity are written in
// the same transaction.
func (r *PipelineRepository) Create(pipeline *models.CxPipeline, actingUserID *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if pipeline.StageID != nil {
			var stage models.PipelineStage
			if err := tx.First(&stage, "id = ?", *pipeline.StageID).Error; err != nil {
				return err
			}
			now := time.Now().UTC()
			pipeline.StageStartDate = &now
			if err := tx.Create(pipeline).Error; err != nil {
				return err
			}
			transition := &models.StageTransition{
				PipelineID:  pipeline.ID,
				FromStageID: nil,
				ToStageID:   &stage.ID,
				EntryDate:   now,
				UserID:      actingUserID,
			}
			if err := tx.Create(transition).Error; err != nil {
				return err
			}
			activity := &models.PipelineActivity{
				PipelineID:  pipeline.ID,
				UserID:      actingUserID,
				Kind:        models.ActivityKindStageChange,
				Description: fmt.Sprintf("Pipeline created in stage %q", stage.Name),
				OldValue:    models.TruncateSnapshot(pipeline.Status.Label()),
				NewValue:    models.TruncateSnapshot(stage.Name),
			}
			return tx.Create(activity).Error
		}
		return tx.Create(pipeline).Error
	})
}

// GetByID retrieves a pipeline by ID
func (r *PipelineRepository) GetByID(id uuid.UUID) (*models.CxPipeline, error) {
	var pipeline models.CxPipeline
	if err := r.db.First(&pipeline, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// GetDetail retrieves a pipeline with its client, stage and account manager
func (r *PipelineRepository) GetDetail(id uuid.UUID) (*models.CxPipeline, error) {
	var pipeline models.CxPipeline
	err := r.db.Preload("Client").Preload("Stage").Preload("AccountManager").
		First(&pipeline, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// GetAll retrieves pipelines with pagination, optionally filtered by client
func (r *PipelineRepository) GetAll(clientID *uuid.UUID, limit, offset int) ([]models.CxPipeline, int64, error) {
	var pipelines []models.CxPipeline
	var total int64

	query := r.db.Model(&models.CxPipeline{})
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Client").Preload("Stage").Preload("AccountManager").
		Order("last_updated DESC").Limit(limit).Offset(offset).Find(&pipelines).Error
	return pipelines, total, err
}

// Update persists the plain field changes (notes, legacy status, account
// manager). The stage pointer and stage_start_date are written only by
// ChangeStage, so a stale read here cannot revert a concurrent stage change.
func (r *PipelineRepository) Update(pipeline *models.CxPipeline) error {
	return r.db.Model(pipeline).
		Select("notes", "status", "account_manager_id").
		Updates(pipeline).Error
}

// Delete removes a pipeline; transitions and activities cascade
func (r *PipelineRepository) Delete(id uuid.UUID) error {
	result := r.db.Select(clause.Associations).Delete(&models.CxPipeline{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ChangeStage atomically moves a pipeline to a new stage: close the open
// transition, open a new one, update the stage pointer and stage_start_date,
// and append a stage_change activity. The pipeline row is locked for the
// duration so concurrent writers re-derive the open transition after commit.
// A target equal to the current stage is an idempotent no-op.
func (r *PipelineRepository) ChangeStage(pipelineID, newStageID uuid.UUID, actingUserID *uuid.UUID) (*StageChangeResult, error) {
	result := &StageChangeResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var pipeline models.CxPipeline
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pipeline, "id = ?", pipelineID).Error; err != nil {
			return err
		}

		var newStage models.PipelineStage
		if err := tx.First(&newStage, "id = ?", newStageID).Error; err != nil {
			return err
		}
		result.NewLabel = newStage.Name

		if pipeline.StageID != nil && *pipeline.StageID == newStageID {
			// no-op; leave history and stage_start_date untouched
			return nil
		}

		now := time.Now().UTC()

		if pipeline.StageID != nil {
			var oldStage models.PipelineStage
			if err := tx.First(&oldStage, "id = ?", *pipeline.StageID).Error; err != nil {
				return err
			}
			result.OldLabel = oldStage.Name

			if err := tx.Model(&models.StageTransition{}).
				Where("pipeline_id = ? AND exit_date IS NULL", pipelineID).
				Update("exit_date", now).Error; err != nil {
				return err
			}
		} else {
			result.OldLabel = pipeline.Status.Label()
		}

		transition := &models.StageTransition{
			PipelineID:  pipelineID,
			FromStageID: pipeline.StageID,
			ToStageID:   &newStage.ID,
			EntryDate:   now,
			UserID:      actingUserID,
		}
		if err := tx.Create(transition).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.CxPipeline{}).Where("id = ?", pipelineID).
			Updates(map[string]interface{}{
				"stage_id":         newStageID,
				"stage_start_date": now,
			}).Error; err != nil {
			return err
		}

		activity := &models.PipelineActivity{
			PipelineID:  pipelineID,
			UserID:      actingUserID,
			Kind:        models.ActivityKindStageChange,
			Description: fmt.Sprintf("Stage changed from %q to %q", result.OldLabel, result.NewLabel),
			OldValue:    models.TruncateSnapshot(result.OldLabel),
			NewValue:    models.TruncateSnapshot(result.NewLabel),
		}
		if err := tx.Create(activity).Error; err != nil {
			return err
		}

		result.Changed = true
		result.Transition = transition
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MigrateLegacyStatuses seeds one default stage per legacy status code and
// backfills stage-less pipelines with the matching stage plus one initial
// transition dated at each pipeline's last_updated. Refuses to run twice.
func (r *PipelineRepository) MigrateLegacyStatuses(actingUserID *uuid.UUID) (*MigrationResult, error) {
	result := &MigrationResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var defaults int64
		if err := tx.Model(&models.PipelineStage{}).Where("is_default = ?", true).Count(&defaults).Error; err != nil {
			return err
		}
		if defaults > 0 {
			return ErrDefaultStagesExist
		}

		// Same default SLA the stage schema shipped with
		defaultSLA := 7
		stageByStatus := make(map[models.LegacyStatus]*models.PipelineStage)
		for i, status := range models.AllLegacyStatuses() {
			sla := defaultSLA
			stage := &models.PipelineStage{
				Name:                 status.Label(),
				Description:          fmt.Sprintf("Migrated from legacy status %d", int(status)),
				SortOrder:            i,
				IsDefault:            true,
				ExpectedDurationDays: &sla,
				CreatedByID:          actingUserID,
			}
			if err := tx.Create(stage).Error; err != nil {
				return err
			}
			stageByStatus[status] = stage
			result.StagesCreated++
		}

		var pipelines []models.CxPipeline
		if err := tx.Where("stage_id IS NULL").Find(&pipelines).Error; err != nil {
			return err
		}

		for i := range pipelines {
			pipeline := &pipelines[i]
			stage, ok := stageByStatus[pipeline.Status]
			if !ok {
				stage = stageByStatus[models.LegacyStatusLead]
			}
			entered := pipeline.LastUpdated

			transition := &models.StageTransition{
				PipelineID:  pipeline.ID,
				FromStageID: nil,
				ToStageID:   &stage.ID,
				EntryDate:   entered,
				UserID:      actingUserID,
			}
			if err := tx.Create(transition).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.CxPipeline{}).Where("id = ?", pipeline.ID).
				Updates(map[string]interface{}{
					"stage_id":         stage.ID,
					"stage_start_date": entered,
				}).Error; err != nil {
				return err
			}
			result.PipelinesMigrated++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
