package repository

import (
	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageRepository handles database operations for pipeline stages
type StageRepository struct {
	db *gorm.DB
}

// Ensure StageRepository implements StageRepositoryInterface
var _ StageRepositoryInterface = (*StageRepository)(nil)

// NewStageRepository creates a new stage repository
func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

// Create creates a new pipeline stage
func (r *StageRepository) Create(stage *models.PipelineStage) error {
	return r.db.Create(stage).Error
}

// GetByID retrieves a stage by its UUID
func (r *StageRepository) GetByID(id uuid.UUID) (*models.PipelineStage, error) {
	var stage models.PipelineStage
	if err := r.db.First(&stage, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetAll retrieves all stages in catalog order (sort order, ties by name)
func (r *StageRepository) GetAll() ([]models.PipelineStage, error) {
	var stages []models.PipelineStage
	if err := r.db.Order("sort_order ASC, name ASC").Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// Update saves administrative edits to a stage
func (r *StageRepository) Update(stage *models.PipelineStage) error {
	return r.db.Save(stage).Error
}

// Delete removes a stage. Callers must check CountPipelinesUsing first; the
// RESTRICT constraint on cx_pipelines.stage_id is the backstop.
func (r *StageRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.PipelineStage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountPipelinesUsing counts pipelines currently pointing at the stage
func (r *StageRepository) CountPipelinesUsing(stageID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CxPipeline{}).Where("stage_id = ?", stageID).Count(&count).Error
	return count, err
}

// CountDefaults counts stages created by the legacy migration
func (r *StageRepository) CountDefaults() (int64, error) {
	var count int64
	err := r.db.Model(&models.PipelineStage{}).Where("is_default = ?", true).Count(&count).Error
	return count, err
}
