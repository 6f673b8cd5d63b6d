package repository

import (
	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransitionRepository handles read access to the stage transition log. Writes
// happen only inside PipelineRepository's atomic units.
type TransitionRepository struct {
	db *gorm.DB
}

// Ensure TransitionRepository implements TransitionRepositoryInterface
var _ TransitionRepositoryInterface = (*TransitionRepository)(nil)

// NewTransitionRepository creates a new transition repository
func NewTransitionRepository(db *gorm.DB) *TransitionRepository {
	return &TransitionRepository{db: db}
}

// GetByPipelineID retrieves a pipeline's transitions, newest entry first
func (r *TransitionRepository) GetByPipelineID(pipelineID uuid.UUID, limit, offset int) ([]models.StageTransition, int64, error) {
	var transitions []models.StageTransition
	var total int64

	query := r.db.Model(&models.StageTransition{}).Where("pipeline_id = ?", pipelineID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("pipeline_id = ?", pipelineID).
		Preload("FromStage").Preload("ToStage").Preload("User").
		Order("entry_date DESC").Limit(limit).Offset(offset).Find(&transitions).Error
	return transitions, total, err
}

// GetRecent retrieves the most recent transitions for a pipeline
func (r *TransitionRepository) GetRecent(pipelineID uuid.UUID, limit int) ([]models.StageTransition, error) {
	var transitions []models.StageTransition
	err := r.db.Where("pipeline_id = ?", pipelineID).
		Preload("FromStage").Preload("ToStage").Preload("User").
		Order("entry_date DESC").Limit(limit).Find(&transitions).Error
	return transitions, err
}

// GetOpen retrieves the pipeline's open transition, if any
func (r *TransitionRepository) GetOpen(pipelineID uuid.UUID) (*models.StageTransition, error) {
	var transition models.StageTransition
	err := r.db.Where("pipeline_id = ? AND exit_date IS NULL", pipelineID).
		Preload("ToStage").First(&transition).Error
	if err != nil {
		return nil, err
	}
	return &transition, nil
}

// GetAll retrieves the whole transition log with target stages preloaded, for
// the stats aggregator's read-side computation
func (r *TransitionRepository) GetAll() ([]models.StageTransition, error) {
	var transitions []models.StageTransition
	err := r.db.Preload("ToStage").Order("entry_date ASC").Find(&transitions).Error
	return transitions, err
}
