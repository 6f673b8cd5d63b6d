package repository

import (
	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for the pipeline audit log.
// Rows are append-only; there is deliberately no Update or Delete.
type ActivityRepository struct {
	db *gorm.DB
}

// Ensure ActivityRepository implements ActivityRepositoryInterface
var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity row
func (r *ActivityRepository) Create(activity *models.PipelineActivity) error {
	return r.db.Create(activity).Error
}

// GetByPipelineID retrieves a pipeline's activities, newest first
func (r *ActivityRepository) GetByPipelineID(pipelineID uuid.UUID, limit, offset int) ([]models.PipelineActivity, int64, error) {
	var activities []models.PipelineActivity
	var total int64

	if err := r.db.Model(&models.PipelineActivity{}).Where("pipeline_id = ?", pipelineID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("pipeline_id = ?", pipelineID).
		Preload("User").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&activities).Error
	return activities, total, err
}

// GetRecent retrieves the most recent activities for a pipeline
func (r *ActivityRepository) GetRecent(pipelineID uuid.UUID, limit int) ([]models.PipelineActivity, error) {
	var activities []models.PipelineActivity
	err := r.db.Where("pipeline_id = ?", pipelineID).
		Preload("User").
		Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}
