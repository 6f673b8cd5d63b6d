package service

import (
	"errors"
	"fmt"
	"time"

	"cx-crm-backend/internal/database/models"
	apperrors "cx-crm-backend/internal/errors"
	"cx-crm-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService appends entries to the pipeline audit log
type ActivityService struct {
	repo         repository.ActivityRepositoryInterface
	pipelineRepo repository.PipelineRepositoryInterface
}

// Ensure ActivityService implements ActivityServiceInterface
var _ ActivityServiceInterface = (*ActivityService)(nil)

// NewActivityService creates a new ActivityService
func NewActivityService(repo repository.ActivityRepositoryInterface, pipelineRepo repository.PipelineRepositoryInterface) *ActivityService {
	return &ActivityService{
		repo:         repo,
		pipelineRepo: pipelineRepo,
	}
}

// ActivityResponse represents an audit entry in API responses
type ActivityResponse struct {
	ID          uuid.UUID           `json:"id"`
	PipelineID  uuid.UUID           `json:"pipeline_id"`
	Kind        models.ActivityKind `json:"kind"`
	Description string              `json:"description"`
	OldValue    string              `json:"old_value"`
	NewValue    string              `json:"new_value"`
	UserName    *string             `json:"user_name"`
	Timestamp   time.Time           `json:"timestamp"`
}

// RecordActivityRequest represents a manually posted audit entry
type RecordActivityRequest struct {
	Kind        models.ActivityKind `json:"kind"`
	Description string              `json:"description"`
	OldValue    string              `json:"old_value"`
	NewValue    string              `json:"new_value"`
}

// ActivityListResponse represents a paginated list of audit entries
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// Record appends one audit entry. Old/new snapshots are truncated to the
// display bound before storage. Fails only when the pipeline is missing.
func (s *ActivityService) Record(pipelineID uuid.UUID, kind models.ActivityKind, oldValue, newValue, description string, actingUserID *uuid.UUID) (*ActivityResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", "unknown activity kind")
	}

	if _, err := s.pipelineRepo.GetByID(pipelineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	activity := &models.PipelineActivity{
		PipelineID:  pipelineID,
		UserID:      actingUserID,
		Kind:        kind,
		Description: description,
		OldValue:    models.TruncateSnapshot(oldValue),
		NewValue:    models.TruncateSnapshot(newValue),
	}

	if err := s.repo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

// toActivityResponse converts an activity model (optionally with preloaded
// user) to an API response.
func toActivityResponse(a *models.PipelineActivity) ActivityResponse {
	resp := ActivityResponse{
		ID:          a.ID,
		PipelineID:  a.PipelineID,
		Kind:        a.Kind,
		Description: a.Description,
		OldValue:    a.OldValue,
		NewValue:    a.NewValue,
		Timestamp:   a.CreatedAt,
	}
	if a.User != nil {
		name := a.User.DisplayName()
		resp.UserName = &name
	}
	return resp
}
