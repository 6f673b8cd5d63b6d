package service

import (
	"errors"
	"fmt"
	"time"

	"cx-crm-backend/internal/database/models"
	apperrors "cx-crm-backend/internal/errors"
	"cx-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentNestedLimit bounds the nested activity/transition lists on pipeline detail
const recentNestedLimit = 5

// PipelineService provides pipeline business logic: creation, updates with
// audit entries, the stage-change operation and the nested detail view.
type PipelineService struct {
	repo           repository.PipelineRepositoryInterface
	clientRepo     repository.ClientRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	stageRepo      repository.StageRepositoryInterface
	transitionRepo repository.TransitionRepositoryInterface
	activityRepo   repository.ActivityRepositoryInterface
	validator      *validator.Validate

	// NowFunc supplies the aggregator clock; overridable in tests
	NowFunc func() time.Time
}

// Ensure PipelineService implements PipelineServiceInterface
var _ PipelineServiceInterface = (*PipelineService)(nil)

// NewPipelineService creates a new PipelineService
func NewPipelineService(
	repo repository.PipelineRepositoryInterface,
	clientRepo repository.ClientRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	stageRepo repository.StageRepositoryInterface,
	transitionRepo repository.TransitionRepositoryInterface,
	activityRepo repository.ActivityRepositoryInterface,
	validator *validator.Validate,
) *PipelineService {
	return &PipelineService{
		repo:           repo,
		clientRepo:     clientRepo,
		userRepo:       userRepo,
		stageRepo:      stageRepo,
		transitionRepo: transitionRepo,
		activityRepo:   activityRepo,
		validator:      validator,
		NowFunc:        time.Now,
	}
}

// CreatePipelineRequest represents the request to create a pipeline
type CreatePipelineRequest struct {
	ClientID         uuid.UUID  `json:"client_id" validate:"required"`
	StageID          *uuid.UUID `json:"stage_id,omitempty"`
	Status           *int       `json:"status,omitempty"`
	Notes            string     `json:"notes,omitempty" validate:"max=2000"`
	AccountManagerID *uuid.UUID `json:"account_manager_id,omitempty"`
}

// UpdatePipelineRequest represents a partial pipeline update
type UpdatePipelineRequest struct {
	StageID          *uuid.UUID `json:"stage_id,omitempty"`
	Status           *int       `json:"status,omitempty"`
	Notes            *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	AccountManagerID *uuid.UUID `json:"account_manager_id,omitempty"`
}

// TransitionResponse represents a stage transition in API responses
type TransitionResponse struct {
	ID            uuid.UUID  `json:"id"`
	PipelineID    uuid.UUID  `json:"pipeline_id"`
	FromStageID   *uuid.UUID `json:"from_stage_id"`
	FromStageName *string    `json:"from_stage_name"`
	ToStageID     *uuid.UUID `json:"to_stage_id"`
	ToStageName   *string    `json:"to_stage_name"`
	EntryDate     time.Time  `json:"entry_date"`
	ExitDate      *time.Time `json:"exit_date"`
	DurationDays  int        `json:"duration_days"`
	IsActive      bool       `json:"is_active"`
	IsOverdue     bool       `json:"is_overdue"`
	UserName      *string    `json:"user_name"`
}

// TransitionListResponse represents a paginated list of transitions
type TransitionListResponse struct {
	Transitions []TransitionResponse `json:"transitions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// PipelineDetailResponse represents a pipeline with its nested recent history
type PipelineDetailResponse struct {
	ID                       uuid.UUID            `json:"id"`
	ClientID                 uuid.UUID            `json:"client_id"`
	ClientName               string               `json:"client_name"`
	StageID                  *uuid.UUID           `json:"stage_id"`
	StageName                *string              `json:"stage_name"`
	Status                   int                  `json:"status"`
	StatusDisplay            string               `json:"status_display"`
	PhaseDisplay             string               `json:"phase_display"`
	Notes                    string               `json:"notes"`
	AccountManagerID         *uuid.UUID           `json:"account_manager_id"`
	AccountManagerName       *string              `json:"account_manager_name"`
	StageStartDate           *time.Time           `json:"stage_start_date"`
	CurrentStageDurationDays int                  `json:"current_stage_duration_days"`
	IsStageOverdue           bool                 `json:"is_stage_overdue"`
	LastUpdated              time.Time            `json:"last_updated"`
	CreatedAt                time.Time            `json:"created_at"`
	RecentActivities         []ActivityResponse   `json:"recent_activities"`
	RecentTransitions        []TransitionResponse `json:"recent_transitions"`
}

// PipelineListResponse represents a paginated list of pipelines
type PipelineListResponse struct {
	Pipelines []PipelineDetailResponse `json:"pipelines"`
	Total     int64                    `json:"total"`
	Page      int                      `json:"page"`
	PageSize  int                      `json:"page_size"`
}

// Create creates a new pipeline, optionally entering an initial stage
func (s *PipelineService) Create(req *CreatePipelineRequest, actingUserID *uuid.UUID) (*PipelineDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.clientRepo.GetByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	status := models.LegacyStatusLead
	if req.Status != nil {
		status = models.LegacyStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "legacy status code must be between 1 and 5")
		}
	}

	if req.StageID != nil {
		if _, err := s.stageRepo.GetByID(*req.StageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStageNotFound
			}
			return nil, fmt.Errorf("failed to verify stage: %w", err)
		}
	}

	if req.AccountManagerID != nil {
		if _, err := s.userRepo.GetByID(*req.AccountManagerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to verify account manager: %w", err)
		}
	}

	pipeline := &models.CxPipeline{
		ClientID:         req.ClientID,
		StageID:          req.StageID,
		Status:           status,
		Notes:            req.Notes,
		AccountManagerID: req.AccountManagerID,
	}

	if err := s.repo.Create(pipeline, actingUserID); err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	return s.GetByID(pipeline.ID)
}

// GetByID retrieves a pipeline with its nested recent history
func (s *PipelineService) GetByID(id uuid.UUID) (*PipelineDetailResponse, error) {
	pipeline, err := s.repo.GetDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	resp := s.toDetailResponse(pipeline)

	activities, err := s.activityRepo.GetRecent(id, recentNestedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activities: %w", err)
	}
	resp.RecentActivities = make([]ActivityResponse, len(activities))
	for i := range activities {
		resp.RecentActivities[i] = toActivityResponse(&activities[i])
	}

	transitions, err := s.transitionRepo.GetRecent(id, recentNestedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transitions: %w", err)
	}
	resp.RecentTransitions = make([]TransitionResponse, len(transitions))
	for i := range transitions {
		resp.RecentTransitions[i] = s.toTransitionResponse(&transitions[i])
	}

	return resp, nil
}

// List retrieves pipelines with pagination, optionally filtered by client
func (s *PipelineService) List(clientID *uuid.UUID, page, pageSize int) (*PipelineListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	pipelines, total, err := s.repo.GetAll(clientID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}

	responses := make([]PipelineDetailResponse, len(pipelines))
	for i := range pipelines {
		responses[i] = *s.toDetailResponse(&pipelines[i])
	}

	return &PipelineListResponse{
		Pipelines: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies a partial update. A stage change dispatches the atomic
// close-open-update-append unit; notes and account manager changes append
// their own audit entries.
func (s *PipelineService) Update(id uuid.UUID, req *UpdatePipelineRequest, actingUserID *uuid.UUID) (*PipelineDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	pipeline, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	if err := s.applyFieldUpdates(pipeline, req, actingUserID); err != nil {
		return nil, err
	}

	if req.StageID != nil {
		if _, err := s.stageRepo.GetByID(*req.StageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStageNotFound
			}
			return nil, fmt.Errorf("failed to verify stage: %w", err)
		}
		if _, err := s.repo.ChangeStage(id, *req.StageID, actingUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPipelineNotFound
			}
			return nil, fmt.Errorf("failed to change stage: %w", err)
		}
	}

	return s.GetByID(id)
}

// applyFieldUpdates handles notes, legacy status and account manager changes,
// appending the matching audit entries.
func (s *PipelineService) applyFieldUpdates(pipeline *models.CxPipeline, req *UpdatePipelineRequest, actingUserID *uuid.UUID) error {
	changed := false
	var audits []*models.PipelineActivity

	if req.Status != nil {
		status := models.LegacyStatus(*req.Status)
		if !status.IsValid() {
			return apperrors.NewValidationError("status", "legacy status code must be between 1 and 5")
		}
		if status != pipeline.Status {
			pipeline.Status = status
			changed = true
		}
	}

	if req.Notes != nil && *req.Notes != pipeline.Notes {
		audits = append(audits, &models.PipelineActivity{
			PipelineID:  pipeline.ID,
			UserID:      actingUserID,
			Kind:        models.ActivityKindNoteAdded,
			Description: "Notes updated",
			OldValue:    models.TruncateSnapshot(pipeline.Notes),
			NewValue:    models.TruncateSnapshot(*req.Notes),
		})
		pipeline.Notes = *req.Notes
		changed = true
	}

	if req.AccountManagerID != nil && (pipeline.AccountManagerID == nil || *pipeline.AccountManagerID != *req.AccountManagerID) {
		newManager, err := s.userRepo.GetByID(*req.AccountManagerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to verify account manager: %w", err)
		}

		oldName := ""
		if pipeline.AccountManagerID != nil {
			if oldManager, err := s.userRepo.GetByID(*pipeline.AccountManagerID); err == nil {
				oldName = oldManager.DisplayName()
			}
		}

		audits = append(audits, &models.PipelineActivity{
			PipelineID:  pipeline.ID,
			UserID:      actingUserID,
			Kind:        models.ActivityKindManagerChange,
			Description: "Account manager reassigned",
			OldValue:    models.TruncateSnapshot(oldName),
			NewValue:    models.TruncateSnapshot(newManager.DisplayName()),
		})
		pipeline.AccountManagerID = req.AccountManagerID
		changed = true
	}

	if !changed {
		return nil
	}

	if err := s.repo.Update(pipeline); err != nil {
		return fmt.Errorf("failed to update pipeline: %w", err)
	}
	for _, audit := range audits {
		if err := s.activityRepo.Create(audit); err != nil {
			return fmt.Errorf("failed to record activity: %w", err)
		}
	}
	return nil
}

// Delete removes a pipeline along with its transitions and activities
func (s *PipelineService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPipelineNotFound
		}
		return fmt.Errorf("failed to delete pipeline: %w", err)
	}
	return nil
}

// ListActivities retrieves a pipeline's audit log, newest first
func (s *PipelineService) ListActivities(pipelineID uuid.UUID, page, pageSize int) (*ActivityListResponse, error) {
	if _, err := s.repo.GetByID(pipelineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	activities, total, err := s.activityRepo.GetByPipelineID(pipelineID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	responses := make([]ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = toActivityResponse(&activities[i])
	}

	return &ActivityListResponse{
		Activities: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// ListTransitions retrieves a pipeline's transition log, newest first
func (s *PipelineService) ListTransitions(pipelineID uuid.UUID, page, pageSize int) (*TransitionListResponse, error) {
	if _, err := s.repo.GetByID(pipelineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	transitions, total, err := s.transitionRepo.GetByPipelineID(pipelineID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}

	responses := make([]TransitionResponse, len(transitions))
	for i := range transitions {
		responses[i] = s.toTransitionResponse(&transitions[i])
	}

	return &TransitionListResponse{
		Transitions: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// toDetailResponse converts a pipeline model (with preloaded relations) to a
// detail response without the nested history lists.
func (s *PipelineService) toDetailResponse(pipeline *models.CxPipeline) *PipelineDetailResponse {
	now := s.NowFunc()

	resp := &PipelineDetailResponse{
		ID:                       pipeline.ID,
		ClientID:                 pipeline.ClientID,
		ClientName:               pipeline.Client.Name,
		StageID:                  pipeline.StageID,
		Status:                   int(pipeline.Status),
		StatusDisplay:            pipeline.Status.Label(),
		PhaseDisplay:             pipeline.PhaseDisplay(),
		Notes:                    pipeline.Notes,
		AccountManagerID:         pipeline.AccountManagerID,
		StageStartDate:           pipeline.StageStartDate,
		CurrentStageDurationDays: pipeline.CurrentStageDurationDays(now),
		IsStageOverdue:           pipeline.IsStageOverdue(now),
		LastUpdated:              pipeline.LastUpdated,
		CreatedAt:                pipeline.CreatedAt,
		RecentActivities:         []ActivityResponse{},
		RecentTransitions:        []TransitionResponse{},
	}
	if pipeline.Stage != nil {
		resp.StageName = &pipeline.Stage.Name
	}
	if pipeline.AccountManager != nil {
		name := pipeline.AccountManager.DisplayName()
		resp.AccountManagerName = &name
	}
	return resp
}

// toTransitionResponse converts a transition model (with preloaded stages and
// user) to an API response.
func (s *PipelineService) toTransitionResponse(t *models.StageTransition) TransitionResponse {
	now := s.NowFunc()

	resp := TransitionResponse{
		ID:           t.ID,
		PipelineID:   t.PipelineID,
		FromStageID:  t.FromStageID,
		ToStageID:    t.ToStageID,
		EntryDate:    t.EntryDate,
		ExitDate:     t.ExitDate,
		DurationDays: t.DurationDays(now),
		IsActive:     t.IsActive(),
		IsOverdue:    t.IsOverdue(now),
	}
	if t.FromStage != nil {
		resp.FromStageName = &t.FromStage.Name
	}
	if t.ToStage != nil {
		resp.ToStageName = &t.ToStage.Name
	}
	if t.User != nil {
		name := t.User.DisplayName()
		resp.UserName = &name
	}
	return resp
}

// normalizePagination clamps page and page size to sane bounds
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
