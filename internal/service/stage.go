package service

import (
	"errors"
	"fmt"

	"cx-crm-backend/internal/database/models"
	apperrors "cx-crm-backend/internal/errors"
	"cx-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageService provides stage catalog business logic
type StageService struct {
	repo      repository.StageRepositoryInterface
	validator *validator.Validate
}

// Ensure StageService implements StageServiceInterface
var _ StageServiceInterface = (*StageService)(nil)

// NewStageService creates a new StageService
func NewStageService(repo repository.StageRepositoryInterface, validator *validator.Validate) *StageService {
	return &StageService{
		repo:      repo,
		validator: validator,
	}
}

// CreateStageRequest represents the request to create a pipeline stage
type CreateStageRequest struct {
	Name                 string `json:"name" validate:"required,max=100"`
	Description          string `json:"description,omitempty" validate:"max=500"`
	Order                int    `json:"order"`
	ExpectedDurationDays *int   `json:"expected_duration_days,omitempty" validate:"omitempty,min=1"`
}

// UpdateStageRequest represents administrative edits to a stage
type UpdateStageRequest struct {
	Name                 *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description          *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Order                *int    `json:"order,omitempty"`
	ExpectedDurationDays *int    `json:"expected_duration_days,omitempty" validate:"omitempty,min=1"`
}

// StageResponse represents a stage in API responses
type StageResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Order                int        `json:"order"`
	IsDefault            bool       `json:"is_default"`
	ExpectedDurationDays *int       `json:"expected_duration_days"`
	CreatedByID          *uuid.UUID `json:"created_by_id,omitempty"`
}

// CreateStage creates a new stage in the catalog
func (s *StageService) CreateStage(req *CreateStageRequest, actingUserID *uuid.UUID) (*StageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	stage := &models.PipelineStage{
		Name:                 req.Name,
		Description:          req.Description,
		SortOrder:            req.Order,
		ExpectedDurationDays: req.ExpectedDurationDays,
		CreatedByID:          actingUserID,
	}

	if err := s.repo.Create(stage); err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}

	return s.toResponse(stage), nil
}

// GetStageByID retrieves a stage by ID
func (s *StageService) GetStageByID(id uuid.UUID) (*StageResponse, error) {
	stage, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return s.toResponse(stage), nil
}

// ListStages retrieves the stage catalog in order
func (s *StageService) ListStages() ([]StageResponse, error) {
	stages, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	responses := make([]StageResponse, len(stages))
	for i := range stages {
		responses[i] = *s.toResponse(&stages[i])
	}
	return responses, nil
}

// UpdateStage applies administrative edits to a stage
func (s *StageService) UpdateStage(id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	stage, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}

	if req.Name != nil {
		stage.Name = *req.Name
	}
	if req.Description != nil {
		stage.Description = *req.Description
	}
	if req.Order != nil {
		stage.SortOrder = *req.Order
	}
	if req.ExpectedDurationDays != nil {
		stage.ExpectedDurationDays = req.ExpectedDurationDays
	}

	if err := s.repo.Update(stage); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	return s.toResponse(stage), nil
}

// DeleteStage removes a stage unless a pipeline currently references it
func (s *StageService) DeleteStage(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStageNotFound
		}
		return fmt.Errorf("failed to get stage: %w", err)
	}

	inUse, err := s.repo.CountPipelinesUsing(id)
	if err != nil {
		return fmt.Errorf("failed to check stage usage: %w", err)
	}
	if inUse > 0 {
		return apperrors.ErrStageInUse
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStageNotFound
		}
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	return nil
}

// toResponse converts a PipelineStage model to API response
func (s *StageService) toResponse(stage *models.PipelineStage) *StageResponse {
	return &StageResponse{
		ID:                   stage.ID,
		Name:                 stage.Name,
		Description:          stage.Description,
		Order:                stage.SortOrder,
		IsDefault:            stage.IsDefault,
		ExpectedDurationDays: stage.ExpectedDurationDays,
		CreatedByID:          stage.CreatedByID,
	}
}
