package handlers

import (
	"net/http"

	"cx-crm-backend/internal/auth"
	apperrors "cx-crm-backend/internal/errors"
	"cx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StageHandler handles HTTP requests for the stage catalog
type StageHandler struct {
	stageService service.StageServiceInterface
}

// NewStageHandler creates a new stage handler
func NewStageHandler(stageService service.StageServiceInterface) *StageHandler {
	return &StageHandler{
		stageService: stageService,
	}
}

// CreateStage handles POST /pipeline-stages
// @Summary Create a pipeline stage
// @Description Add a stage to the catalog with an order and optional SLA in days
// @Tags stages
// @Accept json
// @Produce json
// @Param stage body service.CreateStageRequest true "Stage to create"
// @Success 201 {object} service.StageResponse "Stage created"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /pipeline-stages [post]
func (h *StageHandler) CreateStage(c *gin.Context) {
	var req service.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.stageService.CreateStage(&req, auth.ActingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListStages handles GET /pipeline-stages
// @Summary List pipeline stages
// @Description Get all stages in catalog order
// @Tags stages
// @Produce json
// @Success 200 {array} service.StageResponse "Stages in order"
// @Router /pipeline-stages [get]
func (h *StageHandler) ListStages(c *gin.Context) {
	resp, err := h.stageService.ListStages()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStage handles GET /pipeline-stages/:id
// @Summary Get a pipeline stage
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 200 {object} service.StageResponse
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Router /pipeline-stages/{id} [get]
func (h *StageHandler) GetStage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stage id"})
		return
	}

	resp, err := h.stageService.GetStageByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStage handles PATCH /pipeline-stages/:id
// @Summary Update a pipeline stage
// @Description Administrative edits to a stage's name, order, description or SLA
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param stage body service.UpdateStageRequest true "Fields to update"
// @Success 200 {object} service.StageResponse
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Security BearerAuth
// @Router /pipeline-stages/{id} [patch]
func (h *StageHandler) UpdateStage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stage id"})
		return
	}

	var req service.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.stageService.UpdateStage(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteStage handles DELETE /pipeline-stages/:id
// @Summary Delete a pipeline stage
// @Description Remove a stage from the catalog; refused while any pipeline references it
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 204 "Stage deleted"
// @Failure 400 {object} ErrorResponse "Stage is in use"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Security BearerAuth
// @Router /pipeline-stages/{id} [delete]
func (h *StageHandler) DeleteStage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stage id"})
		return
	}

	if err := h.stageService.DeleteStage(id); err != nil {
		// in-use stages answer 400, not the usual 409
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
