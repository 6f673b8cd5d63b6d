package handlers

import (
	"net/http"

	"cx-crm-backend/internal/auth"
	"cx-crm-backend/internal/database/models"
	"cx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for the pipeline audit log
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// RecordActivity handles POST /pipelines/:id/activities
// @Summary Record a pipeline activity
// @Description Append a manual entry to a pipeline's audit log; stage changes are recorded by the system and cannot be posted here
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param activity body service.RecordActivityRequest true "Activity to record"
// @Success 201 {object} service.ActivityResponse "Activity recorded"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Pipeline not found"
// @Security BearerAuth
// @Router /pipelines/{id}/activities [post]
func (h *ActivityHandler) RecordActivity(c *gin.Context) {
	pipelineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline id"})
		return
	}

	var req service.RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Kind == "" {
		req.Kind = models.ActivityKindCustom
	}
	// stage_change rows are written only by the stage-change operation itself
	if req.Kind == models.ActivityKindStageChange {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "stage_change activities are system generated"})
		return
	}

	resp, err := h.activityService.Record(pipelineID, req.Kind, req.OldValue, req.NewValue, req.Description, auth.ActingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
