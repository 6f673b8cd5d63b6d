package handlers

import (
	"net/http"
	"strconv"

	"cx-crm-backend/internal/auth"
	"cx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PipelineHandler handles HTTP requests for pipelines and their history
type PipelineHandler struct {
	pipelineService service.PipelineServiceInterface
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService service.PipelineServiceInterface) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
	}
}

// CreatePipeline handles POST /pipelines
// @Summary Create a pipeline
// @Description Create a pipeline for a client, optionally entering an initial stage
// @Tags pipelines
// @Accept json
// @Produce json
// @Param pipeline body service.CreatePipelineRequest true "Pipeline to create"
// @Success 201 {object} service.PipelineDetailResponse "Pipeline created"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Client or stage not found"
// @Security BearerAuth
// @Router /pipelines [post]
func (h *PipelineHandler) CreatePipeline(c *gin.Context) {
	var req service.CreatePipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.pipelineService.Create(&req, auth.ActingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListPipelines handles GET /pipelines
// @Summary List pipelines
// @Description Get pipelines with pagination, optionally filtered by client
// @Tags pipelines
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param client_id query string false "Filter by client ID"
// @Success 200 {object} service.PipelineListResponse
// @Router /pipelines [get]
func (h *PipelineHandler) ListPipelines(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var clientID *uuid.UUID
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client id"})
			return
		}
		clientID = &id
	}

	resp, err := h.pipelineService.List(clientID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPipeline handles GET /pipelines/:id
// @Summary Get a pipeline
// @Description Get a pipeline with its recent activities and transitions
// @Tags pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Success 200 {object} service.PipelineDetailResponse
// @Failure 404 {object} ErrorResponse "Pipeline not found"
// @Router /pipelines/{id} [get]
func (h *PipelineHandler) GetPipeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline id"})
		return
	}

	resp, err := h.pipelineService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePipeline handles PATCH /pipelines/:id
// @Summary Update a pipeline
// @Description Update notes, account manager or stage; stage changes close the open transition and open a new one
// @Tags pipelines
// @Accept json
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param pipeline body service.UpdatePipelineRequest true "Fields to update"
// @Success 200 {object} service.PipelineDetailResponse
// @Failure 404 {object} ErrorResponse "Pipeline or stage not found"
// @Security BearerAuth
// @Router /pipelines/{id} [patch]
func (h *PipelineHandler) UpdatePipeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline id"})
		return
	}

	var req service.UpdatePipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.pipelineService.Update(id, &req, auth.ActingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePipeline handles DELETE /pipelines/:id
// @Summary Delete a pipeline
// @Description Remove a pipeline along with its transitions and activities
// @Tags pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Success 204 "Pipeline deleted"
// @Failure 404 {object} ErrorResponse "Pipeline not found"
// @Security BearerAuth
// @Router /pipelines/{id} [delete]
func (h *PipelineHandler) DeletePipeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline id"})
		return
	}

	if err := h.pipelineService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListActivities handles GET /pipelines/:id/activities
// @Summary List pipeline activities
// @Description Get a pipeline's audit log, newest first
// @Tags pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ActivityListResponse
// @Failure 404 {object} ErrorResponse "Pipeline not found"
// @Router /pipelines/{id}/activities [get]
func (h *PipelineHandler) ListActivities(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline id"})
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.pipelineService.ListActivities(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTransitions handles GET /pipelines/:id/transitions
// @Summary List pipeline stage transitions
// @Description Get a pipeline's stage history, newest entry first
// @Tags pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TransitionListResponse
// @Failure 404 {object} ErrorResponse "Pipeline not found"
// @Router /pipelines/{id}/transitions [get]
func (h *PipelineHandler) ListTransitions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline id"})
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.pipelineService.ListTransitions(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
