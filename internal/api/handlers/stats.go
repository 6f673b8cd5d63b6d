package handlers

import (
	"net/http"

	"cx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for stage duration statistics
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// StageDurationStats handles GET /stage-duration-stats
// @Summary Stage duration statistics
// @Description Per-stage average duration over closed transitions plus active and overdue counts
// @Tags stats
// @Produce json
// @Success 200 {array} service.StageStatsResponse "One entry per stage in catalog order"
// @Router /stage-duration-stats [get]
func (h *StatsHandler) StageDurationStats(c *gin.Context) {
	resp, err := h.statsService.ComputeStageStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
