package handlers

import (
	"net/http"

	"cx-crm-backend/internal/auth"
	"cx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MigrationHandler handles the legacy status migration endpoint
type MigrationHandler struct {
	migrationService service.MigrationServiceInterface
}

// NewMigrationHandler creates a new migration handler
func NewMigrationHandler(migrationService service.MigrationServiceInterface) *MigrationHandler {
	return &MigrationHandler{
		migrationService: migrationService,
	}
}

// MigratePipelineStages handles POST /migrate-pipeline-stages
// @Summary Migrate legacy pipeline statuses to stages
// @Description One-shot: seeds the default stage catalog from the legacy status codes and backfills stage-less pipelines
// @Tags migration
// @Produce json
// @Success 200 {object} service.MigrationResponse "Migration completed"
// @Failure 409 {object} ErrorResponse "Migration already ran"
// @Security BearerAuth
// @Router /migrate-pipeline-stages [post]
func (h *MigrationHandler) MigratePipelineStages(c *gin.Context) {
	resp, err := h.migrationService.MigrateLegacyStatuses(auth.ActingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
