package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"annapurna/internal/models/request_models"
	"annapurna/internal/services"
	"annapurna/pkg/middleware"
	"annapurna/pkg/utils"
)

type HealthController struct {
	healthService services.HealthServiceInterface
}

func NewHealthController(healthService services.HealthServiceInterface) *HealthController {
	return &HealthController{
		healthService: healthService,
	}
}

func (h *HealthController) CreateEntry(c *gin.Context) {
	var req request_models.CreateHealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	entry, err := h.healthService.LogEntry(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Health log created successfully")
}

func (h *HealthController) ListEntries(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	entries, err := h.healthService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Health logs fetched successfully")
}
