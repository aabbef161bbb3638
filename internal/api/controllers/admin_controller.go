package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"annapurna/internal/models/request_models"
	"annapurna/internal/services"
	"annapurna/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// ListUsers godoc
// @Summary List all accounts
// @Description Fetch sanitized profiles for every account in the active backend
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

func (a *AdminController) ListFoods(c *gin.Context) {
	foods, err := a.adminService.ListFoods(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, foods, "Foods fetched successfully")
}

func (a *AdminController) UpdateFood(c *gin.Context) {
	var req request_models.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	food, err := a.adminService.UpdateFood(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, food, "Food updated successfully")
}

func (a *AdminController) DeleteFood(c *gin.Context) {
	if err := a.adminService.DeleteFood(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Food deleted successfully")
}

// Stats godoc
// @Summary Platform counters
// @Description Counts of users, foods and health logs from the active backend
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (a *AdminController) Stats(c *gin.Context) {
	stats, err := a.adminService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
