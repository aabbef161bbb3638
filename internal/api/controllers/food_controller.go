package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"annapurna/internal/models/request_models"
	"annapurna/internal/services"
	"annapurna/pkg/utils"
)

type FoodController struct {
	foodService services.FoodServiceInterface
}

func NewFoodController(foodService services.FoodServiceInterface) *FoodController {
	return &FoodController{
		foodService: foodService,
	}
}

func (f *FoodController) ListFoods(c *gin.Context) {
	foods, err := f.foodService.ListFoods(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, foods, "Foods fetched successfully")
}

func (f *FoodController) GetFood(c *gin.Context) {
	food, err := f.foodService.GetFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, food, "Food fetched successfully")
}

// CreateFood is admin-gated at the router.
func (f *FoodController) CreateFood(c *gin.Context) {
	var req request_models.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	food, err := f.foodService.CreateFood(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, food, "Food created successfully")
}
