package services

import (
	"context"

	"annapurna/internal/models/db_models"
	"annapurna/internal/models/request_models"
	"annapurna/internal/models/response_models"
	"annapurna/internal/repositories"
	"annapurna/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	ListFoods(ctx context.Context) ([]db_models.Food, error)
	UpdateFood(ctx context.Context, id string, req request_models.UpdateFoodRequest) (*db_models.Food, error)
	DeleteFood(ctx context.Context, id string) error
	Stats(ctx context.Context) (*response_models.AdminStats, error)
}

type AdminService struct {
	users   repositories.UserRepository
	foods   repositories.FoodRepository
	healths repositories.HealthLogRepository
}

func NewAdminService(
	users repositories.UserRepository,
	foods repositories.FoodRepository,
	healths repositories.HealthLogRepository,
) AdminServiceInterface {
	return &AdminService{
		users:   users,
		foods:   foods,
		healths: healths,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, response_models.SanitizeUser(&users[i]))
	}
	return out, nil
}

func (s *AdminService) ListFoods(ctx context.Context) ([]db_models.Food, error) {
	foods, err := s.foods.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return foods, nil
}

func (s *AdminService) UpdateFood(ctx context.Context, id string, req request_models.UpdateFoodRequest) (*db_models.Food, error) {
	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if food == nil {
		return nil, utils.ErrFoodNotFound
	}

	applyFoodPatch(food, req)

	if err := s.foods.Update(ctx, food); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return food, nil
}

func (s *AdminService) DeleteFood(ctx context.Context, id string) error {
	return s.foods.Delete(ctx, id)
}

func (s *AdminService) Stats(ctx context.Context) (*response_models.AdminStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	foodCount, err := s.foods.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	logCount, err := s.healths.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminStats{
		Users:      userCount,
		Foods:      foodCount,
		HealthLogs: logCount,
	}, nil
}

func applyFoodPatch(food *db_models.Food, req request_models.UpdateFoodRequest) {
	if req.Name != nil {
		food.Name = *req.Name
	}
	if req.Category != nil {
		food.Category = *req.Category
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Dosha != nil {
		food.Dosha = *req.Dosha
	}
	if req.Rasa != nil {
		food.Rasa = *req.Rasa
	}
	if req.Virya != nil {
		food.Virya = *req.Virya
	}
	if req.Benefits != nil {
		food.Benefits = *req.Benefits
	}
	if req.Calories != nil {
		food.Calories = *req.Calories
	}
}
