package services

import (
	"context"

	"annapurna/internal/models/db_models"
	"annapurna/internal/models/request_models"
	"annapurna/internal/repositories"
	"annapurna/pkg/utils"
)

type FoodServiceInterface interface {
	ListFoods(ctx context.Context) ([]db_models.Food, error)
	GetFood(ctx context.Context, id string) (*db_models.Food, error)
	CreateFood(ctx context.Context, req request_models.CreateFoodRequest) (*db_models.Food, error)
}

type FoodService struct {
	foods repositories.FoodRepository
}

func NewFoodService(foods repositories.FoodRepository) FoodServiceInterface {
	return &FoodService{foods: foods}
}

func (s *FoodService) ListFoods(ctx context.Context) ([]db_models.Food, error) {
	foods, err := s.foods.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return foods, nil
}

func (s *FoodService) GetFood(ctx context.Context, id string) (*db_models.Food, error) {
	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if food == nil {
		return nil, utils.ErrFoodNotFound
	}
	return food, nil
}

func (s *FoodService) CreateFood(ctx context.Context, req request_models.CreateFoodRequest) (*db_models.Food, error) {
	food := &db_models.Food{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Dosha:       req.Dosha,
		Rasa:        req.Rasa,
		Virya:       req.Virya,
		Benefits:    req.Benefits,
		Calories:    req.Calories,
	}
	if err := s.foods.Insert(ctx, food); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return food, nil
}
