package foodfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"annapurna/internal/api/controllers"
	"annapurna/internal/infra"
	"annapurna/internal/repositories"
	"annapurna/internal/services"
)

var Module = fx.Provide(
	provideFoodRepository, provideFoodService, provideFoodController)

func provideFoodRepository(db *gorm.DB, probe infra.Prober) repositories.FoodRepository {
	var persistent repositories.FoodRepository
	if db != nil {
		persistent = repositories.NewFoodRepository(db)
	}
	return repositories.NewDualFoodRepository(persistent, repositories.NewInMemoryFoodRepository(), probe)
}

func provideFoodService(foods repositories.FoodRepository) services.FoodServiceInterface {
	return services.NewFoodService(foods)
}

func provideFoodController(foodService services.FoodServiceInterface) *controllers.FoodController {
	return controllers.NewFoodController(foodService)
}
