package adminfx

import (
	"go.uber.org/fx"

	"annapurna/internal/api/controllers"
	"annapurna/internal/repositories"
	"annapurna/internal/services"
)

var Module = fx.Provide(
	provideAdminService, provideAdminController)

func provideAdminService(
	users repositories.UserRepository,
	foods repositories.FoodRepository,
	logs repositories.HealthLogRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(users, foods, logs)
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
