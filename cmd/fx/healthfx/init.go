package healthfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"annapurna/internal/api/controllers"
	"annapurna/internal/infra"
	"annapurna/internal/repositories"
	"annapurna/internal/services"
)

var Module = fx.Provide(
	provideHealthLogRepository, provideHealthService, provideHealthController)

func provideHealthLogRepository(db *gorm.DB, probe infra.Prober) repositories.HealthLogRepository {
	var persistent repositories.HealthLogRepository
	if db != nil {
		persistent = repositories.NewHealthLogRepository(db)
	}
	return repositories.NewDualHealthLogRepository(persistent, repositories.NewInMemoryHealthLogRepository(), probe)
}

func provideHealthService(logs repositories.HealthLogRepository) services.HealthServiceInterface {
	return services.NewHealthService(logs)
}

func provideHealthController(healthService services.HealthServiceInterface) *controllers.HealthController {
	return controllers.NewHealthController(healthService)
}
