package accountfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"annapurna/internal/api/controllers"
	"annapurna/internal/infra"
	"annapurna/internal/repositories"
	"annapurna/internal/services"
)

var Module = fx.Provide(
	provideUserRepository, provideAuthService, provideAuthController)

func provideUserRepository(db *gorm.DB, probe infra.Prober) repositories.UserRepository {
	var persistent repositories.UserRepository
	if db != nil {
		persistent = repositories.NewUserRepository(db)
	}
	return repositories.NewDualUserRepository(persistent, repositories.NewInMemoryUserRepository(), probe)
}

func provideAuthService(users repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(users, os.Getenv("ADMIN_SETUP_CODE"))
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
