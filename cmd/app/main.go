package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"annapurna/cmd/fx/accountfx"
	"annapurna/cmd/fx/adminfx"
	"annapurna/cmd/fx/chatfx"
	"annapurna/cmd/fx/dbfx"
	"annapurna/cmd/fx/foodfx"
	"annapurna/cmd/fx/healthfx"
	"annapurna/internal/api/controllers"
	"annapurna/internal/repositories"
	"annapurna/pkg/middleware"
	"annapurna/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	// godotenv runs after package init, so push the secret in explicitly.
	utils.SetSigningKey([]byte(os.Getenv("JWT_SECRET")))

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		foodfx.Module,
		healthfx.Module,
		chatfx.Module,
		adminfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	foodController *controllers.FoodController,
	healthController *controllers.HealthController,
	chatController *controllers.ChatController,
	adminController *controllers.AdminController,
	users repositories.UserRepository) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, foodController, healthController, chatController, adminController, users)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	foodController *controllers.FoodController,
	healthController *controllers.HealthController,
	chatController *controllers.ChatController,
	adminController *controllers.AdminController,
	users repositories.UserRepository) {

	r.GET("/api/health-check", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "AnnapurnaAI Backend Running")
	})

	authGroup := r.Group("/api/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/create-admin", authController.CreateAdmin)

	foodGroup := r.Group("/api/food")
	foodGroup.GET("", foodController.ListFoods)
	foodGroup.GET("/:id", foodController.GetFood)
	foodGroup.POST("", middleware.AdminAuthMiddleware(users), foodController.CreateFood)

	healthGroup := r.Group("/api/health")
	healthGroup.Use(middleware.JWTAuthMiddleware())
	healthGroup.POST("", healthController.CreateEntry)
	healthGroup.GET("", healthController.ListEntries)

	chatGroup := r.Group("/api/chat")
	chatGroup.Use(middleware.JWTAuthMiddleware())
	chatGroup.POST("/message", chatController.Message)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware(users))
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.GET("/foods", adminController.ListFoods)
	adminGroup.PUT("/foods/:id", adminController.UpdateFood)
	adminGroup.DELETE("/foods/:id", adminController.DeleteFood)
	adminGroup.GET("/stats", adminController.Stats)
}
