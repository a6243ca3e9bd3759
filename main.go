package main

import (
	"context"
	"inventory-api/controllers"
	"inventory-api/infra"
	"inventory-api/middlewares"
	"inventory-api/models"
	"inventory-api/repositories"
	"inventory-api/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, tokenDB *gorm.DB) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	authService := services.NewAuthService(authRepository, tokenRepository)
	authController := controllers.NewAuthController(authService)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	locationRepository := repositories.NewLocationRepository(db)
	locationService := services.NewLocationService(locationRepository)
	locationController := controllers.NewLocationController(locationService)

	itemLocationRepository := repositories.NewItemLocationRepository(db)
	itemLocationService := services.NewItemLocationService(itemLocationRepository, itemRepository, locationRepository)
	itemLocationController := controllers.NewItemLocationController(itemLocationService)

	r := gin.Default()
	r.Use(cors.Default())

	authRouter := r.Group("/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	itemRouter := r.Group("/items", middlewares.AuthMiddleware(authService))
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouter.POST("", itemController.Create)
	itemRouter.PUT("/:id", itemController.Update)
	itemRouter.DELETE("/:id", itemController.Delete)

	locationRouter := r.Group("/locations", middlewares.AuthMiddleware(authService))
	locationRouter.GET("", locationController.FindAll)
	locationRouter.GET("/:id", locationController.FindById)
	locationRouter.GET("/:id/path", locationController.GetPath)
	locationRouter.POST("", locationController.Create)
	locationRouter.PUT("/:id", locationController.Update)
	locationRouter.DELETE("/:id", locationController.Delete)

	itemLocationRouter := r.Group("/itemlocations", middlewares.AuthMiddleware(authService))
	itemLocationRouter.GET("", itemLocationController.FindAll)
	itemLocationRouter.GET("/:id", itemLocationController.FindById)
	itemLocationRouter.GET("/byitem/:id", itemLocationController.FindByItem)
	itemLocationRouter.GET("/bylocation/:id", itemLocationController.FindByLocation)
	itemLocationRouter.POST("", itemLocationController.Create)
	itemLocationRouter.PUT("/:id", itemLocationController.Update)
	itemLocationRouter.DELETE("/:id", itemLocationController.Delete)

	return r
}

func initDB() (*gorm.DB, *gorm.DB) {
	infra.Initialize()

	db := infra.SetupDB()
	tokenDB := infra.SetupTokenDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(
			&models.User{},
			&models.Item{},
			&models.Location{},
			&models.ItemLocation{},
		); err != nil {
			panic("Failed to migrate database")
		}
		if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
			log.Printf("Failed to migrate token blacklist database: %v", err)
		}
	}

	return db, tokenDB
}

func main() {
	db, tokenDB := initDB()
	r := setupRouter(db, tokenDB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
