// main.go - Entry point for the restaurant backend server

package main // Declares the package name

import (
	"log" // Fatal startup errors

	"go-restaurant-backend/config"      // Project config management
	"go-restaurant-backend/database"    // Database connection and setup
	"go-restaurant-backend/handlers"    // HTTP handlers for API endpoints
	"go-restaurant-backend/middleware"  // Authentication/authorization middleware
	"go-restaurant-backend/pkg/logging" // Structured logging setup

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() {
	logging.Setup() // Colored slog output, level from LOG_LEVEL

	cfg := config.Load() // Load configuration (port, DB path, JWT secret)

	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatal("DB connection error: ", err)
	}

	r := gin.Default() // Create a new Gin router

	// Public routes (no authentication required)
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.GET("/restaurants", handlers.GetRestaurants)
	r.GET("/restaurants/:id", handlers.GetRestaurantByID)

	// Owner routes: authenticate, then gate on the restaurant-owner role.
	// Ownership of the specific restaurant is checked inside each handler.
	owner := r.Group("/")
	owner.Use(middleware.AuthMiddleware(), middleware.OwnerMiddleware())
	{
		owner.POST("/restaurants", handlers.CreateRestaurant)
		owner.PUT("/restaurants/:id", handlers.UpdateRestaurant)
		owner.DELETE("/restaurants/:id", handlers.DeleteRestaurant)

		owner.POST("/restaurants/:id/menu", handlers.AddMenuItem)
		owner.PUT("/restaurants/:id/menu/:itemId", handlers.UpdateMenuItem)
		owner.DELETE("/restaurants/:id/menu/:itemId", handlers.RemoveMenuItem)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
