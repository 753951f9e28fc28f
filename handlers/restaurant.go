// restaurant.go - Restaurant CRUD handlers

package handlers // Declares the package name

import (
	"errors"
	"log/slog"
	"net/http" // HTTP status codes
	"strconv"  // For parsing route ids

	"go-restaurant-backend/config"     // Project config (cascade delete policy)
	"go-restaurant-backend/database"   // Database connection
	"go-restaurant-backend/middleware" // For the resolved identity
	"go-restaurant-backend/models"     // Data models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // For gorm.ErrRecordNotFound
)

type CreateRestaurantInput struct { // Struct for restaurant creation input
	Name        string `json:"name" binding:"required"` // Restaurant name (required)
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// UpdateRestaurantInput uses pointer fields so an absent field is
// distinguishable from an explicit zero value (merge-patch semantics).
type UpdateRestaurantInput struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
}

// findOwnedRestaurant loads the restaurant from the :id route param and
// verifies the caller owns it. Writes the error response and returns
// ok=false on any failure. Used by every owner+self operation.
func findOwnedRestaurant(c *gin.Context) (models.Restaurant, bool) {
	var restaurant models.Restaurant

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return restaurant, false
	}
	if err := database.DB.First(&restaurant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return restaurant, false
	}

	user, ok := middleware.CurrentUser(c)
	if !ok || restaurant.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to manage this restaurant"})
		return restaurant, false
	}
	return restaurant, true
}

func CreateRestaurant(c *gin.Context) { // Handler for POST /restaurants
	var input CreateRestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
		return
	}

	// Contact email is unique across restaurants; restaurants without one
	// store NULL so the unique index never sees them
	var email *string
	if input.Email != "" {
		var count int64
		database.DB.Model(&models.Restaurant{}).Where("email = ?", input.Email).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Restaurant already exists"})
			return
		}
		email = &input.Email
	}

	restaurant := models.Restaurant{
		Name:        input.Name,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		Email:       email,
		Description: input.Description,
		OwnerID:     user.ID, // Caller becomes the owner
	}
	if err := database.DB.Create(&restaurant).Error; err != nil {
		// Two concurrent creates can both pass the pre-check; the unique
		// index catches the loser and it gets the same conflict answer
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Restaurant already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	slog.Info("restaurant created", "id", restaurant.ID, "owner", user.ID)
	c.JSON(http.StatusCreated, restaurant)
}

func GetRestaurants(c *gin.Context) { // Handler for GET /restaurants (public)
	slog.Debug("fetching all restaurants")

	var restaurants []models.Restaurant
	if err := database.DB.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func GetRestaurantByID(c *gin.Context) { // Handler for GET /restaurants/:id (public)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}

	// Attach the menu when one exists; null otherwise
	var body gin.H
	menu, err := findMenu(restaurant.ID)
	if err == nil {
		body = gin.H{"restaurant": restaurant, "menu": menu}
	} else {
		body = gin.H{"restaurant": restaurant, "menu": nil}
	}
	c.JSON(http.StatusOK, body)
}

func UpdateRestaurant(c *gin.Context) { // Handler for PUT /restaurants/:id
	restaurant, ok := findOwnedRestaurant(c)
	if !ok {
		return
	}

	var input UpdateRestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Merge patch: only supplied fields change
	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		restaurant.PhoneNumber = *input.PhoneNumber
	}
	if input.Email != nil {
		if *input.Email != "" {
			restaurant.Email = input.Email
		} else {
			restaurant.Email = nil // Explicit empty email clears it
		}
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}

	if err := database.DB.Save(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Restaurant already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	slog.Info("restaurant updated", "id", restaurant.ID)
	c.JSON(http.StatusOK, restaurant)
}

func DeleteRestaurant(c *gin.Context) { // Handler for DELETE /restaurants/:id
	restaurant, ok := findOwnedRestaurant(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// The menu is only removed when the cascade policy is enabled;
	// otherwise it is left behind, matching the historical behavior.
	if config.Load().CascadeMenuDelete {
		if menu, err := findMenu(restaurant.ID); err == nil {
			database.DB.Where("menu_id = ?", menu.ID).Delete(&models.MenuItem{})
			database.DB.Delete(&menu)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("cascade menu delete failed", "restaurant", restaurant.ID, "err", err)
		}
	}

	slog.Info("restaurant deleted", "id", restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant removed"})
}
