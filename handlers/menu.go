// menu.go - Menu item handlers (add/update/remove)
//
// Menus are created lazily: the first AddMenuItem on a restaurant creates
// its menu. All three operations require the caller to own the restaurant.

package handlers // Declares the package name

import (
	"errors"
	"log/slog"
	"net/http" // HTTP status codes

	"go-restaurant-backend/database" // Database connection
	"go-restaurant-backend/models"   // Data models

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Menu item id generation
	"gorm.io/gorm"             // For gorm.ErrRecordNotFound
)

type AddMenuItemInput struct { // Struct for menu item creation input
	Name        string   `json:"name" binding:"required"`  // Item name (required)
	Description string   `json:"description"`              // Optional description
	Price       *float64 `json:"price" binding:"required"` // Price (required; pointer so 0 is accepted)
}

// UpdateMenuItemInput uses pointer fields for merge-patch semantics, so an
// explicit price of 0 is distinguishable from "price not supplied".
type UpdateMenuItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// findMenu loads a restaurant's menu with its items in append order.
// Returns gorm.ErrRecordNotFound when the restaurant has no menu yet.
func findMenu(restaurantID uint) (models.Menu, error) {
	var menu models.Menu
	err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("restaurant_id = ?", restaurantID).
		First(&menu).Error
	return menu, err
}

func AddMenuItem(c *gin.Context) { // Handler for POST /restaurants/:id/menu
	restaurant, ok := findOwnedRestaurant(c)
	if !ok {
		return
	}

	var input AddMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Menu item name and price are required"})
		return
	}

	// Find or create the restaurant's menu
	menu, err := findMenu(restaurant.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		menu = models.Menu{RestaurantID: restaurant.ID}
		if err := database.DB.Create(&menu).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// Append after the current last item. Counting items would reuse a
	// position once an earlier item has been removed.
	position := 0
	if n := len(menu.Items); n > 0 {
		position = menu.Items[n-1].Position + 1
	}

	item := models.MenuItem{
		ID:          uuid.NewString(),
		MenuID:      menu.ID,
		Position:    position,
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	menu, err = findMenu(restaurant.ID) // Reload with the new item
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	slog.Info("menu item added", "restaurant", restaurant.ID, "item", item.ID)
	c.JSON(http.StatusCreated, menu)
}

func UpdateMenuItem(c *gin.Context) { // Handler for PUT /restaurants/:id/menu/:itemId
	restaurant, ok := findOwnedRestaurant(c)
	if !ok {
		return
	}

	var input UpdateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	menu, err := findMenu(restaurant.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu not found"})
		return
	}

	var item models.MenuItem
	if err := database.DB.Where("id = ? AND menu_id = ?", c.Param("itemId"), menu.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	// Merge patch: only supplied fields change
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}

	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	menu, err = findMenu(restaurant.ID) // Reload with the updated item
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	slog.Info("menu item updated", "restaurant", restaurant.ID, "item", item.ID)
	c.JSON(http.StatusOK, menu)
}

func RemoveMenuItem(c *gin.Context) { // Handler for DELETE /restaurants/:id/menu/:itemId
	restaurant, ok := findOwnedRestaurant(c)
	if !ok {
		return
	}

	menu, err := findMenu(restaurant.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu not found"})
		return
	}

	// Deleting an id that is not on the menu is a no-op, so the operation
	// is idempotent. The caller gets the same confirmation either way.
	if err := database.DB.
		Where("id = ? AND menu_id = ?", c.Param("itemId"), menu.ID).
		Delete(&models.MenuItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	slog.Info("menu item removed", "restaurant", restaurant.ID, "item", c.Param("itemId"))
	c.JSON(http.StatusOK, gin.H{"message": "Menu item removed"})
}
