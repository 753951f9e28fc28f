// user.go - Handles user registration and login

package handlers // Declares the package name

import (
	"log/slog"
	"net/http" // HTTP status codes
	"time"     // For token expiration

	"go-restaurant-backend/config"   // Project config
	"go-restaurant-backend/database" // Database connection
	"go-restaurant-backend/models"   // User model

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

type RegisterInput struct { // Struct for registration input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
	Role     string `json:"role"`                        // Optional role (user/restaurant-owner)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

func Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Only known roles are accepted; anything else registers as a regular user
	role := models.RoleUser
	if input.Role == models.RoleRestaurantOwner {
		role = models.RoleRestaurantOwner
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not hash password"})
		return
	}

	user := models.User{Email: input.Email, Password: string(hash), Role: role}
	if err := database.DB.Create(&user).Error; err != nil { // Unique email enforced by the DB
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	slog.Info("user registered", "id", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

func Login(c *gin.Context) { // Handler for user login
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	// Issue a signed token carrying the user id
	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // 72 hour expiry
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
