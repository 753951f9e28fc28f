// auth.go - JWT authentication and role authorization middleware
//
// Authorization is split into two composable stages:
//  1. AuthMiddleware resolves the bearer token to a user (authentication)
//  2. OwnerMiddleware gates on the restaurant-owner role (coarse authorization)
//
// Per-resource ownership (is this caller the owner of *this* restaurant) is
// checked inside the handlers, since it needs the resource id from the route.

package middleware // Declares the package name

import (
	"fmt"
	"net/http" // HTTP status codes (401, 403)
	"strings"  // For header parsing

	"go-restaurant-backend/config"   // Project config (for JWT secret)
	"go-restaurant-backend/database" // Database connection (for user lookup)
	"go-restaurant-backend/models"   // User model (for role checking)

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
)

// userKey is the gin context key the resolved identity is stored under.
const userKey = "user"

// CurrentUser returns the identity attached by AuthMiddleware.
// The bool is false on routes where AuthMiddleware did not run.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// AuthMiddleware validates the bearer token and attaches the resolved user
// to the request context. Aborts with 401 on any failure.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract the "Bearer <token>" Authorization header
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		// Verify signature and expiry against the shared secret
		cfg := config.Load()
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		// Extract the subject user id from the claims (JWT numbers are float64)
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		// Resolve the id to a user, excluding the password hash from the projection
		var user models.User
		if err := database.DB.Select("id", "email", "role").First(&user, uint(userID)).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		c.Set(userKey, user) // Store identity for downstream handlers
		c.Next()
	}
}

// OwnerMiddleware allows only users with the restaurant-owner role through.
// Must be chained after AuthMiddleware. This is a role check only; resource
// ownership is verified per-operation in the handlers.
func OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}
		if user.Role != models.RoleRestaurantOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized as a restaurant owner"})
			return
		}
		c.Next()
	}
}
