// handlers_test.go - Shared test setup for the handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"go-restaurant-backend/config"
	"go-restaurant-backend/database"
	"go-restaurant-backend/middleware"
	"go-restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// setupTestDB removes any existing test DB and creates a fresh one
func setupTestDB() {
	_ = os.Remove("test.db")
	if err := database.Connect("test.db"); err != nil {
		panic(err)
	}
}

// setupRouter returns a Gin engine with the full route table, mirroring main.go
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/register", Register)
	r.POST("/login", Login)
	r.GET("/restaurants", GetRestaurants)
	r.GET("/restaurants/:id", GetRestaurantByID)

	owner := r.Group("/")
	owner.Use(middleware.AuthMiddleware(), middleware.OwnerMiddleware())
	{
		owner.POST("/restaurants", CreateRestaurant)
		owner.PUT("/restaurants/:id", UpdateRestaurant)
		owner.DELETE("/restaurants/:id", DeleteRestaurant)

		owner.POST("/restaurants/:id/menu", AddMenuItem)
		owner.PUT("/restaurants/:id/menu/:itemId", UpdateMenuItem)
		owner.DELETE("/restaurants/:id/menu/:itemId", RemoveMenuItem)
	}
	return r
}

// createTestUser inserts a user with the given role and returns it with a valid token
func createTestUser(email, role string) (models.User, string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.DefaultCost)
	user := models.User{Email: email, Password: string(hash), Role: role}
	database.DB.Create(&user)

	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})
	tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))

	return user, tokenString
}

// doRequest runs a JSON request through the router and records the response
func doRequest(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response body
func decodeBody(w *httptest.ResponseRecorder, out any) {
	_ = json.Unmarshal(w.Body.Bytes(), out)
}
