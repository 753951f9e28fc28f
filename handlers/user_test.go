// user_test.go - Tests for user registration and login
// Run with: go test ./...

package handlers

import (
	"testing"

	"go-restaurant-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	// Registration
	w := doRequest(router, "POST", "/register", RegisterInput{
		Email:    "test@example.com",
		Password: "testpass",
	}, "")
	assert.Equal(t, 201, w.Code)

	// Duplicate registration is rejected
	w = doRequest(router, "POST", "/register", RegisterInput{
		Email:    "test@example.com",
		Password: "otherpass",
	}, "")
	assert.Equal(t, 400, w.Code)

	// Login returns a token
	w = doRequest(router, "POST", "/login", LoginInput{
		Email:    "test@example.com",
		Password: "testpass",
	}, "")
	assert.Equal(t, 200, w.Code)
	var body map[string]string
	decodeBody(w, &body)
	assert.NotEmpty(t, body["token"])

	// Wrong password
	w = doRequest(router, "POST", "/login", LoginInput{
		Email:    "test@example.com",
		Password: "wrongpass",
	}, "")
	assert.Equal(t, 401, w.Code)
}

func TestRegisterRole(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	// Owner role is accepted
	w := doRequest(router, "POST", "/register", RegisterInput{
		Email:    "owner@example.com",
		Password: "testpass",
		Role:     models.RoleRestaurantOwner,
	}, "")
	assert.Equal(t, 201, w.Code)

	// Unknown roles fall back to the regular user role
	w = doRequest(router, "POST", "/register", RegisterInput{
		Email:    "sneaky@example.com",
		Password: "testpass",
		Role:     "admin",
	}, "")
	assert.Equal(t, 201, w.Code)

	// Registered owner can actually pass the owner gate
	w = doRequest(router, "POST", "/login", LoginInput{
		Email:    "owner@example.com",
		Password: "testpass",
	}, "")
	var body map[string]string
	decodeBody(w, &body)

	w = doRequest(router, "POST", "/restaurants", map[string]string{"name": "Cafe A"}, body["token"])
	assert.Equal(t, 201, w.Code)
}
