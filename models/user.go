// user.go - Defines the User model for the database

package models // Declares the package name

// Role values a user account can carry.
const (
	RoleUser            = "user"             // Regular customer account
	RoleRestaurantOwner = "restaurant-owner" // May create and manage restaurants
)

type User struct { // User struct represents a user in the database
	ID       uint   `gorm:"primaryKey" json:"id"`         // Unique user ID (primary key)
	Email    string `gorm:"unique;not null" json:"email"` // User's email (must be unique, cannot be null)
	Password string `gorm:"not null" json:"-"`            // Hashed password (never serialized)
	Role     string `gorm:"default:'user'" json:"role"`   // User role (user/restaurant-owner)
}
