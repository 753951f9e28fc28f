// restaurant.go - Defines the Restaurant model for the database

package models // Declares the package name

type Restaurant struct { // Restaurant struct represents a restaurant in the database
	ID          uint    `gorm:"primaryKey" json:"id"`            // Unique restaurant ID (primary key)
	Name        string  `gorm:"not null" json:"name"`            // Restaurant name (required)
	Address     string  `json:"address"`                         // Street address
	PhoneNumber string  `json:"phoneNumber"`                     // Contact phone number
	Email       *string `gorm:"uniqueIndex" json:"email"`        // Contact email; NULL when absent so the unique index only binds real values
	Description string  `json:"description"`                     // Free-form description
	OwnerID     uint    `gorm:"not null;index" json:"owner"`     // Foreign key to the owning user
	Owner       User    `gorm:"foreignKey:OwnerID" json:"-"`     // Owning user (not serialized)
}
