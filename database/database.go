// database.go - Handles database connection and setup

package database // Declares the package name

import (
	"go-restaurant-backend/models" // Data models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error
	// TranslateError turns driver unique-constraint failures into
	// gorm.ErrDuplicatedKey so handlers can map them to conflict responses
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true}) // Open SQLite DB
	if err != nil {
		return err
	}

	// Auto-migrate all models (create tables if needed)
	return DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.MenuItem{},
	)
}
