// menu.go - Defines the Menu and MenuItem models for the database

package models // Declares the package name

// Menu holds the ordered item list for a single restaurant.
// The unique index on RestaurantID keeps the lazy find-or-create in the
// menu handlers from ever producing two menus for one restaurant.
type Menu struct {
	ID           uint       `gorm:"primaryKey" json:"id"`                                              // Unique menu ID (primary key)
	RestaurantID uint       `gorm:"uniqueIndex;not null" json:"restaurant"`                            // One menu per restaurant
	Items        []MenuItem `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"items"`        // Ordered menu items
}

// MenuItem is a single dish on a menu. IDs are generated UUIDs so item
// identity survives reordering and deletion of earlier items.
type MenuItem struct {
	ID          string  `gorm:"primaryKey" json:"id"`        // Generated UUID
	MenuID      uint    `gorm:"not null;index" json:"-"`     // Foreign key to the menu
	Position    int     `gorm:"not null" json:"-"`           // Append order within the menu
	Name        string  `gorm:"not null" json:"name"`        // Item name (required)
	Description string  `json:"description"`                 // Optional description
	Price       float64 `gorm:"not null" json:"price"`       // Item price (required, zero allowed)
}
