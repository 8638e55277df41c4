package models

import "time"

// Vendor is a supplier of ingredients. Vendors that still have
// ingredients attached are never hard-deleted; they are flagged
// inactive so historical cost rows keep their reference.
type Vendor struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Address     string       `gorm:"size:255" json:"address,omitempty"`
	Phone       string       `gorm:"size:50" json:"phone,omitempty"`
	IsActive    bool         `gorm:"default:true" json:"is_active"`
	Ingredients []Ingredient `gorm:"foreignKey:VendorID" json:"ingredients,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
