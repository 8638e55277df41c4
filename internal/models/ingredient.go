package models

import (
	"time"
)

// Ingredient is a purchasable raw material. CostPerUnit holds the total
// amount paid for the whole purchase (all boxes), CostPerBox and BaseCost
// are derived from it and recomputed on every write.
type Ingredient struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CostPerUnit    float64    `gorm:"not null" json:"cost_per_unit"`
	CostPerBox     float64    `json:"cost_per_box"`
	BaseCost       float64    `json:"base_cost"`
	Quantity       float64    `gorm:"not null" json:"quantity"`
	UnitType       string     `gorm:"size:20;not null" json:"unit_type"`
	BoxCount       int        `gorm:"default:1" json:"box_count"`
	VendorID       *uint      `json:"vendor_id,omitempty"`
	Vendor         *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	LastPriceCheck *time.Time `json:"last_price_check,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
