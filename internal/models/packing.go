package models

import "time"

// Packing is a packaging item priced per discrete unit. Unlike
// ingredients there is no unit conversion involved.
type Packing struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the historical table name.
func (Packing) TableName() string {
	return "packing"
}
