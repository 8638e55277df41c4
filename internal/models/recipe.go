package models

import "time"

// Recipe is a costed production recipe. The cost and revenue columns are
// denormalized from the line items and are recomputed inside the same
// transaction whenever the composition changes.
type Recipe struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	Name                   string     `gorm:"size:255;not null" json:"name"`
	Servings               int        `gorm:"not null" json:"servings"`
	Week                   *time.Time `json:"week,omitempty"`
	TotalRecipeCost        float64    `json:"total_recipe_cost"`
	CostPerServing         float64    `json:"cost_per_serving"`
	SellingPricePerServing float64    `json:"selling_price_per_serving"`
	TotalRevenue           float64    `json:"total_revenue"`
	ProfitMargin           float64    `json:"profit_margin"`
	DesiredProfitMargin    float64    `json:"desired_profit_margin"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Packaging   []RecipePackaging  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"packaging,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecipeIngredient is one ingredient line of a recipe. QuantityUsed is a
// per-serving amount expressed in UnitType, which may differ from the
// unit the ingredient is purchased in.
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RecipeID     uint       `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint       `gorm:"not null" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	QuantityUsed float64    `gorm:"not null" json:"quantity_used"`
	UnitType     string     `gorm:"size:20;not null" json:"unit_type"`
}

// RecipePackaging is one packaging line of a recipe, a per-serving count
// of a packing item.
type RecipePackaging struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RecipeID    uint    `gorm:"not null;index" json:"recipe_id"`
	PackagingID uint    `gorm:"not null" json:"packaging_id"`
	Packing     Packing `gorm:"foreignKey:PackagingID" json:"packing,omitempty"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
}
