package database

import (
	"gorm.io/gorm"

	"github.com/costbook/backend/internal/models"
)

// RunMigrations brings the schema up to date for all domain models.
// Both PostgreSQL and the SQLite test databases go through gorm
// auto-migration; there is no hand-written migration history.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Vendor{},
		&models.Ingredient{},
		&models.Packing{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipePackaging{},
	)
}
