package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/costbook/backend/internal/costing"
	"github.com/costbook/backend/internal/models"
)

// RecipeService handles recipe CRUD. A recipe and its line items are
// always written together: the composition is replaced wholesale inside
// one transaction and the denormalized cost columns are recomputed in
// the same transaction, so a reader can never observe a recipe whose
// cached costs disagree with its lines.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeIngredientInput is one ingredient line of a submitted recipe.
// Quantity is a per-serving amount in Unit.
type RecipeIngredientInput struct {
	IngredientID uint
	Quantity     float64
	Unit         string
}

// RecipePackagingInput is one packaging line of a submitted recipe.
type RecipePackagingInput struct {
	PackagingID uint
	Quantity    float64
}

// RecipeInput carries the writable fields of a recipe together with its
// full composition.
type RecipeInput struct {
	Name                   string
	Servings               int
	Week                   *time.Time
	SellingPricePerServing float64
	DesiredProfitMargin    float64
	Ingredients            []RecipeIngredientInput
	Packaging              []RecipePackagingInput
}

// List returns all recipes, most recent week first.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("week DESC").Order("name ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get retrieves a recipe with its ingredient and packaging lines.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Preload("Packaging.Packing").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &recipe, nil
}

// Create stores a recipe and its composition atomically.
func (s *RecipeService) Create(ctx context.Context, input RecipeInput) (*models.Recipe, error) {
	var recipe *models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		built, err := s.buildRecipe(tx, input)
		if err != nil {
			return err
		}
		if err := tx.Create(built).Error; err != nil {
			return err
		}
		recipe = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update replaces a recipe's fields and its whole composition. All
// existing line items are deleted and the submitted set inserted, then
// the cost columns recomputed, inside one transaction.
func (s *RecipeService) Update(ctx context.Context, id uint, input RecipeInput) (*models.Recipe, error) {
	var updated *models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Recipe
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("recipe %d: %w", id, ErrNotFound)
			}
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipePackaging{}).Error; err != nil {
			return err
		}

		built, err := s.buildRecipe(tx, input)
		if err != nil {
			return err
		}
		built.ID = id
		built.CreatedAt = existing.CreatedAt
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(built).Error; err != nil {
			return err
		}
		updated = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a recipe and its line items.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("recipe %d: %w", id, ErrNotFound)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("recipe_id = ?", id).Delete(&models.RecipePackaging{}).Error
	})
}

// Duplicate clones a recipe and its line items under a new id. The
// clone is named "<original> (Copy)" unless a name is supplied, and
// keeps the original week unless one is supplied.
func (s *RecipeService) Duplicate(ctx context.Context, id uint, name string, week *time.Time) (*models.Recipe, error) {
	original, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := models.Recipe{
		Name:                   name,
		Servings:               original.Servings,
		Week:                   original.Week,
		TotalRecipeCost:        original.TotalRecipeCost,
		CostPerServing:         original.CostPerServing,
		SellingPricePerServing: original.SellingPricePerServing,
		TotalRevenue:           original.TotalRevenue,
		ProfitMargin:           original.ProfitMargin,
		DesiredProfitMargin:    original.DesiredProfitMargin,
	}
	if clone.Name == "" {
		clone.Name = original.Name + " (Copy)"
	}
	if week != nil {
		clone.Week = week
	}
	for _, line := range original.Ingredients {
		clone.Ingredients = append(clone.Ingredients, models.RecipeIngredient{
			IngredientID: line.IngredientID,
			QuantityUsed: line.QuantityUsed,
			UnitType:     line.UnitType,
		})
	}
	for _, line := range original.Packaging {
		clone.Packaging = append(clone.Packaging, models.RecipePackaging{
			PackagingID: line.PackagingID,
			Quantity:    line.Quantity,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&clone).Error
	})
	if err != nil {
		return nil, err
	}
	return &clone, nil
}

// buildRecipe resolves the referenced ingredients and packing items,
// prices the composition, and assembles the recipe row with its derived
// cost columns. A dangling reference aborts the caller's transaction.
func (s *RecipeService) buildRecipe(tx *gorm.DB, input RecipeInput) (*models.Recipe, error) {
	lines := make([]costing.LineItem, 0, len(input.Ingredients))
	lineModels := make([]models.RecipeIngredient, 0, len(input.Ingredients))
	for _, line := range input.Ingredients {
		var ing models.Ingredient
		if err := tx.First(&ing, line.IngredientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("ingredient %d: %w", line.IngredientID, ErrNotFound)
			}
			return nil, err
		}
		lines = append(lines, costing.LineItem{
			Ingredient: costing.IngredientCost{
				TotalPaid: ing.CostPerUnit,
				BaseCost:  ing.BaseCost,
				Quantity:  ing.Quantity,
				UnitType:  ing.UnitType,
			},
			QuantityUsed: line.Quantity,
			UnitType:     line.Unit,
		})
		lineModels = append(lineModels, models.RecipeIngredient{
			IngredientID: line.IngredientID,
			QuantityUsed: line.Quantity,
			UnitType:     line.Unit,
		})
	}

	packs := make([]costing.PackagingItem, 0, len(input.Packaging))
	packModels := make([]models.RecipePackaging, 0, len(input.Packaging))
	for _, line := range input.Packaging {
		var item models.Packing
		if err := tx.First(&item, line.PackagingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("packing item %d: %w", line.PackagingID, ErrNotFound)
			}
			return nil, err
		}
		packs = append(packs, costing.PackagingItem{Price: item.Price, Quantity: line.Quantity})
		packModels = append(packModels, models.RecipePackaging{
			PackagingID: line.PackagingID,
			Quantity:    line.Quantity,
		})
	}

	costPerServing, _ := costing.CostPerServing(lines, packs)
	totalCost := costing.TotalRecipeCost(costPerServing, input.Servings)
	revenue := costing.TotalRevenue(input.SellingPricePerServing, input.Servings)

	return &models.Recipe{
		Name:                   input.Name,
		Servings:               input.Servings,
		Week:                   input.Week,
		CostPerServing:         costPerServing,
		TotalRecipeCost:        totalCost,
		SellingPricePerServing: input.SellingPricePerServing,
		TotalRevenue:           revenue,
		ProfitMargin:           costing.ProfitMargin(input.SellingPricePerServing, costPerServing),
		DesiredProfitMargin:    input.DesiredProfitMargin,
		Ingredients:            lineModels,
		Packaging:              packModels,
	}, nil
}
