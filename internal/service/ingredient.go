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

// IngredientService handles ingredient CRUD and keeps the derived cost
// columns (cost_per_box, base_cost) consistent with the purchase data.
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// IngredientInput carries the writable fields of an ingredient.
// CostPerUnit is the total paid for the whole purchase; BoxCount
// defaults to a single box.
type IngredientInput struct {
	Name        string
	CostPerUnit float64
	Quantity    float64
	UnitType    string
	BoxCount    int
	VendorID    *uint
}

// List returns all ingredients ordered by name.
func (s *IngredientService) List(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Get retrieves an ingredient by ID.
func (s *IngredientService) Get(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ingredient %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &ingredient, nil
}

// Create stores a new ingredient with freshly derived cost columns and
// stamps the price check date.
func (s *IngredientService) Create(ctx context.Context, input IngredientInput) (*models.Ingredient, error) {
	ingredient := models.Ingredient{}
	if err := s.apply(ctx, &ingredient, input); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, input.Name, 0); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Update rewrites an ingredient, recomputing the derived cost columns
// from the new purchase data.
func (s *IngredientService) Update(ctx context.Context, id uint, input IngredientInput) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, input.Name, id); err != nil {
		return nil, err
	}
	if err := s.apply(ctx, ingredient, input); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Delete removes an ingredient by ID.
func (s *IngredientService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient %d: %w", id, ErrNotFound)
	}
	return nil
}

// apply copies input onto the model and recomputes cost_per_box and
// base_cost. The stored base_cost is what every later cost calculation
// reads, so it must never lag behind the purchase columns.
func (s *IngredientService) apply(ctx context.Context, ingredient *models.Ingredient, input IngredientInput) error {
	baseCost, err := costing.ComputeBaseCost(input.CostPerUnit, input.BoxCount, input.Quantity)
	if err != nil {
		return err
	}

	boxCount := input.BoxCount
	if boxCount < 1 {
		boxCount = 1
	}

	if input.VendorID != nil {
		var vendor models.Vendor
		if err := s.db.WithContext(ctx).First(&vendor, *input.VendorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("vendor %d: %w", *input.VendorID, ErrNotFound)
			}
			return err
		}
		if !vendor.IsActive {
			return fmt.Errorf("vendor %d: %w", *input.VendorID, ErrVendorInactive)
		}
	}

	now := time.Now()
	ingredient.Name = input.Name
	ingredient.CostPerUnit = input.CostPerUnit
	ingredient.CostPerBox = input.CostPerUnit / float64(boxCount)
	ingredient.BaseCost = baseCost
	ingredient.Quantity = input.Quantity
	ingredient.UnitType = input.UnitType
	ingredient.BoxCount = boxCount
	ingredient.VendorID = input.VendorID
	ingredient.LastPriceCheck = &now
	return nil
}

// ensureUniqueName reports ErrDuplicateName when another ingredient
// already uses the name. The database unique index is the final word;
// this check exists to give the caller a precise error.
func (s *IngredientService) ensureUniqueName(ctx context.Context, name string, excludeID uint) error {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("ingredient %q: %w", name, ErrDuplicateName)
	}
	return nil
}
