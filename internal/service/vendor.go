package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/costbook/backend/internal/models"
	"github.com/costbook/backend/internal/reports"
)

// VendorService handles vendor CRUD, the soft-delete rule for vendors
// with attached ingredients, and the cross-vendor price comparison.
type VendorService struct {
	db *gorm.DB
}

// NewVendorService creates a new VendorService instance
func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{db: db}
}

// VendorInput carries the writable fields of a vendor.
type VendorInput struct {
	Name     string
	Address  string
	Phone    string
	IsActive *bool
}

// VendorSummary is a vendor row with its ingredient count, as served by
// the list endpoint.
type VendorSummary struct {
	models.Vendor
	IngredientCount int64 `json:"ingredient_count"`
}

// VendorIngredient is an ingredient row with its price staleness flag.
type VendorIngredient struct {
	models.Ingredient
	PriceOutdated bool `json:"price_outdated"`
}

// VendorDetail is a vendor with its flagged ingredients.
type VendorDetail struct {
	models.Vendor
	Ingredients []VendorIngredient `json:"ingredients"`
}

// DeleteResult reports whether a vendor was removed or only
// deactivated.
type DeleteResult struct {
	SoftDeleted     bool
	IngredientCount int64
	Vendor          *models.Vendor
}

// List returns all active vendors with their ingredient counts, ordered
// by name.
func (s *VendorService) List(ctx context.Context) ([]VendorSummary, error) {
	var vendors []models.Vendor
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}

	summaries := make([]VendorSummary, 0, len(vendors))
	for _, vendor := range vendors {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("vendor_id = ?", vendor.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		summaries = append(summaries, VendorSummary{Vendor: vendor, IngredientCount: count})
	}
	return summaries, nil
}

// Get retrieves an active vendor with its ingredients, each flagged
// when its price check is more than 30 days old.
func (s *VendorService) Get(ctx context.Context, id uint) (*VendorDetail, error) {
	var vendor models.Vendor
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vendor %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("vendor_id = ?", id).Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	detail := VendorDetail{Vendor: vendor, Ingredients: make([]VendorIngredient, 0, len(ingredients))}
	for _, ing := range ingredients {
		detail.Ingredients = append(detail.Ingredients, VendorIngredient{
			Ingredient:    ing,
			PriceOutdated: reports.PriceStatus(ing.LastPriceCheck, now) == reports.PriceStatusOutdated,
		})
	}
	return &detail, nil
}

// Create stores a new vendor.
func (s *VendorService) Create(ctx context.Context, input VendorInput) (*models.Vendor, error) {
	if err := s.ensureUniqueName(ctx, input.Name, 0); err != nil {
		return nil, err
	}
	vendor := models.Vendor{
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Update rewrites a vendor. Setting IsActive back to true reactivates a
// soft-deleted vendor.
func (s *VendorService) Update(ctx context.Context, id uint, input VendorInput) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.WithContext(ctx).First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vendor %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, input.Name, id); err != nil {
		return nil, err
	}

	vendor.Name = input.Name
	vendor.Address = input.Address
	vendor.Phone = input.Phone
	if input.IsActive != nil {
		vendor.IsActive = *input.IsActive
	}
	if err := s.db.WithContext(ctx).Save(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Delete removes a vendor. A vendor that still has ingredients attached
// is deactivated instead, so historical ingredient rows keep a valid
// reference; only a vendor with no ingredients is hard-deleted.
func (s *VendorService) Delete(ctx context.Context, id uint) (*DeleteResult, error) {
	var vendor models.Vendor
	if err := s.db.WithContext(ctx).First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vendor %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("vendor_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}

	if count > 0 {
		vendor.IsActive = false
		if err := s.db.WithContext(ctx).Save(&vendor).Error; err != nil {
			return nil, err
		}
		return &DeleteResult{SoftDeleted: true, IngredientCount: count, Vendor: &vendor}, nil
	}

	if err := s.db.WithContext(ctx).Delete(&models.Vendor{}, id).Error; err != nil {
		return nil, err
	}
	return &DeleteResult{SoftDeleted: false, Vendor: &vendor}, nil
}

// PriceComparison groups every active vendor's ingredient prices by
// ingredient name, cheapest vendor first.
func (s *VendorService) PriceComparison(ctx context.Context, now time.Time) (map[string][]reports.ComparisonRow, error) {
	var rows []struct {
		IngredientName string
		UnitType       string
		VendorName     string
		CostPerUnit    float64
		LastPriceCheck *time.Time
	}
	err := s.db.WithContext(ctx).
		Table("ingredients").
		Select("ingredients.name AS ingredient_name, ingredients.unit_type, vendors.name AS vendor_name, ingredients.cost_per_unit, ingredients.last_price_check").
		Joins("JOIN vendors ON vendors.id = ingredients.vendor_id").
		Where("vendors.is_active = ?", true).
		Order("ingredients.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	prices := make([]reports.IngredientPrice, 0, len(rows))
	for _, row := range rows {
		prices = append(prices, reports.IngredientPrice{
			IngredientName: row.IngredientName,
			UnitType:       row.UnitType,
			VendorName:     row.VendorName,
			CostPerUnit:    row.CostPerUnit,
			LastPriceCheck: row.LastPriceCheck,
		})
	}
	return reports.VendorComparison(prices, now), nil
}

func (s *VendorService) ensureUniqueName(ctx context.Context, name string, excludeID uint) error {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.Vendor{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("vendor %q: %w", name, ErrDuplicateName)
	}
	return nil
}
