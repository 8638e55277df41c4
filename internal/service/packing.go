package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/costbook/backend/internal/models"
)

// PackingService handles packaging item CRUD.
type PackingService struct {
	db *gorm.DB
}

// NewPackingService creates a new PackingService instance
func NewPackingService(db *gorm.DB) *PackingService {
	return &PackingService{db: db}
}

// PackingInput carries the writable fields of a packing item.
type PackingInput struct {
	Name  string
	Price float64
}

// List returns all packing items ordered by name.
func (s *PackingService) List(ctx context.Context) ([]models.Packing, error) {
	var items []models.Packing
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get retrieves a packing item by ID.
func (s *PackingService) Get(ctx context.Context, id uint) (*models.Packing, error) {
	var item models.Packing
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("packing item %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

// Create stores a new packing item.
func (s *PackingService) Create(ctx context.Context, input PackingInput) (*models.Packing, error) {
	item := models.Packing{Name: input.Name, Price: input.Price}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update rewrites a packing item.
func (s *PackingService) Update(ctx context.Context, id uint, input PackingInput) (*models.Packing, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	item.Price = input.Price
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a packing item by ID.
func (s *PackingService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Packing{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("packing item %d: %w", id, ErrNotFound)
	}
	return nil
}
