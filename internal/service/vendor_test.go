package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costbook/backend/internal/models"
	"github.com/costbook/backend/internal/testhelpers"
)

func TestVendorCreateAndList(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewVendorService(db)
	ctx := context.Background()

	vendor, err := svc.Create(ctx, VendorInput{Name: "Acme Foods", Address: "1 Main St", Phone: "555-0100"})
	require.NoError(t, err)
	assert.True(t, vendor.IsActive)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme Foods", list[0].Name)
	assert.Zero(t, list[0].IngredientCount)
}

func TestVendorDuplicateName(t *testing.T) {
	svc := NewVendorService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, VendorInput{Name: "Acme Foods"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, VendorInput{Name: "Acme Foods"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestVendorDeleteHardWhenUnused(t *testing.T) {
	svc := NewVendorService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	vendor, err := svc.Create(ctx, VendorInput{Name: "Acme Foods"})
	require.NoError(t, err)

	result, err := svc.Delete(ctx, vendor.ID)
	require.NoError(t, err)
	assert.False(t, result.SoftDeleted)

	_, err = svc.Get(ctx, vendor.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVendorDeleteSoftWhenReferenced(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	vendors := NewVendorService(db)
	ingredients := NewIngredientService(db)
	ctx := context.Background()

	vendor, err := vendors.Create(ctx, VendorInput{Name: "Acme Foods"})
	require.NoError(t, err)

	_, err = ingredients.Create(ctx, IngredientInput{
		Name:        "Flour",
		CostPerUnit: 12,
		Quantity:    5,
		UnitType:    "lb",
		VendorID:    &vendor.ID,
	})
	require.NoError(t, err)

	result, err := vendors.Delete(ctx, vendor.ID)
	require.NoError(t, err)
	assert.True(t, result.SoftDeleted)
	assert.Equal(t, int64(1), result.IngredientCount)

	// Inactive vendors disappear from the list but the row survives.
	list, err := vendors.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	var stored models.Vendor
	require.NoError(t, db.First(&stored, vendor.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestVendorGetFlagsStalePrices(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	vendors := NewVendorService(db)
	ingredients := NewIngredientService(db)
	ctx := context.Background()

	vendor, err := vendors.Create(ctx, VendorInput{Name: "Acme Foods"})
	require.NoError(t, err)

	ing, err := ingredients.Create(ctx, IngredientInput{
		Name:        "Eggs",
		CostPerUnit: 3,
		Quantity:    12,
		UnitType:    "oz",
		VendorID:    &vendor.ID,
	})
	require.NoError(t, err)

	// Backdate the price check past the 30 day window.
	old := time.Now().AddDate(0, 0, -40)
	require.NoError(t, db.Model(&models.Ingredient{}).Where("id = ?", ing.ID).Update("last_price_check", &old).Error)

	detail, err := vendors.Get(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, detail.Ingredients, 1)
	assert.True(t, detail.Ingredients[0].PriceOutdated)
}

func TestVendorPriceComparison(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	vendors := NewVendorService(db)
	ingredients := NewIngredientService(db)
	ctx := context.Background()

	vendorA, err := vendors.Create(ctx, VendorInput{Name: "Vendor A"})
	require.NoError(t, err)
	vendorB, err := vendors.Create(ctx, VendorInput{Name: "Vendor B"})
	require.NoError(t, err)

	_, err = ingredients.Create(ctx, IngredientInput{
		Name: "Eggs", CostPerUnit: 3.00, Quantity: 12, UnitType: "oz", VendorID: &vendorA.ID,
	})
	require.NoError(t, err)
	_, err = ingredients.Create(ctx, IngredientInput{
		Name: "Eggs (Farm)", CostPerUnit: 2.50, Quantity: 12, UnitType: "oz", VendorID: &vendorB.ID,
	})
	require.NoError(t, err)

	comparison, err := vendors.PriceComparison(ctx, time.Now())
	require.NoError(t, err)
	assert.Len(t, comparison, 2)
	require.Len(t, comparison["Eggs"], 1)
	assert.Equal(t, "Vendor A", comparison["Eggs"][0].VendorName)
}

func TestVendorUpdateReactivates(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	vendors := NewVendorService(db)
	ingredients := NewIngredientService(db)
	ctx := context.Background()

	vendor, err := vendors.Create(ctx, VendorInput{Name: "Acme Foods"})
	require.NoError(t, err)
	_, err = ingredients.Create(ctx, IngredientInput{
		Name: "Flour", CostPerUnit: 12, Quantity: 5, UnitType: "lb", VendorID: &vendor.ID,
	})
	require.NoError(t, err)

	_, err = vendors.Delete(ctx, vendor.ID)
	require.NoError(t, err)

	active := true
	updated, err := vendors.Update(ctx, vendor.ID, VendorInput{Name: "Acme Foods", IsActive: &active})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	list, err := vendors.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
