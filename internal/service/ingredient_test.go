package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costbook/backend/internal/testhelpers"
)

func TestIngredientCreateDerivesCosts(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	ing, err := svc.Create(ctx, IngredientInput{
		Name:        "Flour",
		CostPerUnit: 12.00,
		Quantity:    5,
		UnitType:    "lb",
		BoxCount:    1,
	})
	require.NoError(t, err)

	assert.InDelta(t, 12.00, ing.CostPerBox, 1e-9)
	assert.InDelta(t, 2.40, ing.BaseCost, 1e-9)
	require.NotNil(t, ing.LastPriceCheck)
}

func TestIngredientCreateMultiBox(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	ing, err := svc.Create(ctx, IngredientInput{
		Name:        "Butter",
		CostPerUnit: 10.15,
		Quantity:    3,
		UnitType:    "lb",
		BoxCount:    6,
	})
	require.NoError(t, err)

	assert.InDelta(t, 10.15/6, ing.CostPerBox, 1e-9)
	assert.InDelta(t, 10.15/6/3, ing.BaseCost, 1e-9)
}

func TestIngredientCreateRejectsZeroQuantity(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))

	_, err := svc.Create(context.Background(), IngredientInput{
		Name:        "Salt",
		CostPerUnit: 2,
		Quantity:    0,
		UnitType:    "oz",
	})
	assert.Error(t, err)
}

func TestIngredientDuplicateName(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, IngredientInput{Name: "Sugar", CostPerUnit: 3, Quantity: 2, UnitType: "lb"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, IngredientInput{Name: "Sugar", CostPerUnit: 4, Quantity: 1, UnitType: "lb"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestIngredientUpdateRecomputesBaseCost(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	ing, err := svc.Create(ctx, IngredientInput{Name: "Flour", CostPerUnit: 12, Quantity: 5, UnitType: "lb"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, ing.ID, IngredientInput{
		Name:        "Flour",
		CostPerUnit: 24,
		Quantity:    5,
		UnitType:    "lb",
		BoxCount:    2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.40, updated.BaseCost, 1e-9)
	assert.Equal(t, 2, updated.BoxCount)
}

func TestIngredientUpdateKeepsOwnName(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	ing, err := svc.Create(ctx, IngredientInput{Name: "Flour", CostPerUnit: 12, Quantity: 5, UnitType: "lb"})
	require.NoError(t, err)

	// Updating without renaming must not trip the uniqueness check.
	_, err = svc.Update(ctx, ing.ID, IngredientInput{Name: "Flour", CostPerUnit: 13, Quantity: 5, UnitType: "lb"})
	assert.NoError(t, err)
}

func TestIngredientVendorMustExist(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))

	missing := uint(999)
	_, err := svc.Create(context.Background(), IngredientInput{
		Name:        "Eggs",
		CostPerUnit: 3,
		Quantity:    12,
		UnitType:    "oz",
		VendorID:    &missing,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngredientRejectsInactiveVendor(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewIngredientService(db)
	vendors := NewVendorService(db)
	ctx := context.Background()

	vendor, err := vendors.Create(ctx, VendorInput{Name: "Closed Shop"})
	require.NoError(t, err)
	inactive := false
	_, err = vendors.Update(ctx, vendor.ID, VendorInput{Name: "Closed Shop", IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Create(ctx, IngredientInput{
		Name:        "Eggs",
		CostPerUnit: 3,
		Quantity:    12,
		UnitType:    "oz",
		VendorID:    &vendor.ID,
	})
	assert.ErrorIs(t, err, ErrVendorInactive)
}

func TestIngredientGetAndDelete(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	ing, err := svc.Create(ctx, IngredientInput{Name: "Flour", CostPerUnit: 12, Quantity: 5, UnitType: "lb"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, ing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flour", got.Name)

	require.NoError(t, svc.Delete(ctx, ing.ID))

	_, err = svc.Get(ctx, ing.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, ing.ID), ErrNotFound)
}

func TestIngredientListOrdered(t *testing.T) {
	svc := NewIngredientService(testhelpers.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Zucchini", "Almonds", "Milk"} {
		_, err := svc.Create(ctx, IngredientInput{Name: name, CostPerUnit: 1, Quantity: 1, UnitType: "oz"})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Almonds", list[0].Name)
	assert.Equal(t, "Milk", list[1].Name)
	assert.Equal(t, "Zucchini", list[2].Name)
}
