package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costbook/backend/internal/reports"
)

func TestCalculationBreakdown(t *testing.T) {
	f := newRecipeFixture(t)
	calc := NewCalculationService(f.db, f.recipes)
	ctx := context.Background()

	recipe, err := f.recipes.Create(ctx, RecipeInput{
		Name:                "Bread",
		Servings:            4,
		DesiredProfitMargin: 25,
		Ingredients: []RecipeIngredientInput{
			{IngredientID: f.flour.ID, Quantity: 8, Unit: "oz"},
			{IngredientID: f.sugar.ID, Quantity: 4, Unit: "oz"},
		},
		Packaging: []RecipePackagingInput{
			{PackagingID: f.box.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	breakdown, err := calc.Breakdown(ctx, recipe.ID)
	require.NoError(t, err)

	// Flour: $0.15/oz * 8 = $1.20. Sugar: $0.125/oz * 4 = $0.50.
	assert.InDelta(t, 1.70, breakdown.TotalIngredientCost, 1e-9)
	assert.InDelta(t, 0.35, breakdown.TotalPackagingCost, 1e-9)
	assert.InDelta(t, 2.05, breakdown.CostPerServing, 1e-9)

	require.Len(t, breakdown.Ingredients, 2)
	var pctTotal float64
	for _, row := range breakdown.Ingredients {
		assert.True(t, row.UnitRecognized)
		pctTotal += row.PctOfIngredientCost
	}
	assert.InDelta(t, 100, pctTotal, 1e-9)

	// 25% margin over $2.05 per serving, rounded to cents at the end.
	assert.InDelta(t, 2.73, breakdown.SuggestedPrice, 1e-9)
	assert.InDelta(t, 0.68, breakdown.ProfitPerServing, 1e-9)
	assert.InDelta(t, 2.73, breakdown.TotalProfit, 1e-9)
}

func TestCalculationBreakdownFlagsUnknownUnit(t *testing.T) {
	f := newRecipeFixture(t)
	calc := NewCalculationService(f.db, f.recipes)
	ctx := context.Background()

	recipe, err := f.recipes.Create(ctx, RecipeInput{
		Name:     "Mystery",
		Servings: 2,
		Ingredients: []RecipeIngredientInput{
			{IngredientID: f.flour.ID, Quantity: 1, Unit: "handful"},
		},
	})
	require.NoError(t, err)

	breakdown, err := calc.Breakdown(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, breakdown.Ingredients, 1)
	assert.False(t, breakdown.Ingredients[0].UnitRecognized)
}

func TestCalculationPricingScenarios(t *testing.T) {
	f := newRecipeFixture(t)
	calc := NewCalculationService(f.db, f.recipes)
	ctx := context.Background()

	recipe, err := f.recipes.Create(ctx, RecipeInput{
		Name:     "Bread",
		Servings: 4,
		Ingredients: []RecipeIngredientInput{
			{IngredientID: f.flour.ID, Quantity: 8, Unit: "oz"},
		},
	})
	require.NoError(t, err)

	result, err := calc.PricingScenarios(ctx, recipe.ID, []float64{20, 40})
	require.NoError(t, err)
	require.Len(t, result.Scenarios, 2)
	assert.InDelta(t, 1.20/0.80, result.Scenarios[0].SuggestedPrice, 1e-9)
	assert.InDelta(t, 1.20/0.60, result.Scenarios[1].SuggestedPrice, 1e-9)

	_, err = calc.PricingScenarios(ctx, recipe.ID, []float64{150})
	assert.Error(t, err)
}

func TestCalculationIngredientUsage(t *testing.T) {
	f := newRecipeFixture(t)
	calc := NewCalculationService(f.db, f.recipes)
	ctx := context.Background()

	for _, in := range []RecipeInput{
		{
			Name: "Bread", Servings: 4,
			Ingredients: []RecipeIngredientInput{
				{IngredientID: f.flour.ID, Quantity: 8, Unit: "oz"},
				{IngredientID: f.sugar.ID, Quantity: 1, Unit: "oz"},
			},
		},
		{
			Name: "Rolls", Servings: 6,
			Ingredients: []RecipeIngredientInput{
				{IngredientID: f.flour.ID, Quantity: 4, Unit: "oz"},
			},
		},
	} {
		_, err := f.recipes.Create(ctx, in)
		require.NoError(t, err)
	}

	rows, err := calc.IngredientUsage(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Flour carries the larger total cost so it sorts first.
	assert.Equal(t, "Flour", rows[0].IngredientName)
	assert.Equal(t, int64(2), rows[0].UsedInRecipes)
	assert.InDelta(t, 12, rows[0].TotalQuantityUsed, 1e-9)
	assert.InDelta(t, 1.80, rows[0].TotalCostAcrossRecipe, 1e-9)

	assert.Equal(t, "Sugar", rows[1].IngredientName)
	assert.Equal(t, int64(1), rows[1].UsedInRecipes)
}

func TestCalculationProfitabilityAnalysis(t *testing.T) {
	f := newRecipeFixture(t)
	calc := NewCalculationService(f.db, f.recipes)
	ctx := context.Background()

	week := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC) // Tuesday
	for _, in := range []RecipeInput{
		{Name: "Scheduled", Servings: 2, Week: &week},
		{Name: "Backlog", Servings: 2},
	} {
		_, err := f.recipes.Create(ctx, in)
		require.NoError(t, err)
	}

	weeksOut, err := calc.ProfitabilityAnalysis(ctx)
	require.NoError(t, err)
	require.Len(t, weeksOut, 2)

	// Scheduled weeks come first, snapped to the preceding Sunday;
	// unscheduled recipes land in the trailing bucket.
	assert.Equal(t, "2025-06-08", weeksOut[0].Week)
	assert.Equal(t, reports.UnscheduledKey, weeksOut[1].Week)
	require.Len(t, weeksOut[1].Recipes, 1)
	assert.Equal(t, "Backlog", weeksOut[1].Recipes[0].Name)
}
