package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopByCost(t *testing.T) {
	rows := []RecipeRow{
		{ID: 1, TotalRecipeCost: 10},
		{ID: 2, TotalRecipeCost: 30},
		{ID: 3, TotalRecipeCost: 20},
	}

	top := TopByCost(rows, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, uint(2), top[0].ID)
	assert.Equal(t, uint(3), top[1].ID)

	// Input is not reordered.
	assert.Equal(t, uint(1), rows[0].ID)
}

func TestEstimateProfitUsesRecordedRevenue(t *testing.T) {
	row := RecipeRow{Servings: 10, SellingPricePerServing: 4, TotalRecipeCost: 30}

	est := EstimateProfit(row, 3)
	assert.InDelta(t, 40, est.EstimatedRevenue, 1e-9)
	assert.InDelta(t, 10, est.EstimatedProfit, 1e-9)
	assert.InDelta(t, 25, est.ProfitMarginPercent, 1e-9)
}

func TestEstimateProfitMarkupFallback(t *testing.T) {
	row := RecipeRow{Servings: 10, TotalRecipeCost: 30}

	est := EstimateProfit(row, 3)
	assert.InDelta(t, 90, est.EstimatedRevenue, 1e-9)
	assert.InDelta(t, 60, est.EstimatedProfit, 1e-9)
	// (3c - c) / 3c is a fixed two-thirds margin.
	assert.InDelta(t, 100.0*2/3, est.ProfitMarginPercent, 1e-9)
}

func TestTopByProfitSkipsUncosted(t *testing.T) {
	rows := []RecipeRow{
		{ID: 1, TotalRecipeCost: 0},
		{ID: 2, TotalRecipeCost: 10},
		{ID: 3, TotalRecipeCost: 40},
	}

	top := TopByProfit(rows, 3, 10)
	assert.Len(t, top, 2)
	assert.Equal(t, uint(3), top[0].ID)
	assert.Equal(t, uint(2), top[1].ID)
}

func TestEstimateWeekly(t *testing.T) {
	created := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	}
	rows := []RecipeRow{
		{ID: 1, TotalRecipeCost: 30, Servings: 10, CreatedAt: created(2025, 6, 9)},
		{ID: 2, TotalRecipeCost: 20, Servings: 5, CreatedAt: created(2025, 6, 12)},
		{ID: 3, TotalRecipeCost: 15, Servings: 4, CreatedAt: created(2025, 6, 2)},
		{ID: 4, TotalRecipeCost: 0, CreatedAt: created(2025, 6, 2)},
	}

	weeks := EstimateWeekly(rows, 3)
	assert.Len(t, weeks, 2)

	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), weeks[0].WeekStart)
	assert.Equal(t, "06/08/2025", weeks[0].WeekLabel)
	assert.Equal(t, 2, weeks[0].RecipesCreated)
	assert.InDelta(t, 50, weeks[0].TotalCost, 1e-9)
	assert.InDelta(t, 150, weeks[0].EstimatedRevenue, 1e-9)

	// Uncosted recipe is excluded from its week.
	assert.Equal(t, 1, weeks[1].RecipesCreated)
}

func TestMetrics(t *testing.T) {
	rows := []RecipeRow{
		{ID: 1, TotalRecipeCost: 30, Servings: 10},
		{ID: 2, TotalRecipeCost: 10, Servings: 2},
		{ID: 3, TotalRecipeCost: 0, Servings: 4},
	}

	m := Metrics(rows, 3)
	assert.Equal(t, 2, m.TotalRecipes)
	assert.InDelta(t, 40, m.TotalCostAllRecipes, 1e-9)
	assert.InDelta(t, 20, m.AvgRecipeCost, 1e-9)
	assert.InDelta(t, 30, m.HighestRecipeCost, 1e-9)
	assert.InDelta(t, 10, m.LowestRecipeCost, 1e-9)
	assert.Equal(t, 12, m.TotalServings)
	assert.InDelta(t, 6, m.AvgServingsPerRecipe, 1e-9)
}

func TestMetricsEmpty(t *testing.T) {
	m := Metrics(nil, 3)
	assert.Zero(t, m.TotalRecipes)
	assert.Zero(t, m.AvgRecipeCost)
}
