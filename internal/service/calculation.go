package service

import (
	"context"
	"math"
	"sort"

	"gorm.io/gorm"

	"github.com/costbook/backend/internal/costing"
	"github.com/costbook/backend/internal/models"
	"github.com/costbook/backend/internal/reports"
)

// CalculationService serves the cost breakdown and pricing analysis
// endpoints. All arithmetic is delegated to the costing and reports
// packages; this layer only fetches rows and shapes results.
type CalculationService struct {
	db     *gorm.DB
	recipe *RecipeService
}

// NewCalculationService creates a new CalculationService instance
func NewCalculationService(db *gorm.DB, recipe *RecipeService) *CalculationService {
	return &CalculationService{db: db, recipe: recipe}
}

// IngredientBreakdownRow is one ingredient line of a cost breakdown.
type IngredientBreakdownRow struct {
	IngredientName  string  `json:"ingredient_name"`
	QuantityUsed    float64 `json:"quantity_used"`
	UnitType        string  `json:"unit_type"`
	CostPerBaseUnit float64 `json:"cost_per_base_unit"`
	TotalCost       float64 `json:"total_cost"`
	// PctOfIngredientCost is this line's share of the recipe's total
	// ingredient cost, in percent.
	PctOfIngredientCost float64 `json:"percentage_of_ingredient_cost"`
	// UnitRecognized is false when the line was costed through the
	// 1:1 fallback for an unknown unit and the figure is best-effort.
	UnitRecognized bool `json:"unit_recognized"`
}

// PackagingBreakdownRow is one packaging line of a cost breakdown.
type PackagingBreakdownRow struct {
	PackagingName string  `json:"packaging_name"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	TotalCost     float64 `json:"total_cost"`
}

// CostBreakdown is the full cost and pricing picture for one recipe.
type CostBreakdown struct {
	RecipeID            uint                     `json:"recipe_id"`
	RecipeName          string                   `json:"recipe_name"`
	Servings            int                      `json:"servings"`
	TotalIngredientCost float64                  `json:"total_ingredient_cost"`
	TotalPackagingCost  float64                  `json:"total_packaging_cost"`
	CostPerServing      float64                  `json:"cost_per_serving"`
	TotalRecipeCost     float64                  `json:"total_recipe_cost"`
	DesiredProfitMargin float64                  `json:"desired_profit_margin"`
	SuggestedPrice      float64                  `json:"suggested_price_per_serving"`
	ProfitPerServing    float64                  `json:"profit_per_serving"`
	TotalProfit         float64                  `json:"total_profit"`
	Ingredients         []IngredientBreakdownRow `json:"ingredients"`
	Packaging           []PackagingBreakdownRow  `json:"packaging"`
}

// ScenarioResult is a priced set of margin scenarios for one recipe.
type ScenarioResult struct {
	RecipeID       uint               `json:"recipe_id"`
	RecipeName     string             `json:"recipe_name"`
	CostPerServing float64            `json:"cost_per_serving"`
	Scenarios      []costing.Scenario `json:"scenarios"`
}

// IngredientUsageRow summarizes one ingredient's use across recipes.
type IngredientUsageRow struct {
	IngredientName        string  `json:"ingredient_name"`
	UnitType              string  `json:"unit_type"`
	UsedInRecipes         int64   `json:"used_in_recipes"`
	TotalQuantityUsed     float64 `json:"total_quantity_used"`
	TotalCostAcrossRecipe float64 `json:"total_cost_across_recipes"`
}

// Breakdown prices every line of a recipe and, when the recipe has a
// desired margin, the suggested price at that margin.
func (s *CalculationService) Breakdown(ctx context.Context, recipeID uint) (*CostBreakdown, error) {
	recipe, err := s.recipe.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	breakdown := CostBreakdown{
		RecipeID:            recipe.ID,
		RecipeName:          recipe.Name,
		Servings:            recipe.Servings,
		CostPerServing:      recipe.CostPerServing,
		TotalRecipeCost:     recipe.TotalRecipeCost,
		DesiredProfitMargin: recipe.DesiredProfitMargin,
	}

	for _, line := range recipe.Ingredients {
		ing := costing.IngredientCost{
			TotalPaid: line.Ingredient.CostPerUnit,
			BaseCost:  line.Ingredient.BaseCost,
			Quantity:  line.Ingredient.Quantity,
			UnitType:  line.Ingredient.UnitType,
		}
		cost, recognized := costing.LineItemCost(ing, line.QuantityUsed, line.UnitType)
		breakdown.TotalIngredientCost += cost
		breakdown.Ingredients = append(breakdown.Ingredients, IngredientBreakdownRow{
			IngredientName:  line.Ingredient.Name,
			QuantityUsed:    line.QuantityUsed,
			UnitType:        line.UnitType,
			CostPerBaseUnit: costing.CostPerBaseUnit(ing),
			TotalCost:       cost,
			UnitRecognized:  recognized,
		})
	}
	if breakdown.TotalIngredientCost > 0 {
		for i := range breakdown.Ingredients {
			breakdown.Ingredients[i].PctOfIngredientCost = breakdown.Ingredients[i].TotalCost / breakdown.TotalIngredientCost * 100
		}
	}

	for _, line := range recipe.Packaging {
		cost := costing.PackagingCost(line.Packing.Price, line.Quantity)
		breakdown.TotalPackagingCost += cost
		breakdown.Packaging = append(breakdown.Packaging, PackagingBreakdownRow{
			PackagingName: line.Packing.Name,
			Quantity:      line.Quantity,
			Price:         line.Packing.Price,
			TotalCost:     cost,
		})
	}

	if recipe.DesiredProfitMargin > 0 {
		price, err := costing.SuggestedPrice(recipe.CostPerServing, recipe.DesiredProfitMargin)
		if err != nil {
			return nil, err
		}
		breakdown.SuggestedPrice = price
		breakdown.ProfitPerServing = costing.ProfitPerServing(price, recipe.CostPerServing)
		breakdown.TotalProfit = costing.TotalProfitAtMargin(breakdown.ProfitPerServing, recipe.Servings)
	}

	// Monetary figures are rounded here, at the response boundary, so
	// the chained computations above never compound rounding error.
	for i := range breakdown.Ingredients {
		breakdown.Ingredients[i].TotalCost = round2(breakdown.Ingredients[i].TotalCost)
		breakdown.Ingredients[i].PctOfIngredientCost = round2(breakdown.Ingredients[i].PctOfIngredientCost)
	}
	for i := range breakdown.Packaging {
		breakdown.Packaging[i].TotalCost = round2(breakdown.Packaging[i].TotalCost)
	}
	breakdown.TotalIngredientCost = round2(breakdown.TotalIngredientCost)
	breakdown.TotalPackagingCost = round2(breakdown.TotalPackagingCost)
	breakdown.CostPerServing = round2(breakdown.CostPerServing)
	breakdown.TotalRecipeCost = round2(breakdown.TotalRecipeCost)
	breakdown.SuggestedPrice = round2(breakdown.SuggestedPrice)
	breakdown.ProfitPerServing = round2(breakdown.ProfitPerServing)
	breakdown.TotalProfit = round2(breakdown.TotalProfit)

	return &breakdown, nil
}

// PricingScenarios prices a recipe at each requested margin.
func (s *CalculationService) PricingScenarios(ctx context.Context, recipeID uint, margins []float64) (*ScenarioResult, error) {
	recipe, err := s.recipe.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	scenarios, err := costing.EvaluateScenarios(recipe.CostPerServing, recipe.Servings, margins)
	if err != nil {
		return nil, err
	}
	for i := range scenarios {
		scenarios[i].SuggestedPrice = round2(scenarios[i].SuggestedPrice)
		scenarios[i].ProfitPerServing = round2(scenarios[i].ProfitPerServing)
		scenarios[i].TotalProfit = round2(scenarios[i].TotalProfit)
	}

	return &ScenarioResult{
		RecipeID:       recipe.ID,
		RecipeName:     recipe.Name,
		CostPerServing: round2(recipe.CostPerServing),
		Scenarios:      scenarios,
	}, nil
}

// IngredientUsage reports how much of each ingredient all recipes
// consume, priced at the ingredient's base cost, most expensive first.
func (s *CalculationService) IngredientUsage(ctx context.Context) ([]IngredientUsageRow, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}

	rows := make([]IngredientUsageRow, 0, len(ingredients))
	for _, ing := range ingredients {
		var lines []models.RecipeIngredient
		if err := s.db.WithContext(ctx).Where("ingredient_id = ?", ing.ID).Find(&lines).Error; err != nil {
			return nil, err
		}

		row := IngredientUsageRow{
			IngredientName: ing.Name,
			UnitType:       ing.UnitType,
			UsedInRecipes:  int64(len(lines)),
		}
		cost := costing.IngredientCost{
			TotalPaid: ing.CostPerUnit,
			BaseCost:  ing.BaseCost,
			Quantity:  ing.Quantity,
			UnitType:  ing.UnitType,
		}
		for _, line := range lines {
			row.TotalQuantityUsed += line.QuantityUsed
			lineCost, _ := costing.LineItemCost(cost, line.QuantityUsed, line.UnitType)
			row.TotalCostAcrossRecipe += lineCost
		}
		row.TotalCostAcrossRecipe = round2(row.TotalCostAcrossRecipe)
		rows = append(rows, row)
	}

	// Most expensive first.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCostAcrossRecipe > rows[j].TotalCostAcrossRecipe
	})
	return rows, nil
}

// ProfitabilityAnalysis rolls all recipes up into Sunday-anchored weekly
// summaries.
func (s *CalculationService) ProfitabilityAnalysis(ctx context.Context) ([]reports.WeekSummary, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return reports.AggregateByWeek(recipeRows(recipes)), nil
}

// round2 rounds a monetary figure to cents for a response. Stored
// columns stay unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// recipeRows projects recipe models into report rows.
func recipeRows(recipes []models.Recipe) []reports.RecipeRow {
	rows := make([]reports.RecipeRow, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, reports.RecipeRow{
			ID:                     r.ID,
			Name:                   r.Name,
			Servings:               r.Servings,
			Week:                   r.Week,
			TotalRecipeCost:        r.TotalRecipeCost,
			CostPerServing:         r.CostPerServing,
			SellingPricePerServing: r.SellingPricePerServing,
			DesiredProfitMargin:    r.DesiredProfitMargin,
			CreatedAt:              r.CreatedAt,
		})
	}
	return rows
}
