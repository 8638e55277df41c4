package reports

import (
	"sort"
	"time"
)

// ProfitEstimate is a recipe ranked by (possibly estimated) profit.
// Recipes with no recorded revenue are priced at the configured markup
// multiplier over cost, so unpriced recipes still rank.
type ProfitEstimate struct {
	RecipeRow
	EstimatedRevenue    float64 `json:"estimated_revenue"`
	EstimatedProfit     float64 `json:"estimated_profit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
}

// WeekEstimate is one week of the markup-based weekly analysis, grouped
// by recipe creation date rather than the scheduled week.
type WeekEstimate struct {
	WeekStart        time.Time `json:"week_start"`
	WeekLabel        string    `json:"week_label"`
	RecipesCreated   int       `json:"recipes_created"`
	TotalCost        float64   `json:"total_cost"`
	EstimatedRevenue float64   `json:"estimated_revenue"`
	EstimatedProfit  float64   `json:"estimated_profit"`
	AvgProfitMargin  float64   `json:"avg_profit_margin"`
}

// RecipeMetrics summarizes cost figures across all costed recipes.
type RecipeMetrics struct {
	TotalRecipes          int     `json:"total_recipes"`
	TotalCostAllRecipes   float64 `json:"total_cost_all_recipes"`
	AvgRecipeCost         float64 `json:"avg_recipe_cost"`
	HighestRecipeCost     float64 `json:"highest_recipe_cost"`
	LowestRecipeCost      float64 `json:"lowest_recipe_cost"`
	TotalServings         int     `json:"total_servings_all_recipes"`
	AvgServingsPerRecipe  float64 `json:"avg_servings_per_recipe"`
	AverageProfitMargin   float64 `json:"avg_profit_margin"`
}

// TopByCost returns up to limit recipes ordered by total cost, highest
// first.
func TopByCost(rows []RecipeRow, limit int) []RecipeRow {
	sorted := make([]RecipeRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalRecipeCost > sorted[j].TotalRecipeCost
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// EstimateProfit prices one recipe, substituting markup*cost for
// missing revenue.
func EstimateProfit(row RecipeRow, markup float64) ProfitEstimate {
	revenue := row.SellingPricePerServing * float64(row.Servings)
	if revenue <= 0 {
		revenue = row.TotalRecipeCost * markup
	}
	est := ProfitEstimate{
		RecipeRow:        row,
		EstimatedRevenue: revenue,
		EstimatedProfit:  revenue - row.TotalRecipeCost,
	}
	if revenue > 0 {
		est.ProfitMarginPercent = (revenue - row.TotalRecipeCost) / revenue * 100
	}
	return est
}

// TopByProfit returns up to limit recipes ordered by estimated profit,
// highest first. Uncosted recipes are skipped; a zero-cost recipe has
// nothing to estimate from.
func TopByProfit(rows []RecipeRow, markup float64, limit int) []ProfitEstimate {
	estimates := make([]ProfitEstimate, 0, len(rows))
	for _, row := range rows {
		if row.TotalRecipeCost <= 0 {
			continue
		}
		estimates = append(estimates, EstimateProfit(row, markup))
	}
	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].EstimatedProfit > estimates[j].EstimatedProfit
	})
	if limit > 0 && len(estimates) > limit {
		estimates = estimates[:limit]
	}
	return estimates
}

// EstimateWeekly groups costed recipes by the week they were created
// and totals cost and markup-estimated revenue per week, newest first.
func EstimateWeekly(rows []RecipeRow, markup float64) []WeekEstimate {
	groups := make(map[time.Time][]RecipeRow)
	for _, row := range rows {
		if row.TotalRecipeCost <= 0 {
			continue
		}
		start := WeekStartOf(row.CreatedAt)
		groups[start] = append(groups[start], row)
	}

	estimates := make([]WeekEstimate, 0, len(groups))
	for start, recipes := range groups {
		week := WeekEstimate{
			WeekStart:      start,
			WeekLabel:      start.Format("01/02/2006"),
			RecipesCreated: len(recipes),
		}
		var marginSum float64
		for _, r := range recipes {
			est := EstimateProfit(r, markup)
			week.TotalCost += r.TotalRecipeCost
			week.EstimatedRevenue += est.EstimatedRevenue
			week.EstimatedProfit += est.EstimatedProfit
			marginSum += est.ProfitMarginPercent
		}
		week.AvgProfitMargin = marginSum / float64(len(recipes))
		estimates = append(estimates, week)
	}

	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].WeekStart.After(estimates[j].WeekStart)
	})
	return estimates
}

// Metrics summarizes all costed recipes; uncosted rows are excluded so
// a freshly created empty recipe does not drag the minimum to zero.
func Metrics(rows []RecipeRow, markup float64) RecipeMetrics {
	var m RecipeMetrics
	var marginSum float64
	for _, row := range rows {
		if row.TotalRecipeCost <= 0 {
			continue
		}
		if m.TotalRecipes == 0 || row.TotalRecipeCost > m.HighestRecipeCost {
			m.HighestRecipeCost = row.TotalRecipeCost
		}
		if m.TotalRecipes == 0 || row.TotalRecipeCost < m.LowestRecipeCost {
			m.LowestRecipeCost = row.TotalRecipeCost
		}
		m.TotalRecipes++
		m.TotalCostAllRecipes += row.TotalRecipeCost
		m.TotalServings += row.Servings
		marginSum += EstimateProfit(row, markup).ProfitMarginPercent
	}
	if m.TotalRecipes > 0 {
		m.AvgRecipeCost = m.TotalCostAllRecipes / float64(m.TotalRecipes)
		m.AvgServingsPerRecipe = float64(m.TotalServings) / float64(m.TotalRecipes)
		m.AverageProfitMargin = marginSum / float64(m.TotalRecipes)
	}
	return m
}
