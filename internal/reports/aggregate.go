package reports

import (
	"sort"
	"time"
)

// RecipeRow is the slice of a recipe the weekly rollup needs.
type RecipeRow struct {
	ID                     uint       `json:"id"`
	Name                   string     `json:"name"`
	Servings               int        `json:"servings"`
	Week                   *time.Time `json:"week,omitempty"`
	TotalRecipeCost        float64    `json:"total_recipe_cost"`
	CostPerServing         float64    `json:"cost_per_serving"`
	SellingPricePerServing float64    `json:"selling_price_per_serving"`
	DesiredProfitMargin    float64    `json:"desired_profit_margin"`
	CreatedAt              time.Time  `json:"created_at"`
}

// WeekSummary is the rollup for one calendar week (Sunday start).
type WeekSummary struct {
	Week            string      `json:"week"`
	Recipes         []RecipeRow `json:"recipes"`
	RecipesCreated  int         `json:"recipes_created"`
	TotalCost       float64     `json:"total_cost"`
	TotalRevenue    float64     `json:"total_revenue"`
	TotalProfit     float64     `json:"total_profit"`
	AvgProfitMargin float64     `json:"avg_profit_margin"`
}

// AggregateByWeek groups recipes by the Sunday their week falls in and
// totals cost, revenue, and profit per group. Recipes without a week
// land in the Unscheduled bucket, which always sorts after the dated
// weeks; dated weeks come newest first and recipes keep id order inside
// a group. Revenue falls back to zero for recipes with no selling
// price.
func AggregateByWeek(rows []RecipeRow) []WeekSummary {
	groups := make(map[string][]RecipeRow)
	for _, row := range rows {
		key := WeekKey(row.Week)
		groups[key] = append(groups[key], row)
	}

	summaries := make([]WeekSummary, 0, len(groups))
	for key, recipes := range groups {
		sort.Slice(recipes, func(i, j int) bool {
			return recipes[i].ID < recipes[j].ID
		})

		summary := WeekSummary{
			Week:           key,
			Recipes:        recipes,
			RecipesCreated: len(recipes),
		}
		var marginSum float64
		for _, r := range recipes {
			revenue := r.SellingPricePerServing * float64(r.Servings)
			summary.TotalCost += r.TotalRecipeCost
			summary.TotalRevenue += revenue
			summary.TotalProfit += revenue - r.TotalRecipeCost
			marginSum += r.DesiredProfitMargin
		}
		if len(recipes) > 0 {
			summary.AvgProfitMargin = marginSum / float64(len(recipes))
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Week == UnscheduledKey {
			return false
		}
		if summaries[j].Week == UnscheduledKey {
			return true
		}
		return summaries[i].Week > summaries[j].Week
	})

	return summaries
}
