package costing

import "fmt"

// Scenario is the outcome of pricing a recipe at one target margin.
type Scenario struct {
	Margin           float64 `json:"profit_margin"`
	SuggestedPrice   float64 `json:"suggested_price_per_serving"`
	ProfitPerServing float64 `json:"profit_per_serving"`
	TotalProfit      float64 `json:"total_profit"`
}

// SuggestedPrice returns the selling price that yields the desired
// margin: cost / (1 - margin/100). Margins outside (0, 100) are
// rejected; the formula would otherwise return Inf or a negative price.
func SuggestedPrice(costPerServing, desiredMarginPercent float64) (float64, error) {
	if desiredMarginPercent <= 0 || desiredMarginPercent >= 100 {
		return 0, fmt.Errorf("%w: got %g", ErrMarginOutOfRange, desiredMarginPercent)
	}
	return costPerServing / (1 - desiredMarginPercent/100), nil
}

// ProfitPerServing is the suggested price minus the cost.
func ProfitPerServing(suggestedPrice, costPerServing float64) float64 {
	return suggestedPrice - costPerServing
}

// TotalProfitAtMargin scales a per-serving profit to the whole batch.
func TotalProfitAtMargin(profitPerServing float64, servings int) float64 {
	return profitPerServing * float64(servings)
}

// EvaluateScenarios prices a recipe at each requested margin. Scenarios
// come back in input order, duplicates included; the first invalid
// margin aborts the whole evaluation.
func EvaluateScenarios(costPerServing float64, servings int, margins []float64) ([]Scenario, error) {
	scenarios := make([]Scenario, 0, len(margins))
	for _, margin := range margins {
		price, err := SuggestedPrice(costPerServing, margin)
		if err != nil {
			return nil, err
		}
		profit := ProfitPerServing(price, costPerServing)
		scenarios = append(scenarios, Scenario{
			Margin:           margin,
			SuggestedPrice:   price,
			ProfitPerServing: profit,
			TotalProfit:      TotalProfitAtMargin(profit, servings),
		})
	}
	return scenarios, nil
}
