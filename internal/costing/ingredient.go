package costing

import "fmt"

// IngredientCost is the slice of an ingredient the cost formulas need.
type IngredientCost struct {
	// TotalPaid is the full purchase amount for all boxes
	// (the ingredient's cost_per_unit column).
	TotalPaid float64
	// BaseCost is the stored per-unit-of-UnitType cost, zero when the
	// row predates box-aware costing.
	BaseCost float64
	// Quantity is the amount contained in one box, in UnitType.
	Quantity float64
	// UnitType is the unit the ingredient is purchased and priced in.
	UnitType string
}

// ComputeBaseCost derives the cost of a single unit of the purchase
// unit from raw purchase data: (totalPaid / boxCount) / quantityPerBox.
// A missing or zero box count is treated as a single-box purchase.
func ComputeBaseCost(totalPaid float64, boxCount int, quantityPerBox float64) (float64, error) {
	if quantityPerBox <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidQuantity, quantityPerBox)
	}
	if boxCount < 1 {
		boxCount = 1
	}
	return totalPaid / float64(boxCount) / quantityPerBox, nil
}

// CostPerBaseUnit returns the stored base cost when present. Rows
// created before base_cost existed fall back to total paid divided by
// the per-box quantity, which assumes a one-box purchase; that matches
// how those rows were costed when they were written.
func CostPerBaseUnit(ing IngredientCost) float64 {
	if ing.BaseCost != 0 {
		return ing.BaseCost
	}
	if ing.Quantity <= 0 {
		return 0
	}
	return ing.TotalPaid / ing.Quantity
}
