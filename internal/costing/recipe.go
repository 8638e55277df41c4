package costing

// LineItem is one ingredient line of a recipe: a per-serving quantity in
// the unit the recipe author chose.
type LineItem struct {
	Ingredient   IngredientCost
	QuantityUsed float64
	UnitType     string
}

// PackagingItem is one packaging line: a flat per-unit price times a
// per-serving count.
type PackagingItem struct {
	Price    float64
	Quantity float64
}

// LineItemCost prices a recipe line. The recipe quantity and the
// ingredient's purchase unit are both normalized to ounces so that
// "2 cups of flour" can be costed against flour bought per pound.
// The bool is false when either unit was unrecognized and the figure is
// therefore best-effort.
func LineItemCost(ing IngredientCost, quantityUsed float64, unitUsed string) (float64, bool) {
	qtyInBase, usedOK := ToBaseUnit(quantityUsed, unitUsed)
	unitsPerBase, storageOK := ToBaseUnit(1, ing.UnitType)
	if unitsPerBase == 0 {
		return 0, false
	}
	perBase := CostPerBaseUnit(ing) / unitsPerBase
	return qtyInBase * perBase, usedOK && storageOK
}

// PackagingCost prices a packaging line. Packaging is a discrete count,
// no conversion applies.
func PackagingCost(price, quantity float64) float64 {
	return price * quantity
}

// CostPerServing sums all ingredient and packaging lines. Line
// quantities are per-serving amounts, so the sum is the cost of
// producing one serving; totals are always derived from this figure,
// never the other way around, which keeps zero-serving recipes from
// dividing by zero. The bool is false when any line involved an
// unrecognized unit.
func CostPerServing(lines []LineItem, packaging []PackagingItem) (float64, bool) {
	var total float64
	recognized := true
	for _, line := range lines {
		cost, ok := LineItemCost(line.Ingredient, line.QuantityUsed, line.UnitType)
		total += cost
		recognized = recognized && ok
	}
	for _, p := range packaging {
		total += PackagingCost(p.Price, p.Quantity)
	}
	return total, recognized
}

// TotalRecipeCost scales a per-serving cost to the whole batch.
func TotalRecipeCost(perServingCost float64, servings int) float64 {
	return perServingCost * float64(servings)
}

// ProfitMargin returns the margin percentage for a selling price and
// cost, zero when there is no selling price. Selling below cost yields
// a negative margin; that is reported, not rejected.
func ProfitMargin(sellingPricePerServing, costPerServing float64) float64 {
	if sellingPricePerServing <= 0 {
		return 0
	}
	return (sellingPricePerServing - costPerServing) / sellingPricePerServing * 100
}

// TotalRevenue scales a per-serving selling price to the whole batch.
func TotalRevenue(sellingPricePerServing float64, servings int) float64 {
	return sellingPricePerServing * float64(servings)
}

// TotalProfit is revenue minus cost; negative when selling below cost.
func TotalProfit(totalRevenue, totalRecipeCost float64) float64 {
	return totalRevenue - totalRecipeCost
}
