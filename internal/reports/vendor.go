package reports

import (
	"sort"
	"time"
)

// PriceStaleAfter is how long a vendor price stays trustworthy without
// a fresh price check.
const PriceStaleAfter = 30 * 24 * time.Hour

const (
	PriceStatusCurrent  = "Current"
	PriceStatusOutdated = "Outdated"
)

// IngredientPrice is one vendor's price for one ingredient.
type IngredientPrice struct {
	IngredientName string
	UnitType       string
	VendorName     string
	CostPerUnit    float64
	LastPriceCheck *time.Time
}

// ComparisonRow is one vendor's entry in a price comparison group.
type ComparisonRow struct {
	VendorName     string     `json:"vendor_name"`
	UnitType       string     `json:"unit_type"`
	CostPerUnit    float64    `json:"cost_per_unit"`
	LastPriceCheck *time.Time `json:"last_price_check,omitempty"`
	PriceStatus    string     `json:"price_status"`
}

// PriceStatus flags a price as Outdated once its last check is more
// than 30 days before now. A price that was never checked is Outdated.
func PriceStatus(lastCheck *time.Time, now time.Time) string {
	if lastCheck == nil || now.Sub(*lastCheck) > PriceStaleAfter {
		return PriceStatusOutdated
	}
	return PriceStatusCurrent
}

// VendorComparison groups vendor prices by ingredient name, cheapest
// first, so the best source for each ingredient leads its group.
func VendorComparison(rows []IngredientPrice, now time.Time) map[string][]ComparisonRow {
	comparison := make(map[string][]ComparisonRow)
	for _, row := range rows {
		comparison[row.IngredientName] = append(comparison[row.IngredientName], ComparisonRow{
			VendorName:     row.VendorName,
			UnitType:       row.UnitType,
			CostPerUnit:    row.CostPerUnit,
			LastPriceCheck: row.LastPriceCheck,
			PriceStatus:    PriceStatus(row.LastPriceCheck, now),
		})
	}
	for name := range comparison {
		rows := comparison[name]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CostPerUnit < rows[j].CostPerUnit
		})
	}
	return comparison
}
