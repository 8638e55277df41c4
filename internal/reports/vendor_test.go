package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tenDaysAgo := now.AddDate(0, 0, -10)
	fortyDaysAgo := now.AddDate(0, 0, -40)

	assert.Equal(t, PriceStatusCurrent, PriceStatus(&tenDaysAgo, now))
	assert.Equal(t, PriceStatusOutdated, PriceStatus(&fortyDaysAgo, now))
	assert.Equal(t, PriceStatusOutdated, PriceStatus(nil, now))
}

func TestVendorComparisonCheapestFirst(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tenDaysAgo := now.AddDate(0, 0, -10)
	fortyDaysAgo := now.AddDate(0, 0, -40)

	rows := []IngredientPrice{
		{IngredientName: "Eggs", VendorName: "Vendor A", CostPerUnit: 3.00, LastPriceCheck: &tenDaysAgo},
		{IngredientName: "Eggs", VendorName: "Vendor B", CostPerUnit: 2.50, LastPriceCheck: &fortyDaysAgo},
		{IngredientName: "Flour", VendorName: "Vendor A", CostPerUnit: 12.00, LastPriceCheck: &tenDaysAgo},
	}

	comparison := VendorComparison(rows, now)
	assert.Len(t, comparison, 2)

	eggs := comparison["Eggs"]
	assert.Len(t, eggs, 2)
	assert.Equal(t, "Vendor B", eggs[0].VendorName)
	assert.InDelta(t, 2.50, eggs[0].CostPerUnit, 1e-9)
	assert.Equal(t, PriceStatusOutdated, eggs[0].PriceStatus)
	assert.Equal(t, "Vendor A", eggs[1].VendorName)
	assert.Equal(t, PriceStatusCurrent, eggs[1].PriceStatus)

	assert.Len(t, comparison["Flour"], 1)
}

func TestVendorComparisonEmpty(t *testing.T) {
	assert.Empty(t, VendorComparison(nil, time.Now()))
}
