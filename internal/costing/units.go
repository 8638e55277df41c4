// Package costing holds the cost and pricing arithmetic for ingredients
// and recipes. Everything in here is a pure function over values the
// caller has already fetched; the package knows nothing about the
// database or HTTP layer, so every handler and report that needs a cost
// figure computes it the same way.
package costing

// ounceRatios maps a purchase/recipe unit to its size in ounces. The
// table is fixed; the app does not support user-defined units.
var ounceRatios = map[string]float64{
	"oz":   1,
	"lb":   16,
	"cup":  8,
	"tbsp": 0.5,
	"tsp":  0.167,
	"g":    0.035274,
	"kg":   35.274,
}

// ToBaseUnit converts a quantity in the given unit to ounces. Unknown
// units fall back to a 1:1 ratio rather than failing, so legacy rows
// with free-text units still produce a number; the second return value
// is false on that degraded path so callers can flag the result as
// best-effort.
func ToBaseUnit(quantity float64, unit string) (float64, bool) {
	ratio, ok := ounceRatios[unit]
	if !ok {
		return quantity, false
	}
	return quantity * ratio, true
}

// KnownUnits returns the supported unit identifiers.
func KnownUnits() []string {
	units := make([]string, 0, len(ounceRatios))
	for u := range ounceRatios {
		units = append(units, u)
	}
	return units
}
