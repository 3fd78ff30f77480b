package yield

import "github.com/cognicore/yield/pkg/yield/units"

// defaultEngine is built once at process start so a malformed compiled-in
// table fails before the first call rather than during one.
var defaultEngine = mustDefault()

func mustDefault() *Engine {
	e, err := NewDefault()
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the process-wide engine over the compiled-in tables.
func Default() *Engine { return defaultEngine }

// ComputeBaseYield runs the default engine's cascade.
func ComputeBaseYield(item, prep string) Match {
	return defaultEngine.ComputeBaseYield(item, prep)
}

// EstimateHeuristicYield runs only the default engine's heuristic stage.
func EstimateHeuristicYield(item, prep string) Match {
	return defaultEngine.EstimateHeuristicYield(item, prep)
}

// ComputeYieldPercent is units.ComputeYieldPercent.
func ComputeYieldPercent(inputQty float64, inputUnit string, outputQty float64, outputUnit string) (float64, bool) {
	return units.ComputeYieldPercent(inputQty, inputUnit, outputQty, outputUnit)
}

// AreCompatibleUnits is units.AreCompatibleUnits.
func AreCompatibleUnits(a, b string) bool {
	return units.AreCompatibleUnits(a, b)
}

// ConvertToBaseUnit is units.ConvertToBaseUnit.
func ConvertToBaseUnit(qty float64, unit string) (units.Base, bool) {
	return units.ConvertToBaseUnit(qty, unit)
}
