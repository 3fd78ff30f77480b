package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/percent"
)

// Dimension identifies what a unit measures.
type Dimension string

const (
	Mass   Dimension = "mass"
	Volume Dimension = "volume"
	Count  Dimension = "count"
)

// Canonical base units per dimension.
const (
	Grams       = "g"
	Milliliters = "ml"
	Each        = "each"
)

// Quantity is a caller-supplied amount.
type Quantity struct {
	Value float64
	Unit  string
}

// Base is a quantity expressed in its dimension's base unit.
type Base struct {
	Value     float64
	Unit      string
	Dimension Dimension
}

// unitInfo describes one recognized unit spelling.
type unitInfo struct {
	Dimension Dimension
	Factor    float64 // base units per one of this unit
}

var massUnits = map[string]float64{
	"g": 1, "gram": 1, "gramme": 1, "gr": 1,
	"kg": 1000, "kilo": 1000, "kilogram": 1000,
	"mg": 0.001, "milligram": 0.001,
	"lb": 453.59237, "pound": 453.59237,
	"oz": 28.349523125, "ounce": 28.349523125,
}

var volumeUnits = map[string]float64{
	"ml": 1, "milliliter": 1, "millilitre": 1, "cc": 1,
	"cl": 10, "centiliter": 10, "centilitre": 10,
	"dl": 100, "deciliter": 100, "decilitre": 100,
	"l": 1000, "liter": 1000, "litre": 1000,
	"tsp": 4.92892159375, "teaspoon": 4.92892159375,
	"tbsp": 14.78676478125, "tablespoon": 14.78676478125,
	"floz": 29.5735295625, "fluid ounce": 29.5735295625, "fl oz": 29.5735295625,
	"cup": 236.5882365,
	"pint": 473.176473, "pt": 473.176473,
	"quart": 946.352946, "qt": 946.352946,
	"gallon": 3785.411784, "gal": 3785.411784,
}

var countUnits = map[string]struct{}{
	"each": {}, "ea": {}, "piece": {}, "pc": {}, "pcs": {}, "count": {}, "ct": {},
	"unit": {}, "item": {}, "whole": {},
}

var table = buildTable()

func buildTable() map[string]unitInfo {
	t := make(map[string]unitInfo, len(massUnits)+len(volumeUnits)+len(countUnits))
	for u, f := range massUnits {
		t[u] = unitInfo{Dimension: Mass, Factor: f}
	}
	for u, f := range volumeUnits {
		t[u] = unitInfo{Dimension: Volume, Factor: f}
	}
	for u := range countUnits {
		t[u] = unitInfo{Dimension: Count, Factor: 1}
	}
	return t
}

func baseUnit(d Dimension) string {
	switch d {
	case Mass:
		return Grams
	case Volume:
		return Milliliters
	default:
		return Each
	}
}

// lookup resolves a unit spelling: case, periods, hyphens and a plural "s"
// are ignored, so "Fl. Oz", "fl-oz" and "cups" all resolve.
func lookup(unit string) (unitInfo, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.ReplaceAll(u, ".", "")
	u = strings.ReplaceAll(u, "-", " ")
	u = strings.ReplaceAll(u, "_", " ")
	u = strings.Join(strings.Fields(u), " ")
	if u == "" {
		return unitInfo{}, false
	}

	if info, ok := table[u]; ok {
		return info, true
	}
	if info, ok := table[strings.ReplaceAll(u, " ", "")]; ok {
		return info, true
	}
	if strings.HasSuffix(u, "s") && len(u) > 1 {
		if info, ok := table[strings.TrimSuffix(u, "s")]; ok {
			return info, true
		}
	}
	if strings.HasSuffix(u, "es") && len(u) > 2 {
		if info, ok := table[strings.TrimSuffix(u, "es")]; ok {
			return info, true
		}
	}
	return unitInfo{}, false
}

// Recognized reports whether unit is a known culinary unit.
func Recognized(unit string) bool {
	_, ok := lookup(unit)
	return ok
}

// DimensionOf returns the dimension a unit measures.
func DimensionOf(unit string) (Dimension, bool) {
	info, ok := lookup(unit)
	return info.Dimension, ok
}

// ConvertToBaseUnit expresses qty of unit in grams, milliliters or each.
// ok is false for unrecognized units, for negative or non-finite quantities,
// and when the base value overflows; it never panics.
func ConvertToBaseUnit(qty float64, unit string) (Base, bool) {
	if math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 {
		return Base{}, false
	}
	info, ok := lookup(unit)
	if !ok {
		return Base{}, false
	}
	v := qty * info.Factor
	if math.IsInf(v, 0) {
		return Base{}, false
	}
	return Base{
		Value:     v,
		Unit:      baseUnit(info.Dimension),
		Dimension: info.Dimension,
	}, true
}

// Convert is ConvertToBaseUnit for a Quantity.
func Convert(q Quantity) (Base, bool) {
	return ConvertToBaseUnit(q.Value, q.Unit)
}

// AreCompatibleUnits is true iff both units are recognized and share a dimension.
func AreCompatibleUnits(a, b string) bool {
	da, okA := DimensionOf(a)
	db, okB := DimensionOf(b)
	return okA && okB && da == db
}

// ComputeYieldPercent returns output/input × 100, clamped to the yield range.
// ok is false when either unit is unrecognized, the dimensions differ, the
// input is zero or negative, or the output is negative.
func ComputeYieldPercent(inputQty float64, inputUnit string, outputQty float64, outputUnit string) (float64, bool) {
	if !(inputQty > 0) {
		return 0, false
	}
	in, ok := ConvertToBaseUnit(inputQty, inputUnit)
	if !ok {
		return 0, false
	}
	out, ok := ConvertToBaseUnit(outputQty, outputUnit)
	if !ok {
		return 0, false
	}
	if in.Dimension != out.Dimension || in.Value == 0 {
		return 0, false
	}
	return percent.Clamp(out.Value / in.Value * 100), true
}

// ComputeYield is ComputeYieldPercent for a pair of Quantities.
func ComputeYield(input, output Quantity) (float64, bool) {
	return ComputeYieldPercent(input.Value, input.Unit, output.Value, output.Unit)
}

// CheckYieldInputs reports why an input/output pair cannot produce a yield.
// It returns nil exactly when ComputeYield would succeed.
func CheckYieldInputs(input, output Quantity) error {
	if !Recognized(input.Unit) {
		return fmt.Errorf("input unit %q: %w", input.Unit, internalerr.ErrUnknownUnit)
	}
	if !Recognized(output.Unit) {
		return fmt.Errorf("output unit %q: %w", output.Unit, internalerr.ErrUnknownUnit)
	}
	if !AreCompatibleUnits(input.Unit, output.Unit) {
		return fmt.Errorf("%s vs %s: %w", input.Unit, output.Unit, internalerr.ErrIncompatibleUnits)
	}
	if !(input.Value > 0) || math.IsInf(input.Value, 0) {
		return fmt.Errorf("%w: input quantity must be positive and finite", internalerr.ErrInvalidInput)
	}
	if !(output.Value >= 0) || math.IsInf(output.Value, 0) {
		return fmt.Errorf("%w: output quantity must be non-negative and finite", internalerr.ErrInvalidInput)
	}
	if _, ok := Convert(input); !ok {
		return fmt.Errorf("%w: input quantity %g %s is out of range", internalerr.ErrInvalidInput, input.Value, input.Unit)
	}
	if _, ok := Convert(output); !ok {
		return fmt.Errorf("%w: output quantity %g %s is out of range", internalerr.ErrInvalidInput, output.Value, output.Unit)
	}
	return nil
}
