// Package percent holds the yield-percentage range shared by every stage.
package percent

import (
	"errors"
	"fmt"
	"math"
)

// Max is the largest representable yield. Values above 100 are legitimate
// (rice and dried legumes gain weight when cooked).
const Max = 9999

// Clamp forces v into [0, Max]. NaN clamps to 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > Max:
		return Max
	}
	return v
}

// Validate rejects values that static data must never carry: NaN, infinities
// and negatives. Values above Max are accepted and later clamped.
func Validate(v float64) error {
	switch {
	case math.IsNaN(v):
		return errors.New("yield is undefined")
	case math.IsInf(v, 0):
		return fmt.Errorf("yield %v is not finite", v)
	case v < 0:
		return fmt.Errorf("yield %v is negative", v)
	}
	return nil
}
