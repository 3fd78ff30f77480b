package yield

import (
	"strconv"

	"github.com/cognicore/yield/pkg/yield/percent"
)

// Percent is an optional yield percentage. The zero value is absent, which
// is distinct from a present 0%.
type Percent struct {
	Value float64
	Valid bool
}

// Some returns a present percentage.
func Some(v float64) Percent { return Percent{Value: v, Valid: true} }

// None returns an absent percentage.
func None() Percent { return Percent{} }

func (p Percent) String() string {
	if !p.Valid {
		return "absent"
	}
	return strconv.FormatFloat(p.Value, 'f', -1, 64) + "%"
}

// Source tags where an integrated yield came from.
type Source string

const (
	SourceNone     Source = "none"
	SourceBase     Source = "base"
	SourceChef     Source = "chef"
	SourceCombined Source = "combined"
)

// Result is a final yield with its provenance.
type Result struct {
	Percent Percent
	Source  Source
}

// CombineYields composes the estimated prep loss with a measured yield.
// Both are treated as sequential losses, so present values multiply.
func CombineYields(base, chef Percent) Result {
	switch {
	case base.Valid && chef.Valid:
		return Result{Percent: Some(percent.Clamp(base.Value * chef.Value / 100)), Source: SourceCombined}
	case base.Valid:
		return Result{Percent: Some(percent.Clamp(base.Value)), Source: SourceBase}
	case chef.Valid:
		return Result{Percent: Some(percent.Clamp(chef.Value)), Source: SourceChef}
	default:
		return Result{Source: SourceNone}
	}
}
