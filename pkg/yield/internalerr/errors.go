package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the yield packages. Per-call "no answer"
// outcomes are never errors; these cover configuration and operator input.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Unit failures on operator-entered records. Both wrap ErrInvalidInput.
	ErrUnknownUnit       = fmt.Errorf("%w: unrecognized unit", ErrInvalidInput)
	ErrIncompatibleUnits = fmt.Errorf("%w: incompatible units", ErrInvalidInput)
)
