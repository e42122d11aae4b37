package firdesign

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a structural parameter (length, window
// shape) outside its legal range.
var ErrInvalidParameter = errors.New("firdesign: invalid parameter")

// ErrInvalidSpecification reports an inconsistent frequency
// specification (cutoff ordering or range, tolerance out of bounds).
var ErrInvalidSpecification = errors.New("firdesign: invalid specification")

func validateLength(length int) error {
	if length < 1 {
		return fmt.Errorf("%w: length must be >= 1: %d", ErrInvalidParameter, length)
	}

	return nil
}

func validateCutoffs(kind FilterType, wc1, wc2 float64) error {
	if wc1 <= 0 || wc1 >= 1 {
		return fmt.Errorf("%w: cutoff 1 must be in (0, 1): %g", ErrInvalidSpecification, wc1)
	}

	if !kind.hasSecondCutoff() {
		return nil
	}

	if wc2 <= 0 || wc2 >= 1 {
		return fmt.Errorf("%w: cutoff 2 must be in (0, 1): %g", ErrInvalidSpecification, wc2)
	}

	if wc1 >= wc2 {
		return fmt.Errorf("%w: cutoff 1 must be below cutoff 2: %g >= %g", ErrInvalidSpecification, wc1, wc2)
	}

	return nil
}
