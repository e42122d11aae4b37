package window

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a window parameter outside its legal range.
var ErrInvalidParameter = errors.New("window: invalid parameter")

var errEmptyCoeffs = errors.New("window: coefficients must not be empty")

func validate(t Type, length int, beta float64) error {
	if length < 1 {
		return fmt.Errorf("%w: length must be >= 1: %d", ErrInvalidParameter, length)
	}

	switch t {
	case TypeRectangular, TypeBartlett, TypeHann, TypeHamming, TypeBlackman:
		return nil
	case TypeKaiser:
		if beta < 0 || beta > 15 {
			return fmt.Errorf("%w: kaiser beta must be in [0, 15]: %g", ErrInvalidParameter, beta)
		}

		return nil
	default:
		return fmt.Errorf("%w: unknown window type %d", ErrInvalidParameter, int(t))
	}
}
