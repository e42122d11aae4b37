package firdesign

import (
	"fmt"
	"math"
)

// centerTol selects the closed-form limit near the center tap instead
// of dividing by a vanishing denominator.
const centerTol = 1e-10

// Ideal returns the length-sample impulse response of the ideal
// (unwindowed) filter, centered at alpha = (length-1)/2.
//
// Cutoffs are fractions of the Nyquist frequency in (0, 1); wc2 is only
// consulted for bandpass and bandstop kinds. For odd lengths the result
// is symmetric, h[n] = h[length-1-n], up to floating-point error.
func Ideal(kind FilterType, length int, wc1, wc2 float64) ([]float64, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: unknown filter type %d", ErrInvalidParameter, int(kind))
	}

	if err := validateLength(length); err != nil {
		return nil, err
	}

	if err := validateCutoffs(kind, wc1, wc2); err != nil {
		return nil, err
	}

	w1 := wc1 * math.Pi
	w2 := wc2 * math.Pi

	alpha := float64(length-1) / 2
	h := make([]float64, length)

	for n := range h {
		d := float64(n) - alpha

		switch kind {
		case Lowpass:
			h[n] = lowpassAt(d, w1)
		case Highpass:
			if math.Abs(d) < centerTol {
				h[n] = 1 - w1/math.Pi
			} else {
				h[n] = sinc(d) - lowpassAt(d, w1)
			}
		case Bandpass:
			if math.Abs(d) < centerTol {
				h[n] = (w2 - w1) / math.Pi
			} else {
				h[n] = lowpassAt(d, w2) - lowpassAt(d, w1)
			}
		case Bandstop:
			if math.Abs(d) < centerTol {
				h[n] = 1 - (w2-w1)/math.Pi
			} else {
				h[n] = sinc(d) - (lowpassAt(d, w2) - lowpassAt(d, w1))
			}
		}
	}

	return h, nil
}

// lowpassAt evaluates the ideal lowpass response sin(w*d)/(pi*d) at
// offset d from the center, with the w/pi limit at d = 0.
func lowpassAt(d, w float64) float64 {
	if math.Abs(d) < centerTol {
		return w / math.Pi
	}

	return math.Sin(w*d) / (math.Pi * d)
}

// sinc evaluates sin(pi*x)/(pi*x) with sinc(0) = 1.
func sinc(x float64) float64 {
	if math.Abs(x) < centerTol {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
