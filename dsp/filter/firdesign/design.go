package firdesign

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/tassiocarvalho/firdesign/dsp/window"
)

// Result holds the three coefficient sequences of one windowed design.
// All slices have length Spec.Length and are freshly allocated.
type Result struct {
	// Taps is the final filter: the elementwise product Ideal * Window.
	Taps []float64
	// Window is the tapering window applied to the ideal response.
	Window []float64
	// Ideal is the truncated ideal impulse response before windowing.
	Ideal []float64
}

// DesignOption configures a [Design] call.
type DesignOption func(*designConfig)

type designConfig struct {
	allowEven bool
}

// WithEvenLength permits even tap counts, producing a Type-II design
// instead of the default Type-I. Even-length filters have a
// half-integer group delay and a forced zero at the Nyquist frequency
// for symmetric taps.
func WithEvenLength() DesignOption {
	return func(c *designConfig) {
		c.allowEven = true
	}
}

// Design produces the windowed FIR filter for spec.
//
// Either a complete, consistent coefficient triple is returned, or an
// error and no partial data. The tap count must be odd unless
// [WithEvenLength] is given.
func Design(spec Spec, opts ...DesignOption) (Result, error) {
	cfg := designConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateLength(spec.Length); err != nil {
		return Result{}, err
	}

	if spec.Length%2 == 0 && !cfg.allowEven {
		return Result{}, fmt.Errorf("%w: length must be odd for a Type-I design: %d", ErrInvalidParameter, spec.Length)
	}

	ideal, err := Ideal(spec.Kind, spec.Length, spec.Cutoff1, spec.Cutoff2)
	if err != nil {
		return Result{}, err
	}

	win, err := window.Generate(spec.Window, spec.Length, window.WithBeta(spec.Beta))
	if err != nil {
		return Result{}, err
	}

	taps := make([]float64, spec.Length)
	vecmath.MulBlock(taps, ideal, win)

	return Result{Taps: taps, Window: win, Ideal: ideal}, nil
}
