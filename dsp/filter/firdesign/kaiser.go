package firdesign

import (
	"fmt"
	"math"

	"github.com/tassiocarvalho/firdesign/dsp/core"
)

// Default filter length clamp for Kaiser order estimation.
const (
	DefaultMinLength = 11
	DefaultMaxLength = 201
)

// KaiserEstimate is the output of the closed-form Kaiser design rule.
type KaiserEstimate struct {
	// Length is the estimated tap count: ceil of the raw estimate,
	// rounded up to odd and clamped to the configured limits.
	Length int
	// Beta is the Kaiser window shape parameter for the required
	// attenuation.
	Beta float64
	// Attenuation is A = -20*log10(delta) in dB.
	Attenuation float64
	// TransitionWidth is ws - wp in radians.
	TransitionWidth float64
	// Cutoff is the transition-band center (wp+ws)/2 in radians.
	Cutoff float64
}

// CutoffFraction returns the estimated cutoff as a fraction of the
// Nyquist frequency, ready for [Spec].Cutoff1.
func (e KaiserEstimate) CutoffFraction() float64 {
	return e.Cutoff / math.Pi
}

// EstimateOption configures [EstimateKaiserOrder].
type EstimateOption func(*estimateConfig)

type estimateConfig struct {
	minLength int
	maxLength int
}

// WithLengthLimits overrides the clamp applied to the estimated tap
// count. Both bounds should be odd to preserve Type-I designs.
func WithLengthLimits(min, max int) EstimateOption {
	return func(c *estimateConfig) {
		if min >= 1 && max >= min {
			c.minLength = min
			c.maxLength = max
		}
	}
}

// EstimateKaiserOrder translates a tolerance specification into Kaiser
// design parameters.
//
// delta is the ripple bound in (0, 1); wp and ws are the passband and
// stopband edges in radians with 0 < wp < ws < pi. The estimate is
// closed-form: no refinement happens beyond the ceiling, odd-parity and
// clamp adjustments on the length.
func EstimateKaiserOrder(delta, wp, ws float64, opts ...EstimateOption) (KaiserEstimate, error) {
	cfg := estimateConfig{minLength: DefaultMinLength, maxLength: DefaultMaxLength}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if delta <= 0 || delta >= 1 {
		return KaiserEstimate{}, fmt.Errorf("%w: delta must be in (0, 1): %g", ErrInvalidSpecification, delta)
	}

	if wp <= 0 || ws >= math.Pi || wp >= ws {
		return KaiserEstimate{}, fmt.Errorf("%w: edges must satisfy 0 < wp < ws < pi: wp=%g ws=%g", ErrInvalidSpecification, wp, ws)
	}

	attenuation := -20 * math.Log10(delta)
	transition := ws - wp

	length := int(math.Ceil((attenuation - 8) / (2.285 * transition)))
	if length%2 == 0 {
		length++
	}

	length = core.ClampInt(length, cfg.minLength, cfg.maxLength)

	return KaiserEstimate{
		Length:          length,
		Beta:            kaiserBeta(attenuation),
		Attenuation:     attenuation,
		TransitionWidth: transition,
		Cutoff:          (wp + ws) / 2,
	}, nil
}

// kaiserBeta maps a stopband attenuation in dB to the window shape
// parameter (Kaiser's empirical fit).
func kaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > 50:
		return 0.1102 * (attenuation - 8.7)
	case attenuation >= 21:
		return 0.5842*math.Pow(attenuation-21, 0.4) + 0.07886*(attenuation-21)
	default:
		return 0
	}
}
