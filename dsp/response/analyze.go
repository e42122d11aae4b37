package response

import (
	"math"

	"github.com/tassiocarvalho/firdesign/dsp/filter/firdesign"
)

// Default analyzer thresholds; all overridable through options.
const (
	defaultPassbandLevel    = -3.0
	defaultStopbandPrimary  = -40.0
	defaultStopbandFallback = -30.0
	defaultEdgeGuard        = 0.05
	defaultAttenuationGuard = 0.1

	// Beyond these nominal cutoffs the stopband region collapses into
	// the grid edge and the corresponding metric is skipped.
	maxCutoffForEdge        = 0.8
	maxCutoffForAttenuation = 0.9
)

// Metrics summarizes a magnitude response against a nominal cutoff.
// Edges and widths are fractions of pi; undefined values are NaN.
type Metrics struct {
	// PassbandEdge is the first crossing of the passband level.
	PassbandEdge float64
	// StopbandEdge is the first crossing of the stopband target beyond
	// the guarded cutoff.
	StopbandEdge float64
	// TransitionWidth is |StopbandEdge - PassbandEdge|.
	TransitionWidth float64
	// StopbandTarget is the dB level the stopband edge was measured
	// against, after any fallback.
	StopbandTarget float64
	// MinStopbandAttenuation is the worst-case attenuation in dB over
	// the guarded stopband region.
	MinStopbandAttenuation float64
	// Symmetric reports coefficient symmetry when taps were supplied.
	Symmetric bool
	// PhaseType classifies the taps when they were supplied.
	PhaseType firdesign.PhaseType
}

// AnalyzeOption configures [Analyze].
type AnalyzeOption func(*analyzeConfig)

type analyzeConfig struct {
	passbandLevel    float64
	stopbandPrimary  float64
	stopbandFallback float64
	edgeGuard        float64
	attenuationGuard float64
	taps             []float64
}

// WithPassbandLevel sets the dB level defining the passband edge.
func WithPassbandLevel(db float64) AnalyzeOption {
	return func(c *analyzeConfig) { c.passbandLevel = db }
}

// WithStopbandTargets sets the primary stopband level and the fallback
// tried when the primary is never reached.
func WithStopbandTargets(primary, fallback float64) AnalyzeOption {
	return func(c *analyzeConfig) {
		c.stopbandPrimary = primary
		c.stopbandFallback = fallback
	}
}

// WithGuardMargins sets how far beyond the nominal cutoff, in fractions
// of pi, the stopband edge search and the attenuation measurement
// start. Negative values are ignored.
func WithGuardMargins(edge, attenuation float64) AnalyzeOption {
	return func(c *analyzeConfig) {
		if edge >= 0 {
			c.edgeGuard = edge
		}

		if attenuation >= 0 {
			c.attenuationGuard = attenuation
		}
	}
}

// WithTaps supplies the tap sequence so the metrics carry its symmetry
// flag and linear-phase classification.
func WithTaps(h []float64) AnalyzeOption {
	return func(c *analyzeConfig) { c.taps = h }
}

// Analyze derives passband and stopband metrics from a sampled
// response. nominalCutoff is the design cutoff as a fraction of pi.
// Metrics that cannot be measured on the given grid come back as NaN;
// a response too short to analyze yields all-NaN metrics.
func Analyze(resp Response, nominalCutoff float64, opts ...AnalyzeOption) Metrics {
	cfg := analyzeConfig{
		passbandLevel:    defaultPassbandLevel,
		stopbandPrimary:  defaultStopbandPrimary,
		stopbandFallback: defaultStopbandFallback,
		edgeGuard:        defaultEdgeGuard,
		attenuationGuard: defaultAttenuationGuard,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	nan := math.NaN()
	m := Metrics{
		PassbandEdge:           nan,
		StopbandEdge:           nan,
		TransitionWidth:        nan,
		StopbandTarget:         nan,
		MinStopbandAttenuation: nan,
	}

	if cfg.taps != nil {
		m.Symmetric = firdesign.Symmetric(cfg.taps, 0)
		m.PhaseType = firdesign.Classify(cfg.taps)
	}

	if len(resp.Omega) < 2 || len(resp.H) != len(resp.Omega) {
		return m
	}

	magDB := resp.MagnitudeDB()

	if w, ok := FindLevelCrossing(resp.Omega, magDB, cfg.passbandLevel); ok {
		m.PassbandEdge = w / math.Pi
	}

	if nominalCutoff < maxCutoffForEdge {
		start := regionStart(resp.Omega, (nominalCutoff+cfg.edgeGuard)*math.Pi)

		for _, target := range []float64{cfg.stopbandPrimary, cfg.stopbandFallback} {
			w, ok := FindLevelCrossing(resp.Omega[start:], magDB[start:], target)
			if ok {
				m.StopbandEdge = w / math.Pi
				m.StopbandTarget = target

				break
			}
		}
	}

	if !math.IsNaN(m.PassbandEdge) && !math.IsNaN(m.StopbandEdge) {
		m.TransitionWidth = math.Abs(m.StopbandEdge - m.PassbandEdge)
	}

	if nominalCutoff < maxCutoffForAttenuation {
		start := regionStart(resp.Omega, (nominalCutoff+cfg.attenuationGuard)*math.Pi)
		if start < len(magDB) {
			m.MinStopbandAttenuation = -maxOf(magDB[start:])
		} else {
			m.MinStopbandAttenuation = -minOf(magDB)
		}
	} else {
		m.MinStopbandAttenuation = -minOf(magDB)
	}

	return m
}

// FindLevelCrossing locates the first point where magDB crosses
// targetDB, linearly interpolating between the bracketing grid points.
// The boolean is false when the curve never crosses the target.
func FindLevelCrossing(omega, magDB []float64, targetDB float64) (float64, bool) {
	if len(omega) == 0 || len(omega) != len(magDB) {
		return 0, false
	}

	prev := magDB[0] - targetDB
	if prev == 0 {
		return omega[0], true
	}

	for i := 1; i < len(magDB); i++ {
		cur := magDB[i] - targetDB
		if cur == 0 {
			return omega[i], true
		}

		if (prev > 0) != (cur > 0) {
			frac := prev / (prev - cur)
			return omega[i-1] + frac*(omega[i]-omega[i-1]), true
		}

		prev = cur
	}

	return 0, false
}

// regionStart returns the first index with omega[i] >= w.
func regionStart(omega []float64, w float64) int {
	for i, v := range omega {
		if v >= w {
			return i
		}
	}

	return len(omega)
}

func maxOf(v []float64) float64 {
	out := v[0]
	for _, x := range v[1:] {
		if x > out {
			out = x
		}
	}

	return out
}

func minOf(v []float64) float64 {
	out := v[0]
	for _, x := range v[1:] {
		if x < out {
			out = x
		}
	}

	return out
}
