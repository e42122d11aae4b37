package firdesign

import (
	"github.com/tassiocarvalho/firdesign/dsp/window"
)

// FilterType identifies the frequency-selective shape of a filter.
type FilterType int

const (
	Lowpass FilterType = iota
	Highpass
	Bandpass
	Bandstop
)

// String returns the lower-case filter type name.
func (t FilterType) String() string {
	switch t {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return "unknown"
	}
}

func (t FilterType) hasSecondCutoff() bool {
	return t == Bandpass || t == Bandstop
}

func (t FilterType) valid() bool {
	switch t {
	case Lowpass, Highpass, Bandpass, Bandstop:
		return true
	default:
		return false
	}
}

// Spec is one complete filter design request. It is read-only for the
// duration of a [Design] call; the same Spec always yields the same
// coefficients.
//
// Cutoffs are fractions of the Nyquist frequency in (0, 1). Cutoff2 is
// only consulted for bandpass and bandstop designs. Beta is only
// consulted when Window is window.TypeKaiser.
type Spec struct {
	Kind    FilterType
	Length  int
	Cutoff1 float64
	Cutoff2 float64
	Window  window.Type
	Beta    float64
}
