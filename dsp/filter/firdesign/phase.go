package firdesign

import "math"

// symmetryTol is the default tolerance for coefficient symmetry checks.
const symmetryTol = 1e-10

// PhaseType classifies the linear-phase structure of a tap sequence.
type PhaseType int

const (
	// PhaseNone marks taps with neither symmetry nor antisymmetry.
	PhaseNone PhaseType = iota
	// PhaseTypeI is odd length, symmetric taps.
	PhaseTypeI
	// PhaseTypeII is even length, symmetric taps.
	PhaseTypeII
	// PhaseTypeIII is odd length, antisymmetric taps.
	PhaseTypeIII
	// PhaseTypeIV is even length, antisymmetric taps.
	PhaseTypeIV
)

// String returns the conventional Type I-IV label.
func (t PhaseType) String() string {
	switch t {
	case PhaseTypeI:
		return "Type I"
	case PhaseTypeII:
		return "Type II"
	case PhaseTypeIII:
		return "Type III"
	case PhaseTypeIV:
		return "Type IV"
	default:
		return "none"
	}
}

// LinearPhase reports whether the taps have any of the four
// linear-phase structures.
func (t PhaseType) LinearPhase() bool {
	return t != PhaseNone
}

// Symmetric reports whether h[n] == h[len-1-n] for all n within tol.
// A non-positive tol selects the default.
func Symmetric(h []float64, tol float64) bool {
	return mirrors(h, 1, tol)
}

// Antisymmetric reports whether h[n] == -h[len-1-n] for all n within
// tol. A non-positive tol selects the default.
func Antisymmetric(h []float64, tol float64) bool {
	return mirrors(h, -1, tol)
}

// Classify maps a tap sequence to its linear-phase type from its length
// parity and coefficient symmetry, using the default tolerance.
func Classify(h []float64) PhaseType {
	if len(h) == 0 {
		return PhaseNone
	}

	odd := len(h)%2 == 1

	switch {
	case Symmetric(h, symmetryTol):
		if odd {
			return PhaseTypeI
		}

		return PhaseTypeII
	case Antisymmetric(h, symmetryTol):
		if odd {
			return PhaseTypeIII
		}

		return PhaseTypeIV
	default:
		return PhaseNone
	}
}

func mirrors(h []float64, sign, tol float64) bool {
	if len(h) == 0 {
		return false
	}

	if tol <= 0 {
		tol = symmetryTol
	}

	for n := 0; n <= len(h)/2; n++ {
		if math.Abs(h[n]-sign*h[len(h)-1-n]) > tol {
			return false
		}
	}

	return true
}
