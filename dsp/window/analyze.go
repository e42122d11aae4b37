package window

import "math"

// Analysis holds numerically measured spectral properties of a window.
//
// Unlike [Info], these values are computed from the actual coefficient
// sequence, so they are valid for any length and any Kaiser beta.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the half-power main-lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the peak sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstNullBins is the first spectral null position in bins.
	FirstNullBins float64
	// ScallopLossdB is the worst-case level loss midway between bins.
	ScallopLossdB float64
}

// Analyze measures spectral properties of the given window coefficients
// by direct DFT evaluation on a dense frequency grid.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	dcRef := dftMagSq(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	sum := 0.0
	sumSq := 0.0

	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	firstNull := findFirstNull(coeffs)

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:      findHalfPowerWidth(coeffs, dcRef),
		HighestSidelobedB: findHighestSidelobe(coeffs, dcRef, firstNull),
		FirstNullBins:     firstNull * float64(n),
		ScallopLossdB:     10 * math.Log10(dftMagSq(coeffs, 0.5/float64(n))/dcRef),
	}, nil
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalized frequency in [0, 0.5].
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}

// findHalfPowerWidth locates the -3 dB point by bisection on the squared
// magnitude and returns the two-sided width in bins.
func findHalfPowerWidth(coeffs []float64, dcRef float64) float64 {
	invRef := 1 / dcRef

	lo, hi := 0.0, 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if dftMagSq(coeffs, mid)*invRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 2 * lo * float64(len(coeffs))
}

// findFirstNull scans outward from DC for the first local minimum of the
// squared magnitude and refines it with a golden-section search. The
// result is a normalized frequency in [0, 0.5].
func findFirstNull(coeffs []float64) float64 {
	step := 1 / (float64(len(coeffs)) * 8)

	dcVal := dftMagSq(coeffs, 0)
	prev := dcVal
	coarse := step
	// Require descent well below DC before accepting a turn-around, so a
	// wide main-lobe plateau is not mistaken for a null.
	threshold := dcVal * 0.1

	for freq := step; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if prev < threshold && val > prev {
			coarse = freq - step
			break
		}

		prev = val
	}

	a := math.Max(0, coarse-2*step)
	b := math.Min(0.5, coarse+2*step)

	const phi = 0.6180339887498949
	c := b - phi*(b-a)
	d := a + phi*(b-a)

	for range 80 {
		if dftMagSq(coeffs, c) < dftMagSq(coeffs, d) {
			b = d
		} else {
			a = c
		}

		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2
}

// findHighestSidelobe scans from the first null to Nyquist for the peak
// sidelobe and returns its level in dB relative to DC.
func findHighestSidelobe(coeffs []float64, dcRef, firstNull float64) float64 {
	step := 1 / (float64(len(coeffs)) * 8)

	peakVal := 0.0
	peakFreq := firstNull

	for freq := firstNull; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	fine := step / 32
	for freq := math.Max(0, peakFreq-step); freq <= peakFreq+step; freq += fine {
		if val := dftMagSq(coeffs, freq); val > peakVal {
			peakVal = val
		}
	}

	if peakVal <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(peakVal/dcRef)
}
