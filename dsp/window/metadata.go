package window

// Metadata holds textbook spectral properties of a window type.
//
// Sidelobe and peak-error levels are the classical tabulated values for
// the symmetric forms. The Kaiser window is parametric; its entries are
// zero and [Analyze] should be used instead.
type Metadata struct {
	// Name is the display name of the window.
	Name string
	// HighestSidelobedB is the tabulated peak sidelobe level relative to DC.
	HighestSidelobedB float64
	// PeakApproximationErrordB is the tabulated peak approximation error
	// of a windowed-sinc filter designed with this window.
	PeakApproximationErrordB float64
	// MainLobeWidthFactor is k in the approximate main-lobe width k*pi/M.
	MainLobeWidthFactor float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular", HighestSidelobedB: -13, PeakApproximationErrordB: -21, MainLobeWidthFactor: 4},
	TypeBartlett:    {Name: "Bartlett", HighestSidelobedB: -25, PeakApproximationErrordB: -25, MainLobeWidthFactor: 8},
	TypeHann:        {Name: "Hann", HighestSidelobedB: -31, PeakApproximationErrordB: -44, MainLobeWidthFactor: 8},
	TypeHamming:     {Name: "Hamming", HighestSidelobedB: -41, PeakApproximationErrordB: -53, MainLobeWidthFactor: 8},
	TypeBlackman:    {Name: "Blackman", HighestSidelobedB: -57, PeakApproximationErrordB: -74, MainLobeWidthFactor: 12},
	TypeKaiser:      {Name: "Kaiser"},
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// MainLobeWidth returns the approximate main-lobe width for a window of
// the given length as a fraction of pi, or 0 for parametric types.
//
// The rectangular window uses 4/length; the fixed tapered windows use
// their tabulated factor over M = length-1.
func (t Type) MainLobeWidth(length int) float64 {
	if length < 2 {
		return 0
	}

	m := Info(t)
	if m.MainLobeWidthFactor == 0 {
		return 0
	}

	if t == TypeRectangular {
		return m.MainLobeWidthFactor / float64(length)
	}

	return m.MainLobeWidthFactor / float64(length-1)
}
