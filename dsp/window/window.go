package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeBartlett
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
)

// String returns the lower-case window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeBartlett:
		return "bartlett"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeKaiser:
		return "kaiser"
	default:
		return "unknown"
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta float64
}

func defaultConfig() config {
	return config{}
}

// WithBeta sets the Kaiser shape parameter. It is ignored by the
// non-parametric window types.
func WithBeta(v float64) Option {
	return func(c *config) {
		c.beta = v
	}
}

var cosineCoeffs = map[Type][]float64{
	TypeHann:     {0.5, -0.5},
	TypeHamming:  {0.54, -0.46},
	TypeBlackman: {0.42, -0.5, 0.08},
}

// Generate returns window coefficients of the given length.
//
// The symmetric form is used: coefficients are evaluated at n/M for
// n = 0..M with M = length-1, so w[n] = w[M-n]. A length of 1 yields
// the single coefficient 1 for every type.
//
// Generation fails with [ErrInvalidParameter] when length < 1, when the
// type is not a known window, or when the type is Kaiser and beta lies
// outside [0, 15].
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validate(t, length, cfg.beta); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out, nil
	}

	m := float64(length - 1)
	for n := range out {
		x := float64(n) / m
		out[n] = eval(t, x, cfg.beta)
	}

	return out, nil
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) error {
	coeffs, err := Generate(t, len(buf), opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// Rectangular returns rectangular window coefficients.
func Rectangular(length int) ([]float64, error) {
	return Generate(TypeRectangular, length)
}

// Bartlett returns triangular (Bartlett) window coefficients.
func Bartlett(length int) ([]float64, error) {
	return Generate(TypeBartlett, length)
}

// Hann returns Hann window coefficients.
func Hann(length int) ([]float64, error) {
	return Generate(TypeHann, length)
}

// Hamming returns Hamming window coefficients.
func Hamming(length int) ([]float64, error) {
	return Generate(TypeHamming, length)
}

// Blackman returns Blackman window coefficients.
func Blackman(length int) ([]float64, error) {
	return Generate(TypeBlackman, length)
}

// Kaiser returns Kaiser window coefficients with shape parameter beta.
func Kaiser(length int, beta float64) ([]float64, error) {
	return Generate(TypeKaiser, length, WithBeta(beta))
}

// eval computes the window value at normalized position x in [0, 1].
func eval(t Type, x, beta float64) float64 {
	switch t {
	case TypeRectangular:
		return 1
	case TypeBartlett:
		if x <= 0.5 {
			return 2 * x
		}

		return 2 - 2*x
	case TypeHann, TypeHamming, TypeBlackman:
		return cosineFromCoeffs(x, cosineCoeffs[t])
	case TypeKaiser:
		return kaiserAt(x, beta)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
