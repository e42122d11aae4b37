package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultSampleCount is the evaluation grid size used when the caller
// passes a non-positive sample count.
const DefaultSampleCount = 8000

// magnitudeFloor keeps the dB conversion finite at spectral zeros.
const magnitudeFloor = 1e-10

// ErrInvalidParameter is returned for empty tap sequences and
// degenerate grid sizes.
var ErrInvalidParameter = errors.New("response: invalid parameter")

// Response is a sampled frequency response on an even grid over
// [0, pi]. The zero value is empty and safe to query.
type Response struct {
	// Omega holds the grid frequencies in radians per sample.
	Omega []float64
	// H holds the complex response at each grid point.
	H []complex128
	// SampleRate is the rate used by Frequencies, in Hz. Zero means
	// no rate was supplied.
	SampleRate float64
}

// Option configures [Evaluate].
type Option func(*config)

type config struct {
	sampleRate float64
}

// WithSampleRate attaches a sample rate in Hz so the grid can be
// reported in absolute frequencies. Non-positive rates are ignored.
func WithSampleRate(fs float64) Option {
	return func(c *config) {
		if fs > 0 {
			c.sampleRate = fs
		}
	}
}

// Evaluate samples H(e^jw) = sum h[n]*e^(-jwn) at sampleCount evenly
// spaced frequencies covering [0, pi] inclusive. A non-positive
// sampleCount selects [DefaultSampleCount].
//
// When the grid coincides with the bins of a power-of-two FFT the
// transform is computed through algo-fft; otherwise each point is
// evaluated directly. Both paths agree to within floating-point error.
func Evaluate(h []float64, sampleCount int, opts ...Option) (Response, error) {
	if len(h) == 0 {
		return Response{}, fmt.Errorf("%w: empty tap sequence", ErrInvalidParameter)
	}

	if sampleCount <= 0 {
		sampleCount = DefaultSampleCount
	}

	if sampleCount < 2 {
		return Response{}, fmt.Errorf("%w: sample count must be at least 2: %d", ErrInvalidParameter, sampleCount)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	omega := make([]float64, sampleCount)
	step := math.Pi / float64(sampleCount-1)

	for k := range omega {
		omega[k] = float64(k) * step
	}

	omega[sampleCount-1] = math.Pi

	bins := evaluateFFT(h, sampleCount)
	if bins == nil {
		bins = evaluateDirect(h, omega)
	}

	return Response{Omega: omega, H: bins, SampleRate: cfg.sampleRate}, nil
}

// evaluateFFT returns the grid response through a zero-padded FFT, or
// nil when the grid does not line up with power-of-two bins.
func evaluateFFT(h []float64, sampleCount int) []complex128 {
	fftSize := 2 * (sampleCount - 1)
	if fftSize&(fftSize-1) != 0 || fftSize < len(h) {
		return nil
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil
	}

	inData := make([]complex128, fftSize)
	for i, v := range h {
		inData[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil
	}

	return out[:sampleCount:sampleCount]
}

func evaluateDirect(h []float64, omega []float64) []complex128 {
	bins := make([]complex128, len(omega))

	for k, w := range omega {
		rot := cmplx.Exp(complex(0, -w))
		term := complex(1, 0)
		acc := complex(0, 0)

		for _, v := range h {
			acc += complex(v, 0) * term
			term *= rot
		}

		bins[k] = acc
	}

	return bins
}

// Frequencies returns the grid mapped to Hz when a sample rate was
// supplied, and to fractions of the Nyquist frequency otherwise.
func (r Response) Frequencies() []float64 {
	scale := 1 / math.Pi
	if r.SampleRate > 0 {
		scale = r.SampleRate / (2 * math.Pi)
	}

	out := make([]float64, len(r.Omega))
	for i, w := range r.Omega {
		out[i] = w * scale
	}

	return out
}

// Magnitude returns |H| at each grid point.
func (r Response) Magnitude() []float64 {
	if len(r.H) == 0 {
		return nil
	}

	out := make([]float64, len(r.H))
	re, im, buf := getScratch(len(r.H))

	for i, c := range r.H {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)

	return out
}

// MagnitudeDB returns 20*log10(|H| + 1e-10) at each grid point. The
// floor keeps spectral zeros finite at roughly -200 dB.
func (r Response) MagnitudeDB() []float64 {
	out := r.Magnitude()
	for i, m := range out {
		out[i] = 20 * math.Log10(m+magnitudeFloor)
	}

	return out
}

// Phase returns the wrapped phase in (-pi, pi] at each grid point.
func (r Response) Phase() []float64 {
	if len(r.H) == 0 {
		return nil
	}

	out := make([]float64, len(r.H))
	for i, c := range r.H {
		out[i] = cmplx.Phase(c)
	}

	return out
}

// UnwrappedPhase returns the phase with 2*pi discontinuities removed,
// so linear-phase filters produce a straight line.
func (r Response) UnwrappedPhase() []float64 {
	out := r.Phase()
	offset := 0.0

	for i := 1; i < len(out); i++ {
		prev := out[i-1]
		out[i] += offset

		switch d := out[i] - prev; {
		case d > math.Pi:
			offset -= 2 * math.Pi
			out[i] -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
			out[i] += 2 * math.Pi
		}
	}

	return out
}

// GroupDelay returns -dphi/dw in samples, estimated by central
// differences on the unwrapped phase. A linear-phase filter of length
// N yields a flat (N-1)/2 line away from spectral zeros.
func (r Response) GroupDelay() []float64 {
	phase := r.UnwrappedPhase()
	if len(phase) < 2 {
		return nil
	}

	out := make([]float64, len(phase))

	for i := range out {
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}

		if hi >= len(phase) {
			hi = len(phase) - 1
		}

		out[i] = -(phase[hi] - phase[lo]) / (r.Omega[hi] - r.Omega[lo])
	}

	return out
}

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
