package firdesign

import (
	"errors"
	"math"
	"testing"
)

func TestIdealLowpassSymmetry(t *testing.T) {
	for _, n := range []int{11, 51, 101, 201} {
		h, err := Ideal(Lowpass, n, 0.3, 0)
		if err != nil {
			t.Fatalf("Ideal lowpass n=%d: %v", n, err)
		}

		for i := range h {
			if math.Abs(h[i]-h[n-1-i]) > 1e-9 {
				t.Fatalf("n=%d asymmetric at %d: %v != %v", n, i, h[i], h[n-1-i])
			}
		}
	}
}

func TestIdealLowpassCenterLimit(t *testing.T) {
	cutoffs := []float64{0.1, 0.25, 0.5, 0.75, 0.9}

	for _, wc := range cutoffs {
		h, err := Ideal(Lowpass, 51, wc, 0)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(h[25]-wc) > 1e-9 {
			t.Fatalf("wc=%v: center tap %v, want %v", wc, h[25], wc)
		}
	}
}

func TestHighpassComplementsLowpass(t *testing.T) {
	const n = 51
	const center = (n - 1) / 2

	lp, err := Ideal(Lowpass, n, 0.35, 0)
	if err != nil {
		t.Fatal(err)
	}

	hp, err := Ideal(Highpass, n, 0.35, 0)
	if err != nil {
		t.Fatal(err)
	}

	// The sum must be the unit impulse at the center.
	for i := range lp {
		sum := lp[i] + hp[i]

		want := 0.0
		if i == center {
			want = 1.0
		}

		if math.Abs(sum-want) > 1e-9 {
			t.Fatalf("index %d: lp+hp=%v, want %v", i, sum, want)
		}
	}
}

func TestBandstopComplementsBandpass(t *testing.T) {
	const n = 71
	const center = (n - 1) / 2

	bp, err := Ideal(Bandpass, n, 0.2, 0.6)
	if err != nil {
		t.Fatal(err)
	}

	bs, err := Ideal(Bandstop, n, 0.2, 0.6)
	if err != nil {
		t.Fatal(err)
	}

	for i := range bp {
		sum := bp[i] + bs[i]

		want := 0.0
		if i == center {
			want = 1.0
		}

		if math.Abs(sum-want) > 1e-9 {
			t.Fatalf("index %d: bp+bs=%v, want %v", i, sum, want)
		}
	}
}

func TestBandpassCenterLimit(t *testing.T) {
	h, err := Ideal(Bandpass, 51, 0.2, 0.6)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(h[25]-0.4) > 1e-9 {
		t.Fatalf("center tap %v, want 0.4", h[25])
	}
}

func TestIdealEvenLength(t *testing.T) {
	// Even lengths have a half-integer center; no sample hits the
	// singular point, so the closed-form limit is never taken.
	h, err := Ideal(Lowpass, 50, 0.3, 0)
	if err != nil {
		t.Fatal(err)
	}

	for i := range h {
		if math.IsNaN(h[i]) || math.IsInf(h[i], 0) {
			t.Fatalf("invalid tap at %d: %v", i, h[i])
		}

		if math.Abs(h[i]-h[len(h)-1-i]) > 1e-9 {
			t.Fatalf("asymmetric at %d", i)
		}
	}
}

func TestIdealValidation(t *testing.T) {
	tests := []struct {
		name string
		kind FilterType
		n    int
		wc1  float64
		wc2  float64
		want error
	}{
		{name: "zero length", kind: Lowpass, n: 0, wc1: 0.3, want: ErrInvalidParameter},
		{name: "unknown kind", kind: FilterType(9), n: 11, wc1: 0.3, want: ErrInvalidParameter},
		{name: "cutoff low", kind: Lowpass, n: 11, wc1: 0, want: ErrInvalidSpecification},
		{name: "cutoff high", kind: Lowpass, n: 11, wc1: 1, want: ErrInvalidSpecification},
		{name: "band order", kind: Bandpass, n: 11, wc1: 0.6, wc2: 0.2, want: ErrInvalidSpecification},
		{name: "band equal", kind: Bandstop, n: 11, wc1: 0.4, wc2: 0.4, want: ErrInvalidSpecification},
		{name: "band cutoff2 range", kind: Bandpass, n: 11, wc1: 0.4, wc2: 1.2, want: ErrInvalidSpecification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ideal(tt.kind, tt.n, tt.wc1, tt.wc2)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestIdealSingleTap(t *testing.T) {
	h, err := Ideal(Lowpass, 1, 0.3, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(h) != 1 || math.Abs(h[0]-0.3) > 1e-12 {
		t.Fatalf("h=%v, want [0.3]", h)
	}
}
