package firdesign

import (
	"errors"
	"math"
	"testing"
)

func TestEstimateKaiserOrderGoldenCase(t *testing.T) {
	// delta=0.01, wp=0.4pi, ws=0.6pi is the classic textbook example.
	est, err := EstimateKaiserOrder(0.01, 0.4*math.Pi, 0.6*math.Pi)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(est.Attenuation-40) > 1e-9 {
		t.Fatalf("A=%v, want 40", est.Attenuation)
	}

	if math.Abs(est.Beta-3.3953210522614574) > 1e-9 {
		t.Fatalf("beta=%v, want ~3.3953", est.Beta)
	}

	if est.Length != 23 {
		t.Fatalf("length=%d, want 23", est.Length)
	}

	if math.Abs(est.TransitionWidth-0.2*math.Pi) > 1e-12 {
		t.Fatalf("transition=%v, want 0.2pi", est.TransitionWidth)
	}

	if math.Abs(est.CutoffFraction()-0.5) > 1e-12 {
		t.Fatalf("cutoff=%v pi, want 0.5", est.CutoffFraction())
	}
}

func TestEstimateKaiserOrderMonotonic(t *testing.T) {
	wp, ws := 0.3*math.Pi, 0.5*math.Pi

	prev := 0
	for _, delta := range []float64{0.1, 0.05, 0.01, 0.001, 0.0001} {
		est, err := EstimateKaiserOrder(delta, wp, ws, WithLengthLimits(3, 4001))
		if err != nil {
			t.Fatal(err)
		}

		if est.Length < prev {
			t.Fatalf("delta=%v: length %d dropped below %d", delta, est.Length, prev)
		}

		prev = est.Length
	}
}

func TestEstimateKaiserOrderBetaBranches(t *testing.T) {
	wp, ws := 0.3*math.Pi, 0.5*math.Pi

	// A < 21: beta is zero.
	low, err := EstimateKaiserOrder(0.2, wp, ws)
	if err != nil {
		t.Fatal(err)
	}

	if low.Beta != 0 {
		t.Fatalf("A=%v should give beta 0, got %v", low.Attenuation, low.Beta)
	}

	// A > 50: linear branch.
	high, err := EstimateKaiserOrder(0.001, wp, ws)
	if err != nil {
		t.Fatal(err)
	}

	want := 0.1102 * (high.Attenuation - 8.7)
	if math.Abs(high.Beta-want) > 1e-12 {
		t.Fatalf("beta=%v, want %v", high.Beta, want)
	}
}

func TestEstimateKaiserOrderOddAndClamped(t *testing.T) {
	// A wide transition gives a tiny raw estimate; it must clamp to the
	// default minimum of 11.
	est, err := EstimateKaiserOrder(0.1, 0.1*math.Pi, 0.9*math.Pi)
	if err != nil {
		t.Fatal(err)
	}

	if est.Length != DefaultMinLength {
		t.Fatalf("length=%d, want %d", est.Length, DefaultMinLength)
	}

	// A razor-thin transition must clamp to the maximum.
	est, err = EstimateKaiserOrder(0.0001, 0.499*math.Pi, 0.501*math.Pi)
	if err != nil {
		t.Fatal(err)
	}

	if est.Length != DefaultMaxLength {
		t.Fatalf("length=%d, want %d", est.Length, DefaultMaxLength)
	}

	// Without the clamp the estimate stays odd.
	est, err = EstimateKaiserOrder(0.0001, 0.499*math.Pi, 0.501*math.Pi, WithLengthLimits(11, 100001))
	if err != nil {
		t.Fatal(err)
	}

	if est.Length%2 == 0 {
		t.Fatalf("length=%d should be odd", est.Length)
	}
}

func TestEstimateKaiserOrderValidation(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		wp    float64
		ws    float64
	}{
		{name: "delta zero", delta: 0, wp: 0.3 * math.Pi, ws: 0.5 * math.Pi},
		{name: "delta one", delta: 1, wp: 0.3 * math.Pi, ws: 0.5 * math.Pi},
		{name: "wp zero", delta: 0.01, wp: 0, ws: 0.5 * math.Pi},
		{name: "ws at pi", delta: 0.01, wp: 0.3 * math.Pi, ws: math.Pi},
		{name: "reversed edges", delta: 0.01, wp: 0.6 * math.Pi, ws: 0.4 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateKaiserOrder(tt.delta, tt.wp, tt.ws)
			if !errors.Is(err, ErrInvalidSpecification) {
				t.Fatalf("err=%v, want ErrInvalidSpecification", err)
			}
		})
	}
}
