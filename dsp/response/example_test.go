package response_test

import (
	"fmt"

	"github.com/tassiocarvalho/firdesign/dsp/response"
)

func ExampleEvaluate() {
	// Two-tap moving average: |H(w)| = cos(w/2).
	resp, err := response.Evaluate([]float64{0.5, 0.5}, 5)
	if err != nil {
		fmt.Println("evaluate failed:", err)
		return
	}

	for _, m := range resp.Magnitude() {
		fmt.Printf("%.3f\n", m)
	}
	// Output:
	// 1.000
	// 0.924
	// 0.707
	// 0.383
	// 0.000
}
