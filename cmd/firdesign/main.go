// Command firdesign designs windowed FIR filters and reports their
// measured properties.
//
// Usage:
//
//	firdesign [flags]
//
// Examples:
//
//	firdesign -type lowpass -window hamming -length 51 -cutoff 0.25
//	firdesign -type bandpass -window kaiser -beta 6 -length 101 -cutoff 0.2 -cutoff2 0.5
//	firdesign -kaiser -delta 0.01 -wp 0.4 -ws 0.6
//	firdesign -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/tassiocarvalho/firdesign/dsp/filter/firdesign"
	"github.com/tassiocarvalho/firdesign/dsp/response"
	"github.com/tassiocarvalho/firdesign/dsp/window"
)

var windowRegistry = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"bartlett":    window.TypeBartlett,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
	"kaiser":      window.TypeKaiser,
}

var filterRegistry = map[string]firdesign.FilterType{
	"lowpass":  firdesign.Lowpass,
	"highpass": firdesign.Highpass,
	"bandpass": firdesign.Bandpass,
	"bandstop": firdesign.Bandstop,
}

func main() {
	filterName := flag.String("type", "lowpass", "filter type: lowpass, highpass, bandpass, bandstop")
	windowName := flag.String("window", "hamming", "window function (use -list to see available)")
	length := flag.Int("length", 51, "filter length in taps")
	cutoff := flag.Float64("cutoff", 0.25, "cutoff frequency as a fraction of pi")
	cutoff2 := flag.Float64("cutoff2", 0, "second cutoff for bandpass/bandstop, as a fraction of pi")
	beta := flag.Float64("beta", math.NaN(), "kaiser window beta parameter")
	samples := flag.Int("samples", 0, "frequency response grid size (0 selects the default)")
	fs := flag.Float64("fs", 0, "sample rate in Hz for frequency reporting (0 keeps fractions of pi)")
	printTaps := flag.Bool("taps", false, "print the designed coefficients")
	list := flag.Bool("list", false, "list available window and filter names")

	kaiserMode := flag.Bool("kaiser", false, "estimate length and beta from a tolerance specification")
	delta := flag.Float64("delta", 0.01, "ripple tolerance for -kaiser, in (0, 1)")
	wp := flag.Float64("wp", 0.4, "passband edge for -kaiser, as a fraction of pi")
	ws := flag.Float64("ws", 0.6, "stopband edge for -kaiser, as a fraction of pi")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firdesign [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs windowed FIR filters and reports their measured properties.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firdesign -type lowpass -window hamming -length 51 -cutoff 0.25\n")
		fmt.Fprintf(os.Stderr, "  firdesign -kaiser -delta 0.01 -wp 0.4 -ws 0.6\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	kind, ok := filterRegistry[strings.ToLower(strings.TrimSpace(*filterName))]
	if !ok {
		fatalf("unknown filter type %q (one of: %s)", *filterName, joinNames(filterNames()))
	}

	winType, ok := windowRegistry[strings.ToLower(strings.TrimSpace(*windowName))]
	if !ok {
		fatalf("unknown window %q (one of: %s)", *windowName, joinNames(windowNames()))
	}

	spec := firdesign.Spec{
		Kind:    kind,
		Length:  *length,
		Cutoff1: *cutoff,
		Cutoff2: *cutoff2,
		Window:  winType,
	}
	if !math.IsNaN(*beta) {
		spec.Beta = *beta
	}

	var estimate *firdesign.KaiserEstimate

	if *kaiserMode {
		est, err := firdesign.EstimateKaiserOrder(*delta, *wp*math.Pi, *ws*math.Pi)
		if err != nil {
			fatalf("%v", err)
		}

		estimate = &est
		spec.Kind = firdesign.Lowpass
		spec.Length = est.Length
		spec.Cutoff1 = est.CutoffFraction()
		spec.Window = window.TypeKaiser
		spec.Beta = est.Beta
	}

	res, err := firdesign.Design(spec)
	if err != nil {
		fatalf("%v", err)
	}

	resp, err := response.Evaluate(res.Taps, *samples, response.WithSampleRate(*fs))
	if err != nil {
		fatalf("%v", err)
	}

	metrics := response.Analyze(resp, spec.Cutoff1, response.WithTaps(res.Taps))

	printReport(spec, estimate, res, metrics, *fs)

	if *printTaps {
		printCoefficients(res.Taps)
	}
}

func printList() {
	fmt.Println("windows:")
	for _, n := range windowNames() {
		fmt.Println("  " + n)
	}

	fmt.Println("filters:")
	for _, n := range filterNames() {
		fmt.Println("  " + n)
	}
}

func windowNames() []string {
	names := make([]string, 0, len(windowRegistry))
	for n := range windowRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func filterNames() []string {
	names := make([]string, 0, len(filterRegistry))
	for n := range filterRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func printReport(spec firdesign.Spec, estimate *firdesign.KaiserEstimate, res firdesign.Result, metrics response.Metrics, fs float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Filter\t%s\n", spec.Kind)
	fmt.Fprintf(tw, "Window\t%s\n", spec.Window)
	fmt.Fprintf(tw, "Length\t%d taps\n", spec.Length)
	fmt.Fprintf(tw, "Cutoff\t%s\n", formatFreq(spec.Cutoff1, fs))

	if spec.Kind == firdesign.Bandpass || spec.Kind == firdesign.Bandstop {
		fmt.Fprintf(tw, "Cutoff 2\t%s\n", formatFreq(spec.Cutoff2, fs))
	}

	if spec.Window == window.TypeKaiser {
		fmt.Fprintf(tw, "Beta\t%.4f\n", spec.Beta)
	}

	if estimate != nil {
		fmt.Fprintf(tw, "Target attenuation\t%.1f dB\n", estimate.Attenuation)
		fmt.Fprintf(tw, "Transition width\t%s\n", formatFreq(estimate.TransitionWidth/math.Pi, fs))
	}

	if info := window.Info(spec.Window); info.HighestSidelobedB != 0 {
		fmt.Fprintf(tw, "Window sidelobe\t%.0f dB\n", info.HighestSidelobedB)
	}

	if a, err := window.Analyze(res.Window); err == nil {
		fmt.Fprintf(tw, "Window ENBW\t%.4f bins\n", a.ENBW)
		fmt.Fprintf(tw, "Window coherent gain\t%.4f\n", a.CoherentGain)
	}

	fmt.Fprintf(tw, "Phase\t%s\n", metrics.PhaseType)
	fmt.Fprintf(tw, "Symmetric\t%v\n", metrics.Symmetric)
	fmt.Fprintf(tw, "Passband edge (-3 dB)\t%s\n", formatFreq(metrics.PassbandEdge, fs))

	if !math.IsNaN(metrics.StopbandEdge) {
		fmt.Fprintf(tw, "Stopband edge (%.0f dB)\t%s\n", metrics.StopbandTarget, formatFreq(metrics.StopbandEdge, fs))
		fmt.Fprintf(tw, "Transition width\t%s\n", formatFreq(metrics.TransitionWidth, fs))
	} else {
		fmt.Fprintf(tw, "Stopband edge\tnot reached\n")
	}

	if !math.IsNaN(metrics.MinStopbandAttenuation) {
		fmt.Fprintf(tw, "Min stopband attenuation\t%.1f dB\n", metrics.MinStopbandAttenuation)
	}

	if err := tw.Flush(); err != nil {
		fatalf("failed to flush output: %v", err)
	}
}

func formatFreq(fraction, fs float64) string {
	if math.IsNaN(fraction) {
		return "undefined"
	}

	if fs > 0 {
		return fmt.Sprintf("%.1f Hz", fraction*fs/2)
	}

	return fmt.Sprintf("%.4f pi", fraction)
}

func printCoefficients(taps []float64) {
	fmt.Println()
	for i, v := range taps {
		fmt.Printf("h[%3d] = %+.12e\n", i, v)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
