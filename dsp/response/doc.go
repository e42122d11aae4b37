// Package response evaluates the frequency response of FIR tap
// sequences and derives filter quality metrics from it.
//
// [Evaluate] samples H(e^jw) on an even grid over [0, pi], switching to
// an FFT when the grid lines up with power-of-two bins. [Analyze] then
// reads passband and stopband edges, transition width, and minimum
// stopband attenuation off the magnitude curve.
package response
