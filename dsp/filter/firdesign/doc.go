// Package firdesign designs linear-phase FIR filters with the window
// method.
//
// An ideal brick-wall impulse response, centered at alpha = (N-1)/2, is
// truncated to N taps and multiplied elementwise by a tapering window
// from dsp/window. [Design] runs the whole pipeline for a [Spec];
// [Ideal] exposes the untapered response; [EstimateKaiserOrder]
// translates a tolerance specification into filter length, Kaiser beta
// and cutoff using the closed-form Kaiser formulas.
//
// All functions are pure and allocate their results fresh; concurrent
// use needs no synchronization. This package computes coefficients
// only; applying them to a signal is a separate concern.
package firdesign
