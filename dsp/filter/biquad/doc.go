// Package biquad provides the second-order IIR runtime used by the equalizer.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. A [Chain] is a fixed-capacity
// cascade of up to [MaxSections] sections: the first n sections are active and
// the remaining ones are bypassed, which is how the highpass and lowpass slots
// switch between 12, 24, 36 and 48 dB/oct without reallocating.
//
// Coefficient design (Butterworth cut cascades, RBJ peaking) lives in
// dsp/filter/design.
package biquad
