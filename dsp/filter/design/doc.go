// Package design computes biquad coefficients for the equalizer stages.
//
// [Peak] implements the RBJ cookbook peaking (bell) filter. [ButterworthCut]
// factors an even-order Butterworth highpass or lowpass into up to four
// cascaded second-order sections and returns them in a fixed-size [Cascade],
// so it can run on the audio path without allocating.
//
// The results are consumed by dsp/filter/biquad for runtime processing.
package design
