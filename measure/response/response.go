// Package response measures the magnitude response of a linear processor by
// feeding it a unit impulse and transforming the result with an FFT.
//
// The measurement cross-checks the analytic response of the equalizer
// stages; both should agree to within the truncation error of the impulse.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Processor filters a mono block in place. eq.MonoChain and biquad.Chain
// implement it.
type Processor interface {
	ProcessBlock(buf []float64)
}

var (
	// ErrInvalidFFTSize is returned for FFT sizes that are not a power of two >= 16.
	ErrInvalidFFTSize = errors.New("response: FFT size must be a power of two >= 16")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
)

// Response is a measured magnitude response on the bins 0..FFTSize/2.
type Response struct {
	SampleRate float64
	FFTSize    int
	Magnitude  []float64 // linear
}

// Measure runs a unit impulse of fftSize samples through p and returns the
// magnitude of its spectrum. p keeps the state left by the impulse; pass a
// freshly reset processor for a clean measurement.
func Measure(p Processor, sampleRate float64, fftSize int) (Response, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Response{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	if fftSize < 16 || fftSize&(fftSize-1) != 0 {
		return Response{}, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	ir := make([]float64, fftSize)
	ir[0] = 1
	p.ProcessBlock(ir)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Response{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := core.EnsureLen(ir, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Response{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Magnitude:  mag,
	}, nil
}

// BinHz returns the frequency spacing of the bins.
func (r Response) BinHz() float64 {
	if r.FFTSize == 0 {
		return 0
	}

	return r.SampleRate / float64(r.FFTSize)
}

// MagnitudeAt returns the linear magnitude at freqHz, interpolated linearly
// between the neighbouring bins. Frequencies outside [0, Nyquist] are clamped.
func (r Response) MagnitudeAt(freqHz float64) float64 {
	if len(r.Magnitude) == 0 {
		return 0
	}

	last := len(r.Magnitude) - 1
	pos := core.Clamp(freqHz/r.BinHz(), 0, float64(last))

	k := int(pos)
	if k >= last {
		return r.Magnitude[last]
	}

	frac := pos - float64(k)

	return r.Magnitude[k]*(1-frac) + r.Magnitude[k+1]*frac
}

// MagnitudeDBAt returns MagnitudeAt in dB.
func (r Response) MagnitudeDBAt(freqHz float64) float64 {
	return core.LinearToDB(r.MagnitudeAt(freqHz))
}

// Peak returns the frequency and dB level of the largest bin.
func (r Response) Peak() (freqHz, db float64) {
	if len(r.Magnitude) == 0 {
		return 0, math.Inf(-1)
	}

	best := 0
	for k, m := range r.Magnitude {
		if m > r.Magnitude[best] {
			best = k
		}
	}

	return float64(best) * r.BinHz(), core.LinearToDB(r.Magnitude[best])
}
