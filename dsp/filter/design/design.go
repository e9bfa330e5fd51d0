package design

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Errors returned by the checked designers. They are never wrapped so the
// designers stay allocation-free.
var (
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive and finite")
	ErrInvalidFrequency  = errors.New("design: frequency must be in (0, sampleRate/2)")
	ErrInvalidQ          = errors.New("design: Q must be positive and finite")
	ErrInvalidGain       = errors.New("design: gain must be finite")
	ErrInvalidOrder      = errors.New("design: section count must be in 1..4")
)

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
// Invalid parameters yield zero coefficients.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2

	return normalizeBiquad(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

// Highpass designs a highpass biquad at freq (Hz) with quality factor q.
// Invalid parameters yield zero coefficients.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 + cw) / 2

	return normalizeBiquad(b0, -(1 + cw), b0, 1+alpha, -2*cw, 1-alpha)
}

// Peak designs an RBJ peaking-EQ (bell) biquad with gain in dB.
//
// With A = 10^(gainDB/40) and alpha = sin(w0)/(2Q):
//
//	b0 = 1 + alpha*A   b1 = -2cos(w0)   b2 = 1 - alpha*A
//	a0 = 1 + alpha/A   a1 = -2cos(w0)   a2 = 1 - alpha/A
//
// At 0 dB the numerator equals the denominator, so the section is an exact
// identity. Invalid parameters yield zero coefficients; use [PeakChecked] to
// get an error instead.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	c, err := PeakChecked(freq, gainDB, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}
	}

	return c
}

// PeakChecked is [Peak] with parameter validation.
func PeakChecked(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	if err := checkRate(freq, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return biquad.Coefficients{}, ErrInvalidQ
	}

	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return biquad.Coefficients{}, ErrInvalidGain
	}

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a := math.Pow(10, gainDB/40)

	return normalizeBiquad(
		1+alpha*a, -2*cw, 1-alpha*a,
		1+alpha/a, -2*cw, 1-alpha/a,
	), nil
}

func checkRate(freq, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return ErrInvalidSampleRate
	}

	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return ErrInvalidFrequency
	}

	return nil
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
