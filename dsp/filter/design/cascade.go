package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// CutKind selects the response of a Butterworth cut cascade.
type CutKind int

const (
	// CutHighpass removes content below the cutoff.
	CutHighpass CutKind = iota
	// CutLowpass removes content above the cutoff.
	CutLowpass
)

// String returns "highpass" or "lowpass".
func (k CutKind) String() string {
	switch k {
	case CutHighpass:
		return "highpass"
	case CutLowpass:
		return "lowpass"
	default:
		return "unknown"
	}
}

// Cascade is a fixed-capacity list of second-order sections.
type Cascade struct {
	sections [biquad.MaxSections]biquad.Coefficients
	n        int
}

// Len returns the number of sections.
func (c *Cascade) Len() int { return c.n }

// At returns section i.
func (c *Cascade) At(i int) biquad.Coefficients { return c.sections[i] }

// Sections returns the sections as a slice backed by the cascade itself.
func (c *Cascade) Sections() []biquad.Coefficients { return c.sections[:c.n] }

// ButterworthCut designs a Butterworth highpass or lowpass of analog order
// 2*sections, factored into sections second-order stages.
//
// The analog poles are paired into conjugate pairs; pair i has
// Q_i = 1 / (2 sin(pi*(2i+1) / (2N))) and is mapped to the z-plane with the
// bilinear transform pre-warped at freq. The result holds the lowest-Q pair
// first and the highest-Q pair last. Identical inputs give bit-identical
// output.
//
// ButterworthCut does not allocate.
func ButterworthCut(kind CutKind, freq, sampleRate float64, sections int) (Cascade, error) {
	var c Cascade

	if sections < 1 || sections > biquad.MaxSections {
		return c, ErrInvalidOrder
	}

	if kind != CutHighpass && kind != CutLowpass {
		return c, ErrInvalidOrder
	}

	if err := checkRate(freq, sampleRate); err != nil {
		return c, err
	}

	order := 2 * sections
	for i := range sections {
		q := butterworthQ(order, sections-1-i)
		if kind == CutHighpass {
			c.sections[i] = Highpass(freq, q, sampleRate)
		} else {
			c.sections[i] = Lowpass(freq, q, sampleRate)
		}
	}

	c.n = sections

	return c, nil
}

// butterworthQ returns the quality factor of pole pair index for an
// order-N Butterworth filter, index in [0, N/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}
