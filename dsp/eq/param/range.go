package param

import "math"

// Range maps plain parameter values to the normalized interval [0, 1].
//
// With Skew != 1 the mapping is
//
//	n     = ((plain - Start) / (End - Start)) ^ Skew
//	plain = Start + (End - Start) * n ^ (1/Skew)
//
// so a skew below 1 gives the low end of the range more travel, which suits
// frequency controls. Plain values are snapped to multiples of Step from
// Start when Step > 0.
type Range struct {
	Start, End float64
	Step       float64
	Skew       float64
}

// Clamp limits plain to [Start, End] and snaps it to the step grid.
func (r Range) Clamp(plain float64) float64 {
	if math.IsNaN(plain) {
		return r.Start
	}

	if r.Step > 0 {
		plain = r.Start + math.Round((plain-r.Start)/r.Step)*r.Step
	}

	return math.Max(r.Start, math.Min(r.End, plain))
}

// Normalize converts a plain value to [0, 1].
func (r Range) Normalize(plain float64) float64 {
	span := r.End - r.Start
	if span <= 0 {
		return 0
	}

	n := (r.Clamp(plain) - r.Start) / span
	if r.Skew != 1 && r.Skew > 0 && n > 0 {
		n = math.Pow(n, r.Skew)
	}

	return n
}

// Denormalize converts a normalized value to a snapped plain value.
func (r Range) Denormalize(n float64) float64 {
	n = math.Max(0, math.Min(1, n))

	if r.Skew != 1 && r.Skew > 0 && n > 0 {
		n = math.Exp(math.Log(n) / r.Skew)
	}

	return r.Clamp(r.Start + (r.End-r.Start)*n)
}
