package eq

import (
	"fmt"
	"math"
)

// Frequency limits of the user-facing parameters, in Hz.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
)

// nyquistGuard keeps designed frequencies strictly below Nyquist.
const nyquistGuard = 0.49

// Slope is the steepness of a cut filter. Each step adds one second-order
// Butterworth section, i.e. 12 dB/oct.
type Slope int

const (
	Slope12 Slope = iota
	Slope24
	Slope36
	Slope48
)

// NumSlopes is the number of selectable slopes.
const NumSlopes = 4

var slopeNames = [NumSlopes]string{"12dB/oct", "24dB/oct", "36dB/oct", "48dB/oct"}

// Valid reports whether s is one of Slope12..Slope48.
func (s Slope) Valid() bool {
	return s >= Slope12 && s <= Slope48
}

// Sections returns the number of second-order sections, 1 to 4.
func (s Slope) Sections() int {
	return int(s) + 1
}

// DBPerOctave returns the asymptotic attenuation rate.
func (s Slope) DBPerOctave() int {
	return 12 * s.Sections()
}

func (s Slope) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slope(%d)", int(s))
	}

	return slopeNames[s]
}

// SlopeFromDBPerOctave maps 12, 24, 36 or 48 to the matching Slope.
func SlopeFromDBPerOctave(db int) (Slope, error) {
	if db <= 0 || db%12 != 0 || db > 12*NumSlopes {
		return 0, fmt.Errorf("%w: %d dB/oct", ErrInvalidSlope, db)
	}

	return Slope(db/12 - 1), nil
}

// Settings is a snapshot of every equalizer parameter taken once per block.
// It is a plain value; the engine never retains a reference to caller memory.
type Settings struct {
	BellFreq      float64 // Hz
	BellGainDB    float64
	BellQ         float64
	HighPassFreq  float64 // Hz
	LowPassFreq   float64 // Hz
	HighPassSlope Slope
	LowPassSlope  Slope
}

// DefaultSettings returns the parameter defaults: a flat response with the
// cut filters at the edges of the audible band.
func DefaultSettings() Settings {
	return Settings{
		BellFreq:      750,
		BellGainDB:    0,
		BellQ:         1,
		HighPassFreq:  MinFrequency,
		LowPassFreq:   MaxFrequency,
		HighPassSlope: Slope12,
		LowPassSlope:  Slope12,
	}
}

// Validate reports the first constraint s violates for the given sample rate.
// Frequencies above 0.49*sampleRate are accepted; the engine clamps them.
func (s Settings) Validate(sampleRate float64) error {
	if !positiveFinite(sampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	if !positiveFinite(s.HighPassFreq) {
		return fmt.Errorf("%w: highpass frequency %f", ErrInvalidSettings, s.HighPassFreq)
	}

	if !positiveFinite(s.LowPassFreq) {
		return fmt.Errorf("%w: lowpass frequency %f", ErrInvalidSettings, s.LowPassFreq)
	}

	if !positiveFinite(s.BellFreq) {
		return fmt.Errorf("%w: bell frequency %f", ErrInvalidSettings, s.BellFreq)
	}

	if !positiveFinite(s.BellQ) {
		return fmt.Errorf("%w: bell Q %f", ErrInvalidSettings, s.BellQ)
	}

	if math.IsNaN(s.BellGainDB) || math.IsInf(s.BellGainDB, 0) {
		return fmt.Errorf("%w: bell gain %f", ErrInvalidSettings, s.BellGainDB)
	}

	if !s.HighPassSlope.Valid() {
		return fmt.Errorf("%w: highpass %v", ErrInvalidSlope, s.HighPassSlope)
	}

	if !s.LowPassSlope.Valid() {
		return fmt.Errorf("%w: lowpass %v", ErrInvalidSlope, s.LowPassSlope)
	}

	return nil
}

// check is the allocation-free form of Validate used on the audio path.
func (s *Settings) check() error {
	if !positiveFinite(s.HighPassFreq) || !positiveFinite(s.LowPassFreq) ||
		!positiveFinite(s.BellFreq) || !positiveFinite(s.BellQ) ||
		math.IsNaN(s.BellGainDB) || math.IsInf(s.BellGainDB, 0) {
		return ErrInvalidSettings
	}

	if !s.HighPassSlope.Valid() || !s.LowPassSlope.Valid() {
		return ErrInvalidSlope
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
