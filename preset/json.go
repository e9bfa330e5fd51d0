package preset

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

// File is the JSON schema for equalizer presets. Missing fields keep the
// value of the settings the file is applied to.
type File struct {
	HighPassFreq  *float64 `json:"highpass_freq,omitempty"`
	HighPassSlope *int     `json:"highpass_slope,omitempty"`
	LowPassFreq   *float64 `json:"lowpass_freq,omitempty"`
	LowPassSlope  *int     `json:"lowpass_slope,omitempty"`
	BellFreq      *float64 `json:"bell_freq,omitempty"`
	BellGainDB    *float64 `json:"bell_gain_db,omitempty"`
	BellQ         *float64 `json:"bell_q,omitempty"`
}

// LoadJSON loads a preset JSON file and applies it on top of the defaults.
func LoadJSON(path string) (eq.Settings, error) {
	s := eq.DefaultSettings()

	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return s, fmt.Errorf("preset %s: %w", path, err)
	}

	if err := Apply(&s, &f); err != nil {
		return s, fmt.Errorf("preset %s: %w", path, err)
	}

	return s, nil
}

// Apply applies a parsed preset file onto existing settings. dst is left
// unchanged when an error is returned.
func Apply(dst *eq.Settings, f *File) error {
	if dst == nil {
		return fmt.Errorf("nil destination settings")
	}

	if f == nil {
		return nil
	}

	s := *dst

	if f.HighPassFreq != nil {
		if err := checkFrequency("highpass_freq", *f.HighPassFreq); err != nil {
			return err
		}

		s.HighPassFreq = *f.HighPassFreq
	}

	if f.LowPassFreq != nil {
		if err := checkFrequency("lowpass_freq", *f.LowPassFreq); err != nil {
			return err
		}

		s.LowPassFreq = *f.LowPassFreq
	}

	if f.BellFreq != nil {
		if err := checkFrequency("bell_freq", *f.BellFreq); err != nil {
			return err
		}

		s.BellFreq = *f.BellFreq
	}

	if f.BellGainDB != nil {
		g := *f.BellGainDB
		if math.IsNaN(g) || g < -24 || g > 24 {
			return fmt.Errorf("bell_gain_db must be in [-24, 24]")
		}

		s.BellGainDB = g
	}

	if f.BellQ != nil {
		q := *f.BellQ
		if math.IsNaN(q) || q < 0.1 || q > 10 {
			return fmt.Errorf("bell_q must be in [0.1, 10]")
		}

		s.BellQ = q
	}

	if f.HighPassSlope != nil {
		slope, err := eq.SlopeFromDBPerOctave(*f.HighPassSlope)
		if err != nil {
			return fmt.Errorf("highpass_slope must be 12, 24, 36 or 48: %w", err)
		}

		s.HighPassSlope = slope
	}

	if f.LowPassSlope != nil {
		slope, err := eq.SlopeFromDBPerOctave(*f.LowPassSlope)
		if err != nil {
			return fmt.Errorf("lowpass_slope must be 12, 24, 36 or 48: %w", err)
		}

		s.LowPassSlope = slope
	}

	*dst = s

	return nil
}

// FromSettings returns a File with every field set.
func FromSettings(s eq.Settings) File {
	hp := s.HighPassSlope.DBPerOctave()
	lp := s.LowPassSlope.DBPerOctave()

	return File{
		HighPassFreq:  &s.HighPassFreq,
		HighPassSlope: &hp,
		LowPassFreq:   &s.LowPassFreq,
		LowPassSlope:  &lp,
		BellFreq:      &s.BellFreq,
		BellGainDB:    &s.BellGainDB,
		BellQ:         &s.BellQ,
	}
}

// Save writes s as an indented preset file. Settings that LoadJSON would
// reject are not written.
func Save(path string, s eq.Settings) error {
	f := FromSettings(s)

	var check eq.Settings
	if err := Apply(&check, &f); err != nil {
		return err
	}

	b, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func checkFrequency(name string, v float64) error {
	if math.IsNaN(v) || v < eq.MinFrequency || v > eq.MaxFrequency {
		return fmt.Errorf("%s must be in [%g, %g] Hz", name, eq.MinFrequency, eq.MaxFrequency)
	}

	return nil
}
