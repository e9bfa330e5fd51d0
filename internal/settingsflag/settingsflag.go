// Package settingsflag registers the equalizer settings as command-line flags
// shared by the CLIs. A preset file, when given, is loaded first and
// explicitly set flags override its fields.
package settingsflag

import (
	"flag"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/preset"
)

// Flags holds the registered flag values.
type Flags struct {
	fs *flag.FlagSet

	preset   *string
	hp       *float64
	hpSlope  *int
	lp       *float64
	lpSlope  *int
	bellFreq *float64
	bellGain *float64
	bellQ    *float64
}

// Register adds the settings flags to fs.
func Register(fs *flag.FlagSet) *Flags {
	def := eq.DefaultSettings()

	return &Flags{
		fs:       fs,
		preset:   fs.String("preset", "", "preset JSON file (flags override its fields)"),
		hp:       fs.Float64("hp", def.HighPassFreq, "highpass cutoff in Hz"),
		hpSlope:  fs.Int("hp-slope", def.HighPassSlope.DBPerOctave(), "highpass slope in dB/oct (12, 24, 36, 48)"),
		lp:       fs.Float64("lp", def.LowPassFreq, "lowpass cutoff in Hz"),
		lpSlope:  fs.Int("lp-slope", def.LowPassSlope.DBPerOctave(), "lowpass slope in dB/oct (12, 24, 36, 48)"),
		bellFreq: fs.Float64("bell-freq", def.BellFreq, "bell center frequency in Hz"),
		bellGain: fs.Float64("bell-gain", def.BellGainDB, "bell gain in dB"),
		bellQ:    fs.Float64("bell-q", def.BellQ, "bell quality factor"),
	}
}

// Settings resolves the preset and the explicitly set flags. Call it after
// fs.Parse.
func (f *Flags) Settings() (eq.Settings, error) {
	s := eq.DefaultSettings()

	if *f.preset != "" {
		loaded, err := preset.LoadJSON(*f.preset)
		if err != nil {
			return s, err
		}

		s = loaded
	}

	var (
		override preset.File
		set      bool
	)

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "hp":
			override.HighPassFreq, set = f.hp, true
		case "hp-slope":
			override.HighPassSlope, set = f.hpSlope, true
		case "lp":
			override.LowPassFreq, set = f.lp, true
		case "lp-slope":
			override.LowPassSlope, set = f.lpSlope, true
		case "bell-freq":
			override.BellFreq, set = f.bellFreq, true
		case "bell-gain":
			override.BellGainDB, set = f.bellGain, true
		case "bell-q":
			override.BellQ, set = f.bellQ, true
		}
	})

	if !set {
		return s, nil
	}

	if err := preset.Apply(&s, &override); err != nil {
		return s, fmt.Errorf("flags: %w", err)
	}

	return s, nil
}
