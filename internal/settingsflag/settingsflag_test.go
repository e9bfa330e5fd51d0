package settingsflag

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

func parse(t *testing.T, args ...string) (eq.Settings, error) {
	t.Helper()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}

	return f.Settings()
}

func TestDefaults(t *testing.T) {
	s, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}

	if s != eq.DefaultSettings() {
		t.Fatalf("settings = %+v", s)
	}
}

func TestFlagsOverride(t *testing.T) {
	s, err := parse(t, "-hp", "80", "-hp-slope", "48", "-bell-gain", "-3", "-bell-q", "2")
	if err != nil {
		t.Fatal(err)
	}

	want := eq.DefaultSettings()
	want.HighPassFreq = 80
	want.HighPassSlope = eq.Slope48
	want.BellGainDB = -3
	want.BellQ = 2

	if s != want {
		t.Fatalf("settings = %+v, want %+v", s, want)
	}
}

func TestPresetThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(path, []byte(`{"lowpass_freq": 8000, "lowpass_slope": 36, "bell_freq": 300}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := parse(t, "-preset", path, "-bell-freq", "600")
	if err != nil {
		t.Fatal(err)
	}

	if s.LowPassFreq != 8000 || s.LowPassSlope != eq.Slope36 || s.BellFreq != 600 {
		t.Fatalf("settings = %+v", s)
	}
}

func TestInvalidFlag(t *testing.T) {
	if _, err := parse(t, "-lp-slope", "18"); err == nil {
		t.Fatal("expected error for 18 dB/oct")
	}

	if _, err := parse(t, "-preset", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing preset")
	}
}
