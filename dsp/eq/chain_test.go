package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestClampFrequency(t *testing.T) {
	guard := func(sr float64) float64 { return nyquistGuard * sr }

	tests := []struct {
		freq, sr, want float64
	}{
		{1000, 48000, 1000},
		{5, 48000, 5},
		{0.5, 48000, 0.5},
		{30000, 44100, guard(44100)},
		{20000, 44100, 20000},
		{100, 30, guard(30)},
	}

	for _, tt := range tests {
		if got := clampFrequency(tt.freq, tt.sr); got != tt.want {
			t.Fatalf("clampFrequency(%v, %v) = %v, want %v", tt.freq, tt.sr, got, tt.want)
		}
	}
}

func TestMonoChainStageOrderAndCounts(t *testing.T) {
	s := DefaultSettings()
	s.HighPassSlope = Slope36
	s.LowPassSlope = Slope24

	m, err := NewMonoChain(s, 48000)
	if err != nil {
		t.Fatal(err)
	}

	if got := m.HighPass().NumActive(); got != 3 {
		t.Fatalf("highpass active = %d, want 3", got)
	}

	if got := m.LowPass().NumActive(); got != 2 {
		t.Fatalf("lowpass active = %d, want 2", got)
	}

	for i := 3; i < 4; i++ {
		if !m.HighPass().Bypassed(i) {
			t.Fatalf("highpass section %d should be bypassed", i)
		}
	}
}

func TestMonoChainZeroGainIsFlatInPassband(t *testing.T) {
	m, err := NewMonoChain(DefaultSettings(), 48000)
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []float64{200, 750, 1000, 5000} {
		if db := m.MagnitudeDB(f, 48000); math.Abs(db) > 0.05 {
			t.Fatalf("%v Hz: %.4f dB, want ~0", f, db)
		}
	}
}

func TestMonoChainBlockMatchesSample(t *testing.T) {
	s := Settings{
		BellFreq: 1200, BellGainDB: -4, BellQ: 2,
		HighPassFreq: 80, HighPassSlope: Slope48,
		LowPassFreq: 9000, LowPassSlope: Slope24,
	}

	a, err := NewMonoChain(s, 44100)
	if err != nil {
		t.Fatal(err)
	}

	b, _ := NewMonoChain(s, 44100)

	in := testutil.DeterministicNoise(3, 0.8, 1024)

	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = a.ProcessSample(x)
	}

	got := append([]float64(nil), in...)
	b.ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestMonoChainConfigureErrors(t *testing.T) {
	var m MonoChain

	if err := m.Configure(DefaultSettings(), 0); err != ErrInvalidSampleRate {
		t.Fatalf("err = %v, want ErrInvalidSampleRate", err)
	}

	s := DefaultSettings()
	s.LowPassSlope = 9

	if err := m.Configure(s, 48000); err != ErrInvalidSlope {
		t.Fatalf("err = %v, want ErrInvalidSlope", err)
	}

	if _, err := NewMonoChain(s, 48000); err == nil {
		t.Fatal("NewMonoChain accepted an invalid slope")
	}
}

func TestMonoChainReset(t *testing.T) {
	m, _ := NewMonoChain(DefaultSettings(), 48000)

	for range 16 {
		m.ProcessSample(1)
	}

	m.Reset()

	if m.ProcessSample(0) != 0 {
		t.Fatal("Reset should clear every delay line")
	}
}
