package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	left := testutil.Sine32(440, 48000, 0.5, 4800)
	right := testutil.Sine32(880, 48000, 0.25, 4800)

	if err := writeStereoWAV(path, left, right, 48000); err != nil {
		t.Fatalf("write: %v", err)
	}

	gotL, gotR, sr, err := readStereoWAV(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if sr != 48000 {
		t.Fatalf("sample rate = %d", sr)
	}

	testutil.RequireSliceNearlyEqual(t, gotL, left, 2.0/32768)
	testutil.RequireSliceNearlyEqual(t, gotR, right, 2.0/32768)
}

func TestRenderAppliesBellGain(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "sub", "out.wav")

	const sr = 48000

	tone := testutil.Sine32(1000, sr, 0.25, sr/2)
	if err := writeStereoWAV(in, tone, tone, sr); err != nil {
		t.Fatal(err)
	}

	s := eq.DefaultSettings()
	s.BellFreq = 1000
	s.BellGainDB = 6

	frames, rate, err := render(in, out, s, 256)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if frames != sr/2 || rate != sr {
		t.Fatalf("frames=%d rate=%d", frames, rate)
	}

	left, right, _, err := readStereoWAV(out)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireIdentical(t, left, right)

	gain := core.LinearToDB(testutil.RMS(left, sr/8) / testutil.RMS(tone, sr/8))
	if math.Abs(gain-6) > 0.1 {
		t.Fatalf("rendered gain = %.3f dB, want ~6", gain)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := render(filepath.Join(dir, "missing.wav"), filepath.Join(dir, "o.wav"), eq.DefaultSettings(), 256); err == nil {
		t.Fatal("expected error for missing input")
	}

	in := filepath.Join(dir, "in.wav")
	if err := writeStereoWAV(in, make([]float32, 16), make([]float32, 16), 44100); err != nil {
		t.Fatal(err)
	}

	if _, _, err := render(in, filepath.Join(dir, "o.wav"), eq.DefaultSettings(), 0); err == nil {
		t.Fatal("expected error for zero block size")
	}

	if err := writeStereoWAV(in, make([]float32, 2), make([]float32, 3), 44100); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
