package generic

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
)

func TestProcessBlock_HandTraced(t *testing.T) {
	c := registry.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	buf := []float64{1, 0, 0, 0}

	d0, d1 := processBlock(c, 0, 0, buf)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d: got %.15f, want %.15f", i, buf[i], want[i])
		}
	}

	if math.Abs(d0-(-0.0044)) > 1e-12 || math.Abs(d1-(-0.00192)) > 1e-12 {
		t.Fatalf("state mismatch: got (%g,%g)", d0, d1)
	}
}

func TestProcessBlock_Registered(t *testing.T) {
	for _, e := range registry.Global.ListEntries() {
		if e.Name == "generic" {
			return
		}
	}

	t.Fatal("generic kernel not registered")
}
