package biquad

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func fourSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
		{B0: 0.3, B1: 0.3, B2: 0.3, A1: -0.1, A2: 0.02},
		{B0: 0.5, B1: -0.2, B2: 0.1, A1: 0.3, A2: 0.05},
	}
}

func TestChain_ZeroValuePassesThrough(t *testing.T) {
	var c Chain
	for _, x := range []float64{1, -0.5, 0.25} {
		if y := c.ProcessSample(x); y != x {
			t.Fatalf("zero chain altered %v -> %v", x, y)
		}
	}

	if c.NumActive() != 0 || c.Order() != 0 {
		t.Fatalf("zero chain active=%d order=%d", c.NumActive(), c.Order())
	}
}

func TestChain_Configure_EnablesExactlyN(t *testing.T) {
	coeffs := fourSectionCoeffs()

	for n := 1; n <= MaxSections; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var c Chain
			if err := c.Configure(coeffs[:n]); err != nil {
				t.Fatalf("Configure: %v", err)
			}

			if c.NumActive() != n {
				t.Fatalf("NumActive=%d, want %d", c.NumActive(), n)
			}

			enabled, bypassed := 0, 0
			for i := range MaxSections {
				if c.Bypassed(i) {
					bypassed++
					continue
				}

				enabled++
				if c.Section(i).Coefficients != coeffs[i] {
					t.Fatalf("section %d got %+v, want %+v", i, c.Section(i).Coefficients, coeffs[i])
				}
			}

			if enabled != n || bypassed != MaxSections-n {
				t.Fatalf("enabled=%d bypassed=%d for n=%d", enabled, bypassed, n)
			}
		})
	}
}

func TestChain_Configure_Errors(t *testing.T) {
	var c Chain
	if err := c.Configure(nil); !errors.Is(err, ErrNoSections) {
		t.Fatalf("nil coeffs: got %v, want ErrNoSections", err)
	}

	five := append(fourSectionCoeffs(), Identity())
	if err := c.Configure(five); !errors.Is(err, ErrTooManySections) {
		t.Fatalf("5 coeffs: got %v, want ErrTooManySections", err)
	}

	if c.NumActive() != 0 {
		t.Fatalf("failed Configure changed active count to %d", c.NumActive())
	}
}

func TestChain_Configure_BypassedKeepsCoefficients(t *testing.T) {
	coeffs := fourSectionCoeffs()

	var c Chain
	if err := c.Configure(coeffs); err != nil {
		t.Fatal(err)
	}

	if err := c.Configure(coeffs[:1]); err != nil {
		t.Fatal(err)
	}

	for i := 1; i < MaxSections; i++ {
		if !c.Bypassed(i) {
			t.Fatalf("section %d should be bypassed", i)
		}

		if c.Section(i).Coefficients != coeffs[i] {
			t.Fatalf("bypassed section %d coefficients were modified", i)
		}
	}
}

func TestChain_ProcessSample_MatchesManualCascade(t *testing.T) {
	coeffs := fourSectionCoeffs()

	for n := 1; n <= MaxSections; n++ {
		chain, err := NewChain(coeffs[:n])
		if err != nil {
			t.Fatal(err)
		}

		refs := make([]*Section, n)
		for i := range refs {
			refs[i] = NewSection(coeffs[i])
		}

		for i, x := range []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8} {
			ref := x
			for _, s := range refs {
				ref = s.ProcessSample(ref)
			}

			if got := chain.ProcessSample(x); !almostEqual(got, ref, eps) {
				t.Fatalf("n=%d sample %d: chain=%.15f, ref=%.15f", n, i, got, ref)
			}
		}
	}
}

func TestChain_ProcessBlock_MatchesSample(t *testing.T) {
	input := testutil.DeterministicSine(997, 48000, 0.8, 1024)
	for i, x := range testutil.DeterministicNoise(7, 0.1, len(input)) {
		input[i] += x
	}

	c1, _ := NewChain(fourSectionCoeffs()[:3])
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = c1.ProcessSample(x)
	}

	c2, _ := NewChain(fourSectionCoeffs()[:3])
	block := append([]float64(nil), input...)
	c2.ProcessBlock(block)

	testutil.RequireSliceNearlyEqual(t, block, ref, eps)
}

func TestChain_Configure_IdempotentKeepsState(t *testing.T) {
	coeffs := fourSectionCoeffs()[:2]

	a, _ := NewChain(coeffs)
	b, _ := NewChain(coeffs)

	input := []float64{1, 0.5, -0.3, 0.7, 0, -1}
	for _, x := range input {
		a.ProcessSample(x)
		b.ProcessSample(x)
	}

	if err := b.Configure(coeffs); err != nil {
		t.Fatal(err)
	}

	if err := b.Configure(coeffs); err != nil {
		t.Fatal(err)
	}

	for i, x := range []float64{0.2, 0.8, -0.6, 0} {
		ya := a.ProcessSample(x)
		yb := b.ProcessSample(x)
		if ya != yb {
			t.Fatalf("sample %d: reconfigured chain %.15f differs from untouched %.15f", i, yb, ya)
		}
	}
}

func TestChain_ReenabledSectionStartsFromZero(t *testing.T) {
	coeffs := fourSectionCoeffs()

	c, _ := NewChain(coeffs)
	for _, x := range []float64{1, -1, 0.5, 0.25} {
		c.ProcessSample(x)
	}

	if err := c.Configure(coeffs[:1]); err != nil {
		t.Fatal(err)
	}

	keep := c.Section(0).State()

	if err := c.Configure(coeffs); err != nil {
		t.Fatal(err)
	}

	if c.Section(0).State() != keep {
		t.Fatal("active section lost its state")
	}

	for i := 1; i < MaxSections; i++ {
		if st := c.Section(i).State(); st != [2]float64{0, 0} {
			t.Fatalf("re-enabled section %d kept stale state %v", i, st)
		}
	}
}

func TestChain_ConfigEqual(t *testing.T) {
	coeffs := fourSectionCoeffs()

	a, _ := NewChain(coeffs[:2])
	b, _ := NewChain(coeffs[:2])
	a.ProcessSample(1)

	if !a.ConfigEqual(b) {
		t.Fatal("identical configuration reported unequal")
	}

	_ = b.Configure(coeffs[:3])
	if a.ConfigEqual(b) {
		t.Fatal("different active counts reported equal")
	}
}

func TestChain_Reset(t *testing.T) {
	c, _ := NewChain(fourSectionCoeffs())
	c.ProcessSample(1)
	c.ProcessSample(0.5)

	c.Reset()

	for i, st := range c.State() {
		if st != [2]float64{0, 0} {
			t.Errorf("section %d state not zero after reset: %v", i, st)
		}
	}
}

func TestChain_State_SaveRestore(t *testing.T) {
	c, _ := NewChain(fourSectionCoeffs()[:2])
	c.ProcessSample(1)
	c.ProcessSample(0.5)
	saved := c.State()

	y3 := c.ProcessSample(-0.3)

	c.SetState(saved)

	if y := c.ProcessSample(-0.3); !almostEqual(y, y3, eps) {
		t.Errorf("got %v after restore, want %v", y, y3)
	}
}

func TestChain_Configure_NoAllocs(t *testing.T) {
	coeffs := fourSectionCoeffs()
	var c Chain
	n := 0

	allocs := testing.AllocsPerRun(200, func() {
		n = n%MaxSections + 1
		_ = c.Configure(coeffs[:n])
		c.ProcessSample(0.5)
	})
	if allocs != 0 {
		t.Fatalf("Configure allocated %.1f times per run", allocs)
	}
}
