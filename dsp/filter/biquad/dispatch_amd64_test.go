//go:build amd64 && !purego

package biquad

import (
	"testing"

	archregistry "github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-eq/internal/testutil"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestProcessBlockDispatch_AMD64Kernels(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{ForceGeneric: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl: "generic",
		},
		{
			name:     "sse2-only",
			features: cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantImpl: "generic",
		},
		{
			name:     "avx2",
			features: cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl: "avx2",
		},
	}

	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := archregistry.Global.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}

			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}

			ref := NewSection(lowpassLike())
			want := make([]float64, len(input))
			for i, x := range input {
				want[i] = ref.ProcessSample(x)
			}

			c := lowpassLike()
			got := append([]float64(nil), input...)
			entry.ProcessBlock(archregistry.Coefficients{
				B0: c.B0, B1: c.B1, B2: c.B2, A1: c.A1, A2: c.A2,
			}, 0, 0, got)

			diff, err := testutil.MaxAbsDiff(got, want)
			if err != nil {
				t.Fatal(err)
			}

			if diff > eps {
				t.Fatalf("%s kernel deviates from ProcessSample by %g", entry.Name, diff)
			}
		})
	}
}
