package core

import (
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []ProcessorOption
		want ProcessorConfig
	}{
		{
			name: "defaults",
			want: ProcessorConfig{SampleRate: DefaultSampleRate, BlockSize: DefaultBlockSize},
		},
		{
			name: "both set",
			opts: []ProcessorOption{WithSampleRate(96000), WithBlockSize(2048)},
			want: ProcessorConfig{SampleRate: 96000, BlockSize: 2048},
		},
		{
			name: "last wins",
			opts: []ProcessorOption{WithSampleRate(44100), WithSampleRate(88200)},
			want: ProcessorConfig{SampleRate: 88200, BlockSize: DefaultBlockSize},
		},
		{
			name: "unusable values ignored",
			opts: []ProcessorOption{
				WithSampleRate(0), WithSampleRate(-1), WithSampleRate(math.NaN()),
				WithSampleRate(math.Inf(1)), WithBlockSize(-1), WithBlockSize(0), nil,
			},
			want: DefaultProcessorConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyProcessorOptions(tt.opts...); got != tt.want {
				t.Fatalf("cfg = %#v, want %#v", got, tt.want)
			}
		})
	}
}
