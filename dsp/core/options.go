package core

import "math"

// Defaults used when an engine is prepared without host-supplied values.
const (
	DefaultSampleRate = 48000
	DefaultBlockSize  = 512
)

// ProcessorConfig carries the sample rate and maximum block size an engine
// falls back to when the host does not prepare it explicitly.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig. Options that receive unusable
// values leave the config unchanged.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns DefaultSampleRate and DefaultBlockSize.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: DefaultSampleRate, BlockSize: DefaultBlockSize}
}

// WithSampleRate sets the sample rate. Zero, negative and non-finite rates
// are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 1) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the largest block the engine is sized for.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions starts from DefaultProcessorConfig and applies opts
// in order. Nil options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		opt(&cfg)
	}

	return cfg
}
