package testutil

import (
	"math"
	"math/rand"
)

// Sample is the set of sample types the helpers accept.
type Sample interface {
	~float32 | ~float64
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Sine32 is DeterministicSine rendered as float32, the engine's I/O format.
func Sine32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Noise32 is DeterministicNoise rendered as float32.
func Noise32(seed int64, amplitude float64, length int) []float32 {
	src := DeterministicNoise(seed, amplitude, length)

	out := make([]float32, length)
	for i, v := range src {
		out[i] = float32(v)
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// RMS returns the root-mean-square of x after discarding the first skip
// samples, which lets callers ignore a filter's start-up transient.
func RMS[T Sample](x []T, skip int) float64 {
	if skip >= len(x) {
		return 0
	}

	var sum float64
	for _, v := range x[skip:] {
		f := float64(v)
		sum += f * f
	}

	return math.Sqrt(sum / float64(len(x)-skip))
}
