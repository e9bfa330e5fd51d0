package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// NumChannels is the number of channels the engine processes.
const NumChannels = 2

// State is the lifecycle state of an Engine.
type State int

const (
	// StateUninitialized is the state before the first Prepare.
	StateUninitialized State = iota
	// StatePrepared means Prepare succeeded and no block was processed since.
	StatePrepared
	// StateRunning means at least one block was processed since Prepare.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePrepared:
		return "prepared"
	case StateRunning:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine is the stereo equalizer. It owns one MonoChain per channel and keeps
// their coefficients and bypass state identical.
//
// An Engine is not safe for concurrent use. Feed parameter changes through a
// lock-free store (see dsp/eq/param) and call Update from the audio goroutine.
type Engine struct {
	cfg core.ProcessorConfig

	state        State
	sampleRate   float64
	maxBlockSize int
	settings     Settings

	chains  [NumChannels]MonoChain
	scratch [NumChannels][]float64
}

// NewEngine returns an unprepared engine. The options provide the sample rate
// and block size used by PrepareDefault.
func NewEngine(opts ...core.ProcessorOption) *Engine {
	return &Engine{
		cfg:      core.ApplyProcessorOptions(opts...),
		settings: DefaultSettings(),
	}
}

// Prepare resets all delay lines, sizes the scratch buffers for blocks of up
// to maxBlockSize samples and applies s. It may be called again at any time,
// for example when the host sample rate changes.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int, s Settings) error {
	if !positiveFinite(sampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, maxBlockSize)
	}

	if err := s.Validate(sampleRate); err != nil {
		return err
	}

	st, err := designStages(&s, sampleRate)
	if err != nil {
		return fmt.Errorf("eq: prepare: %w", err)
	}

	for ch := range e.chains {
		e.chains[ch] = MonoChain{}
		if err := e.chains[ch].apply(&st); err != nil {
			return fmt.Errorf("eq: prepare: %w", err)
		}

		e.scratch[ch] = core.EnsureLen(e.scratch[ch], maxBlockSize)
	}

	e.sampleRate = sampleRate
	e.maxBlockSize = maxBlockSize
	e.settings = s
	e.state = StatePrepared

	return nil
}

// PrepareDefault is Prepare with the sample rate and block size given to
// NewEngine.
func (e *Engine) PrepareDefault(s Settings) error {
	return e.Prepare(e.cfg.SampleRate, e.cfg.BlockSize, s)
}

// Update redesigns all stages from s once and copies the result into both
// channels. Frequencies above 0.49*sampleRate are clamped to it.
//
// Update runs once per block on the audio goroutine: it never allocates and
// returns bare sentinel errors. On error the previous configuration stays in
// place.
func (e *Engine) Update(s Settings) error {
	if e.state == StateUninitialized {
		return ErrNotPrepared
	}

	st, err := designStages(&s, e.sampleRate)
	if err != nil {
		return err
	}

	for ch := range e.chains {
		if err := e.chains[ch].apply(&st); err != nil {
			return err
		}
	}

	e.settings = s

	return nil
}

// ProcessBlock filters left and right in place. Blocks longer than the
// prepared maximum are processed in chunks. Both errors are reported before
// any sample is touched.
func (e *Engine) ProcessBlock(left, right []float32) error {
	if e.state == StateUninitialized {
		return ErrNotPrepared
	}

	if len(left) != len(right) {
		return ErrLengthMismatch
	}

	e.state = StateRunning

	for off := 0; off < len(left); off += e.maxBlockSize {
		end := min(off+e.maxBlockSize, len(left))
		e.processChunk(0, left[off:end])
		e.processChunk(1, right[off:end])
	}

	return nil
}

func (e *Engine) processChunk(ch int, buf []float32) {
	work := e.scratch[ch][:len(buf)]

	core.Widen(work, buf)
	e.chains[ch].ProcessBlock(work)
	core.Narrow(buf, work)
}

// ProcessChannels is ProcessBlock for a host-style channel slice. Any layout
// other than exactly two channels is rejected with ErrUnsupportedLayout.
func (e *Engine) ProcessChannels(channels [][]float32) error {
	if len(channels) != NumChannels {
		return ErrUnsupportedLayout
	}

	return e.ProcessBlock(channels[0], channels[1])
}

// ProcessSettingsBlock applies s and then processes one block: the per-block
// sequence of a host callback.
func (e *Engine) ProcessSettingsBlock(s Settings, left, right []float32) error {
	if err := e.Update(s); err != nil {
		return err
	}

	return e.ProcessBlock(left, right)
}

// Reset clears the delay lines of both channels without changing the
// configuration or lifecycle state.
func (e *Engine) Reset() {
	for ch := range e.chains {
		e.chains[ch].Reset()
		core.Zero(e.scratch[ch])
	}
}

// Release drops the scratch buffers and returns to StateUninitialized.
func (e *Engine) Release() {
	for ch := range e.scratch {
		e.scratch[ch] = nil
	}

	e.state = StateUninitialized
}

// SupportsLayout reports whether the engine can process in input channels
// into out output channels. Only stereo in, stereo out is supported.
func (e *Engine) SupportsLayout(in, out int) bool {
	return in == NumChannels && out == NumChannels
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Settings returns the settings applied by the last successful Update or Prepare.
func (e *Engine) Settings() Settings { return e.settings }

// SampleRate returns the prepared sample rate, or 0 before Prepare.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MaxBlockSize returns the prepared maximum block size.
func (e *Engine) MaxBlockSize() int { return e.maxBlockSize }

// Chain returns the chain for channel ch (0 = left, 1 = right).
func (e *Engine) Chain(ch int) *MonoChain { return &e.chains[ch] }

// Response returns the complex frequency response shared by both channels.
func (e *Engine) Response(freqHz float64) complex128 {
	return e.chains[0].Response(freqHz, e.sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (e *Engine) MagnitudeDB(freqHz float64) float64 {
	return e.chains[0].MagnitudeDB(freqHz, e.sampleRate)
}
