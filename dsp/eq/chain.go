package eq

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// stageCoefficients is one full design pass: the bell section and both cut
// cascades. It lives on the stack.
type stageCoefficients struct {
	bell     biquad.Coefficients
	highPass design.Cascade
	lowPass  design.Cascade
}

// clampFrequency keeps freq at or below 0.49*sampleRate. Positive
// frequencies under MinFrequency pass through unchanged.
func clampFrequency(freq, sampleRate float64) float64 {
	return math.Min(freq, nyquistGuard*sampleRate)
}

// designStages computes every stage from s. It returns bare sentinels and
// does not allocate.
func designStages(s *Settings, sampleRate float64) (stageCoefficients, error) {
	var st stageCoefficients

	if err := s.check(); err != nil {
		return st, err
	}

	var err error

	st.bell, err = design.PeakChecked(clampFrequency(s.BellFreq, sampleRate), s.BellGainDB, s.BellQ, sampleRate)
	if err != nil {
		return st, err
	}

	st.highPass, err = design.ButterworthCut(design.CutHighpass,
		clampFrequency(s.HighPassFreq, sampleRate), sampleRate, s.HighPassSlope.Sections())
	if err != nil {
		return st, err
	}

	st.lowPass, err = design.ButterworthCut(design.CutLowpass,
		clampFrequency(s.LowPassFreq, sampleRate), sampleRate, s.LowPassSlope.Sections())
	if err != nil {
		return st, err
	}

	return st, nil
}

// MonoChain is the per-channel signal path: highpass cascade, bell section,
// lowpass cascade. The zero value passes audio through silently (all
// coefficients zero); configure it before use.
type MonoChain struct {
	highPass biquad.Chain
	bell     biquad.Section
	lowPass  biquad.Chain
}

// NewMonoChain returns a chain configured from s at sampleRate.
func NewMonoChain(s Settings, sampleRate float64) (*MonoChain, error) {
	if err := s.Validate(sampleRate); err != nil {
		return nil, err
	}

	m := &MonoChain{}
	if err := m.Configure(s, sampleRate); err != nil {
		return nil, err
	}

	return m, nil
}

// Configure redesigns every stage from s. Delay-line state is kept, except
// for cut sections that switch from bypassed to enabled. Allocation-free.
func (m *MonoChain) Configure(s Settings, sampleRate float64) error {
	if !positiveFinite(sampleRate) {
		return ErrInvalidSampleRate
	}

	st, err := designStages(&s, sampleRate)
	if err != nil {
		return err
	}

	return m.apply(&st)
}

func (m *MonoChain) apply(st *stageCoefficients) error {
	if err := m.highPass.Configure(st.highPass.Sections()); err != nil {
		return err
	}

	m.bell.SetCoefficients(st.bell)

	return m.lowPass.Configure(st.lowPass.Sections())
}

// ProcessSample runs x through highpass, bell and lowpass in that order.
func (m *MonoChain) ProcessSample(x float64) float64 {
	x = m.highPass.ProcessSample(x)
	x = m.bell.ProcessSample(x)

	return m.lowPass.ProcessSample(x)
}

// ProcessBlock filters buf in place. Each stage consumes the whole block
// before the next one runs, which matches per-sample processing exactly.
func (m *MonoChain) ProcessBlock(buf []float64) {
	m.highPass.ProcessBlock(buf)
	m.bell.ProcessBlock(buf)
	m.lowPass.ProcessBlock(buf)
}

// Reset clears the delay lines of every stage.
func (m *MonoChain) Reset() {
	m.highPass.Reset()
	m.bell.Reset()
	m.lowPass.Reset()
}

// HighPass returns the highpass cascade for inspection.
func (m *MonoChain) HighPass() *biquad.Chain { return &m.highPass }

// Bell returns the bell section for inspection.
func (m *MonoChain) Bell() *biquad.Section { return &m.bell }

// LowPass returns the lowpass cascade for inspection.
func (m *MonoChain) LowPass() *biquad.Chain { return &m.lowPass }

// ConfigEqual reports whether m and o hold bit-identical coefficients and
// bypass state. Delay lines are not compared.
func (m *MonoChain) ConfigEqual(o *MonoChain) bool {
	return m.highPass.ConfigEqual(&o.highPass) &&
		m.bell.Coefficients == o.bell.Coefficients &&
		m.lowPass.ConfigEqual(&o.lowPass)
}

// Response returns the complex frequency response of the active stages.
func (m *MonoChain) Response(freqHz, sampleRate float64) complex128 {
	return m.highPass.Response(freqHz, sampleRate) *
		m.bell.Response(freqHz, sampleRate) *
		m.lowPass.Response(freqHz, sampleRate)
}

// MagnitudeDB returns the chain magnitude response in dB.
func (m *MonoChain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(m.Response(freqHz, sampleRate)))
}
