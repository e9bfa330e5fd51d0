package param

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

// Parameter IDs. They are part of the saved-state format and must not change.
const (
	IDHighPassFreq  = "HighPass Freq"
	IDLowPassFreq   = "LowPass Freq"
	IDBellFreq      = "Bell Freq"
	IDBellGain      = "Bell Gain"
	IDBellQ         = "Bell Q"
	IDHighPassSlope = "HP Slope"
	IDLowPassSlope  = "LP Slope"
)

// ErrUnknownParameter is returned for IDs that are not in the store.
var ErrUnknownParameter = errors.New("param: unknown parameter")

var (
	frequencyRange = Range{Start: eq.MinFrequency, End: eq.MaxFrequency, Step: 1, Skew: 0.25}
	gainRange      = Range{Start: -24, End: 24, Step: 0.5, Skew: 1}
	qRange         = Range{Start: 0.1, End: 10, Step: 0.05, Skew: 1}
)

// Store holds the seven equalizer parameters.
type Store struct {
	highPassFreq  *Parameter
	lowPassFreq   *Parameter
	bellFreq      *Parameter
	bellGain      *Parameter
	bellQ         *Parameter
	highPassSlope *Parameter
	lowPassSlope  *Parameter

	order []*Parameter
	byID  map[string]*Parameter
}

// NewStore returns a store with every parameter at its default.
func NewStore() *Store {
	def := eq.DefaultSettings()

	slopes := make([]string, eq.NumSlopes)
	for i := range slopes {
		slopes[i] = eq.Slope(i).String()
	}

	s := &Store{
		highPassFreq:  newFloat(IDHighPassFreq, "Hz", frequencyRange, def.HighPassFreq, formatFrequency, parseFrequency),
		lowPassFreq:   newFloat(IDLowPassFreq, "Hz", frequencyRange, def.LowPassFreq, formatFrequency, parseFrequency),
		bellFreq:      newFloat(IDBellFreq, "Hz", frequencyRange, def.BellFreq, formatFrequency, parseFrequency),
		bellGain:      newFloat(IDBellGain, "dB", gainRange, def.BellGainDB, formatDecibels, parseDecibels),
		bellQ:         newFloat(IDBellQ, "", qRange, def.BellQ, formatQ, parsePlain),
		highPassSlope: newChoice(IDHighPassSlope, slopes, int(def.HighPassSlope)),
		lowPassSlope:  newChoice(IDLowPassSlope, slopes, int(def.LowPassSlope)),
	}

	s.order = []*Parameter{
		s.highPassFreq, s.lowPassFreq,
		s.bellFreq, s.bellGain, s.bellQ,
		s.highPassSlope, s.lowPassSlope,
	}

	s.byID = make(map[string]*Parameter, len(s.order))
	for _, p := range s.order {
		s.byID[p.ID] = p
	}

	return s
}

// Params returns the parameters in registration order.
func (s *Store) Params() []*Parameter {
	out := make([]*Parameter, len(s.order))
	copy(out, s.order)

	return out
}

// Param looks up a parameter by ID.
func (s *Store) Param(id string) (*Parameter, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}

	return p, nil
}

// Set stores a plain value for the parameter id.
func (s *Store) Set(id string, plain float64) error {
	p, err := s.Param(id)
	if err != nil {
		return err
	}

	p.Set(plain)

	return nil
}

// SetNormalized stores a normalized value for the parameter id.
func (s *Store) SetNormalized(id string, n float64) error {
	p, err := s.Param(id)
	if err != nil {
		return err
	}

	p.SetNormalized(n)

	return nil
}

// Snapshot reads every parameter once and returns the settings for the next
// block. It does not allocate.
func (s *Store) Snapshot() eq.Settings {
	return eq.Settings{
		BellFreq:      s.bellFreq.Get(),
		BellGainDB:    s.bellGain.Get(),
		BellQ:         s.bellQ.Get(),
		HighPassFreq:  s.highPassFreq.Get(),
		LowPassFreq:   s.lowPassFreq.Get(),
		HighPassSlope: eq.Slope(s.highPassSlope.Index()),
		LowPassSlope:  eq.Slope(s.lowPassSlope.Index()),
	}
}

// Apply writes every field of set into the store. Values outside a
// parameter's range are clamped and snapped.
func (s *Store) Apply(set eq.Settings) {
	s.bellFreq.Set(set.BellFreq)
	s.bellGain.Set(set.BellGainDB)
	s.bellQ.Set(set.BellQ)
	s.highPassFreq.Set(set.HighPassFreq)
	s.lowPassFreq.Set(set.LowPassFreq)
	s.highPassSlope.Set(float64(set.HighPassSlope))
	s.lowPassSlope.Set(float64(set.LowPassSlope))
}

// Reset restores every parameter to its default.
func (s *Store) Reset() {
	for _, p := range s.order {
		p.Reset()
	}
}
