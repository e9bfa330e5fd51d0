// Package stream runs the equalizer inside a gopxl/beep streaming pipeline.
//
// The [Streamer] pulls audio from a source streamer, takes one parameter
// snapshot per Stream call, and filters the samples in place. It is the
// per-block "snapshot, update, process" loop of a plugin host, driven by
// beep's speaker or any other consumer.
package stream

import (
	"errors"
	"fmt"

	"github.com/gopxl/beep"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/eq/param"
)

var (
	// ErrNilSource is returned by New when no source streamer is given.
	ErrNilSource = errors.New("stream: nil source")
	// ErrNilStore is returned by New when no parameter store is given.
	ErrNilStore = errors.New("stream: nil parameter store")
)

// Streamer is a beep.Streamer that equalizes its source.
type Streamer struct {
	src      beep.Streamer
	store    *param.Store
	engine   *eq.Engine
	maxBlock int

	left, right []float32
	err         error
}

// New wraps src. The engine is prepared for sampleRate with blocks of up to
// maxBlock frames; longer Stream requests are processed in several blocks
// with the same settings.
func New(src beep.Streamer, sampleRate beep.SampleRate, store *param.Store, maxBlock int) (*Streamer, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	if store == nil {
		return nil, ErrNilStore
	}

	engine := eq.NewEngine()
	if err := engine.Prepare(float64(sampleRate), maxBlock, store.Snapshot()); err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	return &Streamer{
		src:      src,
		store:    store,
		engine:   engine,
		maxBlock: maxBlock,
		left:     make([]float32, maxBlock),
		right:    make([]float32, maxBlock),
	}, nil
}

// Stream fills samples from the source and equalizes them in place.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}

	n, ok = s.src.Stream(samples)

	if err := s.engine.Update(s.store.Snapshot()); err != nil {
		s.err = fmt.Errorf("stream: update: %w", err)
		return 0, false
	}

	for off := 0; off < n; off += s.maxBlock {
		end := min(off+s.maxBlock, n)
		if err := s.process(samples[off:end]); err != nil {
			s.err = fmt.Errorf("stream: process: %w", err)
			return 0, false
		}
	}

	return n, ok
}

func (s *Streamer) process(frames [][2]float64) error {
	left := s.left[:len(frames)]
	right := s.right[:len(frames)]

	for i, f := range frames {
		left[i] = float32(f[0])
		right[i] = float32(f[1])
	}

	if err := s.engine.ProcessBlock(left, right); err != nil {
		return err
	}

	for i := range frames {
		frames[i][0] = float64(left[i])
		frames[i][1] = float64(right[i])
	}

	return nil
}

// Err returns the first processing error, or the source's error.
func (s *Streamer) Err() error {
	if s.err != nil {
		return s.err
	}

	return s.src.Err()
}

// Engine returns the underlying engine, for response display.
func (s *Streamer) Engine() *eq.Engine {
	return s.engine
}

var _ beep.Streamer = (*Streamer)(nil)
