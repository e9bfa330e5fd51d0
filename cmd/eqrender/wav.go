package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

// readStereoWAV decodes path into separate left and right channels. Mono
// files are duplicated; files with more than two channels use the first two.
func readStereoWAV(path string) (left, right []float32, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, nil, 0, err
	}

	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, nil, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}

	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch

	left = make([]float32, frames)
	right = make([]float32, frames)

	for i := range frames {
		left[i] = float32(buf.Data[i*ch])
		if ch > 1 {
			right[i] = float32(buf.Data[i*ch+1])
		} else {
			right[i] = left[i]
		}
	}

	return left, right, buf.Format.SampleRate, nil
}

// writeStereoWAV writes left/right as interleaved 16-bit PCM.
func writeStereoWAV(path string, left, right []float32, sampleRate int) error {
	if len(left) != len(right) {
		return fmt.Errorf("left/right length mismatch")
	}

	data := make([]float32, 2*len(left))
	for i := range left {
		data[2*i] = left[i]
		data[2*i+1] = right[i]
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 2,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}
