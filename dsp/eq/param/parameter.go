package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

// Parameter is a single automatable value.
//
// Get and Set are safe for concurrent use. The descriptive fields are fixed
// at construction and must not be modified afterwards.
type Parameter struct {
	ID      string
	Name    string
	Unit    string
	Range   Range
	Default float64

	// Choices is non-nil for list parameters; the plain value is the index.
	Choices []string

	value atomic.Uint64

	format func(float64) string
	parse  func(string) (float64, error)
}

func newFloat(id, unit string, r Range, def float64, format func(float64) string, parse func(string) (float64, error)) *Parameter {
	p := &Parameter{
		ID:      id,
		Name:    id,
		Unit:    unit,
		Range:   r,
		Default: r.Clamp(def),
		format:  format,
		parse:   parse,
	}
	p.value.Store(math.Float64bits(p.Default))

	return p
}

func newChoice(id string, choices []string, def int) *Parameter {
	p := &Parameter{
		ID:      id,
		Name:    id,
		Range:   Range{Start: 0, End: float64(len(choices) - 1), Step: 1, Skew: 1},
		Default: float64(def),
		Choices: choices,
	}
	p.value.Store(math.Float64bits(p.Default))

	return p
}

// IsChoice reports whether p selects from a list.
func (p *Parameter) IsChoice() bool { return p.Choices != nil }

// Get returns the plain value.
func (p *Parameter) Get() float64 {
	return math.Float64frombits(p.value.Load())
}

// Set stores plain after clamping and snapping it to the range.
func (p *Parameter) Set(plain float64) {
	p.value.Store(math.Float64bits(p.Range.Clamp(plain)))
}

// Index returns the selected list index of a choice parameter.
func (p *Parameter) Index() int {
	return int(p.Get())
}

// Normalized returns the current value mapped to [0, 1].
func (p *Parameter) Normalized() float64 {
	return p.Range.Normalize(p.Get())
}

// SetNormalized stores the plain value for the normalized position n.
func (p *Parameter) SetNormalized(n float64) {
	p.value.Store(math.Float64bits(p.Range.Denormalize(n)))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.value.Store(math.Float64bits(p.Default))
}

// Text formats the current value for display.
func (p *Parameter) Text() string {
	return p.Format(p.Get())
}

// Format formats an arbitrary plain value the way Text would.
func (p *Parameter) Format(plain float64) string {
	if p.IsChoice() {
		i := int(p.Range.Clamp(plain))
		return p.Choices[i]
	}

	if p.format != nil {
		return p.format(plain)
	}

	return strconv.FormatFloat(plain, 'f', -1, 64)
}

// SetText parses a display string and stores the result.
func (p *Parameter) SetText(text string) error {
	text = strings.TrimSpace(text)

	if p.IsChoice() {
		for i, c := range p.Choices {
			if strings.EqualFold(c, text) {
				p.Set(float64(i))
				return nil
			}
		}

		// Slopes may also be typed as their rate, e.g. "24".
		if db, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(text), "db/oct")); err == nil {
			if slope, err := eq.SlopeFromDBPerOctave(db); err == nil && int(slope) < len(p.Choices) {
				p.Set(float64(slope))
				return nil
			}
		}

		return fmt.Errorf("param %q: unknown choice %q", p.ID, text)
	}

	parse := p.parse
	if parse == nil {
		parse = parsePlain
	}

	v, err := parse(text)
	if err != nil {
		return fmt.Errorf("param %q: %w", p.ID, err)
	}

	p.Set(v)

	return nil
}

func formatFrequency(hz float64) string {
	if hz >= 1000 {
		return strconv.FormatFloat(hz/1000, 'f', 2, 64) + " kHz"
	}

	return strconv.FormatFloat(hz, 'f', 0, 64) + " Hz"
}

func parseFrequency(s string) (float64, error) {
	lower := strings.ToLower(s)

	if num, ok := strings.CutSuffix(lower, "khz"); ok {
		v, err := parsePlain(num)
		return v * 1000, err
	}

	num, _ := strings.CutSuffix(lower, "hz")

	return parsePlain(num)
}

func formatDecibels(db float64) string {
	return fmt.Sprintf("%+.1f dB", db)
}

func parseDecibels(s string) (float64, error) {
	num, _ := strings.CutSuffix(strings.ToLower(s), "db")
	return parsePlain(num)
}

func formatQ(q float64) string {
	return strconv.FormatFloat(q, 'f', 2, 64)
}

func parsePlain(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
