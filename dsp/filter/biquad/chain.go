package biquad

import "errors"

// MaxSections is the capacity of a Chain. Four second-order sections give
// the steepest supported cut slope of 48 dB/oct.
const MaxSections = 4

var (
	// ErrNoSections is returned when a chain is configured with no sections.
	ErrNoSections = errors.New("biquad: at least one section required")
	// ErrTooManySections is returned when more than MaxSections are supplied.
	ErrTooManySections = errors.New("biquad: section count exceeds chain capacity")
)

// Chain is a fixed-capacity cascade of biquad sections processed in series.
//
// Sections [0, NumActive) are enabled; the remaining ones are bypassed and
// skipped during processing. The zero value has no active section and passes
// its input through unchanged.
type Chain struct {
	sections [MaxSections]Section
	active   int
}

// NewChain creates a chain with len(coeffs) active sections.
func NewChain(coeffs []Coefficients) (*Chain, error) {
	c := &Chain{}
	if err := c.Configure(coeffs); err != nil {
		return nil, err
	}

	return c, nil
}

// Configure assigns coeffs[i] to section i and enables it, and bypasses every
// section at index len(coeffs) and above. Bypassed sections keep their old
// coefficients.
//
// Sections that were enabled before the call keep their delay-line state, so
// repeating Configure with the same values does not disturb the output. A
// section that switches from bypassed to enabled starts from zero state.
//
// Configure runs on the audio path: it never allocates and returns bare
// sentinel errors.
func (c *Chain) Configure(coeffs []Coefficients) error {
	n := len(coeffs)
	if n == 0 {
		return ErrNoSections
	}

	if n > MaxSections {
		return ErrTooManySections
	}

	for i := range n {
		if i >= c.active {
			c.sections[i].Reset()
		}

		c.sections[i].Coefficients = coeffs[i]
	}

	c.active = n

	return nil
}

// ProcessSample cascades input through all active sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := 0; i < c.active; i++ {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the active sections.
// Running the whole block through section 0, then section 1, and so on is
// equivalent to the per-sample cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := 0; i < c.active; i++ {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears the state of every section, active or bypassed.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumActive returns the number of enabled sections.
func (c *Chain) NumActive() int {
	return c.active
}

// Order returns the filter order of the active cascade (2 per section).
func (c *Chain) Order() int {
	return 2 * c.active
}

// Bypassed reports whether section i is bypassed.
func (c *Chain) Bypassed(i int) bool {
	return i >= c.active
}

// Section returns a pointer to the i-th section for inspection.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// ConfigEqual reports whether both chains have the same active count and
// bit-identical coefficients in every slot. Delay-line state is ignored.
func (c *Chain) ConfigEqual(o *Chain) bool {
	if c.active != o.active {
		return false
	}

	for i := range c.sections {
		if c.sections[i].Coefficients != o.sections[i].Coefficients {
			return false
		}
	}

	return true
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [MaxSections][2]float64 {
	var states [MaxSections][2]float64
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
func (c *Chain) SetState(states [MaxSections][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
