package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

func ExamplePeak() {
	c := design.Peak(1000, 6, 1, 44100)
	fmt.Printf("%.2f dB\n", c.MagnitudeDB(1000, 44100))
	// Output: 6.00 dB
}

func ExampleButterworthCut() {
	cascade, err := design.ButterworthCut(design.CutHighpass, 100, 48000, 2)
	if err != nil {
		panic(err)
	}

	var chain biquad.Chain
	if err := chain.Configure(cascade.Sections()); err != nil {
		panic(err)
	}

	fmt.Printf("order %d, %.2f dB at cutoff\n", chain.Order(), chain.MagnitudeDB(100, 48000))
	// Output: order 4, -3.01 dB at cutoff
}
