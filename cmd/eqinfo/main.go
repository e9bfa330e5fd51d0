// Command eqinfo prints the biquad coefficients of an equalizer setting and
// compares its analytic magnitude response with an FFT measurement.
//
// Usage:
//
//	eqinfo [flags]
//
// Examples:
//
//	eqinfo -bell-freq 1000 -bell-gain 6
//	eqinfo -sr 44100 -hp 80 -hp-slope 48 -lp 12000
//	eqinfo -preset presets/warm.json -fft 65536
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/internal/settingsflag"
	"github.com/cwbudde/algo-eq/measure/response"
)

// octaveFrequencies are the ISO octave band centers.
var octaveFrequencies = []float64{31.5, 63, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

func main() {
	sampleRate := flag.Float64("sr", 48000, "sample rate in Hz")
	fftSize := flag.Int("fft", 16384, "FFT size for the measured response (power of two)")
	settingsFlags := settingsflag.Register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints stage coefficients and the magnitude response of an EQ setting.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -bell-freq 1000 -bell-gain 6\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -sr 44100 -hp 80 -hp-slope 48 -lp 12000\n")
	}
	flag.Parse()

	settings, err := settingsFlags.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, settings, *sampleRate, *fftSize); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, settings eq.Settings, sampleRate float64, fftSize int) error {
	engine := eq.NewEngine()
	if err := engine.Prepare(sampleRate, 1, settings); err != nil {
		return err
	}

	measured, err := eq.NewMonoChain(settings, sampleRate)
	if err != nil {
		return err
	}

	resp, err := response.Measure(measured, sampleRate, fftSize)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Sample rate: %.0f Hz   FFT: %d   Kernel: %s\n\n", sampleRate, fftSize, biquad.KernelName())

	chain := engine.Chain(0)
	printStages(w, chain)
	fmt.Fprintln(w)
	printResponse(w, engine, resp)

	return nil
}

func printStages(w io.Writer, chain *eq.MonoChain) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Stage\tSection\tb0\tb1\tb2\ta1\ta2\tPole radius\t\n")
	fmt.Fprintf(tw, "-----\t-------\t--\t--\t--\t--\t--\t-----------\t\n")

	row := func(stage string, i int, s *biquad.Section) {
		fmt.Fprintf(tw, "%s\t%d\t%.9f\t%.9f\t%.9f\t%.9f\t%.9f\t%.6f\t\n",
			stage, i, s.B0, s.B1, s.B2, s.A1, s.A2, s.MaxPoleRadius())
	}

	hp := chain.HighPass()
	for i := range hp.NumActive() {
		row("highpass", i, hp.Section(i))
	}

	row("bell", 0, chain.Bell())

	lp := chain.LowPass()
	for i := range lp.NumActive() {
		row("lowpass", i, lp.Section(i))
	}

	tw.Flush()
}

func printResponse(w io.Writer, engine *eq.Engine, resp response.Response) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Freq (Hz)\tAnalytic (dB)\tMeasured (dB)\tDiff (dB)\t\n")
	fmt.Fprintf(tw, "---------\t-------------\t-------------\t---------\t\n")

	nyquist := engine.SampleRate() / 2
	for _, f := range octaveFrequencies {
		if f >= nyquist {
			break
		}

		analytic := engine.MagnitudeDB(f)
		measured := resp.MagnitudeDBAt(f)
		fmt.Fprintf(tw, "%.1f\t%s\t%s\t%s\t\n", f, formatDB(analytic), formatDB(measured), formatDB(measured-analytic))
	}

	tw.Flush()

	peakHz, peakDB := resp.Peak()
	fmt.Fprintf(w, "\nPeak: %s dB at %.1f Hz\n", formatDB(peakDB), peakHz)
}

func formatDB(db float64) string {
	switch {
	case math.IsNaN(db):
		return "n/a"
	case math.IsInf(db, -1) || db < -300:
		return "-inf"
	default:
		return fmt.Sprintf("%.3f", db)
	}
}
