// Package eq implements a stereo three-band equalizer: a Butterworth
// highpass, an RBJ peaking (bell) stage and a Butterworth lowpass in series.
//
// [Settings] is an immutable snapshot of the user parameters. [MonoChain]
// processes one channel. [Engine] owns one chain per channel, redesigns the
// coefficients once per block in [Engine.Update] and copies identical values
// into both chains, so the left and right filters never diverge in
// configuration.
//
// Update and ProcessBlock are meant to run on a single real-time goroutine.
// Neither allocates, blocks, or does work proportional to anything but the
// block length.
package eq
