package eq

import "errors"

var (
	// ErrNotPrepared is returned when processing or updating before Prepare.
	ErrNotPrepared = errors.New("eq: engine not prepared")
	// ErrLengthMismatch is returned when the channel buffers differ in length.
	ErrLengthMismatch = errors.New("eq: channel buffers differ in length")
	// ErrUnsupportedLayout is returned for channel layouts other than stereo.
	ErrUnsupportedLayout = errors.New("eq: only stereo in/out is supported")
	// ErrInvalidSlope is returned for a slope outside Slope12..Slope48.
	ErrInvalidSlope = errors.New("eq: invalid slope")
	// ErrInvalidSettings is returned for non-positive or non-finite settings.
	ErrInvalidSettings = errors.New("eq: invalid settings")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("eq: sample rate must be positive and finite")
	// ErrInvalidBlockSize is returned for a non-positive maximum block size.
	ErrInvalidBlockSize = errors.New("eq: block size must be positive")
)
