package charls

import "errors"

// Sentinel errors returned at the scan boundary. The core never panics or
// uses exceptions: every failure path returns one of these, optionally
// wrapped with fmt.Errorf("...: %w", ...) for context.
var (
	// ErrInvalidCompressedData is returned by the decoder when the bit
	// stream cannot be decoded: cache underflow, a mapped value out of
	// range, a run index past the line width, an unstuffed 0xFF, or a
	// marker encountered before the scan logically ends.
	ErrInvalidCompressedData = errors.New("charls: invalid compressed data")

	// ErrTooMuchCompressedData is returned by the decoder when trailing
	// nonzero bits remain, or no marker follows where the scan expects
	// the stream to end.
	ErrTooMuchCompressedData = errors.New("charls: too much compressed data")

	// ErrUnsupportedBitDepth is returned when a color transform is
	// requested for a bit depth it cannot be applied to.
	ErrUnsupportedBitDepth = errors.New("charls: unsupported bit depth for color transform")

	// ErrUnsupportedColorTransform is returned for a color transform /
	// component-count combination the framing layer did not resolve.
	ErrUnsupportedColorTransform = errors.New("charls: unsupported color transform")

	// ErrInvalidParameter is returned by ScanParams.Validate and
	// Preset.Validate for out-of-range or inconsistent scan parameters.
	ErrInvalidParameter = errors.New("charls: invalid scan parameter")
)
