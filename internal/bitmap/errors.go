package bitmap

import "errors"

// Sentinel errors returned by Decode, Encode, and Validate. Callers should
// compare with errors.Is rather than matching on message text.
var (
	// ErrFormat reports that the input is not an accepted 24-bit bottom-up
	// uncompressed BMP: bad signature, wrong bit depth, compressed pixel
	// data, a palette, or a top-down (negative height) orientation.
	ErrFormat = errors.New("bitmap: invalid or unsupported format")

	// ErrTruncated reports that the file ended before all declared header
	// or pixel bytes could be read.
	ErrTruncated = errors.New("bitmap: truncated file")
)

// FormatError wraps ErrFormat with a reason string, mirroring the
// FormatError/UnsupportedError pattern used by the BMP and WebP decoders in
// the standard image-decoding ecosystem.
type FormatError string

func (e FormatError) Error() string { return "bitmap: " + string(e) }

// Unwrap lets errors.Is(err, ErrFormat) succeed for any FormatError value.
func (e FormatError) Unwrap() error { return ErrFormat }
