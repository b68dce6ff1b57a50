package envelope

import "errors"

var (
	// ErrCapacity reports that the envelope (header + compressed stream)
	// does not fit in the carrier's available LSBs.
	ErrCapacity = errors.New("envelope: message does not fit in carrier")

	// ErrMessageTooLarge reports that the post-compression bit count or
	// the pre-compression message length does not fit in its 8-bit
	// envelope field.
	ErrMessageTooLarge = errors.New("envelope: message too large for 8-bit envelope fields")

	// ErrInvalidPayload reports that the decoder read a zero or
	// out-of-range total_bits from a carrier's envelope header.
	ErrInvalidPayload = errors.New("envelope: invalid payload header")
)
