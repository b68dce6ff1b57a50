package bmphide

import (
	"github.com/bmphide/bmphide/internal/bitmap"
	"github.com/bmphide/bmphide/internal/envelope"
)

// Capacity summarizes how much payload a carrier bitmap can hold.
type Capacity struct {
	// TotalBits is the number of LSB-addressable channel values in the
	// carrier: width * height * 3.
	TotalBits int

	// AvailableBits is TotalBits minus the fixed 2064-bit envelope header
	// (total_bits + message_length + frequency table). This is the budget
	// left for the compressed bitstring itself.
	AvailableBits int

	// MaxMessageBytes is AvailableBits/8, a conservative message length
	// (pre-compression) that always fits the bit budget: a Huffman code
	// over byte values never needs more than eight bits per byte in total,
	// so such a message compresses to at most AvailableBits. Text with a
	// skewed byte distribution may fit at a greater length. The 255 limit
	// of the 8-bit envelope fields is not applied here.
	MaxMessageBytes int
}

// CapacityFor reports the embeddable capacity of a decoded carrier.
func CapacityFor(img *bitmap.Image) Capacity {
	total := img.Capacity()
	available := total - envelope.HeaderBits
	if available < 0 {
		available = 0
	}
	return Capacity{
		TotalBits:       total,
		AvailableBits:   available,
		MaxMessageBytes: available / 8,
	}
}

// Inspect reports the embeddable capacity of the carrier bitmap at path,
// without modifying it.
func Inspect(path string) (Capacity, error) {
	if err := bitmap.Validate(path); err != nil {
		return Capacity{}, err
	}
	img, err := bitmap.Decode(path)
	if err != nil {
		return Capacity{}, err
	}
	return CapacityFor(img), nil
}
