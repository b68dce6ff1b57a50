package envelope

import (
	"errors"
	"testing"

	"github.com/bmphide/bmphide/internal/bitmap"
	"github.com/bmphide/bmphide/internal/huffman"
	"github.com/bmphide/bmphide/internal/lsb"
)

// newChannel builds a Channel over a solid carrier with enough capacity
// for extraBits beyond the fixed header.
func newChannel(extraBits int) *lsb.Channel {
	totalChannels := HeaderBits + extraBits
	width := (totalChannels + 2) / 3
	if width == 0 {
		width = 1
	}
	grid := bitmap.NewGrid(width, 1)
	for c := 0; c < width; c++ {
		grid.Set(0, c, bitmap.Pixel{})
	}
	img := &bitmap.Image{Width: width, Height: 1, Grid: grid}
	return lsb.New(img)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	bits, freq, err := huffman.Encode([]byte("hello"))
	if err != nil {
		t.Fatalf("huffman.Encode: %v", err)
	}

	ch := newChannel(len(bits) + 8)
	if err := Write(ch, len(bits), len("hello"), freq, bits); err != nil {
		t.Fatalf("Write: %v", err)
	}

	gotTotal, gotLen, gotFreq, gotBits, err := Read(ch)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if gotTotal != len(bits) {
		t.Errorf("totalBits = %d, want %d", gotTotal, len(bits))
	}
	if gotLen != len("hello") {
		t.Errorf("messageLength = %d, want %d", gotLen, len("hello"))
	}
	if gotFreq != freq {
		t.Errorf("freq table did not round-trip")
	}
	if gotBits != bits {
		t.Errorf("bits = %q, want %q", gotBits, bits)
	}
}

func TestWrite_CapacityError(t *testing.T) {
	bits, freq, err := huffman.Encode([]byte("hello"))
	if err != nil {
		t.Fatalf("huffman.Encode: %v", err)
	}
	// A carrier with exactly HeaderBits of capacity has no room left for
	// the compressed stream itself.
	ch := newChannel(0)
	if err := Write(ch, len(bits), len("hello"), freq, bits); !errors.Is(err, ErrCapacity) {
		t.Errorf("Write: err = %v, want ErrCapacity", err)
	}
}

func TestWrite_MessageTooLarge(t *testing.T) {
	ch := newChannel(10000)
	var freq huffman.FrequencyTable
	if err := Write(ch, 256, 1, freq, ""); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("Write totalBits=256: err = %v, want ErrMessageTooLarge", err)
	}
	if err := Write(ch, 1, 256, freq, "0"); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("Write messageLength=256: err = %v, want ErrMessageTooLarge", err)
	}
}

func TestRead_InvalidPayloadOnZeroedCarrier(t *testing.T) {
	// An all-zero carrier decodes to totalBits == 0, which Read must
	// reject rather than returning an empty message.
	ch := newChannel(8)
	_, _, _, _, err := Read(ch)
	if !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("Read: err = %v, want ErrInvalidPayload", err)
	}
}

