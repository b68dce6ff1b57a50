// Package lsb addresses the least-significant bit of individual color
// channels within a bitmap.Image and reads or writes it. Addressing is
// deterministic and stateless: the same bit index always names the same
// channel, for both Channel.SetBit and Channel.GetBit.
package lsb

import (
	"errors"

	"github.com/bmphide/bmphide/internal/bitmap"
)

// ErrOutOfRange is returned when a bit index falls outside
// [0, Channel.Capacity()).
var ErrOutOfRange = errors.New("lsb: bit index out of range")

// Channel addresses individual channel LSBs within a bitmap.Image. The grid
// is walked in row-major, top-to-bottom, left-to-right order, with channels
// taken red, then green, then blue within each pixel — this order is
// internal to the package and distinct from the bottom-up order the BMP
// format stores rows in on disk.
type Channel struct {
	img *bitmap.Image
}

// New wraps img in a Channel.
func New(img *bitmap.Image) *Channel {
	return &Channel{img: img}
}

// Capacity returns the total number of addressable channel values:
// width * height * 3.
func (c *Channel) Capacity() int {
	return c.img.Capacity()
}

// locate maps a linear bit index to a pixel's (row, col) and channel
// (0=red, 1=green, 2=blue).
func (c *Channel) locate(bitIndex int) (row, col, channel int) {
	pixelIndex := bitIndex / 3
	channel = bitIndex % 3
	row = pixelIndex / c.img.Width
	col = pixelIndex % c.img.Width
	return
}

// SetBit overwrites the least-significant bit of the selected channel with
// b (0 or 1).
func (c *Channel) SetBit(bitIndex int, b byte) error {
	if bitIndex < 0 || bitIndex >= c.Capacity() {
		return ErrOutOfRange
	}
	row, col, channel := c.locate(bitIndex)
	p := c.img.Grid.At(row, col)
	switch channel {
	case 0:
		p.R = setLSB(p.R, b)
	case 1:
		p.G = setLSB(p.G, b)
	case 2:
		p.B = setLSB(p.B, b)
	}
	c.img.Grid.Set(row, col, p)
	return nil
}

// GetBit returns the least-significant bit of the selected channel.
func (c *Channel) GetBit(bitIndex int) (byte, error) {
	if bitIndex < 0 || bitIndex >= c.Capacity() {
		return 0, ErrOutOfRange
	}
	row, col, channel := c.locate(bitIndex)
	p := c.img.Grid.At(row, col)
	switch channel {
	case 0:
		return p.R & 1, nil
	case 1:
		return p.G & 1, nil
	default:
		return p.B & 1, nil
	}
}

func setLSB(v uint8, b byte) uint8 {
	if b&1 == 1 {
		return v | 1
	}
	return v &^ 1
}
