package bitmap

// Image owns the opaque raw header bytes preceding the pixel section
// (bytes [0, offset) of the source file, preserved verbatim), plus the
// decoded pixel grid. Rewriting Header followed by a freshly encoded pixel
// section of the same Width/Height reconstructs a valid bitmap.
type Image struct {
	Header []byte
	Width  int
	Height int
	Grid   *Grid
}

// Capacity returns the total number of LSB-addressable channel values in
// the image: Width * Height * 3.
func (img *Image) Capacity() int {
	return img.Width * img.Height * 3
}
