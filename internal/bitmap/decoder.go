package bitmap

import (
	"fmt"
	"io"
	"os"
)

// Decode reads a 24-bit uncompressed bottom-up BMP file from path and
// returns its parsed Image. The raw bytes preceding the pixel section
// (everything in [0, offset)) are preserved verbatim in Image.Header,
// including any extended or padded header beyond the classic 54 bytes.
func Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}
	defer f.Close()

	fh, ih, err := readHeaders(f)
	if err != nil {
		return nil, err
	}

	header := make([]byte, fh.offset)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, ErrTruncated
	}

	width := int(ih.width)
	height := int(ih.height)
	grid := NewGrid(width, height)

	padding := rowPadding(width)
	rowLen := width*bytesPerPixel + padding
	row := make([]byte, rowLen)

	// On disk, rows are stored bottom-up: the first row read corresponds to
	// the logical bottom row (Grid row height-1).
	for onDiskRow := 0; onDiskRow < height; onDiskRow++ {
		if _, err := io.ReadFull(f, row); err != nil {
			return nil, ErrTruncated
		}
		gridRow := height - 1 - onDiskRow
		for col := 0; col < width; col++ {
			off := col * bytesPerPixel
			// On-disk channel order is blue, green, red.
			b, g, r := row[off], row[off+1], row[off+2]
			grid.Set(gridRow, col, Pixel{R: r, G: g, B: b})
		}
	}

	return &Image{
		Header: header,
		Width:  width,
		Height: height,
		Grid:   grid,
	}, nil
}
