package bitmap

import (
	"fmt"
	"os"
)

// Encode writes img to path as a 24-bit uncompressed bottom-up BMP file:
// img.Header verbatim, followed by the pixel section re-derived from
// img.Grid in bottom-up row order with blue-green-red channel order and
// zero row padding to a 4-byte boundary.
//
// If img has not had any LSBs modified since it was decoded, the output is
// byte-identical to the original file.
func Encode(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}

	if err := write(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("bitmap: %w", err)
	}
	return nil
}

func write(f *os.File, img *Image) error {
	if _, err := f.Write(img.Header); err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}

	padding := rowPadding(img.Width)
	rowLen := img.Width*bytesPerPixel + padding
	row := make([]byte, rowLen) // zeroed; the padding bytes after each pixel triple stay 0

	for onDiskRow := 0; onDiskRow < img.Height; onDiskRow++ {
		gridRow := img.Height - 1 - onDiskRow
		for col := 0; col < img.Width; col++ {
			p := img.Grid.At(gridRow, col)
			off := col * bytesPerPixel
			row[off], row[off+1], row[off+2] = p.B, p.G, p.R
		}
		if _, err := f.Write(row); err != nil {
			return fmt.Errorf("bitmap: %w", err)
		}
	}
	return nil
}
