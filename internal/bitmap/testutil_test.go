package bitmap

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// buildBMP assembles a minimal valid 24-bit bottom-up BMP file from a
// logical top-down RGB pixel grid (row 0 first in pixels), independent of
// the package under test.
func buildBMP(width, height int, pixels [][]Pixel) []byte {
	padding := (4 - (width*3)%4) % 4
	rowLen := width*3 + padding
	pixelBytes := rowLen * height
	offset := fileHeaderSize + infoHeaderSize
	fileSize := offset + pixelBytes

	buf := make([]byte, fileSize)
	copy(buf[0:2], signature)
	binary.LittleEndian.PutUint32(buf[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(buf[10:14], uint32(offset))

	ih := buf[fileHeaderSize:]
	binary.LittleEndian.PutUint32(ih[0:4], infoHeaderSize)
	binary.LittleEndian.PutUint32(ih[4:8], uint32(width))
	binary.LittleEndian.PutUint32(ih[8:12], uint32(height))
	binary.LittleEndian.PutUint16(ih[12:14], 1)
	binary.LittleEndian.PutUint16(ih[14:16], 24)
	binary.LittleEndian.PutUint32(ih[16:20], 0)
	binary.LittleEndian.PutUint32(ih[20:24], uint32(pixelBytes))

	body := buf[offset:]
	for onDiskRow := 0; onDiskRow < height; onDiskRow++ {
		gridRow := height - 1 - onDiskRow
		rowOff := onDiskRow * rowLen
		for col := 0; col < width; col++ {
			p := pixels[gridRow][col]
			o := rowOff + col*3
			body[o], body[o+1], body[o+2] = p.B, p.G, p.R
		}
	}
	return buf
}

// solidGrid returns a width x height pixel grid filled with p.
func solidGrid(width, height int, p Pixel) [][]Pixel {
	rows := make([][]Pixel, height)
	for r := range rows {
		row := make([]Pixel, width)
		for c := range row {
			row[c] = p
		}
		rows[r] = row
	}
	return rows
}

// writeTempBMP writes data to a new file under t.TempDir() and returns its
// path.
func writeTempBMP(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.bmp")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}
