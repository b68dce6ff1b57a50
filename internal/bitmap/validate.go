package bitmap

import (
	"fmt"
	"io"
	"os"
)

// readHeaders reads and validates the file header and info header from r,
// without touching any pixel data.
func readHeaders(r io.Reader) (fileHeader, infoHeader, error) {
	buf := make([]byte, fileHeaderSize+infoHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return fileHeader{}, infoHeader{}, ErrTruncated
		}
		return fileHeader{}, infoHeader{}, err
	}

	fh, err := parseFileHeader(buf[:fileHeaderSize])
	if err != nil {
		return fileHeader{}, infoHeader{}, err
	}
	ih, err := parseInfoHeader(buf[fileHeaderSize:])
	if err != nil {
		return fileHeader{}, infoHeader{}, err
	}
	if fh.offset < fileHeaderSize+infoHeaderSize {
		return fileHeader{}, infoHeader{}, FormatError("pixel data offset overlaps the header")
	}
	return fh, ih, nil
}

// Validate checks that path is a 24-bit, uncompressed, bottom-up BMP file
// by examining its file header and DIB header, without decoding any pixel
// data.
func Validate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	defer f.Close()

	_, _, err = readHeaders(f)
	return err
}
