package bitmap

import "encoding/binary"

// fileHeader is the parsed subset of BITMAPFILEHEADER this package cares
// about: just enough to locate the pixel section and sanity-check the
// signature.
type fileHeader struct {
	offset uint32 // byte position where pixel data begins
}

// infoHeader is the parsed subset of BITMAPINFOHEADER this package cares
// about.
type infoHeader struct {
	width       int32
	height      int32
	bitCount    uint16
	compression uint32
}

// parseFileHeader reads and validates the 14-byte BITMAPFILEHEADER. b must
// be at least fileHeaderSize bytes.
func parseFileHeader(b []byte) (fileHeader, error) {
	if len(b) < fileHeaderSize {
		return fileHeader{}, ErrTruncated
	}
	if string(b[offSignature:offSignature+2]) != signature {
		return fileHeader{}, FormatError("missing 'BM' signature")
	}
	return fileHeader{
		offset: binary.LittleEndian.Uint32(b[offBitsOffset:]),
	}, nil
}

// parseInfoHeader reads and validates the 40-byte BITMAPINFOHEADER. b must
// be at least infoHeaderSize bytes (the slice starting at the info header,
// not the whole file).
func parseInfoHeader(b []byte) (infoHeader, error) {
	if len(b) < infoHeaderSize {
		return infoHeader{}, ErrTruncated
	}
	hdrSize := binary.LittleEndian.Uint32(b[offHeaderSize:])
	if hdrSize != infoHeaderSize {
		return infoHeader{}, FormatError("unsupported DIB header size")
	}

	ih := infoHeader{
		width:       int32(binary.LittleEndian.Uint32(b[offWidth:])),
		height:      int32(binary.LittleEndian.Uint32(b[offHeight:])),
		bitCount:    binary.LittleEndian.Uint16(b[offBitCount:]),
		compression: binary.LittleEndian.Uint32(b[offCompression:]),
	}

	planes := binary.LittleEndian.Uint16(b[offPlanes:])
	if planes != 1 {
		return infoHeader{}, FormatError("color planes must be 1")
	}
	if ih.bitCount != wantBitCount {
		return infoHeader{}, FormatError("only 24-bit-per-pixel bitmaps are supported")
	}
	if ih.compression != biRGB {
		return infoHeader{}, FormatError("compressed bitmaps are not supported")
	}
	if ih.width <= 0 {
		return infoHeader{}, FormatError("width must be positive")
	}
	if ih.height <= 0 {
		return infoHeader{}, FormatError("top-down bitmaps (negative height) are not supported")
	}

	return ih, nil
}
