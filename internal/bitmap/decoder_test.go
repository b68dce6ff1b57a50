package bitmap

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestDecodeEncode_RoundTrip(t *testing.T) {
	pixels := solidGrid(3, 2, Pixel{R: 10, G: 20, B: 30})
	pixels[0][1] = Pixel{R: 255, G: 0, B: 128}
	data := buildBMP(3, 2, pixels)
	path := writeTempBMP(t, data)

	img, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", img.Width, img.Height)
	}
	if got := img.Grid.At(0, 1); got != (Pixel{R: 255, G: 0, B: 128}) {
		t.Errorf("Grid.At(0,1) = %+v, want {255 0 128}", got)
	}

	outPath := writeTempBMP(t, nil)
	if err := Encode(outPath, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading encoded file: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round-tripped bytes differ from the original fixture")
	}
}

func TestDecode_PreservesExtendedHeader(t *testing.T) {
	pixels := solidGrid(1, 1, Pixel{R: 1, G: 2, B: 3})
	data := buildBMP(1, 1, pixels)

	// Widen the gap between the 54-byte classic header and the pixel
	// section, simulating an extended or padded header some encoders emit.
	extra := 8
	widened := make([]byte, len(data)+extra)
	copy(widened[:fileHeaderSize+infoHeaderSize], data[:fileHeaderSize+infoHeaderSize])
	copy(widened[fileHeaderSize+infoHeaderSize+extra:], data[fileHeaderSize+infoHeaderSize:])
	newOffset := uint32(fileHeaderSize + infoHeaderSize + extra)
	widened[10] = byte(newOffset)
	widened[11] = byte(newOffset >> 8)
	widened[12] = byte(newOffset >> 16)
	widened[13] = byte(newOffset >> 24)

	path := writeTempBMP(t, widened)
	img, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(img.Header) != int(newOffset) {
		t.Fatalf("Header length = %d, want %d", len(img.Header), newOffset)
	}
	if !bytes.Equal(img.Header, widened[:newOffset]) {
		t.Errorf("Header bytes were not preserved verbatim")
	}

	outPath := writeTempBMP(t, nil)
	if err := Encode(outPath, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading encoded file: %v", err)
	}
	if !bytes.Equal(out, widened) {
		t.Errorf("round trip did not reproduce the widened header byte-for-byte")
	}
}

func TestDecode_RejectsBadFormat(t *testing.T) {
	good := buildBMP(2, 2, solidGrid(2, 2, Pixel{}))

	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{
			name: "bad signature",
			mutate: func(b []byte) []byte {
				b[0] = 'X'
				return b
			},
			wantErr: ErrFormat,
		},
		{
			name: "top-down height",
			mutate: func(b []byte) []byte {
				// Negate the height field (two's complement) to claim
				// top-down orientation.
				h := int32(b[22]) | int32(b[23])<<8 | int32(b[24])<<16 | int32(b[25])<<24
				h = -h
				b[22], b[23], b[24], b[25] = byte(h), byte(h>>8), byte(h>>16), byte(h>>24)
				return b
			},
			wantErr: ErrFormat,
		},
		{
			name: "truncated",
			mutate: func(b []byte) []byte {
				return b[:len(b)-5]
			},
			wantErr: ErrTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]byte(nil), good...)
			data = tt.mutate(data)
			path := writeTempBMP(t, data)
			_, err := Decode(path)
			if err == nil {
				t.Fatal("Decode: want error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode error = %v, want wrapping %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_DoesNotReadPixels(t *testing.T) {
	data := buildBMP(4, 4, solidGrid(4, 4, Pixel{R: 7, G: 7, B: 7}))
	// Corrupt the pixel section only; Validate must still succeed since it
	// never looks past the headers.
	corrupted := append([]byte(nil), data...)
	for i := fileHeaderSize + infoHeaderSize; i < len(corrupted); i++ {
		corrupted[i] = 0xFF
	}
	path := writeTempBMP(t, corrupted)
	if err := Validate(path); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
