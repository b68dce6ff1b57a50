package bmphide

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmphide/bmphide/internal/bitmap"
	"github.com/bmphide/bmphide/internal/envelope"
	"github.com/bmphide/bmphide/internal/huffman"
	"github.com/bmphide/bmphide/internal/lsb"
)

// Encode hides message inside the carrier bitmap at inPath and writes the
// result to outPath. The carrier must be a 24-bit uncompressed bottom-up
// BMP with enough pixel-channel capacity for the framed envelope (see
// internal/envelope); message must be non-empty and, after Huffman
// compression, fit the envelope's 8-bit length fields.
//
// No output file is produced on any error: Encode writes to a temporary
// file in outPath's directory and only renames it into place once every
// step has succeeded.
func Encode(inPath, outPath, message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	if err := bitmap.Validate(inPath); err != nil {
		return err
	}
	img, err := bitmap.Decode(inPath)
	if err != nil {
		return err
	}

	bits, freq, err := huffman.Encode([]byte(message))
	if err != nil {
		return err
	}

	ch := lsb.New(img)
	if err := envelope.Write(ch, len(bits), len(message), freq, bits); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".bmphide-*.bmp")
	if err != nil {
		return fmt.Errorf("bmphide: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := bitmap.Encode(tmpPath, img); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("bmphide: %w", err)
	}
	return nil
}

// Decode recovers the message hidden in the carrier bitmap at inPath by
// extracting the envelope from its LSB stream and reversing the Huffman
// encoding using the embedded frequency table.
func Decode(inPath string) (string, error) {
	if err := bitmap.Validate(inPath); err != nil {
		return "", err
	}
	img, err := bitmap.Decode(inPath)
	if err != nil {
		return "", err
	}

	ch := lsb.New(img)
	_, messageLength, freq, bits, err := envelope.Read(ch)
	if err != nil {
		return "", err
	}

	message, err := huffman.Decode(bits, freq, messageLength)
	if err != nil {
		return "", err
	}
	return string(message), nil
}
