// Package bmphide hides an arbitrary text message inside a 24-bit
// uncompressed bitmap image, and recovers it again, using Huffman-coded
// payload framing and least-significant-bit steganography.
//
// The carrier must be a Windows BITMAPFILEHEADER + BITMAPINFOHEADER bitmap:
// 24 bits per pixel, uncompressed, bottom-up. Encoding flips at most the
// least-significant bit of a single color channel per embedded payload
// bit, so the carrier remains visually indistinguishable from the
// original. Decoding requires only the carrier produced by Encode; no
// side channel or external key is used.
//
// Basic usage for encoding:
//
//	err := bmphide.Encode("cover.bmp", "secret.bmp", "a hidden message")
//
// Basic usage for decoding:
//
//	message, err := bmphide.Decode("secret.bmp")
package bmphide
