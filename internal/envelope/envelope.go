// Package envelope serializes and parses the fixed bit layout embedded in
// a carrier's LSB stream: an 8-bit total_bits field, an 8-bit
// message_length field, a 256-entry (2048-bit) frequency table, and then
// the compressed bitstring itself.
//
// Field widths are fixed at 8 bits each; see DESIGN.md for why they were
// not widened.
package envelope

import (
	"github.com/bmphide/bmphide/internal/huffman"
	"github.com/bmphide/bmphide/internal/lsb"
)

const (
	totalBitsFieldWidth     = 8
	messageLengthFieldWidth = 8
	freqTableEntries        = 256
	freqEntryWidth          = 8
	freqTableWidth          = freqTableEntries * freqEntryWidth // 2048

	// HeaderBits is the number of LSBs the envelope header occupies before
	// the compressed stream begins: 8 + 8 + 2048 = 2064.
	HeaderBits = totalBitsFieldWidth + messageLengthFieldWidth + freqTableWidth

	maxFieldValue = 1<<8 - 1 // largest value an 8-bit field can hold
)

// Write frames totalBits, messageLength, freq, and bits into ch starting
// at bit index 0: total_bits, then message_length, then the 256-entry
// frequency table, then the compressed bitstream itself.
func Write(ch *lsb.Channel, totalBits, messageLength int, freq huffman.FrequencyTable, bits string) error {
	if HeaderBits+totalBits > ch.Capacity() {
		return ErrCapacity
	}
	if totalBits > maxFieldValue || messageLength > maxFieldValue {
		return ErrMessageTooLarge
	}

	pos := 0
	if err := writeField(ch, &pos, totalBits, totalBitsFieldWidth); err != nil {
		return err
	}
	if err := writeField(ch, &pos, messageLength, messageLengthFieldWidth); err != nil {
		return err
	}
	for symbol := 0; symbol < freqTableEntries; symbol++ {
		if freq[symbol] > maxFieldValue {
			return ErrMessageTooLarge
		}
		if err := writeField(ch, &pos, freq[symbol], freqEntryWidth); err != nil {
			return err
		}
	}
	for i := 0; i < totalBits; i++ {
		b := byte(0)
		if bits[i] == '1' {
			b = 1
		}
		if err := ch.SetBit(pos, b); err != nil {
			return err
		}
		pos++
	}
	return nil
}

// Read extracts totalBits, messageLength, the frequency table, and the
// compressed bitstring from ch, in the order Write wrote them.
func Read(ch *lsb.Channel) (totalBits, messageLength int, freq huffman.FrequencyTable, bits string, err error) {
	if HeaderBits > ch.Capacity() {
		return 0, 0, freq, "", ErrInvalidPayload
	}

	pos := 0
	totalBits, err = readField(ch, &pos, totalBitsFieldWidth)
	if err != nil {
		return 0, 0, freq, "", err
	}
	messageLength, err = readField(ch, &pos, messageLengthFieldWidth)
	if err != nil {
		return 0, 0, freq, "", err
	}

	if totalBits <= 0 || HeaderBits+totalBits > ch.Capacity() {
		return 0, 0, freq, "", ErrInvalidPayload
	}

	for symbol := 0; symbol < freqTableEntries; symbol++ {
		v, err := readField(ch, &pos, freqEntryWidth)
		if err != nil {
			return 0, 0, freq, "", err
		}
		freq[symbol] = v
	}

	buf := make([]byte, totalBits)
	for i := 0; i < totalBits; i++ {
		b, err := ch.GetBit(pos)
		if err != nil {
			return 0, 0, freq, "", err
		}
		pos++
		if b == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return totalBits, messageLength, freq, string(buf), nil
}

// writeField writes an unsigned integer of the given bit width, MSB
// first, starting at *pos, and advances *pos past it.
func writeField(ch *lsb.Channel, pos *int, value, width int) error {
	for i := width - 1; i >= 0; i-- {
		bit := byte((value >> uint(i)) & 1)
		if err := ch.SetBit(*pos, bit); err != nil {
			return err
		}
		*pos++
	}
	return nil
}

// readField reads an unsigned integer of the given bit width, MSB first,
// starting at *pos, and advances *pos past it.
func readField(ch *lsb.Channel, pos *int, width int) (int, error) {
	value := 0
	for i := 0; i < width; i++ {
		b, err := ch.GetBit(*pos)
		if err != nil {
			return 0, err
		}
		*pos++
		value = (value << 1) | int(b)
	}
	return value, nil
}
