package huffman

import "errors"

// ErrCompression is returned when a decoded bitstring doesn't agree with
// the supplied frequency table and message length: the symbol count comes
// out wrong, or the tree walk descends to a nil child.
var ErrCompression = errors.New("huffman: compression inconsistency")
