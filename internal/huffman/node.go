// Package huffman builds a character-frequency-keyed prefix-code tree over
// the 256 possible byte values, and uses it to encode a message into a
// bitstring of '0'/'1' characters and decode that bitstring back.
//
// Tree construction uses a sorted-insert merge loop over leaf nodes rather
// than a container/heap, because the alphabet is fixed at 256 symbols and
// the merge order must be exactly reproducible between encoder and
// decoder.
package huffman

// FrequencyTable maps each possible byte value to how many times it
// appears in a message. Index 0..255 corresponds to that byte's value.
type FrequencyTable [256]int

// Node is a Huffman tree node: a leaf carries a byte value and its
// frequency; an internal node carries the summed frequency of its two
// children and Symbol is unused. The tree owns its nodes; once the root is
// no longer referenced, the whole tree is collected.
type Node struct {
	Symbol byte
	Freq   int
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n is a leaf (carries a symbol, has no children).
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// CodeTable maps a byte value to its Huffman code, represented as a string
// of '0'/'1' characters. Entries exist only for bytes with nonzero
// frequency.
type CodeTable map[byte]string
