package huffman

// buildFrequencyTable counts each byte of message into a FrequencyTable.
func buildFrequencyTable(message []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range message {
		freq[b]++
	}
	return freq
}

// sortedLeaves returns leaf nodes for every byte with nonzero frequency,
// in ascending frequency order. Ties are broken by insertion order: leaves
// are created for byte values 0..255 in that order, and later insertions
// with an equal frequency are placed after all earlier ones. Internal nodes
// produced during BuildTree's merge loop are inserted into the same
// ordering rule.
func sortedLeaves(freq FrequencyTable) []*Node {
	nodes := make([]*Node, 0, 256)
	for symbol := 0; symbol < 256; symbol++ {
		if freq[symbol] == 0 {
			continue
		}
		insertSorted(&nodes, &Node{Symbol: byte(symbol), Freq: freq[symbol]})
	}
	return nodes
}

// insertSorted inserts n into nodes, kept sorted ascending by Freq, placing
// n after any existing node with an equal frequency (stable tie-break).
func insertSorted(nodes *[]*Node, n *Node) {
	list := *nodes
	j := len(list)
	list = append(list, nil)
	for j > 0 && list[j-1].Freq > n.Freq {
		list[j] = list[j-1]
		j--
	}
	list[j] = n
	*nodes = list
}

// BuildTree constructs a Huffman tree from freq by repeatedly merging the
// two lowest-frequency nodes until one remains. Returns nil if freq has no
// nonzero entries.
func BuildTree(freq FrequencyTable) *Node {
	nodes := sortedLeaves(freq)
	if len(nodes) == 0 {
		return nil
	}
	for len(nodes) > 1 {
		left, right := nodes[0], nodes[1]
		nodes = nodes[2:]
		parent := &Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
		}
		insertSorted(&nodes, parent)
	}
	return nodes[0]
}

// BuildCodeTable performs a depth-first traversal of root, appending '0' on
// the left edge and '1' on the right edge, and returns the resulting code
// for every leaf. When the tree collapses to a single leaf (the message
// has exactly one distinct byte), that leaf receives the 1-bit code "0"
// rather than the empty string a zero-depth traversal would otherwise
// assign — this is required for the decoder to agree on the degenerate
// case.
func BuildCodeTable(root *Node) CodeTable {
	table := make(CodeTable)
	if root == nil {
		return table
	}
	if root.IsLeaf() {
		table[root.Symbol] = "0"
		return table
	}
	var walk func(n *Node, path string)
	walk = func(n *Node, path string) {
		if n.IsLeaf() {
			table[n.Symbol] = path
			return
		}
		walk(n.Left, path+"0")
		walk(n.Right, path+"1")
	}
	walk(root, "")
	return table
}
