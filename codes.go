package huffpack

// code is a root-to-leaf path packed into an integer, most significant
// bit first. Paths deeper than 64 would overflow the packing, but such a
// trie requires a Fibonacci-shaped frequency distribution over more than
// 10^13 source bytes and cannot arise from realistic streams.
type code struct {
	bits   uint64
	length uint8
}

// buildCodeTable derives each symbol's bit path from the trie. Symbols
// absent from the trie keep the zero value and are never looked up; with
// a single-leaf trie the root's own code is zero-length.
func buildCodeTable(root node) []code {
	table := make([]code, alphabetSize+1)
	root.appendCodes(code{}, table)
	return table
}

func (l *leaf) appendCodes(prefix code, table []code) {
	table[l.sym] = prefix
}

func (n *inner) appendCodes(prefix code, table []code) {
	n.left.appendCodes(code{bits: prefix.bits << 1, length: prefix.length + 1}, table)
	n.right.appendCodes(code{bits: prefix.bits<<1 | 1, length: prefix.length + 1}, table)
}
