package huffpack

import "github.com/seif/huffpack/bitstream"

// node is one vertex of the symbol trie. Exactly two variants exist, and
// they enforce the fullness invariant structurally: an inner node always
// owns two children and a leaf owns none. Weights matter only while the
// trie is being built; a trie rebuilt from a header carries zero weights.
type node interface {
	weight() uint64
	writeTo(w *bitstream.Writer) error
	appendCodes(prefix code, table []code)
}

// leaf carries one symbol: a literal byte value (0-255) or endOfData.
type leaf struct {
	w   uint64
	sym uint16
}

// inner joins two subtrees; its weight is the sum of theirs.
type inner struct {
	w           uint64
	left, right node
}

func (l *leaf) weight() uint64  { return l.w }
func (n *inner) weight() uint64 { return n.w }
