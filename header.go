package huffpack

import (
	"fmt"

	"github.com/seif/huffpack/bitstream"
)

// Wire format:
//
//	magic   = 32 bits, 0xface8201
//	header  = pre-order trie walk: "0" left right for an inner node,
//	          "1" followed by a 9-bit symbol for a leaf
//	body    = concatenated per-byte codes in source order, closed by the
//	          endOfData code
//	padding = zero bits up to the next byte boundary
//
// Codes carry no delimiters; their boundaries are recovered solely by
// re-walking the trie.
const formatMagic = 0xface8201

func writeMagic(w *bitstream.Writer) error {
	return w.WriteBits(formatMagic, magicBits)
}

// checkMagic reads the leading 32-bit word and verifies that it
// identifies the tree-header format. A stream too short to hold the word
// cannot carry the magic either, so both cases report ErrMalformedHeader.
func checkMagic(r *bitstream.Reader) error {
	word, err := r.ReadBits(magicBits)
	if err != nil {
		return fmt.Errorf("%w: stream too short for the 32-bit format magic", ErrMalformedHeader)
	}
	if word != formatMagic {
		return fmt.Errorf("%w: stream starts with 0x%08x, want 0x%08x", ErrMalformedHeader, word, uint64(formatMagic))
	}
	return nil
}

func (l *leaf) writeTo(w *bitstream.Writer) error {
	if err := w.WriteBits(1, 1); err != nil {
		return err
	}
	return w.WriteBits(uint64(l.sym), symbolBits)
}

func (n *inner) writeTo(w *bitstream.Writer) error {
	if err := w.WriteBits(0, 1); err != nil {
		return err
	}
	if err := n.left.writeTo(w); err != nil {
		return err
	}
	return n.right.writeTo(w)
}

// readHeader rebuilds a trie from its pre-order serialization. Recursion
// depth is bounded by the leaf count (at most 257). Weights are not
// transmitted, so rebuilt nodes carry weight zero.
func readHeader(r *bitstream.Reader) (node, error) {
	bit, err := r.ReadBits(1)
	if err != nil {
		return nil, fmt.Errorf("%w: stream ends inside the tree header", ErrTruncated)
	}
	if bit == 0 {
		left, err := readHeader(r)
		if err != nil {
			return nil, err
		}
		right, err := readHeader(r)
		if err != nil {
			return nil, err
		}
		return &inner{left: left, right: right}, nil
	}
	sym, err := r.ReadBits(symbolBits)
	if err != nil {
		return nil, fmt.Errorf("%w: stream ends inside a leaf symbol", ErrTruncated)
	}
	if sym > endOfData {
		return nil, fmt.Errorf("%w: leaf symbol %d out of range", ErrMalformedHeader, sym)
	}
	return &leaf{sym: uint16(sym)}, nil
}
