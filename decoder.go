package huffpack

import (
	"fmt"

	"github.com/seif/huffpack/bitstream"
)

// decode checks the magic, rebuilds the trie from the header, then walks
// the trie one body bit at a time: 0 descends left, 1 descends right.
// Reaching a byte-valued leaf emits the byte and restarts the walk at the
// root; reaching the endOfData leaf terminates the stream. Running out of
// bits mid-walk is a hard failure, never a partial result.
func decode(r *bitstream.Reader, w *bitstream.Writer) error {
	if err := checkMagic(r); err != nil {
		return err
	}
	root, err := readHeader(r)
	if err != nil {
		return err
	}
	if l, ok := root.(*leaf); ok {
		// A single-leaf trie has a zero-length code, so the body carries
		// no bits at all. The encoder only produces this shape for an
		// empty source, whose sole leaf is the end marker; any other
		// symbol here means a forged header.
		if l.sym == endOfData {
			return w.Close()
		}
		return fmt.Errorf("%w: single-leaf tree for symbol %d", ErrMalformedHeader, l.sym)
	}

	cur := root
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			return fmt.Errorf("%w: stream ends before the end-of-data code", ErrTruncated)
		}
		branch := cur.(*inner)
		if bit == 0 {
			cur = branch.left
		} else {
			cur = branch.right
		}
		l, ok := cur.(*leaf)
		if !ok {
			continue
		}
		if l.sym == endOfData {
			return w.Close()
		}
		if err := w.WriteBits(uint64(l.sym), bitsPerWord); err != nil {
			return err
		}
		cur = root
	}
}
