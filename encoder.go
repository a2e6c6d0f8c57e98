package huffpack

import (
	"errors"
	"io"

	"github.com/seif/huffpack/bitstream"
)

// encode runs the two-pass compression pipeline: count frequencies,
// build and emit the trie behind the format magic, rewind the source,
// then emit one code per source byte followed by the endOfData code.
// Closing the writer pads the final partial byte with zero bits.
func encode(r *bitstream.Reader, w *bitstream.Writer) error {
	counts, err := countFrequencies(r)
	if err != nil {
		return err
	}
	root := buildTree(counts)
	table := buildCodeTable(root)

	if err := writeMagic(w); err != nil {
		return err
	}
	if err := root.writeTo(w); err != nil {
		return err
	}

	if err := r.Reset(); err != nil {
		return err
	}
	for {
		v, err := r.ReadBits(bitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		c := table[v]
		if err := w.WriteBits(c.bits, c.length); err != nil {
			return err
		}
	}
	eod := table[endOfData]
	if err := w.WriteBits(eod.bits, eod.length); err != nil {
		return err
	}
	return w.Close()
}
