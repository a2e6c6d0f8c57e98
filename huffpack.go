// Package huffpack implements lossless compression of arbitrary byte
// streams with a Huffman code over a 257-symbol alphabet: the 256 byte
// values plus one end-of-data marker. The code tree is rebuilt for every
// stream and travels explicitly in the stream header, so no tree shape is
// ever assumed to match between the encoder and the decoder.
package huffpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/seif/huffpack/bitstream"
)

const (
	bitsPerWord  = 8
	alphabetSize = 1 << bitsPerWord // literal byte symbols 0-255
	endOfData    = alphabetSize     // pseudo-symbol closing the encoded body
	symbolBits   = 9                // leaf symbol field width, covers 0-256
	magicBits    = 32
)

var (
	// ErrMalformedHeader indicates the stream does not start with the
	// tree-header format magic, or its header describes a tree the
	// encoder could not have produced.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrTruncated indicates the stream ended while further header or
	// body bits were required.
	ErrTruncated = errors.New("truncated stream")
)

// Stats reports the work done by a single Encode or Decode call.
type Stats struct {
	BitsRead    int64 // bits consumed; for Encode, the encoding pass only
	BitsWritten int64 // bits produced, excluding byte-boundary padding
}

// BytesWritten returns the number of whole output bytes, padding included.
func (s Stats) BytesWritten() int64 {
	return (s.BitsWritten + 7) / bitsPerWord
}

// Compress encodes src and returns the compressed stream.
func Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Encode(bytes.NewReader(src), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes a stream produced by Compress or Encode and returns
// the original bytes. It fails with ErrMalformedHeader or ErrTruncated on
// corrupted input; a partial result is never returned.
func Decompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decode(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode compresses src into dst. src must be positioned at its start;
// compression reads it twice (frequency count, then encoding), rewinding
// in between, which is why a plain io.Reader is not enough.
func Encode(src io.ReadSeeker, dst io.Writer) (Stats, error) {
	r := bitstream.NewReader(src)
	w := bitstream.NewWriter(dst)
	if err := encode(r, w); err != nil {
		return Stats{}, err
	}
	return Stats{BitsRead: r.BitsRead(), BitsWritten: w.BitsWritten()}, nil
}

// Decode decompresses a single compressed stream from src into dst.
// Trailing padding bits of the final byte are left unread.
func Decode(src io.Reader, dst io.Writer) (Stats, error) {
	r := bitstream.NewReader(src)
	w := bitstream.NewWriter(dst)
	if err := decode(r, w); err != nil {
		return Stats{}, err
	}
	return Stats{BitsRead: r.BitsRead(), BitsWritten: w.BitsWritten()}, nil
}
