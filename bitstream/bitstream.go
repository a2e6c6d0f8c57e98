// Package bitstream adapts github.com/icza/bitio to the bit-level stream
// contract the codec is written against: MSB-first group reads with a
// distinguished end-of-data signal, rewinding an input source to its
// start, and flushing a zero-padded final byte on close.
package bitstream

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Reader reads bit groups from an underlying byte source, most
// significant bit first. End of data is reported as io.EOF, including
// when it falls inside a requested group.
type Reader struct {
	src  io.Reader
	br   *bitio.Reader
	read int64
}

// NewReader returns a Reader positioned at the start of src. Reset is
// only available when src also implements io.Seeker.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, br: bitio.NewReader(src)}
}

// ReadBits returns the next n bits as an unsigned integer. n must be at
// most 64. If fewer than n bits remain the result is 0, io.EOF.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	v, err := r.br.ReadBits(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}
		return 0, err
	}
	r.read += int64(n)
	return v, nil
}

// Reset repositions the source to its start and discards any buffered
// bits, so the next ReadBits starts over from the first bit.
func (r *Reader) Reset() error {
	s, ok := r.src.(io.Seeker)
	if !ok {
		return errors.New("bitstream: source is not seekable")
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.br = bitio.NewReader(r.src)
	r.read = 0
	return nil
}

// BitsRead returns the number of bits consumed since the last Reset.
func (r *Reader) BitsRead() int64 { return r.read }

// Writer appends bit groups to an underlying byte sink, most significant
// bit first.
type Writer struct {
	bw      *bitio.Writer
	written int64
}

// NewWriter returns a Writer appending to dst. Close must be called to
// flush the final partial byte.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(dst)}
}

// WriteBits appends the low n bits of value. n must be at most 64.
func (w *Writer) WriteBits(value uint64, n uint8) error {
	if err := w.bw.WriteBits(value, n); err != nil {
		return err
	}
	w.written += int64(n)
	return nil
}

// Close flushes any buffered partial byte, padding it with low-order
// zero bits, and finalizes the output.
func (w *Writer) Close() error { return w.bw.Close() }

// BitsWritten returns the number of bits written, excluding padding.
func (w *Writer) BitsWritten() int64 { return w.written }
