package bitstream

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestWriterPacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBits(0b101, 3); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.WriteBits(0b1111, 4); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := w.BitsWritten(); got != 7 {
		t.Fatalf("BitsWritten = %d, want 7", got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// 101 1111 + one zero padding bit = 0b10111110
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0b10111110 {
		t.Fatalf("packed bytes = %08b, want 10111110", got)
	}
}

func TestWriterZeroLengthGroup(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBits(0, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("zero-length writes produced %d bytes", buf.Len())
	}
}

func TestReaderGroups(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0b10111110}))
	if v, err := r.ReadBits(3); err != nil || v != 0b101 {
		t.Fatalf("ReadBits(3) = %d, %v; want 5, nil", v, err)
	}
	if v, err := r.ReadBits(4); err != nil || v != 0b1111 {
		t.Fatalf("ReadBits(4) = %d, %v; want 15, nil", v, err)
	}
	if v, err := r.ReadBits(1); err != nil || v != 0 {
		t.Fatalf("ReadBits(1) = %d, %v; want 0, nil", v, err)
	}
	if got := r.BitsRead(); got != 8 {
		t.Fatalf("BitsRead = %d, want 8", got)
	}
	if _, err := r.ReadBits(1); !errors.Is(err, io.EOF) {
		t.Fatalf("read past end: %v, want io.EOF", err)
	}
}

func TestReaderEndOfDataMidGroup(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff}))
	if v, err := r.ReadBits(4); err != nil || v != 0xf {
		t.Fatalf("ReadBits(4) = %d, %v", v, err)
	}
	// Only 4 bits remain; a group of 8 must signal end of data.
	if _, err := r.ReadBits(8); !errors.Is(err, io.EOF) {
		t.Fatalf("short group: %v, want io.EOF", err)
	}
}

func TestReaderReset(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xa5, 0x3c}))
	first, err := r.ReadBits(16)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if err := r.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := r.BitsRead(); got != 0 {
		t.Fatalf("BitsRead after reset = %d, want 0", got)
	}
	second, err := r.ReadBits(16)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if first != second {
		t.Fatalf("passes differ: %#x vs %#x", first, second)
	}
}

func TestResetRequiresSeeker(t *testing.T) {
	r := NewReader(io.MultiReader(bytes.NewReader([]byte{1})))
	if _, err := r.ReadBits(8); err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := r.Reset(); err == nil {
		t.Fatal("Reset on a non-seekable source must fail")
	}
}
