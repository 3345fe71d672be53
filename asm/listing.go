package asm

import (
	"io"
)

// Entry is one emitted byte: its program address, its value, and the source
// line it came from. Operand bytes carry the line number of their
// instruction and no text.
type Entry struct {
	Addr   int
	Byte   byte
	LineNo int
	Text   string
}

// Listing is the result of a successful assembly: every emitted byte in
// program-address order.
type Listing struct {
	Entries []Entry
	Base    byte // base address offset in effect
}

// Bytes returns the raw output image in emission order.
func (l *Listing) Bytes() (out []byte) {
	out = make([]byte, 0, len(l.Entries))
	for _, e := range l.Entries {
		out = append(out, e.Byte)
	}
	return
}

// Size is the number of bytes emitted, net of the base address offset.
func (l *Listing) Size() int {
	return len(l.Entries)
}

// At returns the entry emitted at a program address, or nil.
func (l *Listing) At(addr int) *Entry {
	for n := range l.Entries {
		if l.Entries[n].Addr == addr {
			return &l.Entries[n]
		}
	}

	return nil
}

// WriteTo writes the raw output image to w.
func (l *Listing) WriteTo(w io.Writer) (n int64, err error) {
	written, err := w.Write(l.Bytes())
	n = int64(written)
	return
}
