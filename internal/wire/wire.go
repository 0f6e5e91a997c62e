// Package wire frames hash input so that distinct values never feed
// the same byte stream into a hash state.
//
// Layout (all integers little-endian):
//
//	code:   u64
//	bytes:  len(u64) | data(len)
//	seq:    n(u64) | elem * n
package wire

import (
	"encoding/binary"
	"io"
)

// CodeSize is the width of a hash code on the wire.
const CodeSize = 8

// AppendCode appends code as CodeSize little-endian bytes.
func AppendCode(b []byte, code uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, code)
}

// Hash states (maphash, xxh3, xxhash, fnv) never return write errors,
// so the writers below drop them.

// WriteCode feeds code into w.
func WriteCode(w io.Writer, code uint64) {
	var u8 [CodeSize]byte
	_, _ = w.Write(AppendCode(u8[:0], code))
}

// WriteLen feeds a sequence or byte-string length prefix into w.
func WriteLen(w io.Writer, n int) {
	WriteCode(w, uint64(n))
}

// WriteBytes feeds a length-prefixed byte string into w.
func WriteBytes(w io.Writer, b []byte) {
	WriteLen(w, len(b))
	_, _ = w.Write(b)
}

// WriteString feeds a length-prefixed string into w.
func WriteString(w io.Writer, s string) {
	WriteLen(w, len(s))
	_, _ = io.WriteString(w, s)
}
