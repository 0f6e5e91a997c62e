package wire

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestAppendCodeLittleEndian(t *testing.T) {
	cases := []uint64{0, 1, 42, math.MaxUint64}
	for _, code := range cases {
		prefix := []byte{0xFF}
		enc := AppendCode(prefix, code)
		if len(enc) != 1+CodeSize || enc[0] != 0xFF {
			t.Fatalf("AppendCode must append after the prefix: %x", enc)
		}
		if got := binary.LittleEndian.Uint64(enc[1:]); got != code {
			t.Fatalf("AppendCode(%d) decodes to %d", code, got)
		}
	}
}

func TestWriteCodeMatchesAppend(t *testing.T) {
	var buf bytes.Buffer
	WriteCode(&buf, 0xDEADBEEF)
	if !bytes.Equal(buf.Bytes(), AppendCode(nil, 0xDEADBEEF)) {
		t.Fatalf("WriteCode and AppendCode disagree: %x", buf.Bytes())
	}
}

func TestLengthPrefixSeparatesConcatenations(t *testing.T) {
	var a, b bytes.Buffer
	WriteString(&a, "ab")
	WriteString(&a, "c")
	WriteString(&b, "a")
	WriteString(&b, "bc")
	if bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("framed streams must differ: %x", a.Bytes())
	}
}

func TestWriteBytesAndStringAgree(t *testing.T) {
	var a, b bytes.Buffer
	WriteBytes(&a, []byte("hello"))
	WriteString(&b, "hello")
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("bytes and string framing differ: %x vs %x", a.Bytes(), b.Bytes())
	}
}

func TestEmptyAndNilBytesFrameTheSame(t *testing.T) {
	var a, b bytes.Buffer
	WriteBytes(&a, nil)
	WriteBytes(&b, []byte{})
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("nil and empty framing differ")
	}
	if a.Len() != CodeSize {
		t.Fatalf("empty frame len=%d want %d", a.Len(), CodeSize)
	}
}
