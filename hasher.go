package cachedhash

import (
	"bytes"
	"fmt"
	"hash/maphash"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/unkn0wn-root/cachedhash/codec"
	"github.com/unkn0wn-root/cachedhash/internal/wire"
)

// A Hasher defines how values of type T are fed into a hash State and when
// two values are equal. Hash and Equal must be consistent: if Equal(x, y)
// then Hash must write the same bytes for x and y. Hash must be
// deterministic for a given value.
type Hasher[T any] interface {
	Hash(s State, v T)
	Equal(x, y T) bool
}

// Hashable is implemented by values that hash themselves.
// *CachedHash[T] is Hashable, so wrappers can be nested.
type Hashable[T any] interface {
	HashInto(s State)
	Equal(other T) bool
}

var comparableSeed = maphash.MakeSeed()

// Comparable hashes any comparable T with maphash.Comparable under a
// process-wide seed. Codes are stable within a process only.
// Pointers and channels hash by identity, exactly like ==.
type Comparable[T comparable] struct{}

func (Comparable[T]) Hash(s State, v T) { wire.WriteCode(s, maphash.Comparable(comparableSeed, v)) }
func (Comparable[T]) Equal(x, y T) bool { return x == y }

// Integer hashes integers by their 64-bit two's-complement value.
type Integer[N constraints.Integer] struct{}

func (Integer[N]) Hash(s State, v N) { wire.WriteCode(s, uint64(v)) }
func (Integer[N]) Equal(x, y N) bool { return x == y }

// String hashes a length-prefixed string.
type String struct{}

func (String) Hash(s State, v string) { wire.WriteString(s, v) }
func (String) Equal(x, y string) bool { return x == y }

// Bytes hashes a length-prefixed byte slice. nil and empty are equal.
type Bytes struct{}

func (Bytes) Hash(s State, v []byte) { wire.WriteBytes(s, v) }
func (Bytes) Equal(x, y []byte) bool { return bytes.Equal(x, y) }

// SliceHasher hashes the length, then every element in order.
type SliceHasher[E any] struct {
	Elem Hasher[E]
}

// Slice returns a Hasher for []E built from an element Hasher.
func Slice[E any](elem Hasher[E]) SliceHasher[E] {
	return SliceHasher[E]{Elem: elem}
}

// ComparableSlice is Slice(Comparable[E]{}).
func ComparableSlice[E comparable]() SliceHasher[E] {
	return Slice[E](Comparable[E]{})
}

func (h SliceHasher[E]) Hash(s State, v []E) {
	wire.WriteLen(s, len(v))
	for _, e := range v {
		h.Elem.Hash(s, e)
	}
}

func (h SliceHasher[E]) Equal(x, y []E) bool {
	return slices.EqualFunc(x, y, h.Elem.Equal)
}

// Self delegates to the value's own HashInto and Equal.
type Self[T Hashable[T]] struct{}

func (Self[T]) Hash(s State, v T) { v.HashInto(s) }
func (Self[T]) Equal(x, y T) bool { return x.Equal(y) }

// FuncHasher adapts a pair of functions to Hasher.
type FuncHasher[T any] struct {
	HashFn  func(State, T)
	EqualFn func(x, y T) bool
}

func Func[T any](hash func(State, T), equal func(x, y T) bool) FuncHasher[T] {
	return FuncHasher[T]{HashFn: hash, EqualFn: equal}
}

func (h FuncHasher[T]) Hash(s State, v T) { h.HashFn(s, v) }
func (h FuncHasher[T]) Equal(x, y T) bool { return h.EqualFn(x, y) }

// EncodedHasher hashes the codec's encoding of a value; two values are
// equal when their encodings are. The codec must be deterministic (see
// package codec) and able to encode every T: a failed encode panics with
// *EncodeError.
type EncodedHasher[T any] struct {
	codec codec.Codec[T]
}

func Encoded[T any](c codec.Codec[T]) EncodedHasher[T] {
	return EncodedHasher[T]{codec: c}
}

func (h EncodedHasher[T]) Hash(s State, v T) {
	wire.WriteBytes(s, h.encode(v))
}

func (h EncodedHasher[T]) Equal(x, y T) bool {
	return bytes.Equal(h.encode(x), h.encode(y))
}

func (h EncodedHasher[T]) encode(v T) []byte {
	b, err := h.codec.Encode(v)
	if err != nil {
		panic(&EncodeError{Type: fmt.Sprintf("%T", v), Err: err})
	}
	return b
}
