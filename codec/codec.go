// Package codec provides deterministic encodings of Go values.
//
// cachedhash.Encoded hashes the bytes a Codec produces, so a Codec used for
// hashing MUST be deterministic: equal values must always encode to the
// same bytes (sorted map keys, canonical number forms).
package codec

// Codec encodes/decodes values V to []byte.
// Hashing only calls Encode; Decode is kept for round-trip checks.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
