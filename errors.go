package cachedhash

import (
	"errors"
	"fmt"
)

// ErrNoHasher is returned by NewBuilder when Options.Hasher is nil.
var ErrNoHasher = errors.New("cachedhash: hasher is required")

// EncodeError is the panic value raised by an Encoded hasher whose codec
// failed. Hashing is total, so a codec that cannot encode every T is a
// configuration bug rather than a runtime condition.
type EncodeError struct {
	Type string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cachedhash: encode %s for hashing: %v", e.Type, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
