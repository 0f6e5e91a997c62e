package codec

import "google.golang.org/protobuf/proto"

var deterministic = proto.MarshalOptions{Deterministic: true}

// Protobuf encodes messages with deterministic marshaling (sorted map entries).
// Deterministic output is stable within one binary; it is not a canonical
// form across protobuf library versions.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return deterministic.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
