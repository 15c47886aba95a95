package palette

import "gopkg.in/yaml.v3"

// Codec converts one value type to and from a tree node.
//
// Encode must produce a fresh node owned by the caller. Decode must not retain
// n beyond the call and must never return a partially populated value: on
// failure it returns the zero value of T alongside the error.
type Codec[T any] interface {
	// Encode writes v into a new node.
	Encode(v T) (*yaml.Node, error)

	// Decode reads a value of type T from n.
	Decode(n *yaml.Node) (T, error)
}

// CodecFuncs adapts a pair of functions to the Codec interface.
type CodecFuncs[T any] struct {
	EncodeFunc func(T) (*yaml.Node, error)
	DecodeFunc func(*yaml.Node) (T, error)
}

// Encode calls f.EncodeFunc(v).
func (f CodecFuncs[T]) Encode(v T) (*yaml.Node, error) {
	return f.EncodeFunc(v)
}

// Decode calls f.DecodeFunc(n).
func (f CodecFuncs[T]) Decode(n *yaml.Node) (T, error) {
	return f.DecodeFunc(n)
}
