package palette

import (
	"bytes"
	"reflect"

	"gopkg.in/yaml.v3"
)

// TextCodec stores a string as a !!str scalar.
type TextCodec struct{}

// Encode returns a string scalar holding s.
func (TextCodec) Encode(s string) (*yaml.Node, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: s}, nil
}

// Decode returns the text of a scalar node. A null scalar reads as "".
func (TextCodec) Decode(n *yaml.Node) (string, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", newDecodeError(ErrShapeMismatch, "string", "", nil)
	}
	if n.ShortTag() == tagNull {
		return "", nil
	}
	return n.Value, nil
}

// BytesCodec stores a byte slice as a !!binary scalar with no padding or
// compression beyond the base64 the tag requires.
type BytesCodec struct{}

// Encode returns a blob scalar holding b.
func (BytesCodec) Encode(b []byte) (*yaml.Node, error) {
	return NewBlob(b), nil
}

// Decode returns the payload of a scalar node. The result is never nil.
func (BytesCodec) Decode(n *yaml.Node) ([]byte, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return nil, newDecodeError(ErrShapeMismatch, "[]byte", "", nil)
	}
	b, err := blobBytes(n)
	if err != nil {
		return nil, newDecodeError(ErrShapeMismatch, "[]byte", "", err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// BufferCodec stores a streamable buffer through BytesCodec.
type BufferCodec struct{}

// Encode writes the unread portion of buf. A nil buffer encodes as an empty blob.
func (BufferCodec) Encode(buf *bytes.Buffer) (*yaml.Node, error) {
	if buf == nil {
		return BytesCodec{}.Encode(nil)
	}
	return BytesCodec{}.Encode(buf.Bytes())
}

// Decode returns a buffer positioned at the start of the stored bytes.
func (BufferCodec) Decode(n *yaml.Node) (*bytes.Buffer, error) {
	b, err := BytesCodec{}.Decode(n)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(b), nil
}

// VariantCodec stores a dynamically typed primitive. It is the codec for any.
//
// Decode accepts every scalar and yields its resolved value: string, int,
// float64, bool, or nil for a null scalar. Integers too large for int come
// back as int64 or uint64. Mappings and sequences are rejected.
type VariantCodec struct{}

// Encode returns a scalar holding v, which must be nil or a primitive.
func (VariantCodec) Encode(v any) (*yaml.Node, error) {
	if v != nil && !isPrimitive(reflect.TypeOf(v).Kind()) {
		return nil, newEncodeError(ErrShapeMismatch, "any", nil)
	}
	n, err := NewScalar(v)
	if err != nil {
		return nil, newEncodeError(ErrShapeMismatch, "any", err)
	}
	return n, nil
}

// Decode returns the resolved value of a scalar node.
func (VariantCodec) Decode(n *yaml.Node) (any, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return nil, newDecodeError(ErrShapeMismatch, "any", "", nil)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, newDecodeError(ErrShapeMismatch, "any", "", err)
	}
	return v, nil
}
