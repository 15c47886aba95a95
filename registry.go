package palette

import (
	"bytes"
	"context"
	"reflect"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	registry   = builtins()
	registryMu sync.RWMutex
)

// builtins returns the codec set every registry starts from.
func builtins() map[reflect.Type]any {
	return map[reflect.Type]any{
		reflect.TypeFor[string]():        TextCodec{},
		reflect.TypeFor[[]byte]():        BytesCodec{},
		reflect.TypeFor[*bytes.Buffer](): BufferCodec{},
		reflect.TypeFor[any]():           VariantCodec{},
		reflect.TypeFor[Color]():         colorCodec,
		reflect.TypeFor[Font]():          fontCodec,
		reflect.TypeFor[Point]():         pointCodec,
		reflect.TypeFor[PointF]():        pointFCodec,
		reflect.TypeFor[Rect]():          rectCodec,
		reflect.TypeFor[RectF]():         rectFCodec,
		reflect.TypeFor[Size]():          sizeCodec,
		reflect.TypeFor[SizeF]():         sizeFCodec,
		reflect.TypeFor[Pixmap]():        pixmapCodec,
		reflect.TypeFor[Image]():         imageCodec,
	}
}

// Register installs c as the codec for T, replacing any existing codec.
// Safe for concurrent use.
func Register[T any](c Codec[T]) {
	typ := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[typ] = c
}

// Lookup returns the codec registered for T.
func Lookup[T any]() (Codec[T], bool) {
	typ := reflect.TypeFor[T]()

	registryMu.RLock()
	cached, ok := registry[typ]
	registryMu.RUnlock()

	if !ok {
		return nil, false
	}
	c, ok := cached.(Codec[T])
	return c, ok
}

// Encode writes v into a new node using the codec registered for T.
func Encode[T any](v T) (*yaml.Node, error) {
	typeName := reflect.TypeFor[T]().String()
	start := time.Now()

	c, ok := Lookup[T]()
	if !ok {
		err := newEncodeError(ErrUnregistered, typeName, nil)
		emitEncodeComplete(context.Background(), typeName, time.Since(start), err)
		return nil, err
	}

	n, err := c.Encode(v)
	emitEncodeComplete(context.Background(), typeName, time.Since(start), err)
	return n, err
}

// Decode reads a value of type T from n using the codec registered for T.
func Decode[T any](n *yaml.Node) (T, error) {
	typeName := reflect.TypeFor[T]().String()
	start := time.Now()

	c, ok := Lookup[T]()
	if !ok {
		var zero T
		err := newDecodeError(ErrUnregistered, typeName, "", nil)
		emitDecodeComplete(context.Background(), typeName, time.Since(start), err)
		return zero, err
	}

	v, err := c.Decode(n)
	emitDecodeComplete(context.Background(), typeName, time.Since(start), err)
	return v, err
}

// Reset restores the registry to the builtin codec set.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = builtins()
}
