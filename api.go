// Package palette stores GUI value types in YAML documents.
//
// The package converts between plain value structs (colours, fonts, points,
// rectangles, sizes, images) and the gopkg.in/yaml.v3 tree node, so
// application code can keep these values in human-readable documents without
// writing field-by-field conversion at every call site.
//
// # Codecs
//
// Each supported type has a Codec: an Encode/Decode pair between the value
// and a *yaml.Node. Codecs are registered against their Go type and reached
// through the generic entry points:
//
//	n, err := palette.Encode(palette.RGBA(10, 20, 30, 255))
//	c, err := palette.Decode[palette.Color](n)
//
// The struct types also implement yaml.Marshaler and yaml.Unmarshaler, so they
// can sit directly inside any document struct:
//
//	type Theme struct {
//	    Background palette.Color `yaml:"background"`
//	    Body       palette.Font  `yaml:"body"`
//	}
//
// # Wire Shapes
//
//   - any: scalar resolved to string, int, float64, bool or nil
//   - string: !!str scalar
//   - []byte, *bytes.Buffer: !!binary scalar, base64 of exactly the bytes
//   - Color: mapping {red, green, blue, alpha}
//   - Point, PointF: mapping {x, y}
//   - Rect, RectF: mapping {left, top, width, height}
//   - Size, SizeF: mapping {width, height}
//   - Font: mapping of 20 keys ("family", "point size", "letter spacing type", ...)
//   - Pixmap, Image: !!binary scalar holding a PNG
//
// # Errors
//
// Decoding never fabricates a value. Failures wrap one of:
//
//   - ErrShapeMismatch: node is not the expected shape, or a scalar does not parse
//   - ErrMissingKey: a mapping lacks a required key
//   - ErrCodec: PNG encoding or decoding failed
//   - ErrUnregistered: no codec for the requested type
//
// Use errors.Is to branch on the sentinel and errors.As with *DecodeError to
// recover the failing key.
//
// # Parsing
//
// Parse, ParseBytes, ParseFile and ParseReader hand input to yaml.v3 and return
// the root node of the first document. Parser errors are returned as-is.
//
// # Document Formats
//
// The value types also round-trip through whole-document formats, available
// as subpackages implementing Format:
//
//   - yaml - YAML encoding (application/yaml)
//   - json - JSON encoding (application/json)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package palette
