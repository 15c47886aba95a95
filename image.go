package palette

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/draw"
	"image/png"

	"gopkg.in/yaml.v3"
)

var errNullImage = errors.New("null image")

// Pixmap is a raster of any pixel model. It is the intermediate form every
// image passes through on its way to and from PNG.
type Pixmap struct {
	image.Image
}

// IsNull reports whether p holds no pixels.
func (p Pixmap) IsNull() bool {
	return p.Image == nil || p.Bounds().Empty()
}

// Image is a non-premultiplied 8-bit RGBA raster.
//
// Only the pixel buffer survives a round trip. Colour space and any other
// metadata outside the buffer are not stored, and the bounds are rebased to
// the origin.
type Image struct {
	*image.NRGBA
}

// NewImage returns a transparent image of the given size.
func NewImage(width, height int) Image {
	return Image{NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// IsNull reports whether img holds no pixels.
func (img Image) IsNull() bool {
	return img.NRGBA == nil || img.Rect.Empty()
}

// Pixmap returns img as its intermediate form.
func (img Image) Pixmap() Pixmap {
	if img.NRGBA == nil {
		return Pixmap{}
	}
	return Pixmap{Image: img.NRGBA}
}

// ImageFrom converts any pixmap into an Image, copying pixels only when the
// pixel model differs.
func ImageFrom(p Pixmap) Image {
	if p.IsNull() {
		return Image{}
	}
	if nrgba, ok := p.Image.(*image.NRGBA); ok {
		return Image{NRGBA: nrgba}
	}
	b := p.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, p.Image, b.Min, draw.Src)
	return Image{NRGBA: dst}
}

// ImageOption configures an image codec.
type ImageOption func(*png.Encoder)

// WithCompression sets the PNG compression level used on encode.
// Decoding is unaffected.
func WithCompression(level png.CompressionLevel) ImageOption {
	return func(e *png.Encoder) {
		e.CompressionLevel = level
	}
}

// PixmapCodec stores a Pixmap as a PNG payload inside a blob scalar.
type PixmapCodec struct {
	encoder png.Encoder
}

// NewPixmapCodec creates a PixmapCodec with the given options applied.
func NewPixmapCodec(opts ...ImageOption) *PixmapCodec {
	c := &PixmapCodec{}
	for _, opt := range opts {
		opt(&c.encoder)
	}
	return c
}

// Encode re-encodes p as PNG on every call. A null p is written as an empty
// blob, which Decode rejects.
func (c *PixmapCodec) Encode(p Pixmap) (*yaml.Node, error) {
	return c.encode(p, "palette.Pixmap")
}

// Decode decompresses the PNG payload of n.
// It fails with ErrCodec when the payload is not a PNG or holds no pixels.
func (c *PixmapCodec) Decode(n *yaml.Node) (Pixmap, error) {
	return c.decode(n, "palette.Pixmap")
}

func (c *PixmapCodec) encode(p Pixmap, typeName string) (*yaml.Node, error) {
	data, err := c.compress(p, typeName)
	if err != nil {
		return nil, err
	}
	return NewBlob(data), nil
}

// compress writes p as PNG into a buffer scoped to the call. A null p has no
// PNG form and compresses to an empty payload.
func (c *PixmapCodec) compress(p Pixmap, typeName string) ([]byte, error) {
	if p.IsNull() {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	if err := c.encoder.Encode(&buf, p.Image); err != nil {
		return nil, newEncodeError(ErrCodec, typeName, err)
	}
	return buf.Bytes(), nil
}

func (c *PixmapCodec) decode(n *yaml.Node, typeName string) (Pixmap, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return Pixmap{}, newDecodeError(ErrShapeMismatch, typeName, "", nil)
	}
	data, err := pngPayload(n)
	if err != nil {
		return Pixmap{}, newDecodeError(ErrShapeMismatch, typeName, "", err)
	}
	return decompress(data, typeName)
}

// pngPayload extracts the payload of an image scalar. Untagged scalars are
// read as base64 when they decode as such, so hand-written documents need not
// carry the !!binary tag.
func pngPayload(n *yaml.Node) ([]byte, error) {
	if n.ShortTag() == tagBinary {
		return blobBytes(n)
	}
	if data, err := base64.StdEncoding.DecodeString(n.Value); err == nil {
		return data, nil
	}
	return []byte(n.Value), nil
}

// decompress reads a PNG payload. Success means the result is not null.
func decompress(data []byte, typeName string) (Pixmap, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Pixmap{}, newDecodeError(ErrCodec, typeName, "", err)
	}
	p := Pixmap{Image: img}
	if p.IsNull() {
		return Pixmap{}, newDecodeError(ErrCodec, typeName, "", errNullImage)
	}
	return p, nil
}

// ImageCodec stores an Image by way of its Pixmap form.
type ImageCodec struct {
	pixmap *PixmapCodec
}

// NewImageCodec creates an ImageCodec with the given options applied.
func NewImageCodec(opts ...ImageOption) *ImageCodec {
	return &ImageCodec{pixmap: NewPixmapCodec(opts...)}
}

// Encode converts img to a Pixmap and stores it as PNG.
func (c *ImageCodec) Encode(img Image) (*yaml.Node, error) {
	return c.pixmap.encode(img.Pixmap(), "palette.Image")
}

// Decode restores a Pixmap from n and converts it to an Image.
func (c *ImageCodec) Decode(n *yaml.Node) (Image, error) {
	p, err := c.pixmap.decode(n, "palette.Image")
	if err != nil {
		return Image{}, err
	}
	return ImageFrom(p), nil
}

var (
	pixmapCodec = NewPixmapCodec()
	imageCodec  = NewImageCodec()
)

// MarshalYAML implements yaml.Marshaler.
func (p Pixmap) MarshalYAML() (any, error) { return pixmapCodec.Encode(p) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pixmap) UnmarshalYAML(n *yaml.Node) error { return decodeInto[Pixmap](pixmapCodec, n, p) }

// MarshalYAML implements yaml.Marshaler.
func (img Image) MarshalYAML() (any, error) { return imageCodec.Encode(img) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (img *Image) UnmarshalYAML(n *yaml.Node) error { return decodeInto[Image](imageCodec, n, img) }
