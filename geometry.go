package palette

import "gopkg.in/yaml.v3"

// Point is an integer 2D point.
type Point struct {
	X int `node:"x" json:"x" msgpack:"x" bson:"x"`
	Y int `node:"y" json:"y" msgpack:"y" bson:"y"`
}

// PointF is a floating point 2D point.
type PointF struct {
	X float64 `node:"x" json:"x" msgpack:"x" bson:"x"`
	Y float64 `node:"y" json:"y" msgpack:"y" bson:"y"`
}

// Rect is an integer rectangle anchored at its top-left corner.
type Rect struct {
	Left   int `node:"left" json:"left" msgpack:"left" bson:"left"`
	Top    int `node:"top" json:"top" msgpack:"top" bson:"top"`
	Width  int `node:"width" json:"width" msgpack:"width" bson:"width"`
	Height int `node:"height" json:"height" msgpack:"height" bson:"height"`
}

// RectF is a floating point rectangle anchored at its top-left corner.
type RectF struct {
	Left   float64 `node:"left" json:"left" msgpack:"left" bson:"left"`
	Top    float64 `node:"top" json:"top" msgpack:"top" bson:"top"`
	Width  float64 `node:"width" json:"width" msgpack:"width" bson:"width"`
	Height float64 `node:"height" json:"height" msgpack:"height" bson:"height"`
}

// Size is an integer width and height.
type Size struct {
	Width  int `node:"width" json:"width" msgpack:"width" bson:"width"`
	Height int `node:"height" json:"height" msgpack:"height" bson:"height"`
}

// SizeF is a floating point width and height.
type SizeF struct {
	Width  float64 `node:"width" json:"width" msgpack:"width" bson:"width"`
	Height float64 `node:"height" json:"height" msgpack:"height" bson:"height"`
}

var (
	pointCodec  = NewStructCodec[Point]()
	pointFCodec = NewStructCodec[PointF]()
	rectCodec   = NewStructCodec[Rect]()
	rectFCodec  = NewStructCodec[RectF]()
	sizeCodec   = NewStructCodec[Size]()
	sizeFCodec  = NewStructCodec[SizeF]()
)

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Size returns the rectangle's width and height.
func (r RectF) Size() SizeF {
	return SizeF{Width: r.Width, Height: r.Height}
}

// TopLeft returns the rectangle's origin.
func (r RectF) TopLeft() PointF {
	return PointF{X: r.Left, Y: r.Top}
}

func (p Point) MarshalYAML() (any, error) { return pointCodec.Encode(p) }

func (p *Point) UnmarshalYAML(n *yaml.Node) error { return decodeInto(pointCodec, n, p) }

func (p PointF) MarshalYAML() (any, error) { return pointFCodec.Encode(p) }

func (p *PointF) UnmarshalYAML(n *yaml.Node) error { return decodeInto(pointFCodec, n, p) }

func (r Rect) MarshalYAML() (any, error) { return rectCodec.Encode(r) }

func (r *Rect) UnmarshalYAML(n *yaml.Node) error { return decodeInto(rectCodec, n, r) }

func (r RectF) MarshalYAML() (any, error) { return rectFCodec.Encode(r) }

func (r *RectF) UnmarshalYAML(n *yaml.Node) error { return decodeInto(rectFCodec, n, r) }

func (s Size) MarshalYAML() (any, error) { return sizeCodec.Encode(s) }

func (s *Size) UnmarshalYAML(n *yaml.Node) error { return decodeInto(sizeCodec, n, s) }

func (s SizeF) MarshalYAML() (any, error) { return sizeFCodec.Encode(s) }

func (s *SizeF) UnmarshalYAML(n *yaml.Node) error { return decodeInto(sizeFCodec, n, s) }

// decodeInto decodes n with c and stores the result in dst only on success.
func decodeInto[T any](c Codec[T], n *yaml.Node, dst *T) error {
	v, err := c.Decode(n)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
