package palette

import "gopkg.in/yaml.v3"

// Color is an RGBA colour with 8-bit channels stored as ints.
type Color struct {
	Red   int `node:"red" json:"red" msgpack:"red" bson:"red"`
	Green int `node:"green" json:"green" msgpack:"green" bson:"green"`
	Blue  int `node:"blue" json:"blue" msgpack:"blue" bson:"blue"`
	Alpha int `node:"alpha" json:"alpha" msgpack:"alpha" bson:"alpha"`
}

var colorCodec = NewStructCodec[Color]()

// RGBA returns a colour from its four channels.
func RGBA(r, g, b, a int) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: a}
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return colorCodec.Encode(c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	return decodeInto(colorCodec, n, c)
}
