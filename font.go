package palette

import "gopkg.in/yaml.v3"

// Capitalization selects the case rendering of a font.
type Capitalization int

const (
	MixedCase Capitalization = iota
	AllUppercase
	AllLowercase
	SmallCaps
	Capitalize
)

// HintingPreference selects how aggressively glyphs are hinted.
type HintingPreference int

const (
	PreferDefaultHinting HintingPreference = iota
	PreferNoHinting
	PreferVerticalHinting
	PreferFullHinting
)

// SpacingType selects how LetterSpacing is interpreted.
type SpacingType int

const (
	// PercentageSpacing scales character spacing; 100 leaves it unchanged.
	PercentageSpacing SpacingType = iota
	// AbsoluteSpacing adds a fixed amount of space after each character.
	AbsoluteSpacing
)

// Style is the slant of a font.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// StyleHint guides font matching when the family is unavailable.
type StyleHint int

const (
	SansSerif StyleHint = iota
	Serif
	TypeWriter
	Decorative
	System
	AnyStyle
	Cursive
	Monospace
	Fantasy
)

// StyleStrategy is a bit set of font matching and antialiasing preferences.
type StyleStrategy int

const (
	PreferDefault       StyleStrategy = 0x0001
	PreferBitmap        StyleStrategy = 0x0002
	PreferDevice        StyleStrategy = 0x0004
	PreferOutline       StyleStrategy = 0x0008
	ForceOutline        StyleStrategy = 0x0010
	PreferMatch         StyleStrategy = 0x0020
	PreferQuality       StyleStrategy = 0x0040
	PreferAntialias     StyleStrategy = 0x0080
	NoAntialias         StyleStrategy = 0x0100
	NoSubpixelAntialias StyleStrategy = 0x0800
	PreferNoShaping     StyleStrategy = 0x1000
	NoFontMerging       StyleStrategy = 0x8000
)

// Weight is the stroke weight of a font on the 100-900 scale.
type Weight int

const (
	Thin       Weight = 100
	ExtraLight Weight = 200
	Light      Weight = 300
	Normal     Weight = 400
	Medium     Weight = 500
	DemiBold   Weight = 600
	Bold       Weight = 700
	ExtraBold  Weight = 800
	Black      Weight = 900
)

// Font describes a font request.
//
// Enumerated fields are stored as plain ints and are not range checked; a
// value outside the constants above passes through unchanged.
//
// StyleName selects a named face ("Light Italic") and, when set, takes
// precedence over Weight and Style during matching. An empty name defers to them.
//
// There is deliberately no pixel size: a font carries either a point size or a
// pixel size, and setting one clears the other on the toolkit side. Only the
// point size is stored, so decoding always restores a point-sized font.
type Font struct {
	Family            string            `node:"family" json:"family" msgpack:"family" bson:"family"`
	Bold              bool              `node:"bold" json:"bold" msgpack:"bold" bson:"bold"`
	Italic            bool              `node:"italic" json:"italic" msgpack:"italic" bson:"italic"`
	Underline         bool              `node:"underline" json:"underline" msgpack:"underline" bson:"underline"`
	Strikeout         bool              `node:"strikeout" json:"strikeout" msgpack:"strikeout" bson:"strikeout"`
	Overline          bool              `node:"overline" json:"overline" msgpack:"overline" bson:"overline"`
	FixedPitch        bool              `node:"fixedpitch" json:"fixedpitch" msgpack:"fixedpitch" bson:"fixedpitch"`
	Kerning           bool              `node:"kerning" json:"kerning" msgpack:"kerning" bson:"kerning"`
	Capitalization    Capitalization    `node:"capitalization" json:"capitalization" msgpack:"capitalization" bson:"capitalization"`
	HintingPreference HintingPreference `node:"hinting preference" json:"hinting preference" msgpack:"hinting preference" bson:"hinting preference"`
	LetterSpacingType SpacingType       `node:"letter spacing type" json:"letter spacing type" msgpack:"letter spacing type" bson:"letter spacing type"`
	Style             Style             `node:"style" json:"style" msgpack:"style" bson:"style"`
	StyleHint         StyleHint         `node:"style hint" json:"style hint" msgpack:"style hint" bson:"style hint"`
	StyleName         string            `node:"style name" json:"style name" msgpack:"style name" bson:"style name"`
	StyleStrategy     StyleStrategy     `node:"style strategy" json:"style strategy" msgpack:"style strategy" bson:"style strategy"`
	Weight            Weight            `node:"weight" json:"weight" msgpack:"weight" bson:"weight"`
	PointSize         int               `node:"point size" json:"point size" msgpack:"point size" bson:"point size"`
	Stretch           int               `node:"stretch" json:"stretch" msgpack:"stretch" bson:"stretch"`
	WordSpacing       int               `node:"word spacing" json:"word spacing" msgpack:"word spacing" bson:"word spacing"`
	LetterSpacing     float64           `node:"letter spacing" json:"letter spacing" msgpack:"letter spacing" bson:"letter spacing"`
}

var fontCodec = NewStructCodec[Font]()

// DefaultFont returns a regular 12pt font with unchanged letter spacing.
func DefaultFont(family string) Font {
	return Font{
		Family:            family,
		Kerning:           true,
		HintingPreference: PreferDefaultHinting,
		LetterSpacingType: PercentageSpacing,
		LetterSpacing:     100,
		StyleHint:         AnyStyle,
		StyleStrategy:     PreferDefault,
		Weight:            Normal,
		PointSize:         12,
		Stretch:           100,
	}
}

// SetLetterSpacing sets the spacing value together with its interpretation.
// The two are stored under separate keys but decode only ever restores both.
func (f *Font) SetLetterSpacing(kind SpacingType, spacing float64) {
	f.LetterSpacingType = kind
	f.LetterSpacing = spacing
}

// MarshalYAML implements yaml.Marshaler.
func (f Font) MarshalYAML() (any, error) {
	return fontCodec.Encode(f)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Font) UnmarshalYAML(n *yaml.Node) error {
	return decodeInto(fontCodec, n, f)
}
