// Package testing provides fixtures for palette tests.
package testing

import (
	"image/color"
	"testing"

	"github.com/zoobzio/palette"
)

// TestColor returns the colour used across scenario tests.
func TestColor() palette.Color {
	return palette.RGBA(10, 20, 30, 255)
}

// TestFont returns a font with every field set away from its zero value.
func TestFont() palette.Font {
	return palette.Font{
		Family:            "DejaVu Sans",
		Bold:              true,
		Italic:            true,
		Underline:         true,
		Strikeout:         true,
		Overline:          true,
		FixedPitch:        true,
		Kerning:           true,
		Capitalization:    palette.SmallCaps,
		HintingPreference: palette.PreferFullHinting,
		LetterSpacingType: palette.AbsoluteSpacing,
		Style:             palette.StyleItalic,
		StyleHint:         palette.Serif,
		StyleName:         "Bold Italic",
		StyleStrategy:     palette.PreferQuality,
		Weight:            palette.Bold,
		PointSize:         13,
		Stretch:           110,
		WordSpacing:       2,
		LetterSpacing:     0.75,
	}
}

// TestImage returns a w×h image whose pixels all differ, alpha included.
func TestImage(tb testing.TB, w, h int) palette.Image {
	tb.Helper()
	if w <= 0 || h <= 0 {
		tb.Fatalf("TestImage(%d, %d): size must be positive", w, h)
	}
	img := palette.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(i * 16),
				G: uint8(255 - i*8),
				B: uint8(i*37 + 11),
				A: uint8(255 - i*13),
			})
		}
	}
	return img
}

// SamePixels reports whether two images hold identical pixel data,
// ignoring where their bounds start.
func SamePixels(a, b palette.Image) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() == b.IsNull()
	}
	if a.Rect.Dx() != b.Rect.Dx() || a.Rect.Dy() != b.Rect.Dy() {
		return false
	}
	for y := 0; y < a.Rect.Dy(); y++ {
		for x := 0; x < a.Rect.Dx(); x++ {
			if a.NRGBAAt(a.Rect.Min.X+x, a.Rect.Min.Y+y) != b.NRGBAAt(b.Rect.Min.X+x, b.Rect.Min.Y+y) {
				return false
			}
		}
	}
	return true
}

// Layout is a document embedding every mapping-shaped value type.
type Layout struct {
	Title    string         `yaml:"title" json:"title" msgpack:"title" bson:"title"`
	Color    palette.Color  `yaml:"color" json:"color" msgpack:"color" bson:"color"`
	Font     palette.Font   `yaml:"font" json:"font" msgpack:"font" bson:"font"`
	Origin   palette.Point  `yaml:"origin" json:"origin" msgpack:"origin" bson:"origin"`
	Anchor   palette.PointF `yaml:"anchor" json:"anchor" msgpack:"anchor" bson:"anchor"`
	Frame    palette.Rect   `yaml:"frame" json:"frame" msgpack:"frame" bson:"frame"`
	Viewport palette.RectF  `yaml:"viewport" json:"viewport" msgpack:"viewport" bson:"viewport"`
	Min      palette.Size   `yaml:"min" json:"min" msgpack:"min" bson:"min"`
	Scale    palette.SizeF  `yaml:"scale" json:"scale" msgpack:"scale" bson:"scale"`
}

// TestLayout returns a Layout with every value populated.
func TestLayout() Layout {
	return Layout{
		Title:    "main window",
		Color:    TestColor(),
		Font:     TestFont(),
		Origin:   palette.Point{X: 40, Y: -12},
		Anchor:   palette.PointF{X: 0.5, Y: 0.25},
		Frame:    palette.Rect{Left: 0, Top: 0, Width: 100, Height: 50},
		Viewport: palette.RectF{Left: -1.5, Top: 2.75, Width: 640.5, Height: 480.125},
		Min:      palette.Size{Width: 320, Height: 200},
		Scale:    palette.SizeF{Width: 1.25, Height: 0.8},
	}
}

// Skin is a document pairing a layout with images.
type Skin struct {
	Layout Layout         `yaml:"layout" json:"layout" msgpack:"layout" bson:"layout"`
	Icon   palette.Image  `yaml:"icon" json:"icon" msgpack:"icon" bson:"icon"`
	Cursor palette.Pixmap `yaml:"cursor" json:"cursor" msgpack:"cursor" bson:"cursor"`
}

// TestSkin returns a Skin with a 4×4 icon and a 1×1 cursor.
func TestSkin(tb testing.TB) Skin {
	tb.Helper()
	return Skin{
		Layout: TestLayout(),
		Icon:   TestImage(tb, 4, 4),
		Cursor: TestImage(tb, 1, 1).Pixmap(),
	}
}
