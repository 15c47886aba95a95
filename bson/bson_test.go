package bson

import (
	"testing"

	"github.com/zoobzio/palette"
)

func TestNew(t *testing.T) {
	f := New()
	if f == nil {
		t.Error("New() should return non-nil format")
	}
}

func TestContentType(t *testing.T) {
	f := New()
	if f.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", f.ContentType(), "application/bson")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	f := New()

	type Sprite struct {
		Name   string        `bson:"name"`
		Anchor palette.PointF `bson:"anchor"`
		Scale  palette.SizeF  `bson:"scale"`
		Tint   palette.Color  `bson:"tint"`
		Image  palette.Image  `bson:"image"`
	}

	img := palette.NewImage(2, 1)
	img.Pix[2] = 0xaa

	original := Sprite{
		Name:   "player",
		Anchor: palette.PointF{X: 0.5, Y: 1},
		Scale:  palette.SizeF{Width: 2, Height: 2},
		Tint:   palette.RGBA(255, 255, 255, 128),
		Image:  img,
	}

	data, err := f.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored Sprite
	if err := f.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name || restored.Anchor != original.Anchor ||
		restored.Scale != original.Scale || restored.Tint != original.Tint {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
	if restored.Image.Rect != img.Rect || string(restored.Image.Pix) != string(img.Pix) {
		t.Error("image round-trip changed pixels")
	}
}

func TestMarshal_NullImage(t *testing.T) {
	f := New()

	type doc struct {
		Image palette.Image `bson:"image"`
	}

	data, err := f.Marshal(doc{})
	if err != nil {
		t.Fatalf("Marshal(null image) error: %v", err)
	}

	var restored doc
	if err := f.Unmarshal(data, &restored); err == nil {
		t.Error("Unmarshal(empty image) should return error")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	f := New()

	var v palette.Color
	err := f.Unmarshal([]byte("invalid bson"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
