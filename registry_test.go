package palette

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLookup_Builtins(t *testing.T) {
	Reset()

	checks := map[string]bool{}
	_, checks["string"] = Lookup[string]()
	_, checks["[]byte"] = Lookup[[]byte]()
	_, checks["*bytes.Buffer"] = Lookup[*bytes.Buffer]()
	_, checks["Color"] = Lookup[Color]()
	_, checks["Font"] = Lookup[Font]()
	_, checks["Point"] = Lookup[Point]()
	_, checks["PointF"] = Lookup[PointF]()
	_, checks["Rect"] = Lookup[Rect]()
	_, checks["RectF"] = Lookup[RectF]()
	_, checks["Size"] = Lookup[Size]()
	_, checks["SizeF"] = Lookup[SizeF]()
	_, checks["Pixmap"] = Lookup[Pixmap]()
	_, checks["Image"] = Lookup[Image]()

	for name, ok := range checks {
		if !ok {
			t.Errorf("no builtin codec for %s", name)
		}
	}
}

func TestEncode_Unregistered(t *testing.T) {
	Reset()

	_, err := Encode(time.Second)
	if !errors.Is(err, ErrUnregistered) {
		t.Errorf("Encode() error = %v, want ErrUnregistered", err)
	}

	_, err = Decode[time.Duration](&yaml.Node{Kind: yaml.ScalarNode, Value: "1s"})
	if !errors.Is(err, ErrUnregistered) {
		t.Errorf("Decode() error = %v, want ErrUnregistered", err)
	}
}

func durationCodec() Codec[time.Duration] {
	return CodecFuncs[time.Duration]{
		EncodeFunc: func(d time.Duration) (*yaml.Node, error) {
			return TextCodec{}.Encode(d.String())
		},
		DecodeFunc: func(n *yaml.Node) (time.Duration, error) {
			s, err := TextCodec{}.Decode(n)
			if err != nil {
				return 0, err
			}
			d, err := time.ParseDuration(s)
			if err != nil {
				return 0, newDecodeError(ErrShapeMismatch, "time.Duration", "", err)
			}
			return d, nil
		},
	}
}

func TestRegister_Custom(t *testing.T) {
	Reset()
	defer Reset()

	Register(durationCodec())

	n, err := Encode(90 * time.Second)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if n.Value != "1m30s" {
		t.Errorf("Value = %q, want %q", n.Value, "1m30s")
	}

	d, err := Decode[time.Duration](n)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if d != 90*time.Second {
		t.Errorf("Decode() = %v, want %v", d, 90*time.Second)
	}
}

func TestRegister_Override(t *testing.T) {
	Reset()
	defer Reset()

	// Store colours as a single hex scalar instead of a mapping.
	Register[Color](CodecFuncs[Color]{
		EncodeFunc: func(c Color) (*yaml.Node, error) {
			return TextCodec{}.Encode("#0a141e")
		},
		DecodeFunc: func(n *yaml.Node) (Color, error) {
			return RGBA(10, 20, 30, 255), nil
		},
	})

	n, err := Encode(RGBA(10, 20, 30, 255))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !IsScalar(n) {
		t.Error("override should be used for Encode")
	}
}

func TestReset(t *testing.T) {
	Register(durationCodec())
	if _, ok := Lookup[time.Duration](); !ok {
		t.Fatal("Register() should install the codec")
	}

	Reset()

	if _, ok := Lookup[time.Duration](); ok {
		t.Error("Reset() should remove custom codecs")
	}
	if _, ok := Lookup[Color](); !ok {
		t.Error("Reset() should keep builtins")
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	Reset()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				p := Point{X: i, Y: j}
				n, err := Encode(p)
				if err != nil {
					t.Errorf("Encode() error: %v", err)
					return
				}
				got, err := Decode[Point](n)
				if err != nil || got != p {
					t.Errorf("Decode() = %+v, %v; want %+v", got, err, p)
					return
				}
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
