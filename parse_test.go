package palette

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse_Scalar(t *testing.T) {
	n, err := Parse("hello")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !IsScalar(n) {
		t.Errorf("root kind = %v, want scalar", n.Kind)
	}
	if n.Kind != yaml.ScalarNode {
		t.Errorf("root should be unwrapped from its document, kind = %v", n.Kind)
	}
}

func TestParse_Variants(t *testing.T) {
	const doc = "width: 100\nheight: 50\n"
	dir := t.TempDir()
	name := filepath.Join(dir, "size.yaml")
	if err := os.WriteFile(name, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer f.Close()

	parsers := map[string]func() (*yaml.Node, error){
		"text":   func() (*yaml.Node, error) { return Parse(doc) },
		"bytes":  func() (*yaml.Node, error) { return ParseBytes([]byte(doc)) },
		"file":   func() (*yaml.Node, error) { return ParseFile(name) },
		"reader": func() (*yaml.Node, error) { return ParseReader(f) },
	}

	for source, parse := range parsers {
		t.Run(source, func(t *testing.T) {
			n, err := parse()
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if !IsMap(n) {
				t.Fatalf("root kind = %v, want mapping", n.Kind)
			}
			got, err := Decode[Size](n)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != (Size{Width: 100, Height: 50}) {
				t.Errorf("Decode() = %+v", got)
			}
		})
	}
}

func TestParse_ErrorsPropagated(t *testing.T) {
	const bad = "name: [invalid"

	var want error
	var doc yaml.Node
	want = yaml.Unmarshal([]byte(bad), &doc)
	if want == nil {
		t.Fatal("expected yaml.Unmarshal to fail")
	}

	_, err := Parse(bad)
	if err == nil || err.Error() != want.Error() {
		t.Errorf("Parse() error = %v, want %v", err, want)
	}

	_, err = ParseBytes([]byte(bad))
	if err == nil || err.Error() != want.Error() {
		t.Errorf("ParseBytes() error = %v, want %v", err, want)
	}

	_, err = ParseReader(strings.NewReader(bad))
	if err == nil {
		t.Error("ParseReader() should fail")
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestParse_Empty(t *testing.T) {
	n, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if IsScalar(n) || IsMap(n) {
		t.Error("empty document should be neither scalar nor mapping")
	}

	if _, err := ParseReader(strings.NewReader("")); !errors.Is(err, io.EOF) {
		t.Errorf("ParseReader(empty) error = %v, want io.EOF", err)
	}
}

func TestParse_FirstDocumentOnly(t *testing.T) {
	n, err := Parse("---\nfirst\n---\nsecond\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if n.Value != "first" {
		t.Errorf("Value = %q, want %q", n.Value, "first")
	}
}

func TestParseAll(t *testing.T) {
	docs, err := ParseAll("---\n{x: 1, y: 2}\n---\n{x: 3, y: 4}\n---\nthree\n")
	if err != nil {
		t.Fatalf("ParseAll() error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len(docs) = %d, want 3", len(docs))
	}
	p, err := Decode[Point](docs[1])
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if p != (Point{X: 3, Y: 4}) {
		t.Errorf("docs[1] = %+v", p)
	}
	if !IsScalar(docs[2]) {
		t.Error("docs[2] should be scalar")
	}

	if _, err := ParseAll("a: [\n"); err == nil {
		t.Error("ParseAll(invalid) should fail")
	}
}

func TestEmit(t *testing.T) {
	n, err := Encode(Size{Width: 4, Height: 3})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	data, err := Emit(n)
	if err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if want := "width: 4\nheight: 3\n"; string(data) != want {
		t.Errorf("Emit() = %q, want %q", data, want)
	}
}

func TestEmitFile_RoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "color.yaml")
	n, err := Encode(RGBA(1, 2, 3, 4))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := EmitFile(name, n); err != nil {
		t.Fatalf("EmitFile() error: %v", err)
	}

	back, err := ParseFile(name)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	c, err := Decode[Color](back)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if c != RGBA(1, 2, 3, 4) {
		t.Errorf("round-trip = %+v", c)
	}
}
