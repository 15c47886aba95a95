package palette

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestIsScalar_IsMap(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		scalar bool
		isMap  bool
	}{
		{"scalar", "hello", true, false},
		{"number", "42", true, false},
		{"mapping", "a: 1", false, true},
		{"sequence", "- 1\n- 2", false, false},
		{"binary", "!!binary aGVsbG8=", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc yaml.Node
			if err := yaml.Unmarshal([]byte(tt.input), &doc); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			// The document wrapper is seen through.
			if got := IsScalar(&doc); got != tt.scalar {
				t.Errorf("IsScalar() = %v, want %v", got, tt.scalar)
			}
			if got := IsMap(&doc); got != tt.isMap {
				t.Errorf("IsMap() = %v, want %v", got, tt.isMap)
			}
		})
	}
}

func TestIsScalar_Nil(t *testing.T) {
	if IsScalar(nil) || IsMap(nil) || IsBlob(nil) {
		t.Error("nil node should be neither scalar, map nor blob")
	}
}

func TestIsBlob(t *testing.T) {
	if !IsBlob(NewBlob([]byte("abc"))) {
		t.Error("NewBlob() should produce a blob")
	}
	n, err := NewScalar("abc")
	if err != nil {
		t.Fatalf("NewScalar() error: %v", err)
	}
	if IsBlob(n) {
		t.Error("string scalar should not be a blob")
	}
}

func TestAlias_Resolved(t *testing.T) {
	var doc yaml.Node
	input := "base: &c {red: 1, green: 2, blue: 3, alpha: 4}\ncopy: *c\n"
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	alias, ok := Field(&doc, "copy")
	if !ok {
		t.Fatal("copy key not found")
	}
	if alias.Kind != yaml.AliasNode {
		t.Fatalf("copy kind = %v, want alias", alias.Kind)
	}
	if !IsMap(alias) {
		t.Error("alias of a mapping should read as a mapping")
	}
	red, ok := Field(alias, "red")
	if !ok || red.Value != "1" {
		t.Errorf("Field(alias, red) = %v, %v", red, ok)
	}
}

func TestSetField(t *testing.T) {
	n := NewMap()
	one, _ := NewScalar(1)
	two, _ := NewScalar(2)

	SetField(n, "x", one)
	SetField(n, "y", one)
	SetField(n, "x", two)

	if len(n.Content) != 4 {
		t.Fatalf("Content length = %d, want 4", len(n.Content))
	}
	x, ok := Field(n, "x")
	if !ok || x.Value != "2" {
		t.Errorf("x = %v, want 2", x)
	}
	if n.Content[0].Value != "x" {
		t.Errorf("replacement should keep key order, first key = %q", n.Content[0].Value)
	}
}

func TestField_NotMapping(t *testing.T) {
	n, _ := NewScalar("text")
	if _, ok := Field(n, "x"); ok {
		t.Error("Field() on a scalar should report absence")
	}
}
