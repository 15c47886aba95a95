package palette

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Parse reads the first document in text and returns its root node.
// Parser errors are returned unchanged. Empty input yields an empty node.
func Parse(text string) (*yaml.Node, error) {
	start := time.Now()
	n, err := parse([]byte(text))
	emitParseComplete(context.Background(), "text", len(text), time.Since(start), err)
	return n, err
}

// ParseBytes reads the first document in data and returns its root node.
func ParseBytes(data []byte) (*yaml.Node, error) {
	start := time.Now()
	n, err := parse(data)
	emitParseComplete(context.Background(), "bytes", len(data), time.Since(start), err)
	return n, err
}

// ParseFile reads the first document in the named file and returns its root
// node. An empty file yields io.EOF.
func ParseFile(name string) (*yaml.Node, error) {
	start := time.Now()
	n, err := parseFile(name)
	emitParseComplete(context.Background(), "file", -1, time.Since(start), err)
	return n, err
}

func parseFile(name string) (*yaml.Node, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeFirst(yaml.NewDecoder(f))
}

// ParseReader reads the first document from r and returns its root node.
// An empty stream yields io.EOF.
func ParseReader(r io.Reader) (*yaml.Node, error) {
	start := time.Now()
	n, err := decodeFirst(yaml.NewDecoder(r))
	emitParseComplete(context.Background(), "reader", -1, time.Since(start), err)
	return n, err
}

// ParseAll reads every document in text and returns their root nodes in order.
func ParseAll(text string) ([]*yaml.Node, error) {
	start := time.Now()
	docs, err := parseAll(strings.NewReader(text))
	emitParseComplete(context.Background(), "text", len(text), time.Since(start), err)
	return docs, err
}

func parseAll(r io.Reader) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(r)
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, root(&doc))
	}
}

func parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return root(&doc), nil
}

func decodeFirst(dec *yaml.Decoder) (*yaml.Node, error) {
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return root(&doc), nil
}

// root unwraps a document node to its content.
func root(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0]
	}
	return doc
}

// Emit renders n as a YAML document with two-space indentation.
func Emit(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := emit(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EmitFile renders n into the named file, creating or truncating it.
func EmitFile(name string, n *yaml.Node) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := emit(f, n); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func emit(w io.Writer, n *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}
