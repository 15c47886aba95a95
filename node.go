package palette

import (
	"encoding/base64"

	"gopkg.in/yaml.v3"
)

// YAML short tags used by the scalar codecs.
const (
	tagStr    = "!!str"
	tagBinary = "!!binary"
	tagNull   = "!!null"
	tagInt    = "!!int"
)

// resolve sees through document wrappers and aliases so shape checks apply
// to the node a reader actually means.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) == 1:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// IsScalar reports whether n holds a single primitive or blob payload.
func IsScalar(n *yaml.Node) bool {
	n = resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode
}

// IsMap reports whether n is a mapping of keys to child nodes.
func IsMap(n *yaml.Node) bool {
	n = resolve(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// IsBlob reports whether n is a scalar carrying a !!binary payload.
func IsBlob(n *yaml.Node) bool {
	n = resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == tagBinary
}

// NewScalar returns a scalar node holding v. v must be a primitive
// (string, bool, integer or float).
func NewScalar(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// NewBlob returns a scalar node holding b as a !!binary payload of exactly
// len(b) bytes.
func NewBlob(b []byte) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tagBinary,
		Value: base64.StdEncoding.EncodeToString(b),
	}
}

// NewMap returns an empty mapping node.
func NewMap() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// Field returns the child stored under key in a mapping node.
func Field(n *yaml.Node, key string) (*yaml.Node, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1], true
		}
	}
	return nil, false
}

// SetField stores child under key, replacing an existing entry in place or
// appending a new one. n must be a mapping node.
func SetField(n *yaml.Node, key string, child *yaml.Node) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			n.Content[i+1] = child
			return
		}
	}
	n.Content = append(n.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: key},
		child,
	)
}

// blobBytes extracts the payload of a scalar node. !!binary payloads are
// base64-decoded, any other scalar is taken as raw text bytes.
func blobBytes(n *yaml.Node) ([]byte, error) {
	if n.ShortTag() == tagBinary {
		return base64.StdEncoding.DecodeString(n.Value)
	}
	return []byte(n.Value), nil
}
