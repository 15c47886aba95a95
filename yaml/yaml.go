// Package yaml provides the YAML document format.
package yaml

import (
	"bytes"

	"github.com/zoobzio/palette"
	"gopkg.in/yaml.v3"
)

// yamlFormat implements palette.Format for YAML.
type yamlFormat struct{}

// New returns a YAML format.
func New() palette.Format {
	return &yamlFormat{}
}

// ContentType returns the MIME type for YAML.
func (f *yamlFormat) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML with two-space indentation.
func (f *yamlFormat) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (f *yamlFormat) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
