// Package json provides the JSON document format.
//
// Palette value types marshal as objects keyed like their node mappings
// ("point size", "fixedpitch"). Pixmap and Image marshal as a base64 string
// holding a PNG; a null image is the empty string.
package json

import (
	"encoding/json"

	"github.com/zoobzio/palette"
)

// jsonFormat implements palette.Format for JSON.
type jsonFormat struct{}

// New returns a JSON format.
func New() palette.Format {
	return &jsonFormat{}
}

// ContentType returns the MIME type for JSON.
func (f *jsonFormat) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (f *jsonFormat) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (f *jsonFormat) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
