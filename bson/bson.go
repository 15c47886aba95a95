// Package bson provides the BSON document format.
//
// BSON documents must be structs or maps at the top level; a bare value type
// such as palette.Image has to be wrapped in a field.
package bson

import (
	"github.com/zoobzio/palette"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonFormat implements palette.Format for BSON.
type bsonFormat struct{}

// New returns a BSON format.
func New() palette.Format {
	return &bsonFormat{}
}

// ContentType returns the MIME type for BSON.
func (f *bsonFormat) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (f *bsonFormat) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (f *bsonFormat) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
