// Package msgpack provides the MessagePack document format.
//
// Palette value types marshal as maps keyed like their node mappings. Pixmap
// and Image marshal as a bin value holding a PNG, empty for a null image.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/palette"
)

// msgpackFormat implements palette.Format for MessagePack.
type msgpackFormat struct{}

// New returns a MessagePack format.
func New() palette.Format {
	return &msgpackFormat{}
}

// ContentType returns the MIME type for MessagePack.
func (f *msgpackFormat) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (f *msgpackFormat) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (f *msgpackFormat) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
