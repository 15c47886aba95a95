package palette

// Format provides content-type aware marshaling of whole documents.
// Value types in this package carry tags and marshaler methods for every
// provider, so a document struct embedding them round-trips through any Format.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/yaml").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
