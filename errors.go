package palette

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrShapeMismatch indicates a node is not the shape a codec expects
	// (scalar where a mapping is required, or the reverse), or a scalar whose
	// text does not parse as the field's primitive.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMissingKey indicates a mapping node lacks a required key.
	ErrMissingKey = errors.New("missing key")

	// ErrCodec indicates the image codec failed to encode or decode a payload.
	ErrCodec = errors.New("image codec failed")

	// ErrUnregistered indicates no codec is registered for the requested type.
	ErrUnregistered = errors.New("no codec registered")
)

// DecodeError represents a failure converting a node into a value.
// It wraps a sentinel error with the value type and, for mapping-shaped
// types, the key that failed.
type DecodeError struct {
	Err   error  // Underlying sentinel error (ErrShapeMismatch, ErrMissingKey, ErrCodec)
	Type  string // Value type being decoded
	Key   string // Mapping key that failed, empty for scalar-shaped types
	Cause error  // Original error, if any
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode %s: %s", e.Type, e.Err.Error())
	if e.Key != "" {
		msg = fmt.Sprintf("%s (key %q)", msg, e.Key)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError represents a failure converting a value into a node.
type EncodeError struct {
	Err   error  // Underlying sentinel error (ErrShapeMismatch, ErrCodec, ErrUnregistered)
	Type  string // Value type being encoded
	Cause error  // Original error, if any
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encode %s: %s: %v", e.Type, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("encode %s: %s", e.Type, e.Err.Error())
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// newDecodeError creates a DecodeError for the given type and key.
func newDecodeError(sentinel error, typ, key string, cause error) error {
	return &DecodeError{
		Err:   sentinel,
		Type:  typ,
		Key:   key,
		Cause: cause,
	}
}

// newEncodeError creates an EncodeError for the given type.
func newEncodeError(sentinel error, typ string, cause error) error {
	return &EncodeError{
		Err:   sentinel,
		Type:  typ,
		Cause: cause,
	}
}
