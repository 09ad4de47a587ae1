// Package errs defines the errors returned by grnbulk packages.
//
// Sentinel errors are wrapped with additional context at the call site, so callers
// should test for them with errors.Is:
//
//	if errors.Is(err, errs.ErrUnsupportedType) {
//	    // the input value must change, retrying will not help
//	}
//
// Encoder failures are also returned as structured errors (UnsupportedTypeError and
// ConversionError) that can be inspected with errors.As to retrieve the offending value.
package errs

import (
	"errors"
	"fmt"
)

// Encoding errors.
var (
	// ErrUnsupportedType is returned when a value's dynamic kind is outside the closed set
	// of kinds the scalar encoder understands.
	ErrUnsupportedType = errors.New("unsupported value type")
	// ErrConversion is returned when a value cannot be coerced to the width required by
	// its destination, e.g. a negative number used as a record id.
	ErrConversion = errors.New("value conversion failed")
)

// Decoding errors.
var (
	// ErrUnsupportedObjectType is returned by the object dispatcher for container shapes
	// it has no decoder for. Unknown domains never produce an error.
	ErrUnsupportedObjectType = errors.New("unsupported object type")
)

// Frame errors.
var (
	ErrInvalidFrameSize   = errors.New("invalid frame size")
	ErrInvalidMagic       = errors.New("invalid frame magic number")
	ErrInvalidObjectType  = errors.New("invalid frame object type")
	ErrEndianMismatch     = errors.New("frame payload byte order does not match decoder")
	ErrChecksumMismatch   = errors.New("frame payload checksum mismatch")
	ErrInvalidPayloadSize = errors.New("invalid frame payload size")
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Registry errors.
var (
	ErrDomainNotFound    = errors.New("domain not found")
	ErrDomainExists      = errors.New("domain already registered")
	ErrInvalidDomainName = errors.New("invalid domain name")
	ErrDomainIDExhausted = errors.New("domain id space exhausted")
)

// UnsupportedTypeError describes a value the scalar encoder refused to encode.
type UnsupportedTypeError struct {
	// Value is the offending value.
	Value any
	// GoType is the Go type name of Value.
	GoType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: bulked value should be one of "+
		"[nil, string, []byte, integer, float, time.Time, Object, Recorder], got %s: %#v",
		ErrUnsupportedType, e.GoType, e.Value)
}

// Unwrap returns ErrUnsupportedType.
func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// NewUnsupportedTypeError creates an UnsupportedTypeError for v.
func NewUnsupportedTypeError(v any) *UnsupportedTypeError {
	return &UnsupportedTypeError{Value: v, GoType: fmt.Sprintf("%T", v)}
}

// ConversionError describes a value that could not be coerced to its target type.
//
// Index is the position of the value inside its source sequence, or -1 when the value
// was not part of a sequence.
type ConversionError struct {
	Value  any
	GoType string
	Target string
	Index  int
}

func (e *ConversionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: cannot convert %s %#v to %s", ErrConversion, e.GoType, e.Value, e.Target)
	}

	return fmt.Sprintf("%s: element %d: cannot convert %s %#v to %s",
		ErrConversion, e.Index, e.GoType, e.Value, e.Target)
}

// Unwrap returns ErrConversion.
func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

// NewConversionError creates a ConversionError for v at index (-1 for scalars).
func NewConversionError(v any, target string, index int) *ConversionError {
	return &ConversionError{
		Value:  v,
		GoType: fmt.Sprintf("%T", v),
		Target: target,
		Index:  index,
	}
}
