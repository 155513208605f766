package protocol

import "fmt"

// DecodeErrorKind distinguishes the two ways an inbound payload can be bad.
type DecodeErrorKind int

const (
	// UnknownType: the envelope parsed but its type is not in the vocabulary.
	UnknownType DecodeErrorKind = iota
	// SchemaMismatch: the payload or its event field is not the expected shape.
	SchemaMismatch
)

func (k DecodeErrorKind) String() string {
	switch k {
	case UnknownType:
		return "unknown type"
	case SchemaMismatch:
		return "schema mismatch"
	default:
		return "unknown"
	}
}

// DecodeError reports a rejected inbound payload. It is recovered locally by
// the bridge loop: the payload is dropped and state stays unchanged.
type DecodeError struct {
	Kind DecodeErrorKind
	Type string // envelope type, when one parsed
	err  error  // underlying unmarshal error, when there is one
}

func (e *DecodeError) Error() string {
	switch {
	case e.Kind == UnknownType:
		return fmt.Sprintf("decode: unknown message type %q", e.Type)
	case e.err != nil:
		return fmt.Sprintf("decode: schema mismatch: %v", e.err)
	default:
		return "decode: schema mismatch"
	}
}

func (e *DecodeError) Unwrap() error {
	return e.err
}
