package fds

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/KimNorgaard/go-fds/internal/lexer"
)

// Reasons a parse can fail. A *ParseError wraps exactly one of them.
var (
	ErrUnmatchedIndent  = errors.New("spacing does not match any enclosing section")
	ErrNoSeparator      = lexer.ErrNoSeparator
	ErrEmptyKey         = lexer.ErrEmptyKey
	ErrInvalidBase64    = errors.New("invalid base64 data")
	ErrMaxDepth         = errors.New("sections nested too deeply")
	ErrUnexpectedIndent = errors.New("indented without a section header")
	ErrDanglingHeader   = errors.New("section header has no contents")
)

// ParseError reports the first problem found in the input. Parsing stops
// there and no partial result is returned.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the offending line exactly as it appeared.
	Text string
	// Reason is a human-readable description.
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fds: parsing error at line %d: %s, from line as follows: `%s`", e.Line, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A ScalarError reports a scalar that cannot be converted to the requested
// Go type.
type ScalarError struct {
	Scalar Scalar
	Target string
}

func (e *ScalarError) Error() string {
	return fmt.Sprintf("fds: cannot convert %s %q to %s", e.Scalar.Kind(), e.Scalar.Text(), e.Target)
}

// A MarshalerError represents an error from calling a MarshalFDS method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "fds: error calling MarshalFDS for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }

// An UnmarshalerError represents an error from calling an UnmarshalFDS or
// UnmarshalText method.
type UnmarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *UnmarshalerError) Error() string {
	return "fds: error calling unmarshaler for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *UnmarshalerError) Unwrap() error { return e.Err }
