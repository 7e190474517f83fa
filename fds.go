package fds

import (
	"bytes"

	"github.com/KimNorgaard/go-fds/internal/lexer"
)

// Marshaler is the interface implemented by types that can marshal
// themselves into an FDS value.
type Marshaler interface {
	MarshalFDS() (*Value, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal an
// FDS value of themselves.
type Unmarshaler interface {
	UnmarshalFDS(*Value) error
}

// Parse parses FDS text into its root section. On failure the error is a
// *ParseError and no partial tree is returned.
func Parse(data []byte, opts ...Option) (*Section, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return newParser(lexer.New(data), o).Parse()
}

// ParseString is Parse for a string.
func ParseString(s string, opts ...Option) (*Section, error) {
	return Parse([]byte(s), opts...)
}

// Marshal returns the FDS encoding of v, which must be a *Section, a
// struct, a map with string keys, or a pointer to one of those.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the FDS-encoded data and stores the result in the value
// pointed to by v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}
