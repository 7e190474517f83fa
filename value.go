package fds

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// Kind identifies which payload a Value carries.
type Kind int

const (
	// KindSection values hold a nested *Section.
	KindSection Kind = iota + 1
	// KindBlob values hold raw bytes, written as base64.
	KindBlob
	// KindScalar values hold a type-inferred Scalar.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindBlob:
		return "binary"
	case KindScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one entry of a Section: exactly one of a sub-section, a binary
// blob or a scalar, plus the comment lines that preceded it in the source.
//
// The payload is fixed at construction. To change what a key holds, store a
// new Value under it.
type Value struct {
	// Comments are the comment lines, without the leading '#', written
	// directly above the entry.
	Comments []string

	kind    Kind
	section *Section
	blob    []byte
	scalar  Scalar
}

// SectionValue wraps a sub-section. A nil section is replaced by an empty one.
func SectionValue(s *Section, comments ...string) *Value {
	if s == nil {
		s = NewSection()
	}
	return &Value{kind: KindSection, section: s, Comments: comments}
}

// BlobValue wraps binary data. The slice is used as-is, not copied.
func BlobValue(b []byte, comments ...string) *Value {
	if b == nil {
		b = []byte{}
	}
	return &Value{kind: KindBlob, blob: b, Comments: comments}
}

// ScalarValue wraps a scalar.
func ScalarValue(s Scalar, comments ...string) *Value {
	return &Value{kind: KindScalar, scalar: s, Comments: comments}
}

// Kind returns the payload kind.
func (v *Value) Kind() Kind { return v.kind }

// Section returns the sub-section, or nil and false for other kinds.
func (v *Value) Section() (*Section, bool) {
	if v.kind != KindSection {
		return nil, false
	}
	return v.section, true
}

// Blob returns the binary payload, or nil and false for other kinds.
func (v *Value) Blob() ([]byte, bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	return v.blob, true
}

// Scalar returns the scalar payload, or the zero Scalar and false for other
// kinds.
func (v *Value) Scalar() (Scalar, bool) {
	if v.kind != KindScalar {
		return Scalar{}, false
	}
	return v.scalar, true
}

// Outputable returns the payload as it is written after the separator:
// scalar text (unescaped), base64 for blobs and the empty string for
// sections.
func (v *Value) Outputable() string {
	switch v.kind {
	case KindSection:
		return ""
	case KindBlob:
		return base64.StdEncoding.EncodeToString(v.blob)
	case KindScalar:
		return v.scalar.Text()
	default:
		panic(fmt.Sprintf("fds: invalid value kind %v", v.kind))
	}
}

// Interface returns the payload as a plain Go value: *Section, []byte, or
// the scalar's bool, int64, float64 or string.
func (v *Value) Interface() any {
	switch v.kind {
	case KindSection:
		return v.section
	case KindBlob:
		return v.blob
	case KindScalar:
		return v.scalar.Interface()
	default:
		panic(fmt.Sprintf("fds: invalid value kind %v", v.kind))
	}
}

// Equal reports whether v and o carry the same kind and an equal payload.
// Comments are not compared.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindSection:
		return v.section.Equal(o.section)
	case KindBlob:
		return bytes.Equal(v.blob, o.blob)
	case KindScalar:
		return v.scalar.Equal(o.scalar)
	default:
		panic(fmt.Sprintf("fds: invalid value kind %v", v.kind))
	}
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	c := &Value{kind: v.kind, scalar: v.scalar}
	if v.Comments != nil {
		c.Comments = append([]string(nil), v.Comments...)
	}
	switch v.kind {
	case KindSection:
		c.section = v.section.Clone()
	case KindBlob:
		c.blob = bytes.Clone(v.blob)
	}
	return c
}

func (v *Value) String() string {
	return fmt.Sprintf("%s(%s)", v.kind, v.Outputable())
}
