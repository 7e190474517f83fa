package fds

import (
	"bytes"
	"cmp"
	"encoding"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/KimNorgaard/go-fds/internal/mapper"
)

// Encoder writes FDS documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the FDS encoding of v to the stream.
//
// A *Section is written as is. Structs become sections with their fields in
// declaration order, maps become sections with their keys sorted. Nil
// pointers and interfaces are left out, as are empty fields tagged
// omitempty. []byte values are written as binary. Other slices and arrays
// are rejected because the format has no lists.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	// The root and the innermost values sit outside the section depth.
	es := &encodeState{depth: o.maxDepth + 2}
	sec, err := es.marshalRoot(reflect.ValueOf(v))
	if err != nil {
		return err
	}

	f := newFormatter(e.w, o)
	return f.format(sec)
}

type encodeState struct {
	depth int
}

func (e *encodeState) marshalRoot(v reflect.Value) (*Section, error) {
	val, omit, err := e.marshalValue(v)
	if err != nil {
		return nil, err
	}
	if omit {
		return NewSection(), nil
	}
	sec, ok := val.Section()
	if !ok {
		return nil, fmt.Errorf("fds: cannot marshal %s as a document, need a struct, map or section", v.Type())
	}
	return sec, nil
}

func (e *encodeState) marshalCustom(v reflect.Value, u Marshaler) (*Value, error) {
	val, err := u.MarshalFDS()
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: err}
	}
	if val == nil {
		return nil, &MarshalerError{Type: v.Type(), Err: fmt.Errorf("MarshalFDS returned a nil *Value")}
	}
	return val, nil
}

func (e *encodeState) marshalText(v reflect.Value, u encoding.TextMarshaler) (*Value, error) {
	text, err := u.MarshalText()
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: err}
	}
	return ScalarValue(NewString(string(text))), nil
}

// custom checks v and, for addressable values, &v for Marshaler and
// encoding.TextMarshaler.
func (e *encodeState) custom(v reflect.Value) (*Value, bool, error) {
	candidates := []reflect.Value{v}
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		candidates = append(candidates, v.Addr())
	}
	for _, c := range candidates {
		if !c.CanInterface() || c.Type().NumMethod() == 0 {
			continue
		}
		switch u := c.Interface().(type) {
		case Marshaler:
			val, err := e.marshalCustom(c, u)
			return val, true, err
		case encoding.TextMarshaler:
			val, err := e.marshalText(c, u)
			return val, true, err
		}
	}
	return nil, false, nil
}

// marshalValue converts v. omit reports a nil value that should be left
// out of the enclosing section.
func (e *encodeState) marshalValue(v reflect.Value) (val *Value, omit bool, err error) {
	e.depth--
	if e.depth < 0 {
		return nil, false, fmt.Errorf("fds: %w while encoding", ErrMaxDepth)
	}
	defer func() { e.depth++ }()

	// Follow pointers and interfaces to find the concrete value.
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil, true, nil
		}
		switch v.Type() {
		case sectionPtrType:
			return SectionValue(v.Interface().(*Section)), false, nil
		case valuePtrType:
			return v.Interface().(*Value), false, nil
		}
		if val, ok, err := e.custom(v); ok || err != nil {
			return val, false, err
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, true, nil
	}

	switch v.Type() {
	case sectionType:
		sec := v.Interface().(Section)
		return SectionValue(&sec), false, nil
	case valueType:
		val := v.Interface().(Value)
		return &val, false, nil
	case durationType:
		return ScalarValue(NewString(time.Duration(v.Int()).String())), false, nil
	}

	if val, ok, err := e.custom(v); ok || err != nil {
		return val, false, err
	}

	switch v.Kind() {
	case reflect.String:
		return ScalarValue(NewString(v.String())), false, nil
	case reflect.Bool:
		return ScalarValue(NewBool(v.Bool())), false, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ScalarValue(NewInt(v.Int())), false, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, false, fmt.Errorf("fds: cannot marshal %s %d (overflows int64)", v.Type(), u)
		}
		return ScalarValue(NewInt(int64(u))), false, nil
	case reflect.Float32, reflect.Float64:
		return ScalarValue(NewFloat(v.Float())), false, nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return BlobValue(bytes.Clone(v.Bytes())), false, nil
		}
	case reflect.Map:
		sec, err := e.marshalMap(v)
		if err != nil {
			return nil, false, err
		}
		return SectionValue(sec), false, nil
	case reflect.Struct:
		sec, err := e.marshalStruct(v)
		if err != nil {
			return nil, false, err
		}
		return SectionValue(sec), false, nil
	}
	return nil, false, fmt.Errorf("fds: unsupported type for marshaling: %s", v.Type())
}

func (e *encodeState) marshalMap(v reflect.Value) (*Section, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("fds: map key type must be a string, got %s", v.Type().Key())
	}
	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) })

	sec := NewSection()
	for _, key := range keys {
		val, omit, err := e.marshalValue(v.MapIndex(key))
		if err != nil {
			return nil, err
		}
		if !omit {
			sec.Set(key.String(), val)
		}
	}
	return sec, nil
}

func (e *encodeState) marshalStruct(v reflect.Value) (*Section, error) {
	sec := NewSection()
	for _, f := range mapper.CachedFields(v.Type()).List {
		fieldValue := v.FieldByIndex(f.Index)
		if f.OmitEmpty && isEmptyValue(fieldValue) {
			continue
		}
		val, omit, err := e.marshalValue(fieldValue)
		if err != nil {
			return nil, err
		}
		if !omit {
			sec.Set(f.Name, val)
		}
	}
	return sec, nil
}

// isEmptyValue reports whether the value v is empty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
