package fds

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/spf13/cast"

	"github.com/KimNorgaard/go-fds/internal/mapper"
)

var (
	sectionType    = reflect.TypeOf(Section{})
	sectionPtrType = reflect.PointerTo(sectionType)
	valueType      = reflect.TypeOf(Value{})
	valuePtrType   = reflect.PointerTo(valueType)
	durationType   = reflect.TypeOf(time.Duration(0))
)

// Decoder reads and decodes FDS documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options configure parsing, such as MaxDepth and Strict.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input, parses it and stores the root section in
// the value pointed to by v.
//
// v may point to a Section, a struct, a map with string keys or an empty
// interface. Struct fields are matched by their `fds` tag or name, exactly
// first and then ignoring ASCII case. Scalars are converted to the target
// Go type where the conversion is lossless; binary values go into []byte.
//
// If the input is malformed, Decode returns a *ParseError.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("fds: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("fds: Unmarshal(non-pointer %T or nil)", v)
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	root, err := Parse(data, d.opts...)
	if err != nil {
		return err
	}
	// The root and the innermost values sit outside the section depth.
	ds := &decodeState{depth: o.maxDepth + 2}
	return ds.mapValue(SectionValue(root), rv.Elem())
}

type decodeState struct {
	depth int
}

func (ds *decodeState) mapValue(v *Value, rv reflect.Value) error {
	ds.depth--
	if ds.depth < 0 {
		return fmt.Errorf("fds: %w while decoding", ErrMaxDepth)
	}
	defer func() { ds.depth++ }()

	handled, err := ds.tryCustomUnmarshal(v, rv)
	if err != nil || handled {
		return err
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
		if handled, err := ds.tryCustomUnmarshal(v, rv); err != nil || handled {
			return err
		}
	}

	if rv.Kind() == reflect.Interface {
		return ds.mapInterface(v, rv)
	}
	if !rv.CanSet() {
		return fmt.Errorf("fds: cannot set value of type %s", rv.Type())
	}

	switch rv.Type() {
	case valueType:
		rv.Set(reflect.ValueOf(v.Clone()).Elem())
		return nil
	case sectionType:
		sec, ok := v.Section()
		if !ok {
			return fmt.Errorf("fds: cannot unmarshal %s into Go value of type %s", v.Kind(), rv.Type())
		}
		rv.Set(reflect.ValueOf(sec.Clone()).Elem())
		return nil
	}

	switch v.Kind() {
	case KindSection:
		switch rv.Kind() {
		case reflect.Struct:
			return ds.mapStruct(v.section, rv)
		case reflect.Map:
			return ds.mapMap(v.section, rv)
		default:
			return fmt.Errorf("fds: cannot unmarshal section into Go value of type %s", rv.Type())
		}
	case KindBlob:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			rv.SetBytes(bytes.Clone(v.blob))
			return nil
		}
		return fmt.Errorf("fds: cannot unmarshal binary into Go value of type %s", rv.Type())
	case KindScalar:
		return ds.mapScalar(v.scalar, rv)
	default:
		panic(fmt.Sprintf("fds: invalid value kind %v", v.Kind()))
	}
}

// tryCustomUnmarshal attempts to use a custom unmarshaler (fds.Unmarshaler or
// encoding.TextUnmarshaler) on the given reflect.Value. It returns true if a
// custom unmarshaler was found and used, in which case the caller should not
// proceed with default unmarshaling.
func (ds *decodeState) tryCustomUnmarshal(v *Value, rv reflect.Value) (bool, error) {
	if !rv.CanAddr() {
		return false, nil
	}
	pv := rv.Addr()
	if !pv.CanInterface() {
		return false, nil
	}

	if u, ok := pv.Interface().(Unmarshaler); ok {
		if err := u.UnmarshalFDS(v); err != nil {
			return true, &UnmarshalerError{Type: pv.Type(), Err: err}
		}
		return true, nil
	}

	if u, ok := pv.Interface().(encoding.TextUnmarshaler); ok {
		sc, isScalar := v.Scalar()
		if !isScalar {
			// TextUnmarshaler can only be used on scalar values.
			return false, nil
		}
		if err := u.UnmarshalText([]byte(sc.Text())); err != nil {
			return true, &UnmarshalerError{Type: pv.Type(), Err: err}
		}
		return true, nil
	}

	return false, nil
}

func (ds *decodeState) mapScalar(sc Scalar, rv reflect.Value) error {
	if rv.Type() == durationType {
		d, err := cast.ToDurationE(sc.Interface())
		if err != nil {
			return ds.scalarErr(sc, rv)
		}
		rv.SetInt(int64(d))
		return nil
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(sc.Text())
		return nil
	case reflect.Bool:
		b, err := sc.Bool()
		if err != nil {
			return ds.scalarErr(sc, rv)
		}
		rv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := sc.Int64()
		if err != nil {
			return ds.scalarErr(sc, rv)
		}
		if rv.OverflowInt(i) {
			return fmt.Errorf("fds: integer value %d overflows Go value of type %s", i, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := sc.Int64()
		if err != nil {
			return ds.scalarErr(sc, rv)
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return fmt.Errorf("fds: integer value %d overflows Go value of type %s", i, rv.Type())
		}
		rv.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := sc.Float64()
		if err != nil {
			return ds.scalarErr(sc, rv)
		}
		if rv.OverflowFloat(f) {
			return fmt.Errorf("fds: float value %g overflows Go value of type %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			rv.SetBytes([]byte(sc.Text()))
			return nil
		}
	}
	return ds.scalarErr(sc, rv)
}

func (ds *decodeState) scalarErr(sc Scalar, rv reflect.Value) error {
	return fmt.Errorf("fds: cannot unmarshal %s %q into Go value of type %s", sc.Kind(), sc.Text(), rv.Type())
}

func (ds *decodeState) mapMap(sec *Section, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("fds: cannot unmarshal section into map with non-string key type %s", mapType.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	} else {
		rv.Clear()
	}
	elemType := mapType.Elem()
	for key, v := range sec.All() {
		newVal := reflect.New(elemType).Elem()
		if err := ds.mapValue(v, newVal); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(mapType.Key()), newVal)
	}
	return nil
}

func (ds *decodeState) mapStruct(sec *Section, rv reflect.Value) error {
	fields := mapper.CachedFields(rv.Type())
	for key, v := range sec.All() {
		f, ok := fields.Find(key)
		if !ok {
			continue
		}
		fieldVal := rv.FieldByIndex(f.Index)
		if !fieldVal.CanSet() {
			continue
		}
		if err := ds.mapValue(v, fieldVal); err != nil {
			return err
		}
	}
	return nil
}

func (ds *decodeState) mapInterface(v *Value, rv reflect.Value) error {
	if rv.NumMethod() != 0 {
		return fmt.Errorf("fds: cannot unmarshal into non-empty interface %s", rv.Type())
	}
	switch v.Kind() {
	case KindSection:
		m := make(map[string]any, v.section.Len())
		mv := reflect.ValueOf(&m).Elem()
		if err := ds.mapMap(v.section, mv); err != nil {
			return err
		}
		rv.Set(mv)
	case KindBlob:
		rv.Set(reflect.ValueOf(bytes.Clone(v.blob)))
	case KindScalar:
		rv.Set(reflect.ValueOf(v.scalar.Interface()))
	default:
		panic(fmt.Sprintf("fds: invalid value kind %v", v.Kind()))
	}
	return nil
}
