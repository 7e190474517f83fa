package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"

	fds "github.com/KimNorgaard/go-fds"
)

// maxDepth bounds the nesting accepted from foreign documents.
const maxDepth = 1000

// toMapSlice converts s into ordered YAML mappings.
func toMapSlice(s *fds.Section) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, s.Len())
	for key, v := range s.All() {
		ms = append(ms, yaml.MapItem{Key: key, Value: native(v, func(sub *fds.Section) any { return toMapSlice(sub) })})
	}
	return ms
}

// toMap converts s into plain maps.
func toMap(s *fds.Section) map[string]any {
	m := make(map[string]any, s.Len())
	for key, v := range s.All() {
		m[key] = native(v, func(sub *fds.Section) any { return toMap(sub) })
	}
	return m
}

// native returns the plain Go form of v. Blobs become base64 text.
func native(v *fds.Value, object func(*fds.Section) any) any {
	switch v.Kind() {
	case fds.KindSection:
		sec, _ := v.Section()
		return object(sec)
	case fds.KindBlob:
		b, _ := v.Blob()
		return base64.StdEncoding.EncodeToString(b)
	default:
		sc, _ := v.Scalar()
		return sc.Interface()
	}
}

func fromRoot(v any) (*fds.Section, error) {
	val, ok, err := fromNative(v, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return fds.NewSection(), nil
	}
	sec, isSection := val.Section()
	if !isSection || !isObject(v) {
		return nil, fmt.Errorf("document root must be an object, got %T", v)
	}
	return sec, nil
}

func isObject(v any) bool {
	switch v.(type) {
	case yaml.MapSlice, map[string]any, map[any]any:
		return true
	}
	return false
}

// fromNative converts a decoded foreign value. ok is false for nulls, which
// have no FDS form and are skipped.
func fromNative(v any, depth int) (val *fds.Value, ok bool, err error) {
	if depth > maxDepth {
		return nil, false, fmt.Errorf("%w while decoding", fds.ErrMaxDepth)
	}
	switch x := v.(type) {
	case nil:
		return nil, false, nil
	case yaml.MapSlice:
		sec := fds.NewSection()
		for _, item := range x {
			if err := setNative(sec, cast.ToString(item.Key), item.Value, depth); err != nil {
				return nil, false, err
			}
		}
		return fds.SectionValue(sec), true, nil
	case map[string]any:
		sec := fds.NewSection()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			if err := setNative(sec, key, x[key], depth); err != nil {
				return nil, false, err
			}
		}
		return fds.SectionValue(sec), true, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[cast.ToString(k)] = e
		}
		return fromNative(m, depth)
	case string:
		// FDS text carries no quoting, so a string is typed the way its
		// written form reads back.
		return fds.ScalarValue(fds.Interpret(x)), true, nil
	case bool:
		return fds.ScalarValue(fds.NewBool(x)), true, nil
	case []byte:
		return fds.BlobValue(x), true, nil
	case json.Number:
		return fds.ScalarValue(fds.Interpret(x.String())), true, nil
	case uint64:
		if x > math.MaxInt64 {
			return fds.ScalarValue(fds.Interpret(strconv.FormatUint(x, 10))), true, nil
		}
		return fds.ScalarValue(fds.NewInt(int64(x))), true, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		i, err := cast.ToInt64E(x)
		if err != nil {
			return nil, false, err
		}
		return fds.ScalarValue(fds.NewInt(i)), true, nil
	case float32, float64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return nil, false, err
		}
		return fds.ScalarValue(fds.NewFloat(f)), true, nil
	case time.Time:
		return fds.ScalarValue(fds.NewString(x.Format(time.RFC3339Nano))), true, nil
	case fmt.Stringer:
		return fds.ScalarValue(fds.NewString(x.String())), true, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		sec := fds.NewSection()
		for i := range rv.Len() {
			if err := setNative(sec, strconv.Itoa(i), rv.Index(i).Interface(), depth); err != nil {
				return nil, false, err
			}
		}
		return fds.SectionValue(sec), true, nil
	}
	return nil, false, fmt.Errorf("unsupported value of type %T", v)
}

func setNative(sec *fds.Section, key string, v any, depth int) error {
	val, ok, err := fromNative(v, depth+1)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if ok {
		sec.Set(key, val)
	}
	return nil
}
