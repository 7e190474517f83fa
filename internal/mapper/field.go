package mapper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/KimNorgaard/go-fds/internal/strutil"
)

// Field describes one struct field that takes part in FDS mapping.
type Field struct {
	// Name is the key the field is written under: its tag name, or the Go
	// field name when untagged.
	Name      string
	Index     []int
	OmitEmpty bool
}

// Fields is the ordered field list of a struct type plus lookup indexes.
type Fields struct {
	List    []Field
	byName  map[string]int
	byLower map[string]int
}

// fieldCache caches the Fields for each struct type.
var fieldCache sync.Map // map[reflect.Type]*Fields

// CachedFields returns the mapped fields of struct type t in declaration
// order. Fields of embedded structs are promoted in place. Unexported
// fields and fields tagged `fds:"-"` are skipped.
func CachedFields(t reflect.Type) *Fields {
	if f, ok := fieldCache.Load(t); ok {
		return f.(*Fields)
	}

	fields := &Fields{
		byName:  make(map[string]int),
		byLower: make(map[string]int),
	}
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			tag := sf.Tag.Get("fds")
			if tag == "-" {
				continue
			}
			index := append(append([]int(nil), idx...), i)
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct && tag == "" {
				walk(sf.Type, index)
				continue
			}
			if !sf.IsExported() {
				continue
			}

			f := Field{Name: sf.Name, Index: index}
			name, opts, _ := strings.Cut(tag, ",")
			if name != "" {
				f.Name = name
			}
			for opts != "" {
				var opt string
				opt, opts, _ = strings.Cut(opts, ",")
				if strings.TrimSpace(opt) == "omitempty" {
					f.OmitEmpty = true
				}
			}
			if at, dup := fields.byName[f.Name]; dup {
				// The shallower field wins, as with Go's own promotion.
				if len(f.Index) < len(fields.List[at].Index) {
					fields.List[at] = f
				}
				continue
			}
			fields.byName[f.Name] = len(fields.List)
			low := strutil.ToLowerFast(f.Name)
			if _, ok := fields.byLower[low]; !ok {
				fields.byLower[low] = len(fields.List)
			}
			fields.List = append(fields.List, f)
		}
	}
	walk(t, nil)

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.(*Fields)
}

// Find returns the field for key, trying an exact match first and then an
// ASCII case-insensitive one.
func (f *Fields) Find(key string) (Field, bool) {
	if i, ok := f.byName[key]; ok {
		return f.List[i], true
	}
	if i, ok := f.byLower[strutil.ToLowerFast(key)]; ok {
		return f.List[i], true
	}
	return Field{}, false
}
