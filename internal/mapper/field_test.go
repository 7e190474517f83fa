package mapper

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type Base struct {
	ID   int
	Kind string `fds:"kind"`
}

type sample struct {
	Base
	Name    string `fds:"name"`
	Port    int    `fds:"port,omitempty"`
	Skipped string `fds:"-"`
	private string
	Kind    string
}

func TestCachedFields(t *testing.T) {
	fields := CachedFields(reflect.TypeOf(sample{}))

	names := make([]string, 0, len(fields.List))
	for _, f := range fields.List {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"ID", "kind", "name", "port", "Kind"}, names)

	port, ok := fields.Find("port")
	require.True(t, ok)
	require.True(t, port.OmitEmpty)
	require.Equal(t, []int{2}, port.Index)

	id, ok := fields.Find("id")
	require.True(t, ok, "case-insensitive fallback")
	require.Equal(t, []int{0, 0}, id.Index)

	kind, ok := fields.Find("Kind")
	require.True(t, ok)
	require.Equal(t, []int{5}, kind.Index, "exact match preferred over folded match")

	_, ok = fields.Find("Skipped")
	require.False(t, ok)
	_, ok = fields.Find("private")
	require.False(t, ok)

	require.Same(t, fields, CachedFields(reflect.TypeOf(sample{})))
}

type shadowed struct {
	Base
	ID string
}

func TestCachedFields_ShallowerWins(t *testing.T) {
	fields := CachedFields(reflect.TypeOf(shadowed{}))
	id, ok := fields.Find("ID")
	require.True(t, ok)
	require.Equal(t, []int{1}, id.Index)
	require.Equal(t, "ID", fields.List[0].Name, "position of the first occurrence is kept")
	require.Len(t, fields.List, 2)
}
