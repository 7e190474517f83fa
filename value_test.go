package fds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-fds"
)

func TestValue_Kinds(t *testing.T) {
	sec := fds.NewSection()
	testCases := []struct {
		name       string
		value      *fds.Value
		kind       fds.Kind
		outputable string
		iface      any
	}{
		{name: "section", value: fds.SectionValue(sec), kind: fds.KindSection, outputable: "", iface: sec},
		{name: "blob", value: fds.BlobValue([]byte("Hello")), kind: fds.KindBlob, outputable: "SGVsbG8=", iface: []byte("Hello")},
		{name: "scalar", value: fds.ScalarValue(fds.NewInt(5)), kind: fds.KindScalar, outputable: "5", iface: int64(5)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.value.Kind())
			require.Equal(t, tc.outputable, tc.value.Outputable())
			require.Equal(t, tc.iface, tc.value.Interface())

			_, isSection := tc.value.Section()
			_, isBlob := tc.value.Blob()
			_, isScalar := tc.value.Scalar()
			require.Equal(t, tc.kind == fds.KindSection, isSection)
			require.Equal(t, tc.kind == fds.KindBlob, isBlob)
			require.Equal(t, tc.kind == fds.KindScalar, isScalar)
		})
	}
}

func TestValue_EqualIgnoresComments(t *testing.T) {
	a := fds.ScalarValue(fds.NewString("x"), "one")
	b := fds.ScalarValue(fds.NewString("x"))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(fds.BlobValue([]byte("x"))))
	require.False(t, a.Equal(nil))
}

func TestValue_Clone(t *testing.T) {
	data := []byte("abc")
	v := fds.BlobValue(data, "c")
	c := v.Clone()
	data[0] = 'z'
	b, _ := c.Blob()
	require.Equal(t, []byte("abc"), b)
	require.Equal(t, []string{"c"}, c.Comments)
}

func TestValue_NilPayloads(t *testing.T) {
	s, ok := fds.SectionValue(nil).Section()
	require.True(t, ok)
	require.NotNil(t, s)
	require.Equal(t, 0, s.Len())

	b, ok := fds.BlobValue(nil).Blob()
	require.True(t, ok)
	require.NotNil(t, b)
}

func TestValue_String(t *testing.T) {
	require.Equal(t, "scalar(hi)", fds.ScalarValue(fds.NewString("hi")).String())
	require.Equal(t, "binary(SGVsbG8=)", fds.BlobValue([]byte("Hello")).String())
}
