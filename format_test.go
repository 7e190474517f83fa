package fds_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-fds"
)

func buildSample() *fds.Section {
	root := fds.NewSection()
	root.Set("name", fds.ScalarValue(fds.NewString("demo"), " the name"))
	server := fds.NewSection()
	server.Set("port", fds.ScalarValue(fds.NewInt(8080)))
	server.Set("ratio", fds.ScalarValue(fds.NewFloat(2)))
	server.Set("tls", fds.ScalarValue(fds.NewBool(false)))
	root.Set("server", fds.SectionValue(server))
	root.Set("key", fds.BlobValue([]byte("Hello")))
	return root
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name string
		opts []fds.Option
		want string
	}{
		{
			name: "defaults",
			want: "# the name\nname: demo\nserver:\n    port: 8080\n    ratio: 2.0\n    tls: false\nkey= SGVsbG8=\n",
		},
		{
			name: "indent 2",
			opts: []fds.Option{fds.Indent(2)},
			want: "# the name\nname: demo\nserver:\n  port: 8080\n  ratio: 2.0\n  tls: false\nkey= SGVsbG8=\n",
		},
		{
			name: "base indent and CRLF",
			opts: []fds.Option{fds.BaseIndent(1), fds.Newline("\r\n")},
			want: " # the name\r\n name: demo\r\n server:\r\n     port: 8080\r\n     ratio: 2.0\r\n     tls: false\r\n key= SGVsbG8=\r\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := fds.Format(buildSample(), tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, string(out))
		})
	}
}

func TestFormat_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		opt  fds.Option
		want string
	}{
		{name: "zero indent", opt: fds.Indent(0), want: "fds: indent spaces must be positive"},
		{name: "negative base", opt: fds.BaseIndent(-1), want: "fds: base indent cannot be negative"},
		{name: "empty newline", opt: fds.Newline(""), want: "fds: newline cannot be empty"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fds.Format(fds.NewSection(), tc.opt)
			require.EqualError(t, err, tc.want)
		})
	}
}

func TestFormat_Escaping(t *testing.T) {
	root := fds.NewSection()
	root.Set("a:b", fds.ScalarValue(fds.NewString("x")))
	root.Set("#c", fds.ScalarValue(fds.NewString(" lead and trail ")))
	root.Set(" sp", fds.ScalarValue(fds.NewString("line1\nline2")))
	root.Set("", fds.ScalarValue(fds.NewString("")))

	out, err := fds.Format(root)
	require.NoError(t, err)
	want := `a\cb: x
\xc: \_lead and trail\_
\_sp: line1\nline2
\-: \-
`
	require.Equal(t, want, string(out))

	back, err := fds.Parse(out)
	require.NoError(t, err)
	require.True(t, root.Equal(back))
}

func TestFormat_MultilineComment(t *testing.T) {
	root := fds.NewSection()
	root.Set("k", fds.ScalarValue(fds.NewInt(1), "first\nsecond"))
	require.Equal(t, "#first\n#second\nk: 1\n", root.String())
}

func TestFormat_BlobRoundTrip(t *testing.T) {
	root, err := fds.ParseString("x= SGVsbG8=\n")
	require.NoError(t, err)

	out, err := fds.Format(root)
	require.NoError(t, err)
	line := strings.TrimSuffix(string(out), "\n")
	require.True(t, strings.HasPrefix(line, "x="), line)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(strings.TrimPrefix(line, "x=")))
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), decoded)
}

func TestFormat_EmptyBlob(t *testing.T) {
	root, err := fds.ParseString("x=\n")
	require.NoError(t, err)
	out, err := fds.Format(root)
	require.NoError(t, err)

	back, err := fds.Parse(out)
	require.NoError(t, err)
	b, ok := back.GetBytes("x")
	require.True(t, ok)
	require.Empty(t, b)
}

func TestFormat_MaxDepth(t *testing.T) {
	root := fds.NewSection()
	cur := root
	for range 5 {
		next := fds.NewSection()
		next.Set("leaf", fds.ScalarValue(fds.NewInt(1)))
		cur.Set("n", fds.SectionValue(next))
		cur = next
	}

	_, err := fds.Format(root, fds.MaxDepth(5))
	require.NoError(t, err)
	_, err = fds.Format(root, fds.MaxDepth(4))
	require.ErrorIs(t, err, fds.ErrMaxDepth)
}

func TestFormat_RoundTripPreservesScalarText(t *testing.T) {
	input := "zip: 007\nneg: -0\nexp: 1E5\nyes: True\n"
	root, err := fds.ParseString(input)
	require.NoError(t, err)
	require.Equal(t, input, root.String())
}

func TestFormat_LeadingByteOrderMark(t *testing.T) {
	root := fds.NewSection()
	root.Set("\ufeffkey", fds.ScalarValue(fds.NewInt(1)))

	out, err := fds.Format(root)
	require.NoError(t, err)
	require.Equal(t, "\ufeff\ufeffkey: 1\n", string(out))

	back, err := fds.Parse(out)
	require.NoError(t, err)
	require.Equal(t, []string{"\ufeffkey"}, back.Keys())
}
