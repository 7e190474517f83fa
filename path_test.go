package fds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-fds"
)

const pathDoc = `Server:
    Host: example.org
    Port: 443
    Ratio: 0.5
    Secure: true
    Cert= SGVsbG8=
`

func TestSection_Lookup(t *testing.T) {
	root, err := fds.ParseString(pathDoc)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		path    string
		lowered bool
		found   bool
	}{
		{name: "exact", path: "Server.Host", found: true},
		{name: "exact wrong case", path: "server.host"},
		{name: "lowered", path: "server.HOST", lowered: true, found: true},
		{name: "missing leaf", path: "Server.Nope"},
		{name: "through scalar", path: "Server.Host.More"},
		{name: "section itself", path: "Server", found: true},
		{name: "empty", path: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ok bool
			if tc.lowered {
				_, ok = root.LookupLowered(tc.path)
			} else {
				_, ok = root.Lookup(tc.path)
			}
			require.Equal(t, tc.found, ok)
		})
	}
}

func TestSection_TypedGetters(t *testing.T) {
	root, err := fds.ParseString(pathDoc)
	require.NoError(t, err)

	host, ok := root.GetString("Server.Host")
	require.True(t, ok)
	require.Equal(t, "example.org", host)

	port, ok := root.GetInt("Server.Port")
	require.True(t, ok)
	require.Equal(t, int64(443), port)

	portText, ok := root.GetString("Server.Port")
	require.True(t, ok)
	require.Equal(t, "443", portText)

	ratio, ok := root.GetFloat("Server.Ratio")
	require.True(t, ok)
	require.Equal(t, 0.5, ratio)

	_, ok = root.GetInt("Server.Ratio")
	require.False(t, ok, "0.5 is not a whole number")

	secure, ok := root.GetBool("Server.Secure")
	require.True(t, ok)
	require.True(t, secure)

	cert, ok := root.GetBytes("Server.Cert")
	require.True(t, ok)
	require.Equal(t, []byte("Hello"), cert)

	_, ok = root.GetBytes("Server.Host")
	require.False(t, ok)
	_, ok = root.GetString("Server")
	require.False(t, ok)
	_, ok = root.GetInt("Server.Host")
	require.False(t, ok)
}

func TestSection_SetPath(t *testing.T) {
	root := fds.NewSection()
	require.NoError(t, root.SetPath("a.b.c", intValue(1)))
	require.NoError(t, root.SetPath("a.b.d", intValue(2)))
	require.NoError(t, root.SetPath("top", intValue(3)))

	require.Equal(t, "a:\n    b:\n        c: 1\n        d: 2\ntop: 3\n", root.String())

	err := root.SetPath("top.x", intValue(4))
	require.EqualError(t, err, `fds: cannot set "top.x": "top" holds a scalar, not a section`)
}
