package escape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "name", expected: "name"},
		{name: "empty", input: "", expected: `\-`},
		{name: "colon", input: "a:b", expected: `a\cb`},
		{name: "equals", input: "a=b", expected: `a\eb`},
		{name: "hash", input: "#tag", expected: `\xtag`},
		{name: "backslash", input: `a\b`, expected: `a\sb`},
		{name: "newline", input: "a\nb", expected: `a\nb`},
		{name: "leading spaces", input: "  a b", expected: `\_\_a b`},
		{name: "trailing space kept", input: "a ", expected: "a "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			escaped := Key(tc.input)
			require.Equal(t, tc.expected, escaped)
			require.Equal(t, tc.input, UnescapeKey(escaped))
			require.Equal(t, escaped, Key(UnescapeKey(escaped)))
		})
	}
}

func TestValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "hello world", expected: "hello world"},
		{name: "structural characters are literal", input: "a:b=c#d", expected: "a:b=c#d"},
		{name: "empty", input: "", expected: `\-`},
		{name: "only spaces", input: "  ", expected: `\_\_`},
		{name: "edge spaces", input: " a b ", expected: `\_a b\_`},
		{name: "line breaks", input: "a\r\nb\tc", expected: `a\r\nb\tc`},
		{name: "backslash", input: `C:\dir`, expected: `C:\sdir`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			escaped := Value(tc.input)
			require.Equal(t, tc.expected, escaped)
			require.Equal(t, tc.input, UnescapeValue(escaped))
			require.Equal(t, escaped, Value(UnescapeValue(escaped)))
		})
	}
}

func TestUnescapeLenient(t *testing.T) {
	require.Equal(t, `a\qb`, UnescapeValue(`a\qb`), "unknown sequences are kept")
	require.Equal(t, `ab\`, UnescapeValue(`ab\`), "trailing backslash is kept")
	require.Equal(t, "", UnescapeValue(`\-`))
}

func FuzzValueRoundTrip(f *testing.F) {
	f.Add("")
	f.Add(" lead and trail ")
	f.Add(`\s\n\-`)
	f.Add("multi\nline\r\n")
	f.Fuzz(func(t *testing.T, s string) {
		require.Equal(t, s, UnescapeValue(Value(s)))
		require.Equal(t, s, UnescapeKey(Key(s)))
	})
}
