package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaseConversion(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		lower string
		upper string
	}{
		{name: "empty", input: "", lower: "", upper: ""},
		{name: "mixed", input: "HeLLo World", lower: "hello world", upper: "HELLO WORLD"},
		{name: "digits and punctuation", input: "A1:b2=C3#", lower: "a1:b2=c3#", upper: "A1:B2=C3#"},
		{name: "non-ascii untouched", input: "ÄbÇ", lower: "ÄbÇ", upper: "ÄBÇ"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.lower, ToLowerFast(tc.input))
			require.Equal(t, tc.upper, ToUpperFast(tc.input))
			require.True(t, IsAllLowerFast(ToLowerFast(tc.input)))
			require.True(t, IsAllUpperFast(ToUpperFast(tc.input)))
		})
	}
}

func TestEqualFoldFast(t *testing.T) {
	require.True(t, EqualFoldFast("Key", "kEY"))
	require.True(t, EqualFoldFast("", ""))
	require.False(t, EqualFoldFast("key", "keys"))
	require.False(t, EqualFoldFast("Ä", "ä"), "only ASCII letters fold")
}

func TestCountByte(t *testing.T) {
	require.Equal(t, 0, CountByte("", '\n'))
	require.Equal(t, 3, CountByte("a\nb\n\n", '\n'))
}

func TestSplitFast(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{""}},
		{name: "no separator", input: "abc", expected: []string{"abc"}},
		{name: "trailing separator", input: "a\nb\n", expected: []string{"a", "b", ""}},
		{name: "consecutive", input: "\n\n", expected: []string{"", "", ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, SplitFast(tc.input, '\n'))
		})
	}
}

func TestSplitFastN(t *testing.T) {
	require.Equal(t, []string{"a", "b.c.d"}, SplitFastN("a.b.c.d", '.', 2))
	require.Equal(t, []string{"a", "b", "c"}, SplitFastN("a.b.c", '.', 5))
	require.Equal(t, []string{"a", "b", "c"}, SplitFastN("a.b.c", '.', 0))
	require.Equal(t, []string{"abc"}, SplitFastN("abc", '.', 1))
}
