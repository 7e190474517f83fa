package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     Line
		expected bool
	}{
		{"colon without value", Line{Type: ENTRY, Sep: COLON}, true},
		{"colon with value", Line{Type: ENTRY, Sep: COLON, Value: "1"}, false},
		{"empty blob", Line{Type: ENTRY, Sep: EQUALS}, false},
		{"comment", Line{Type: COMMENT}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.line.IsHeader())
		})
	}
}

func TestSeparatorString(t *testing.T) {
	require.Equal(t, ":", COLON.String())
	require.Equal(t, "=", EQUALS.String())
	require.Equal(t, "", NONE.String())
}
