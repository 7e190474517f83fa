package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	fds "github.com/KimNorgaard/go-fds"
)

// Type represents a codec type identifier.
type Type string

// Encoder converts a section tree into an encoded byte representation.
// Implementations must be safe for concurrent use.
type Encoder interface {
	// Encode converts s into an encoded byte slice.
	Encode(s *fds.Section) ([]byte, error)
}

// Decoder converts an encoded byte representation into a section tree.
// Implementations must be safe for concurrent use.
type Decoder interface {
	// Decode converts data into a new root section. The document root must
	// be an object.
	Decode(data []byte) (*fds.Section, error)
}

// ParseType returns the Type named by s. Short aliases (f, y, j, t) and the
// yml spelling are accepted.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "f", "fds":
		return TypeFDS, nil
	case "y", "yml", "yaml":
		return TypeYAML, nil
	case "j", "json":
		return TypeJSON, nil
	case "t", "toml":
		return TypeTOML, nil
	}
	return "", fmt.Errorf("unknown codec type: %q", s)
}

// TypeForPath guesses the codec type from the extension of path.
func TypeForPath(path string) (Type, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" || len(ext) == 1 {
		return "", false
	}
	t, err := ParseType(ext)
	if err != nil {
		return "", false
	}
	return t, true
}
